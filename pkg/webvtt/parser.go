package webvtt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

const magic = "WEBVTT"

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

type parser struct {
	lines *lineCursor
	file  fileContext
	opts  options
	log   *zap.SugaredLogger
}

// Parse parses a complete WebVTT document held in memory.
//
// The signature line must start with "WEBVTT", optionally followed by a
// space or tab and a description. Blocks that are not cues are dropped.
// A STYLE or REGION block before the first cue fails with an
// *UnsupportedBlockError unless WithSkipUnsupported is given.
func Parse(input string, opts ...Option) (*Document, error) {
	o := newOptions(opts)

	input = strings.TrimPrefix(input, "\ufeff")
	if input == "" {
		return nil, ErrUnexpectedEOF
	}
	if strings.ContainsRune(input, '\r') {
		input = newlineReplacer.Replace(input)
	}

	p := &parser{
		lines: newLineCursor(strings.Split(input, "\n")),
		opts:  o,
		log:   o.logger,
	}
	return p.parseDocument()
}

func ParseBytes(data []byte, opts ...Option) (*Document, error) {
	return Parse(string(data), opts...)
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read VTT input: %w", err)
	}
	return ParseBytes(data, opts...)
}

// Open reads and parses the WebVTT file at path.
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open VTT file: %w", err)
	}
	return ParseBytes(data, opts...)
}

func (p *parser) parseDocument() (*Document, error) {
	first, _ := p.lines.next()
	rest, ok := strings.CutPrefix(first, magic)
	if !ok {
		return nil, ErrNoMagic
	}

	var description *string
	if rest != "" {
		if rest[0] != ' ' && rest[0] != '\t' {
			return nil, ErrBadHeader
		}
		d := strings.Clone(rest[1:])
		description = &d
	}

	p.lines.skipBlankLines()

	var blocks []Block
	for !p.lines.done() {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if block != nil {
			blocks = append(blocks, block)
		}
		p.lines.skipBlankLines()
	}

	p.log.Debugw("Parsed WebVTT document",
		"lines", p.lines.lineNumber(),
		"blocks", len(blocks),
	)

	return &Document{
		Description: description,
		Blocks:      blocks,
	}, nil
}
