package webvtt

import (
	"strings"
)

// fileContext is state shared by all blocks of one document.
type fileContext struct {
	// reserved for header block support, never set yet
	inHeader bool
	seenCue  bool
}

type blockContext struct {
	lineCount int
	firstLine int
	seenArrow bool
	cue       *Cue
	buffer    strings.Builder
}

func (b *blockContext) appendLine(line string) {
	if b.buffer.Len() > 0 {
		b.buffer.WriteByte('\n')
	}
	b.buffer.WriteString(line)
}

// parseBlock consumes lines up to and including the next blank line, or to
// the end of input, and returns the cue they describe. Blocks that are not
// cues yield a nil Block.
func (p *parser) parseBlock() (Block, error) {
	blk := blockContext{firstLine: p.lines.lineNumber() + 1}

	for {
		line, ok := p.lines.next()
		if !ok {
			break
		}
		blk.lineCount++

		if strings.Contains(line, arrow) && p.isTimingCandidate(&blk) {
			blk.seenArrow = true

			start, end, settings, ok := parseCueTimings(line)
			if !ok {
				p.log.Debugw("Ignoring malformed timing line",
					"line", p.lines.lineNumber(),
				)
				continue
			}

			blk.cue = &Cue{
				ID:       blk.buffer.String(),
				Start:    start,
				End:      end,
				Settings: settings,
			}
			blk.buffer.Reset()
			continue
		}

		if line == "" {
			break
		}

		if !p.file.inHeader && blk.lineCount == 2 && !p.file.seenCue {
			if kind, unsupported := unsupportedBlockKind(blk.buffer.String()); unsupported {
				return p.unsupportedBlock(kind, blk.firstLine)
			}
		}

		blk.appendLine(line)
	}

	if blk.cue == nil {
		p.log.Debugw("Dropping unrecognized block",
			"line", blk.firstLine,
			"lines", blk.lineCount,
		)
		return nil, nil
	}

	blk.cue.Text = blk.buffer.String()
	p.file.seenCue = true
	return blk.cue, nil
}

// isTimingCandidate reports whether a line containing an arrow may be a cue
// timing line: the block's first line, or its second when the first was not
// already one. Other arrow lines are body text.
func (p *parser) isTimingCandidate(blk *blockContext) bool {
	if p.file.inHeader {
		return false
	}
	return blk.lineCount == 1 || (blk.lineCount == 2 && !blk.seenArrow)
}

func unsupportedBlockKind(firstLine string) (string, bool) {
	switch {
	case strings.HasPrefix(firstLine, "STYLE"):
		return "STYLE", true
	case strings.HasPrefix(firstLine, "REGION"):
		return "REGION", true
	default:
		return "", false
	}
}

func (p *parser) unsupportedBlock(kind string, line int) (Block, error) {
	if !p.opts.skipUnsupported {
		return nil, &UnsupportedBlockError{Kind: kind, Line: line}
	}

	p.log.Warnw("Skipping unsupported block",
		"kind", kind,
		"line", line,
	)
	for {
		next, ok := p.lines.next()
		if !ok || next == "" {
			return nil, nil
		}
	}
}
