// Package webvtt parses WebVTT subtitle documents into typed blocks.
package webvtt

import (
	"time"

	"github.com/samber/lo"
)

// Document is the result of a single parse call.
type Document struct {
	// Description is the free text after the WEBVTT signature, if any.
	Description *string
	Blocks      []Block
}

// Block is one blank-line separated unit of a document. The set of
// implementations is closed; consumers type switch on it.
type Block interface {
	block()
}

// Cue is a single timed caption.
type Cue struct {
	Start    time.Duration
	End      time.Duration
	ID       string
	Text     string
	Settings CueSettings
}

func (*Cue) block() {}

// Duration returns End - Start. Cue times are not validated, so this may be
// negative.
func (c *Cue) Duration() time.Duration {
	return c.End - c.Start
}

// CueSettings holds the recognized settings of a cue timing line.
type CueSettings struct {
	// Region is empty when absent. Always empty for vertical cues.
	Region           string
	WritingDirection WritingDirection
}

// WritingDirection is the text flow of a cue.
type WritingDirection int

const (
	Horizontal WritingDirection = iota
	// lines extend vertically, consecutive lines to the left
	VerticalGrowingLeft
	// lines extend vertically, consecutive lines to the right
	VerticalGrowingRight
)

func (d WritingDirection) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case VerticalGrowingLeft:
		return "lr"
	case VerticalGrowingRight:
		return "rl"
	default:
		return "unknown"
	}
}

// ParseWritingDirection maps a vertical setting value to a direction.
func ParseWritingDirection(value string) (WritingDirection, bool) {
	switch value {
	case "lr":
		return VerticalGrowingLeft, true
	case "rl":
		return VerticalGrowingRight, true
	default:
		return Horizontal, false
	}
}

// Cues returns the cue blocks of the document in order.
func (d *Document) Cues() []*Cue {
	return lo.FilterMap(d.Blocks, func(b Block, _ int) (*Cue, bool) {
		cue, ok := b.(*Cue)
		return cue, ok
	})
}
