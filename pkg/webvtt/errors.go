package webvtt

import (
	"errors"
	"fmt"
)

var (
	ErrNoMagic       = errors.New("missing file magic")
	ErrBadHeader     = errors.New("bad file header")
	ErrUnexpectedEOF = errors.New("unexpected end-of-file")
	ErrUnimplemented = errors.New("unimplemented")
)

// UnsupportedBlockError is returned for a STYLE or REGION block that appears
// before the first cue.
type UnsupportedBlockError struct {
	Kind string
	Line int
}

func (e *UnsupportedBlockError) Error() string {
	return fmt.Sprintf("line %d: WebVTT %s blocks are unimplemented", e.Line, e.Kind)
}

func (e *UnsupportedBlockError) Is(target error) bool {
	return target == ErrUnimplemented
}
