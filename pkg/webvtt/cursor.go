package webvtt

// lineCursor is a peekable iterator over the lines of the input. Lines are
// slices of the source string.
type lineCursor struct {
	lines []string
	pos   int
}

func newLineCursor(lines []string) *lineCursor {
	return &lineCursor{lines: lines}
}

func (c *lineCursor) next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

func (c *lineCursor) peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

func (c *lineCursor) done() bool {
	return c.pos >= len(c.lines)
}

// lineNumber is the 1-based number of the last line returned by next.
func (c *lineCursor) lineNumber() int {
	return c.pos
}

func (c *lineCursor) skipBlankLines() {
	for {
		line, ok := c.peek()
		if !ok || line != "" {
			return
		}
		c.pos++
	}
}
