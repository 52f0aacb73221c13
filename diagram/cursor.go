package diagram

// Cursor walks a document byte by byte, tracking line and column.
// Matchers share it so every pass agrees on positions.
type Cursor struct {
	input  string
	pos    int
	line   int
	column int
}

func NewCursor(input string) *Cursor {
	return &Cursor{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (c *Cursor) Position() Position {
	return Position{
		Offset: c.pos,
		Line:   c.line,
		Column: c.column,
	}
}

// Reset moves the cursor back to a position it previously reported.
func (c *Cursor) Reset(p Position) {
	c.pos = p.Offset
	c.line = p.Line
	c.column = p.Column
}

func (c *Cursor) Done() bool {
	return c.pos >= len(c.input)
}

func (c *Cursor) Peek() byte {
	if c.pos >= len(c.input) {
		return 0
	}
	return c.input[c.pos]
}

func (c *Cursor) PeekN(n int) byte {
	if c.pos+n >= len(c.input) {
		return 0
	}
	return c.input[c.pos+n]
}

func (c *Cursor) HasPrefix(s string) bool {
	return len(c.input)-c.pos >= len(s) && c.input[c.pos:c.pos+len(s)] == s
}

func (c *Cursor) Advance() byte {
	if c.pos >= len(c.input) {
		return 0
	}
	ch := c.input[c.pos]
	c.pos++
	if ch == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return ch
}

func (c *Cursor) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		c.Advance()
	}
}

// SkipSpace consumes whitespace including newlines.
func (c *Cursor) SkipSpace() bool {
	start := c.pos
	for !c.Done() && isSpace(c.Peek()) {
		c.Advance()
	}
	return c.pos > start
}

// SkipBlank consumes whitespace up to, but not including, a newline.
func (c *Cursor) SkipBlank() bool {
	start := c.pos
	for !c.Done() && isBlank(c.Peek()) {
		c.Advance()
	}
	return c.pos > start
}

// SkipLine moves past the next newline, or to the end of input.
func (c *Cursor) SkipLine() {
	for !c.Done() {
		if c.Advance() == '\n' {
			return
		}
	}
}

// ScanIdent consumes an identifier and returns it, or returns "" without
// moving when the cursor is not on an identifier character.
func (c *Cursor) ScanIdent() string {
	start := c.pos
	for !c.Done() && isIdentByte(c.Peek()) {
		c.Advance()
	}
	return c.input[start:c.pos]
}

// IndexLine returns the offset, relative to the cursor, of the first
// occurrence of s before the end of the current line, or -1.
func (c *Cursor) IndexLine(s string) int {
	rest := c.input[c.pos:]
	for i := 0; i+len(s) <= len(rest); i++ {
		if rest[i] == '\n' || rest[i] == '\r' {
			return -1
		}
		if rest[i:i+len(s)] == s {
			return i
		}
	}
	return -1
}

func isIdentByte(ch byte) bool {
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch == '_'
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isSpace(ch byte) bool {
	return isBlank(ch) || ch == '\n'
}

// IsIdent reports whether s is a non-empty run of [A-Za-z0-9_].
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return true
}
