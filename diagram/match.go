package diagram

import "strings"

// Each matcher below is one independent pass over a document. They never
// fail: text they cannot make sense of simply yields no matches.

type shapeDelimiter struct {
	open  string
	close string
}

// Openers sharing a prefix are listed longest first so "((" wins over "(".
// An opener whose closer is missing on the line falls through to the next
// candidate.
var shapeDelimiters = []shapeDelimiter{
	{"(((", ")))"},
	{"((", "))"},
	{"([", "])"},
	{"[[", "]]"},
	{"[(", ")]"},
	{"{{", "}}"},
	{"[/", "/]"},
	{"[\\", "\\]"},
	{"[/", "\\]"},
	{"[\\", "/]"},
	{"[", "]"},
	{"(", ")"},
	{"{", "}"},
	{">", "]"},
}

// LabeledMatch is a node declared with a shape, as in A[Label] or B((Label)).
type LabeledMatch struct {
	ID     string
	Label  string
	Open   string
	Close  string
	IDSpan Span
	Span   Span
}

// MatchLabeled finds <id><open><label><close> declarations, leftmost first
// and without overlap. Whitespace, newlines included, may separate the id
// from the opener; the label itself must end on the line it starts.
func MatchLabeled(text string) []LabeledMatch {
	var matches []LabeledMatch
	c := NewCursor(text)
	closers := newCloserIndex(text)
	for !c.Done() {
		if !isIdentByte(c.Peek()) {
			c.Advance()
			continue
		}
		start := c.Position()
		id := c.ScanIdent()
		idEnd := c.Position()

		c.SkipSpace()
		if m, ok := matchShape(c, closers); ok {
			m.ID = id
			m.IDSpan = Span{Start: start, End: idEnd}
			m.Span = Span{Start: start, End: c.Position()}
			matches = append(matches, m)
			continue
		}
		c.Reset(idEnd)
	}
	return matches
}

func matchShape(c *Cursor, closers *closerIndex) (LabeledMatch, bool) {
	for _, d := range shapeDelimiters {
		if !c.HasPrefix(d.open) {
			continue
		}
		mark := c.Position()
		c.AdvanceN(len(d.open))
		at := closers.find(c.pos, d.close)
		if at < 0 {
			c.Reset(mark)
			continue
		}
		label := c.input[c.pos:at]
		c.AdvanceN(at - c.pos + len(d.close))
		return LabeledMatch{
			Label: unquote(label),
			Open:  d.open,
			Close: d.close,
		}, true
	}
	return LabeledMatch{}, false
}

// closerIndex answers "where is the next closer on this line" for offsets
// that only move forward. A line of unclosed openers is then scanned once
// per closer instead of once per opener.
type closerIndex struct {
	input    string
	hits     map[string]closerHit
	lineFrom int
	lineEnd  int
}

// closerHit records one search started at from. When at is -1 the closer
// does not occur in [from, end), end being the line terminator.
type closerHit struct {
	from int
	at   int
	end  int
}

func newCloserIndex(input string) *closerIndex {
	return &closerIndex{
		input:    input,
		hits:     make(map[string]closerHit),
		lineFrom: -1,
		lineEnd:  -1,
	}
}

// find returns the absolute offset of the first occurrence of closer at or
// after from and before the end of from's line, or -1.
func (x *closerIndex) find(from int, closer string) int {
	if h, ok := x.hits[closer]; ok && from >= h.from {
		if h.at >= from {
			return h.at
		}
		if h.at < 0 && from <= h.end {
			return -1
		}
	}

	end := x.endOfLine(from)
	at := -1
	if i := strings.Index(x.input[from:end], closer); i >= 0 {
		at = from + i
	}
	x.hits[closer] = closerHit{from: from, at: at, end: end}
	return at
}

// endOfLine returns the offset of the first '\n' or '\r' at or after from,
// or the input length.
func (x *closerIndex) endOfLine(from int) int {
	if from >= x.lineFrom && from <= x.lineEnd {
		return x.lineEnd
	}
	end := len(x.input)
	if i := strings.IndexAny(x.input[from:], "\r\n"); i >= 0 {
		end = from + i
	}
	x.lineFrom, x.lineEnd = from, end
	return end
}

// unquote drops one leading and one trailing quote character, independently.
func unquote(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}

var reservedWords = map[string]bool{
	"graph":     true,
	"flowchart": true,
	"subgraph":  true,
	"end":       true,
	"style":     true,
	"classDef":  true,
	"click":     true,
}

// IsReserved reports whether a lone identifier on a line is a structural
// keyword rather than a node declaration. Case-sensitive.
func IsReserved(id string) bool {
	return reservedWords[id]
}

// BareMatch is a line holding nothing but an identifier.
type BareMatch struct {
	ID   string
	Span Span
}

func MatchBare(text string) []BareMatch {
	var matches []BareMatch
	c := NewCursor(text)
	for !c.Done() {
		c.SkipBlank()
		start := c.Position()
		id := c.ScanIdent()
		end := c.Position()
		c.SkipBlank()
		if id != "" && (c.Done() || c.Peek() == '\n') && !IsReserved(id) {
			matches = append(matches, BareMatch{
				ID:   id,
				Span: Span{Start: start, End: end},
			})
		}
		c.SkipLine()
	}
	return matches
}

// LinkMatch is a connector operator with the identifiers on either side of
// it. Source and Target are empty when no identifier sits next to the
// operator.
type LinkMatch struct {
	Operator   string
	Span       Span
	Source     string
	SourceSpan Span
	Target     string
	TargetSpan Span
}

type identRef struct {
	id   string
	span Span
}

// MatchLinks finds connector operators: a run of '-', '=' or '.' whose last
// one to three characters are followed by '>', '|' or ')'. The identifier
// before the run (only whitespace between) is the source when the run is
// at most three characters long. The identifier after the terminator is
// the target; a second '>' as in "->>", an edge label "|text|" and an
// activation marker '+' or '-' may sit in between.
func MatchLinks(text string) []LinkMatch {
	var matches []LinkMatch
	var last *identRef
	c := NewCursor(text)
	for !c.Done() {
		ch := c.Peek()
		switch {
		case isIdentByte(ch):
			start := c.Position()
			id := c.ScanIdent()
			last = &identRef{id: id, span: Span{Start: start, End: c.Position()}}
		case isSpace(ch):
			c.Advance()
		case isLinkByte(ch):
			m, ok := scanLink(c, last)
			last = nil
			if !ok {
				continue
			}
			if m.Target != "" {
				last = &identRef{id: m.Target, span: m.TargetSpan}
			}
			matches = append(matches, m)
		default:
			c.Advance()
			last = nil
		}
	}
	return matches
}

func scanLink(c *Cursor, source *identRef) (LinkMatch, bool) {
	runStart := c.Position()
	n := 0
	for isLinkByte(c.Peek()) {
		c.Advance()
		n++
	}
	if !isLinkTerminator(c.Peek()) {
		return LinkMatch{}, false
	}

	opLen := min(n, 3)
	start := runStart
	start.Offset += n - opLen
	start.Column += n - opLen
	c.Advance()
	end := c.Position()

	m := LinkMatch{
		Operator: c.input[start.Offset:end.Offset],
		Span:     Span{Start: start, End: end},
	}
	if n <= 3 && source != nil {
		m.Source = source.id
		m.SourceSpan = source.span
	}

	mark := c.Position()
	if c.Peek() == '>' {
		c.Advance()
	}
	c.SkipSpace()
	if c.Peek() == '|' {
		c.Advance()
		if i := c.IndexLine("|"); i >= 0 {
			c.AdvanceN(i + 1)
			c.SkipSpace()
		}
	}
	if (c.Peek() == '+' || c.Peek() == '-') && isIdentByte(c.PeekN(1)) {
		c.Advance()
	}
	targetStart := c.Position()
	if id := c.ScanIdent(); id != "" {
		m.Target = id
		m.TargetSpan = Span{Start: targetStart, End: c.Position()}
		return m, true
	}
	c.Reset(mark)
	return m, true
}

func isLinkByte(ch byte) bool {
	return ch == '-' || ch == '=' || ch == '.'
}

func isLinkTerminator(ch byte) bool {
	return ch == '>' || ch == '|' || ch == ')'
}
