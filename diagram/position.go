package diagram

import "fmt"

// Position is a location in a document. Line and Column are 1-based;
// Column counts bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// Contains reports whether the 1-based line/column lies within the span.
// The end column is inclusive so a cursor sitting right after an identifier
// still counts as inside it.
func (s Span) Contains(line, column int) bool {
	if line < s.Start.Line || line > s.End.Line {
		return false
	}
	if line == s.Start.Line && column < s.Start.Column {
		return false
	}
	if line == s.End.Line && column > s.End.Column {
		return false
	}
	return true
}
