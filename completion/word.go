package completion

import "strings"

// Word is the identifier run ending at the cursor, with the columns the
// host should replace when a candidate is accepted. Columns are 1-based and
// count bytes; EndColumn is the cursor column.
type Word struct {
	Text        string `json:"text"`
	Line        int    `json:"line"`
	StartColumn int    `json:"startColumn"`
	EndColumn   int    `json:"endColumn"`
}

// WordAt returns the word until the cursor. A line or column outside the
// document is clamped, so WordAt always returns a usable range.
func WordAt(text string, line, column int) Word {
	lines := strings.Split(text, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineText := strings.TrimSuffix(lines[line-1], "\r")

	if column < 1 {
		column = 1
	}
	if column > len(lineText)+1 {
		column = len(lineText) + 1
	}

	end := column - 1
	start := end
	for start > 0 && isWordByte(lineText[start-1]) {
		start--
	}
	return Word{
		Text:        lineText[start:end],
		Line:        line,
		StartColumn: start + 1,
		EndColumn:   column,
	}
}

func isWordByte(ch byte) bool {
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch == '_'
}
