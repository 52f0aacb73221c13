package completion

import "testing"

func TestWordAt(t *testing.T) {
	text := "graph TD\n  Alpha-->Be\r\nlast"
	tests := []struct {
		name        string
		line        int
		column      int
		text        string
		startColumn int
		endColumn   int
	}{
		{"end of word", 2, 8, "Alpha", 3, 8},
		{"middle of word", 2, 5, "Al", 3, 5},
		{"after operator", 2, 11, "", 11, 11},
		{"crlf line", 2, 13, "Be", 11, 13},
		{"column past end", 2, 99, "Be", 11, 13},
		{"line past end", 9, 5, "last", 1, 5},
		{"zero column", 1, 0, "", 1, 1},
		{"first line", 1, 6, "graph", 1, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WordAt(text, tt.line, tt.column)
			if w.Text != tt.text {
				t.Errorf("Text = %q, want %q", w.Text, tt.text)
			}
			if w.StartColumn != tt.startColumn || w.EndColumn != tt.endColumn {
				t.Errorf("columns = %d-%d, want %d-%d", w.StartColumn, w.EndColumn, tt.startColumn, tt.endColumn)
			}
		})
	}
}

func TestWordAtEmptyText(t *testing.T) {
	w := WordAt("", 1, 1)
	if w.Text != "" || w.Line != 1 || w.StartColumn != 1 || w.EndColumn != 1 {
		t.Errorf("WordAt(empty) = %+v", w)
	}
}
