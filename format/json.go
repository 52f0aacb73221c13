package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/graphlet/completion"
	"github.com/dhamidi/graphlet/diagram"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

type jsonSymbols struct {
	Source  string       `json:"source"`
	Type    string       `json:"type"`
	Keyword string       `json:"keyword,omitempty"`
	Symbols []jsonSymbol `json:"symbols"`
}

type jsonSymbol struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Span  jsonSpan `json:"span"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonCompletion struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	completion.Result
}

type jsonCatalog struct {
	Name    string      `json:"name"`
	Entries []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Label         string              `json:"label"`
	InsertText    string              `json:"insertText"`
	Category      completion.Category `json:"category"`
	Detail        string              `json:"detail"`
	Documentation string              `json:"documentation"`
}

func (e *JSONEncoder) EncodeSymbols(report SymbolReport) error {
	data := jsonSymbols{
		Source:  report.Source,
		Type:    report.Type.Label,
		Keyword: report.Type.Keyword,
		Symbols: make([]jsonSymbol, len(report.Symbols)),
	}
	for i, d := range report.Symbols {
		data.Symbols[i] = jsonSymbol{
			ID:    d.ID,
			Label: d.Label,
			Span:  toJSONSpan(d.Span),
		}
	}
	return e.write(data)
}

func (e *JSONEncoder) EncodeCompletion(report CompletionReport) error {
	return e.write(jsonCompletion{
		Source: report.Source,
		Line:   report.Line,
		Column: report.Column,
		Result: report.Result,
	})
}

func (e *JSONEncoder) EncodeCatalog(report CatalogReport) error {
	data := jsonCatalog{
		Name:    report.Name,
		Entries: make([]jsonEntry, len(report.Entries)),
	}
	for i, entry := range report.Entries {
		data.Entries[i] = jsonEntry(entry)
	}
	return e.write(data)
}

func (e *JSONEncoder) write(v any) error {
	text, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func toJSONSpan(s diagram.Span) jsonSpan {
	return jsonSpan{
		Start: jsonPosition{Line: s.Start.Line, Column: s.Start.Column},
		End:   jsonPosition{Line: s.End.Line, Column: s.End.Column},
	}
}
