// Package format renders symbol listings, completion results and catalogs
// for the command line, either as aligned text or as JSON.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/graphlet/completion"
	"github.com/dhamidi/graphlet/diagram"
)

// SymbolReport is the symbol listing of one document.
type SymbolReport struct {
	Source  string
	Type    diagram.DiagramType
	Symbols []diagram.Declaration
}

// CompletionReport is a completion result together with where it was asked.
type CompletionReport struct {
	Source string
	Line   int
	Column int
	Result completion.Result
}

type CatalogReport struct {
	Name    string
	Entries []completion.Entry
}

type Encoder interface {
	EncodeSymbols(report SymbolReport) error
	EncodeCompletion(report CompletionReport) error
	EncodeCatalog(report CatalogReport) error
}

// New returns the encoder registered under name: "line" or "json".
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected line or json)", name)
	}
}
