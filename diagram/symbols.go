// Package diagram recovers the nodes declared in a Mermaid diagram from its
// text alone. It never builds a syntax tree: a few lexical passes run over
// the whole document and feed one insertion-ordered symbol table, which is
// what makes it usable on half-typed text.
package diagram

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Symbol is a node identifier together with the best label known for it.
type Symbol struct {
	ID    string
	Label string
}

// Declaration is a Symbol plus the span of the occurrence that introduced it.
type Declaration struct {
	Symbol
	Span Span
}

// SymbolTable accumulates declarations in first-seen order. The first
// declaration of an id wins; later ones are ignored even when they carry a
// different label.
type SymbolTable struct {
	entries *orderedmap.OrderedMap[string, Declaration]
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		entries: orderedmap.New[string, Declaration](),
	}
}

// Declare records id unless it is already present and reports whether it
// was inserted.
func (t *SymbolTable) Declare(id, label string, span Span) bool {
	if id == "" || t.Has(id) {
		return false
	}
	t.entries.Set(id, Declaration{
		Symbol: Symbol{ID: id, Label: label},
		Span:   span,
	})
	return true
}

func (t *SymbolTable) Has(id string) bool {
	_, ok := t.entries.Get(id)
	return ok
}

// Label returns the display label for id, falling back to id itself.
func (t *SymbolTable) Label(id string) (string, bool) {
	d, ok := t.entries.Get(id)
	if !ok {
		return "", false
	}
	if d.Label == "" {
		return d.ID, true
	}
	return d.Label, true
}

func (t *SymbolTable) Len() int {
	return t.entries.Len()
}

func (t *SymbolTable) Declarations() []Declaration {
	decls := make([]Declaration, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		d := pair.Value
		if d.Label == "" {
			d.Label = d.ID
		}
		decls = append(decls, d)
	}
	return decls
}

func (t *SymbolTable) Symbols() []Symbol {
	decls := t.Declarations()
	symbols := make([]Symbol, len(decls))
	for i, d := range decls {
		symbols[i] = d.Symbol
	}
	return symbols
}

// BuildSymbolTable runs the labeled, bare and link passes, in that order,
// into a fresh table.
func BuildSymbolTable(text string) *SymbolTable {
	t := NewSymbolTable()
	for _, m := range MatchLabeled(text) {
		t.Declare(m.ID, m.Label, m.IDSpan)
	}
	for _, m := range MatchBare(text) {
		t.Declare(m.ID, "", m.Span)
	}
	for _, m := range MatchLinks(text) {
		if m.Source != "" {
			t.Declare(m.Source, "", m.SourceSpan)
		}
		if m.Target != "" {
			t.Declare(m.Target, "", m.TargetSpan)
		}
	}
	return t
}

// ExtractSymbols returns the symbols of text in first-seen order. Every id
// appears once and every label is non-empty.
func ExtractSymbols(text string) []Symbol {
	return BuildSymbolTable(text).Symbols()
}

func ExtractDeclarations(text string) []Declaration {
	return BuildSymbolTable(text).Declarations()
}

// IdentAt returns the identifier touching the 1-based line and column,
// including one that ends right before the column.
func IdentAt(text string, line, column int) (string, Span, bool) {
	c := NewCursor(text)
	for !c.Done() && c.Position().Line < line {
		c.SkipLine()
	}
	for !c.Done() && c.Peek() != '\n' {
		if !isIdentByte(c.Peek()) {
			c.Advance()
			continue
		}
		start := c.Position()
		id := c.ScanIdent()
		span := Span{Start: start, End: c.Position()}
		if span.Contains(line, column) {
			return id, span, true
		}
		if start.Column > column {
			break
		}
	}
	return "", Span{}, false
}
