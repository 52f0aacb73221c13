package lsp

import (
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/graphlet/completion"
	"github.com/dhamidi/graphlet/diagram"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// LSP positions are 0-based and count UTF-16 code units; everything in
// diagram and completion is 1-based and counts bytes. The helpers below are
// the only place the two meet.

func lineAt(text string, line int) string {
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			return ""
		}
		text = text[nl+1:]
	}
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[:nl]
	}
	return strings.TrimSuffix(text, "\r")
}

// byteColumn turns a UTF-16 offset into a 1-based byte column of line.
// Offsets past the end clamp to the end of the line.
func byteColumn(line string, character protocol.UInteger) int {
	units := 0
	for i, r := range line {
		if units >= int(character) {
			return i + 1
		}
		units += runeUnits(r)
	}
	return len(line) + 1
}

// utf16Character turns a 1-based byte column of line into a UTF-16 offset.
func utf16Character(line string, column int) protocol.UInteger {
	units := 0
	for i, r := range line {
		if i >= column-1 {
			break
		}
		units += runeUnits(r)
	}
	return protocol.UInteger(units)
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// fromProtocolPosition returns the 1-based line and byte column of pos.
func fromProtocolPosition(text string, pos protocol.Position) (int, int) {
	line := int(pos.Line)
	return line + 1, byteColumn(lineAt(text, line), pos.Character)
}

func toProtocolPosition(text string, line, column int) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(line - 1),
		Character: utf16Character(lineAt(text, line-1), column),
	}
}

func toProtocolRange(text string, span diagram.Span) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(text, span.Start.Line, span.Start.Column),
		End:   toProtocolPosition(text, span.End.Line, span.End.Column),
	}
}

func wordRange(text string, word completion.Word) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(text, word.Line, word.StartColumn),
		End:   toProtocolPosition(text, word.Line, word.EndColumn),
	}
}

func toProtocolKind(category completion.Category) protocol.CompletionItemKind {
	switch category {
	case completion.CategorySymbol, completion.CategoryNewSymbol:
		return protocol.CompletionItemKindVariable
	case completion.CategoryOperator:
		return protocol.CompletionItemKindOperator
	case completion.CategoryShape:
		return protocol.CompletionItemKindSnippet
	case completion.CategoryKeyword:
		return protocol.CompletionItemKindKeyword
	default:
		return protocol.CompletionItemKindText
	}
}

// toCompletionItem keeps the ranking visible to the client through
// SortText, since editors re-sort whatever they receive.
func toCompletionItem(c completion.Candidate, replace protocol.Range) protocol.CompletionItem {
	kind := toProtocolKind(c.Category)
	detail := c.Detail
	sortText := c.Rank.SortText()
	format := protocol.InsertTextFormatPlainText
	if c.Snippet {
		format = protocol.InsertTextFormatSnippet
	}
	item := protocol.CompletionItem{
		Label:            c.Label,
		Kind:             &kind,
		Detail:           &detail,
		SortText:         &sortText,
		InsertTextFormat: &format,
		TextEdit: protocol.TextEdit{
			Range:   replace,
			NewText: c.InsertText,
		},
	}
	if c.Documentation != "" {
		item.Documentation = protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: c.Documentation,
		}
	}
	return item
}

func toCompletionList(text string, result completion.Result) *protocol.CompletionList {
	replace := wordRange(text, result.Word)
	items := make([]protocol.CompletionItem, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		items = append(items, toCompletionItem(c, replace))
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}
}

func toDocumentSymbols(text string, decls []diagram.Declaration) []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, 0, len(decls))
	for _, d := range decls {
		detail := d.Label
		rng := toProtocolRange(text, d.Span)
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           d.ID,
			Detail:         &detail,
			Kind:           protocol.SymbolKindVariable,
			Range:          rng,
			SelectionRange: rng,
		})
	}
	return symbols
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
