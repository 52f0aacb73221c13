package completion

import (
	"fmt"
	"slices"

	"github.com/dhamidi/graphlet/diagram"
)

// CursorContext is what the host editor knows about a completion request.
// WordIsNew asks for the word under the cursor to be offered as a new node
// when no symbol has that id yet.
type CursorContext struct {
	Text      string
	Word      string
	WordIsNew bool
}

// Rank builds the candidate list for one request: the new word (if any),
// the known symbols alphabetically, then operators, shapes and keywords in
// catalog order. It never fails and keeps no state between calls.
func Rank(symbols []diagram.Symbol, ctx CursorContext) []Candidate {
	candidates := make([]Candidate, 0, len(symbols)+1+len(operators)+len(shapes)+len(keywords))

	known := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		if known[s.ID] {
			continue
		}
		known[s.ID] = true
		candidates = append(candidates, symbolCandidate(s))
	}

	if ctx.WordIsNew && diagram.IsIdent(ctx.Word) && !known[ctx.Word] {
		candidates = append(candidates, Candidate{
			Label:         ctx.Word,
			InsertText:    ctx.Word,
			Category:      CategoryNewSymbol,
			Detail:        "New Node",
			Documentation: "Create a new node",
			Rank:          RankKey{Tier: TierNewSymbol, Tiebreak: ctx.Word},
		})
	}

	candidates = appendCatalog(candidates, operators, TierOperator)
	candidates = appendCatalog(candidates, shapes, TierShape)
	candidates = appendCatalog(candidates, keywords, TierKeyword)

	Sort(candidates)
	return candidates
}

func symbolCandidate(s diagram.Symbol) Candidate {
	detail := s.Label
	if detail == "" {
		detail = "Node"
	}
	return Candidate{
		Label:         s.ID,
		InsertText:    s.ID,
		Category:      CategorySymbol,
		Detail:        detail,
		Documentation: "Reference to node: " + detail,
		Rank:          RankKey{Tier: TierSymbol, Tiebreak: s.ID},
	}
}

func appendCatalog(candidates []Candidate, entries []Entry, tier int) []Candidate {
	width := len(fmt.Sprint(len(entries)))
	for i, e := range entries {
		candidates = append(candidates, Candidate{
			Label:         e.Label,
			InsertText:    e.InsertText,
			Category:      e.Category,
			Detail:        e.Detail,
			Documentation: e.Documentation,
			Snippet:       e.Category == CategoryShape,
			Rank:          RankKey{Tier: tier, Tiebreak: fmt.Sprintf("%0*d", width, i)},
		})
	}
	return candidates
}

// Sort orders candidates by rank. Equal ranks keep their relative order.
func Sort(candidates []Candidate) {
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return a.Rank.Compare(b.Rank)
	})
}

// Result is the answer to a completion request at a cursor position.
type Result struct {
	Word       Word        `json:"word"`
	Candidates []Candidate `json:"candidates"`
}

// Complete extracts the symbols of text and ranks them for the word ending
// at the 1-based line and column.
func Complete(text string, line, column int) Result {
	word := WordAt(text, line, column)
	ctx := CursorContext{
		Text:      text,
		Word:      word.Text,
		WordIsNew: true,
	}
	return Result{
		Word:       word,
		Candidates: Rank(diagram.ExtractSymbols(text), ctx),
	}
}
