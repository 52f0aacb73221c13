package completion

import (
	"reflect"
	"sort"
	"testing"

	"github.com/dhamidi/graphlet/diagram"
)

func catalogSize() int {
	return len(Operators()) + len(Shapes()) + len(Keywords())
}

func TestRankEmptyDocument(t *testing.T) {
	got := Rank(nil, CursorContext{})
	if len(got) != catalogSize() {
		t.Fatalf("len(candidates) = %d, want %d", len(got), catalogSize())
	}
	for _, c := range got {
		if c.Rank.Tier < TierOperator {
			t.Errorf("candidate %q has tier %d, want only catalog tiers", c.Label, c.Rank.Tier)
		}
	}
}

func TestRankNewWordOnEmptyDocument(t *testing.T) {
	got := Rank(diagram.ExtractSymbols(""), CursorContext{Word: "Foo", WordIsNew: true})
	if len(got) != catalogSize()+1 {
		t.Fatalf("len(candidates) = %d, want %d", len(got), catalogSize()+1)
	}
	first := got[0]
	if first.Category != CategoryNewSymbol {
		t.Errorf("first Category = %v, want %v", first.Category, CategoryNewSymbol)
	}
	if first.InsertText != "Foo" {
		t.Errorf("first InsertText = %q, want %q", first.InsertText, "Foo")
	}
	for _, c := range got[1:] {
		if c.Category == CategorySymbol || c.Category == CategoryNewSymbol {
			t.Errorf("unexpected %v candidate %q", c.Category, c.Label)
		}
	}
}

func TestRankOrdering(t *testing.T) {
	symbols := []diagram.Symbol{
		{ID: "Zeta", Label: "Last"},
		{ID: "Alpha", Label: "First"},
		{ID: "Mid", Label: "Mid"},
	}
	got := Rank(symbols, CursorContext{Word: "New", WordIsNew: true})

	var labels []string
	for _, c := range got[:4] {
		labels = append(labels, c.Label)
	}
	want := []string{"New", "Alpha", "Mid", "Zeta"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("leading labels = %v, want %v", labels, want)
	}

	var categories []Category
	for _, c := range got {
		if len(categories) == 0 || categories[len(categories)-1] != c.Category {
			categories = append(categories, c.Category)
		}
	}
	wantCategories := []Category{CategoryNewSymbol, CategorySymbol, CategoryOperator, CategoryShape, CategoryKeyword}
	if !reflect.DeepEqual(categories, wantCategories) {
		t.Errorf("category groups = %v, want %v", categories, wantCategories)
	}

	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Rank.Less(got[j].Rank) }) {
		t.Error("candidates are not sorted by rank")
	}
}

func TestRankCatalogOrderPreserved(t *testing.T) {
	got := Rank(nil, CursorContext{})
	checks := []struct {
		category Category
		entries  []Entry
	}{
		{CategoryOperator, Operators()},
		{CategoryShape, Shapes()},
		{CategoryKeyword, Keywords()},
	}
	for _, check := range checks {
		var labels []string
		for _, c := range got {
			if c.Category == check.category {
				labels = append(labels, c.Label)
			}
		}
		var want []string
		for _, e := range check.entries {
			want = append(want, e.Label)
		}
		if !reflect.DeepEqual(labels, want) {
			t.Errorf("%v labels = %v, want %v", check.category, labels, want)
		}
	}
}

func TestRankSkipsKnownOrInvalidWord(t *testing.T) {
	symbols := []diagram.Symbol{{ID: "A", Label: "Hello"}}
	tests := []struct {
		name string
		ctx  CursorContext
	}{
		{"known id", CursorContext{Word: "A", WordIsNew: true}},
		{"empty word", CursorContext{Word: "", WordIsNew: true}},
		{"invalid characters", CursorContext{Word: "a-b", WordIsNew: true}},
		{"not requested", CursorContext{Word: "B", WordIsNew: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range Rank(symbols, tt.ctx) {
				if c.Category == CategoryNewSymbol {
					t.Errorf("unexpected new-symbol candidate %q", c.Label)
				}
			}
		})
	}
}

func TestRankSymbolCandidate(t *testing.T) {
	got := Rank([]diagram.Symbol{{ID: "A", Label: "Hello"}, {ID: "B"}}, CursorContext{})
	if got[0].Label != "A" || got[0].Detail != "Hello" || got[0].Documentation != "Reference to node: Hello" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Detail != "Node" {
		t.Errorf("got[1].Detail = %q, want %q", got[1].Detail, "Node")
	}
	if got[0].Rank != (RankKey{Tier: TierSymbol, Tiebreak: "A"}) {
		t.Errorf("got[0].Rank = %+v", got[0].Rank)
	}
}

func TestRankDeduplicatesSymbols(t *testing.T) {
	got := Rank([]diagram.Symbol{{ID: "A", Label: "x"}, {ID: "A", Label: "y"}}, CursorContext{})
	count := 0
	for _, c := range got {
		if c.Category == CategorySymbol {
			count++
		}
	}
	if count != 1 {
		t.Errorf("symbol candidates = %d, want 1", count)
	}
}

func TestRankShapesAreSnippets(t *testing.T) {
	for _, c := range Rank(nil, CursorContext{}) {
		if got, want := c.Snippet, c.Category == CategoryShape; got != want {
			t.Errorf("%v %q Snippet = %v, want %v", c.Category, c.Label, got, want)
		}
	}
}

func TestRankIsDeterministic(t *testing.T) {
	symbols := diagram.ExtractSymbols("graph TD\nB[Two] --> A[One]\nA --> C")
	ctx := CursorContext{Word: "D", WordIsNew: true}
	first := Rank(symbols, ctx)
	for i := 0; i < 5; i++ {
		if got := Rank(symbols, ctx); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from the first", i)
		}
	}
}

func TestRankKeySortText(t *testing.T) {
	keys := []RankKey{
		{Tier: TierNewSymbol, Tiebreak: "zzz"},
		{Tier: TierSymbol, Tiebreak: "A"},
		{Tier: TierSymbol, Tiebreak: "B"},
		{Tier: TierOperator, Tiebreak: "0"},
		{Tier: TierShape, Tiebreak: "10"},
		{Tier: TierKeyword, Tiebreak: "00"},
	}
	for i := 1; i < len(keys); i++ {
		if !keys[i-1].Less(keys[i]) {
			t.Errorf("%+v should sort before %+v", keys[i-1], keys[i])
		}
		if keys[i-1].SortText() >= keys[i].SortText() {
			t.Errorf("SortText %q should sort before %q", keys[i-1].SortText(), keys[i].SortText())
		}
	}
	if got := (RankKey{Tier: TierNewSymbol, Tiebreak: "Foo"}).SortText(); got != "0:Foo" {
		t.Errorf("SortText = %q, want %q", got, "0:Foo")
	}
}

func TestCategoryText(t *testing.T) {
	for _, c := range []Category{CategorySymbol, CategoryNewSymbol, CategoryOperator, CategoryShape, CategoryKeyword} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", c, err)
		}
		var back Category
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != c {
			t.Errorf("round trip of %q = %v, want %v", text, back, c)
		}
	}
	var c Category
	if err := c.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) succeeded, want error")
	}
}

func TestComplete(t *testing.T) {
	text := "graph TD\n  Start[Begin] --> Sto"
	got := Complete(text, 2, 23)
	if got.Word.Text != "Sto" {
		t.Errorf("Word.Text = %q, want %q", got.Word.Text, "Sto")
	}
	if got.Word.StartColumn != 20 || got.Word.EndColumn != 23 {
		t.Errorf("Word columns = %d-%d, want 20-23", got.Word.StartColumn, got.Word.EndColumn)
	}
	// The half-typed target already counts as a symbol, so no new word.
	if got.Candidates[0].Label != "Start" || got.Candidates[1].Label != "Sto" {
		t.Errorf("leading candidates = %q, %q, want Start, Sto", got.Candidates[0].Label, got.Candidates[1].Label)
	}
	for _, c := range got.Candidates {
		if c.Category == CategoryNewSymbol {
			t.Errorf("unexpected new-symbol candidate %q", c.Label)
		}
	}
}

func TestCompleteNewWord(t *testing.T) {
	got := Complete("graph TD\nA[x] --- ", 2, 10)
	if got.Word.Text != "" {
		t.Errorf("Word.Text = %q, want empty", got.Word.Text)
	}
	got = Complete("graph TD\nA[x]\nNe", 3, 3)
	// "Ne" is a bare line, so it is already a symbol.
	if got.Candidates[0].Label != "A" {
		t.Errorf("first candidate = %q, want A", got.Candidates[0].Label)
	}
	got = Complete("graph TD\nA[x] Ne", 2, 8)
	if got.Candidates[0].Category != CategoryNewSymbol || got.Candidates[0].Label != "Ne" {
		t.Errorf("first candidate = %+v, want new symbol Ne", got.Candidates[0])
	}
}
