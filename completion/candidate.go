// Package completion ranks completion candidates for a Mermaid document:
// the symbols already declared in it, the word being typed, and the static
// operator, shape and keyword catalogs.
package completion

import (
	"cmp"
	"fmt"
	"strings"
)

type Category int

const (
	CategorySymbol Category = iota
	CategoryNewSymbol
	CategoryOperator
	CategoryShape
	CategoryKeyword
)

var categoryNames = [...]string{
	CategorySymbol:    "symbol",
	CategoryNewSymbol: "new-symbol",
	CategoryOperator:  "operator",
	CategoryShape:     "shape",
	CategoryKeyword:   "keyword",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", text)
}

// Tiers group candidates coarsely; lower sorts first.
const (
	TierNewSymbol = -1
	TierSymbol    = 0
	TierOperator  = 1
	TierShape     = 2
	TierKeyword   = 3
)

// RankKey is the sort key of a candidate: ascending by Tier, then Tiebreak.
type RankKey struct {
	Tier     int    `json:"tier"`
	Tiebreak string `json:"tiebreak"`
}

func (r RankKey) Compare(other RankKey) int {
	if c := cmp.Compare(r.Tier, other.Tier); c != 0 {
		return c
	}
	return strings.Compare(r.Tiebreak, other.Tiebreak)
}

func (r RankKey) Less(other RankKey) bool {
	return r.Compare(other) < 0
}

// SortText renders the rank as a string that sorts the same way, for hosts
// that order candidates by a text key.
func (r RankKey) SortText() string {
	return fmt.Sprintf("%d:%s", r.Tier-TierNewSymbol, r.Tiebreak)
}

// Candidate is one completion suggestion. Snippet marks InsertText as
// containing a placeholder to be expanded by the host editor.
type Candidate struct {
	Label         string   `json:"label"`
	InsertText    string   `json:"insertText"`
	Category      Category `json:"category"`
	Detail        string   `json:"detail"`
	Documentation string   `json:"documentation"`
	Snippet       bool     `json:"snippet,omitempty"`
	Rank          RankKey  `json:"rank"`
}
