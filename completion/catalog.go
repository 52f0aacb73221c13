package completion

import "slices"

// Entry is one row of a static vocabulary catalog.
type Entry struct {
	Label         string
	InsertText    string
	Category      Category
	Detail        string
	Documentation string
}

// The catalogs are literal data, listed in the order they are offered. The
// Circle shape appears twice on purpose; do not deduplicate.
var operators = []Entry{
	{Label: "-->", InsertText: "-->", Category: CategoryOperator, Detail: "Solid Link", Documentation: "A standard arrow connection"},
	{Label: "---", InsertText: "---", Category: CategoryOperator, Detail: "Solid Line", Documentation: "A connection with no arrow"},
	{Label: "-.->", InsertText: "-.->", Category: CategoryOperator, Detail: "Dotted Link", Documentation: "A dotted arrow connection"},
	{Label: "==>", InsertText: "==>", Category: CategoryOperator, Detail: "Thick Link", Documentation: "A thick arrow connection"},
	{Label: "--o", InsertText: "--o", Category: CategoryOperator, Detail: "Circle Link", Documentation: "A link ending with a circle"},
	{Label: "<-->", InsertText: "<-->", Category: CategoryOperator, Detail: "Double Arrow", Documentation: "A standard double arrow connection"},
	{Label: "x-x", InsertText: "x-x", Category: CategoryOperator, Detail: "Cross Link", Documentation: "A link ending with crosses"},
}

// Shape insert texts are snippets with a single ${1:Label} placeholder.
// Literal backslashes are escaped as snippet syntax requires.
var shapes = []Entry{
	{Label: "[]", InsertText: "[${1:Label}]", Category: CategoryShape, Detail: "Rectangle", Documentation: "Square rectangle node"},
	{Label: "(())", InsertText: "((${1:Label}))", Category: CategoryShape, Detail: "Circle", Documentation: "Circle node"},
	{Label: "([])", InsertText: "([${1:Label}])", Category: CategoryShape, Detail: "Stadium", Documentation: "Stadium-shaped node"},
	{Label: "[[]]", InsertText: "[[${1:Label}]]", Category: CategoryShape, Detail: "Subroutine", Documentation: "Subroutine node"},
	{Label: "[()]", InsertText: "[(${1:Label})]", Category: CategoryShape, Detail: "Database", Documentation: "Cylindrical database node"},
	{Label: "(())", InsertText: "((${1:Label}))", Category: CategoryShape, Detail: "Circle", Documentation: "Circle node"},
	{Label: ">>]", InsertText: ">${1:Label}]", Category: CategoryShape, Detail: "Flag", Documentation: "Asymmetric shape"},
	{Label: "{}", InsertText: "{${1:Label}}", Category: CategoryShape, Detail: "Rhombus", Documentation: "Rhombus (Decision) node"},
	{Label: "{{}}", InsertText: "{{${1:Label}}}", Category: CategoryShape, Detail: "Hexagon", Documentation: "Hexagon node"},
	{Label: "[//]", InsertText: "[/${1:Label}/]", Category: CategoryShape, Detail: "Parallelogram", Documentation: "Parallelogram node (Lean Right)"},
	// Backslashes doubled so the snippet inserts [\ and \] literally.
	{Label: `[\\]`, InsertText: `[\\${1:Label}\\]`, Category: CategoryShape, Detail: "Parallelogram Alt", Documentation: "Parallelogram node (Lean Left)"},
}

var keywords = []Entry{
	// Diagram types
	keyword("graph", "Diagram Type", "Start a flowchart"),
	keyword("flowchart", "Diagram Type", "Start a flowchart"),
	keyword("sequenceDiagram", "Diagram Type", "Start a sequence diagram"),
	keyword("classDiagram", "Diagram Type", "Start a class diagram"),
	keyword("stateDiagram-v2", "Diagram Type", "Start a state diagram"),
	keyword("erDiagram", "Diagram Type", "Start an entity relationship diagram"),
	keyword("gantt", "Diagram Type", "Start a Gantt chart"),
	keyword("pie", "Diagram Type", "Start a pie chart"),
	keyword("gitGraph", "Diagram Type", "Start a git graph"),
	keyword("journey", "Diagram Type", "Start a user journey map"),
	keyword("mindmap", "Diagram Type", "Start a mindmap"),

	// Sequence diagrams
	keyword("participant", "Keyword", "Define a participant"),
	keyword("actor", "Keyword", "Define an actor"),
	keyword("activate", "Keyword", "Activate a participant"),
	keyword("deactivate", "Keyword", "Deactivate a participant"),
	keyword("loop", "Keyword", "Start a loop block"),
	keyword("alt", "Keyword", "Start an alternate path block"),
	keyword("opt", "Keyword", "Start an optional path block"),
	keyword("par", "Keyword", "Start a parallel block"),
	keyword("critical", "Keyword", "Start a critical block"),
	keyword("rect", "Keyword", "Start a colored rectangle block"),

	// Class diagrams
	keyword("class", "Keyword", "Define a class"),
	keyword("classDef", "Keyword", "Define a class style"),
	keyword("style", "Keyword", "Apply style to a node"),
	keyword("click", "Keyword", "Add click event to a node"),

	// Common
	keyword("subgraph", "Keyword", "Start a subgraph"),
	keyword("end", "Keyword", "End a block"),
	keyword("direction", "Keyword", "Set diagram direction (TB, LR, etc.)"),
}

func keyword(label, detail, doc string) Entry {
	return Entry{Label: label, InsertText: label, Category: CategoryKeyword, Detail: detail, Documentation: doc}
}

// Operators returns the connector catalog. The returned slice is a copy.
func Operators() []Entry {
	return slices.Clone(operators)
}

// Shapes returns the node shape catalog. The returned slice is a copy.
func Shapes() []Entry {
	return slices.Clone(shapes)
}

// Keywords returns the keyword catalog. The returned slice is a copy.
func Keywords() []Entry {
	return slices.Clone(keywords)
}

// Catalog returns the catalog for a category name as accepted on the
// command line: "operators", "shapes" or "keywords".
func Catalog(name string) ([]Entry, bool) {
	switch name {
	case "operators", "operator":
		return Operators(), true
	case "shapes", "shape":
		return Shapes(), true
	case "keywords", "keyword":
		return Keywords(), true
	}
	return nil, false
}
