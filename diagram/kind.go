package diagram

import "strings"

// DiagramType is the kind of diagram a document declares on its first line.
type DiagramType struct {
	Keyword string
	Label   string
}

var diagramTypes = map[string]string{
	"flowchart":       "Flowchart",
	"graph":           "Flowchart",
	"sequencediagram": "Sequence",
	"classdiagram":    "Class",
	"statediagram":    "State",
	"statediagram-v2": "State",
	"erdiagram":       "ER Diagram",
	"gantt":           "Gantt",
	"pie":             "Pie Chart",
	"mindmap":         "Mind Map",
	"gitgraph":        "Git Graph",
	"timeline":        "Timeline",
	"journey":         "Journey",
	"c4context":       "C4 Diagram",
}

// DetectType looks at the first word of the first non-blank line,
// case-insensitively. Unknown or missing keywords yield the generic
// "Diagram" type with an empty Keyword.
func DetectType(text string) DiagramType {
	first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	first = strings.ToLower(strings.TrimSpace(first))
	end := strings.IndexFunc(first, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '{' || r == '('
	})
	if end >= 0 {
		first = first[:end]
	}
	if label, ok := diagramTypes[first]; ok {
		return DiagramType{Keyword: first, Label: label}
	}
	return DiagramType{Label: "Diagram"}
}
