package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/graphlet/completion"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// LineEncoder prints one record per line with columns padded to a common
// display width. Color is on only when writing to a terminal, unless set
// with SetColor.
type LineEncoder struct {
	w      io.Writer
	ident  *color.Color
	detail *color.Color
	faint  *color.Color
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	e := &LineEncoder{
		w:      w,
		ident:  color.New(color.FgCyan, color.Bold),
		detail: color.New(color.FgYellow),
		faint:  color.New(color.Faint),
	}
	e.SetColor(!color.NoColor && isTerminal(w))
	return e
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (e *LineEncoder) SetColor(enabled bool) {
	for _, c := range []*color.Color{e.ident, e.detail, e.faint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (e *LineEncoder) EncodeSymbols(report SymbolReport) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\t%s\n", e.faint.Sprint(report.Source), report.Type.Label)

	ids := make([]string, len(report.Symbols))
	for i, d := range report.Symbols {
		ids[i] = d.ID
	}
	width := maxWidth(ids)
	for _, d := range report.Symbols {
		fmt.Fprintf(&sb, "%s  %s  %s\n",
			e.faint.Sprint(runewidth.FillRight(d.Span.Start.String(), 7)),
			e.ident.Sprint(runewidth.FillRight(d.ID, width)),
			d.Label,
		)
	}

	_, err := io.WriteString(e.w, sb.String())
	return err
}

func (e *LineEncoder) EncodeCompletion(report CompletionReport) error {
	var sb strings.Builder
	word := report.Result.Word

	fmt.Fprintf(&sb, "%s\tword %q at %d:%d-%d\n",
		e.faint.Sprint(fmt.Sprintf("%s:%d:%d", report.Source, report.Line, report.Column)),
		word.Text, word.Line, word.StartColumn, word.EndColumn,
	)

	candidates := report.Result.Candidates
	sortTexts := make([]string, len(candidates))
	categories := make([]string, len(candidates))
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		sortTexts[i] = c.Rank.SortText()
		categories[i] = c.Category.String()
		labels[i] = c.Label
	}
	sortWidth, categoryWidth, labelWidth := maxWidth(sortTexts), maxWidth(categories), maxWidth(labels)

	for i, c := range candidates {
		fmt.Fprintf(&sb, "%s  %s  %s  %s\n",
			e.faint.Sprint(runewidth.FillRight(sortTexts[i], sortWidth)),
			runewidth.FillRight(categories[i], categoryWidth),
			e.ident.Sprint(runewidth.FillRight(labels[i], labelWidth)),
			e.detail.Sprint(c.Detail),
		)
	}

	_, err := io.WriteString(e.w, sb.String())
	return err
}

func (e *LineEncoder) EncodeCatalog(report CatalogReport) error {
	var sb strings.Builder

	labels := make([]string, len(report.Entries))
	for i, entry := range report.Entries {
		labels[i] = entry.Label
	}
	width := maxWidth(labels)

	for _, entry := range report.Entries {
		fmt.Fprintf(&sb, "%s\t%s  %s\n",
			report.Name,
			e.ident.Sprint(runewidth.FillRight(entry.Label, width)),
			e.detail.Sprint(entryDetail(entry)),
		)
	}

	_, err := io.WriteString(e.w, sb.String())
	return err
}

func entryDetail(entry completion.Entry) string {
	if entry.Documentation == "" {
		return entry.Detail
	}
	return entry.Detail + ": " + entry.Documentation
}

func maxWidth(values []string) int {
	width := 0
	for _, v := range values {
		width = max(width, runewidth.StringWidth(v))
	}
	return width
}
