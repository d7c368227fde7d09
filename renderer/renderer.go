// Package renderer turns a purchase-order document into markdown: the
// printable view of the header, the items table with money columns, and the
// sold/remaining reconciliation.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/pod"
)

//go:embed *.md
var templates embed.FS

// Options configures document rendering.
type Options struct {
	Now       time.Time // clock reading for the franco banner
	Currency  string    // ISO code used for money columns, e.g. "KWD"
	ShowSales bool      // include the sold/remaining reconciliation section
}

// itemRow is one rendered line of the items table.
type itemRow struct {
	N         int
	Item      pod.LineItem
	LineTotal string
}

// salesRow is one rendered line of the reconciliation table.
type salesRow struct {
	N         int
	Item      pod.LineItem
	Sold      string
	Remaining string
}

// view is the data handed to the templates.
type view struct {
	Doc            *pod.Document
	Rows           []itemRow
	SalesRows      []salesRow
	GrandTotal     string
	TotalSold      string
	TotalRemaining string
	Franco         pod.FrancoStatus
	FrancoBadge    string
	ShowSales      bool
}

// DocumentMarkdown renders the document to a markdown string.
func DocumentMarkdown(d *pod.Document, opts Options) string {
	v := view{
		Doc:        d,
		GrandTotal: formatAmount(pod.GrandTotal(d), opts.Currency),
		Franco:     pod.ClassifyFranco(opts.Now, d.Header.FrancoDate),
		ShowSales:  opts.ShowSales,
	}
	v.FrancoBadge = francoBadge(v.Franco.Tier)

	for i, it := range d.Items {
		v.Rows = append(v.Rows, itemRow{
			N:         i + 1,
			Item:      it,
			LineTotal: formatAmount(pod.LineTotal(it), opts.Currency),
		})
		v.SalesRows = append(v.SalesRows, salesRow{
			N:         i + 1,
			Item:      it,
			Sold:      trimNumber(pod.Sold(d, i)),
			Remaining: trimNumber(pod.Remaining(d, i)),
		})
	}
	v.TotalSold = trimNumber(pod.TotalSold(d))
	v.TotalRemaining = trimNumber(pod.TotalRemaining(d))

	partials := map[string]string{
		"document_header": "document_header.md",
		"document_items":  "document_items.md",
		"document_sales":  "document_sales.md",
	}
	return renderTemplate("document", "document.md", partials, v)
}

// francoBadge picks the banner marker for a deadline tier.
func francoBadge(tier pod.FrancoTier) string {
	switch tier {
	case pod.FrancoAlert, pod.FrancoInvalid:
		return "🔴"
	case pod.FrancoWarning:
		return "🟡"
	default:
		return "🟢"
	}
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile(mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := templates.ReadFile(file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
