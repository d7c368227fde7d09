package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/pod"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func sampleDocument() pod.Document {
	d := pod.DefaultDocument()
	d.Header.PONumber = "PO-2026-17"
	d.Header.FrancoDate = "2026-03-30"
	d.Header.Status = "Invoiced"
	d.Items[0] = pod.LineItem{
		MaximoNo: "MX-100", Description: "gate valve 2in",
		UnitCode: "EA", Qty: "10", UnitPrice: "12.50",
	}
	d.AddRow()
	d.Items[1] = pod.LineItem{Description: "stud bolts", Qty: "40", UnitPrice: "0.75"}
	d.SetSold(0, "4")
	return d
}

func TestDocumentMarkdown(t *testing.T) {
	d := sampleDocument()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	md := DocumentMarkdown(&d, Options{Now: now, Currency: "KWD", ShowSales: true})

	for _, want := range []string{
		"PO-2026-17",
		"gate valve 2in",
		"Sales / Remaining",
		"Total sold: 4",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("rendered markdown is missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("rendering reported a template error:\n%s", md)
	}
}

func TestDocumentMarkdownHidesSalesWhenAsked(t *testing.T) {
	d := sampleDocument()
	md := DocumentMarkdown(&d, Options{Now: time.Now(), ShowSales: false})
	if strings.Contains(md, "Sales / Remaining") {
		t.Errorf("sales section rendered although ShowSales is off")
	}
}

func TestDocumentMarkdownFrancoTiers(t *testing.T) {
	d := sampleDocument()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	d.Header.FrancoDate = "2026-03-30" // three weeks out
	if md := DocumentMarkdown(&d, Options{Now: now}); !strings.Contains(md, "🟢") {
		t.Errorf("distant deadline did not render the normal badge")
	}
	d.Header.FrancoDate = "2026-03-12"
	if md := DocumentMarkdown(&d, Options{Now: now}); !strings.Contains(md, "🟡") {
		t.Errorf("near deadline did not render the warning badge")
	}
	d.Header.FrancoDate = "2026-01-01"
	if md := DocumentMarkdown(&d, Options{Now: now}); !strings.Contains(md, "passed by") {
		t.Errorf("passed deadline did not render the alert label")
	}
	d.Header.FrancoDate = "tbd"
	if md := DocumentMarkdown(&d, Options{Now: now}); !strings.Contains(md, "invalid date") {
		t.Errorf("unparseable deadline did not render the invalid label")
	}
}

// TestDocumentMarkdownIsWellFormed parses the rendered output and asserts it
// carries real structure, so template regressions cannot ship as plain noise.
func TestDocumentMarkdownIsWellFormed(t *testing.T) {
	d := sampleDocument()
	md := DocumentMarkdown(&d, Options{Now: time.Now(), ShowSales: true})

	source := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var headings int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if _, ok := n.(*ast.Heading); ok {
				headings++
			}
		}
		return ast.WalkContinue, nil
	})
	if headings < 3 {
		t.Errorf("rendered document has %d headings, want the title plus two sections", headings)
	}
}

func TestFormatAmount(t *testing.T) {
	// KWD carries three fraction digits, the fallback currency is used for
	// empty codes. Exact symbols belong to go-money; we only pin the digits.
	got := formatAmount(12.5, "KWD")
	if !strings.Contains(got, "12.500") {
		t.Errorf("formatAmount(12.5, KWD) = %q, want three fraction digits", got)
	}
	if formatAmount(0, "") == "" {
		t.Errorf("formatAmount with an empty code returned nothing")
	}
}
