package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pod"
	"github.com/etnz/pod/date"
	"github.com/google/subcommands"
)

type headerCmd struct {
	poNumber    string
	ltsaNumber  string
	beneficiary string
	description string
	issue       string
	site        string
	franco      string
}

// headerFlagKeys maps flag names to the document's header field keys.
var headerFlagKeys = map[string]string{
	"po":          "poNumber",
	"ltsa":        "ltsaNumber",
	"beneficiary": "beneficiaryName",
	"description": "ltsaDescription",
	"issue":       "dateOfIssue",
	"site":        "siteDate",
	"franco":      "francoDate",
}

// headerDateFlags accept the "today" convenience value.
var headerDateFlags = map[string]bool{"issue": true, "site": true, "franco": true}

func (*headerCmd) Name() string     { return "header" }
func (*headerCmd) Synopsis() string { return "set header fields of the purchase order" }
func (*headerCmd) Usage() string {
	return `pod header [-po <n>] [-ltsa <n>] [-beneficiary <name>] [-description <text>] [-issue <date>] [-site <date>] [-franco <date>]

  Sets one or more header fields. Only the given flags are applied; every
  other field keeps its value. Every field is free text, dates included.
  Date flags also accept "today".

Usage Examples:
$ pod header -po PO-2026-17 -franco 2026-03-30
$ pod header -issue today
`
}

func (c *headerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.poNumber, "po", "", "Purchase order number.")
	f.StringVar(&c.ltsaNumber, "ltsa", "", "LTSA contract number.")
	f.StringVar(&c.beneficiary, "beneficiary", "", "Beneficiary name.")
	f.StringVar(&c.description, "description", "", "LTSA description.")
	f.StringVar(&c.issue, "issue", "", "Date of issue (YYYY-MM-DD, or 'today').")
	f.StringVar(&c.site, "site", "", "Site date (YYYY-MM-DD, or 'today').")
	f.StringVar(&c.franco, "franco", "", "Franco delivery deadline (YYYY-MM-DD, or 'today').")
}

func (c *headerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Only flags the user actually passed are merged, so an empty value is a
	// deliberate way to blank a field.
	fields := make(map[string]string)
	f.Visit(func(fl *flag.Flag) {
		key, ok := headerFlagKeys[fl.Name]
		if !ok {
			return
		}
		value := fl.Value.String()
		if value == "today" && headerDateFlags[fl.Name] {
			value = date.Today().String()
		}
		fields[key] = value
	})
	if len(fields) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no header field given, see 'pod help header'.")
		return subcommands.ExitUsageError
	}

	return editDocument(func(d *pod.Document) error {
		return d.MergeHeader(fields)
	})
}
