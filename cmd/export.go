package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pod"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
	xlsx   bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the purchase order to a file" }
func (*exportCmd) Usage() string {
	return `pod export [-o <file>] [-xlsx]

  Writes the purchase order to a file: pretty-printed JSON by default, a
  spreadsheet with the computed totals with -xlsx. The default file name is
  derived from the PO number, "purchase-order-draft" without one.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to a name derived from the PO number.")
	f.BoolVar(&c.xlsx, "xlsx", false, "Write a spreadsheet instead of JSON.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d := openStore().Load()

	data, name, err := pod.ExportDocument(d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.xlsx {
		if c.output != "" {
			name = c.output
		} else {
			name = strings.TrimSuffix(name, ".json") + ".xlsx"
		}
		file, err := os.Create(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not create %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		if err := pod.ExportXLSX(&d, file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		if c.output != "" {
			name = c.output
		}
		if err := os.WriteFile(name, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not write %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Exported to %s\n", name)
	return subcommands.ExitSuccess
}
