package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pod"
	"github.com/google/subcommands"
)

type editCmd struct {
	row int
	addCmd
}

// itemFlagKeys maps flag names to the document's item field keys.
var itemFlagKeys = map[string]string{
	"maximo":      "maximoNo",
	"item":        "item",
	"description": "description",
	"tpi":         "tpi",
	"material":    "material",
	"grade":       "grade",
	"unit":        "unitCode",
	"qty":         "qty",
	"price":       "unitPrice",
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit fields of an item row" }
func (*editCmd) Usage() string {
	return `pod edit -row <n> [item flags...]

  Replaces the given fields of one item row, 1-based. Only the flags you pass
  change; the rest of the row, and every other row, is untouched. The item
  flags are the same as 'pod add'.

Usage Examples:
$ pod edit -row 2 -qty "15 pcs"
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "row", 0, "Item row to edit, 1-based.")
	c.addCmd.SetFlags(f)
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row < 1 {
		fmt.Fprintln(os.Stderr, "Error: -row is required (1-based).")
		return subcommands.ExitUsageError
	}
	fields := make(map[string]string)
	f.Visit(func(fl *flag.Flag) {
		if key, ok := itemFlagKeys[fl.Name]; ok {
			fields[key] = fl.Value.String()
		}
	})
	if len(fields) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no item field given, see 'pod help edit'.")
		return subcommands.ExitUsageError
	}

	return editDocument(func(d *pod.Document) error {
		for key, value := range fields {
			if err := d.UpdateItem(c.row-1, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}
