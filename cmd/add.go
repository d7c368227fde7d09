package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pod"
	"github.com/google/subcommands"
)

type addCmd struct {
	maximo      string
	item        string
	description string
	tpi         string
	material    string
	grade       string
	unit        string
	qty         string
	price       string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append an item row" }
func (*addCmd) Usage() string {
	return `pod add [-maximo <n>] [-item <code>] [-description <text>] [-tpi <n>] [-material <m>] [-grade <g>] [-unit <code>] [-qty <text>] [-price <text>]

  Appends an item row. Quantity and price are free text; the numeric part is
  extracted when totals are computed, so "10 pcs" and "KWD 12.50" are fine.

Usage Examples:
$ pod add -description "gate valve 2in" -unit EA -qty 10 -price 12.50
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.maximo, "maximo", "", "Maximo reference number.")
	f.StringVar(&c.item, "item", "", "Item code.")
	f.StringVar(&c.description, "description", "", "Item description.")
	f.StringVar(&c.tpi, "tpi", "", "Third party inspection reference.")
	f.StringVar(&c.material, "material", "", "Material.")
	f.StringVar(&c.grade, "grade", "", "Grade.")
	f.StringVar(&c.unit, "unit", "", "Unit code (EA, M, KG, ...).")
	f.StringVar(&c.qty, "qty", "", "Quantity, free text with a numeric part.")
	f.StringVar(&c.price, "price", "", "Unit price, free text with a numeric part.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var row int
	status := editDocument(func(d *pod.Document) error {
		// A fresh document starts with one blank row; fill it instead of
		// leaving it dangling above the first real item.
		if !(len(d.Items) == 1 && d.Items[0] == (pod.LineItem{})) {
			d.AddRow()
		}
		row = len(d.Items)
		d.Items[row-1] = pod.LineItem{
			MaximoNo:    c.maximo,
			Item:        c.item,
			Description: c.description,
			TPI:         c.tpi,
			Material:    c.material,
			Grade:       c.grade,
			UnitCode:    c.unit,
			Qty:         c.qty,
			UnitPrice:   c.price,
		}
		return nil
	})
	if status == subcommands.ExitSuccess {
		fmt.Printf("Added item row %d.\n", row)
	}
	return status
}
