package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pod/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	sales bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the purchase order" }
func (*showCmd) Usage() string {
	return `pod show [-sales]

  Renders the purchase order: header with the franco deadline banner, the
  items table and the grand total. With -sales, the sold/remaining
  reconciliation is included once the status allows it.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sales, "sales", false, "Include the sold/remaining reconciliation.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	d := store.Load()

	showSales := c.sales
	if showSales && !d.SalesUnlocked() {
		fmt.Fprintf(os.Stderr, "Note: sales are locked until the status is Invoiced or Completed (current: %q).\n", d.Header.Status)
		showSales = false
	}

	md := renderer.DocumentMarkdown(&d, renderer.Options{
		Now:       store.Now(),
		Currency:  config.Currency,
		ShowSales: showSales,
	})
	printMarkdown(md)
	return subcommands.ExitSuccess
}
