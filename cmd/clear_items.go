package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pod"
	"github.com/google/subcommands"
)

type clearItemsCmd struct{}

func (*clearItemsCmd) Name() string     { return "clear-items" }
func (*clearItemsCmd) Synopsis() string { return "reset the items table" }
func (*clearItemsCmd) Usage() string {
	return `pod clear-items

  Replaces the whole items table with a single blank row. Recorded sales are
  dropped with their rows. The header is untouched.
`
}

func (c *clearItemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearItemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status := editDocument(func(d *pod.Document) error {
		d.ClearItems()
		return nil
	})
	if status == subcommands.ExitSuccess {
		fmt.Println("Items cleared.")
	}
	return status
}
