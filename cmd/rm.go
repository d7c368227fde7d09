package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/pod"
	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item row" }
func (*rmCmd) Usage() string {
	return `pod rm <row>

  Removes an item row, 1-based, and its recorded sale. The last remaining row
  cannot be removed; use 'pod clear-items' to reset the table instead.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one row number.")
		return subcommands.ExitUsageError
	}
	row, err := strconv.Atoi(f.Arg(0))
	if err != nil || row < 1 {
		fmt.Fprintf(os.Stderr, "Error: invalid row number %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	return editDocument(func(d *pod.Document) error {
		return d.RemoveRow(row - 1)
	})
}
