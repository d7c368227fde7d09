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

type sellCmd struct {
	row int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sold quantity for an item row" }
func (*sellCmd) Usage() string {
	return `pod sell -row <n> <quantity>

  Records the sold quantity for an item row, 1-based. The value is free text;
  its numeric part is clamped between zero and the row's quantity at the
  moment it is typed. Sales are locked until the status is Invoiced or
  Completed.

Usage Examples:
$ pod sell -row 1 4
$ pod sell -row 2 "3 pcs"
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "row", 0, "Item row, 1-based.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row < 1 {
		fmt.Fprintln(os.Stderr, "Error: -row is required (1-based).")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one quantity.")
		return subcommands.ExitUsageError
	}
	typed := f.Arg(0)

	var sold, remaining float64
	status := editDocument(func(d *pod.Document) error {
		if !d.SalesUnlocked() {
			return fmt.Errorf("sales are locked until the status is Invoiced or Completed (current: %q)", d.Header.Status)
		}
		if err := d.SetSold(c.row-1, typed); err != nil {
			return err
		}
		sold = pod.Sold(d, c.row-1)
		remaining = pod.Remaining(d, c.row-1)
		return nil
	})
	if status == subcommands.ExitSuccess {
		fmt.Printf("Row %d: sold %s, remaining %s.\n", c.row,
			strconv.FormatFloat(sold, 'f', -1, 64),
			strconv.FormatFloat(remaining, 'f', -1, 64))
	}
	return status
}
