package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pod"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the purchase order with an exported file" }
func (*importCmd) Usage() string {
	return `pod import <file>

  Reads an exported (or hand-written) purchase-order JSON file and replaces
  the current document with its normalized content. A file that is not a
  purchase order is rejected and the current document is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file to import.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	d, err := pod.ImportDocument(data)
	if errors.Is(err, pod.ErrInvalidFile) {
		fmt.Fprintln(os.Stderr, "Error: Invalid PO file.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	openStore().Save(d)
	fmt.Printf("Imported %s.\n", path)
	return subcommands.ExitSuccess
}
