package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearSavedCmd struct{}

func (*clearSavedCmd) Name() string     { return "clear-saved" }
func (*clearSavedCmd) Synopsis() string { return "delete the locally saved document" }
func (*clearSavedCmd) Usage() string {
	return `pod clear-saved

  Deletes the saved document. The next command starts from a fresh one, or
  from an older saved version if one is still around.
`
}

func (c *clearSavedCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearSavedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := openStore().Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Saved document deleted.")
	return subcommands.ExitSuccess
}
