package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pod"
	"github.com/google/subcommands"
)

type newCmd struct{}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "start a fresh purchase order" }
func (*newCmd) Usage() string {
	return `pod new

  Replaces the current document with a fresh one: the default beneficiary,
  one blank item row and no recorded sales.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	store.Save(pod.DefaultDocument())
	fmt.Println("Started a fresh purchase order.")
	return subcommands.ExitSuccess
}
