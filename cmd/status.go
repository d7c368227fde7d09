package cmd

import (
	"context"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/pod"
	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show or set the workflow status" }
func (*statusCmd) Usage() string {
	return `pod status [<label>]

  With no argument, lists the suggested statuses, marking the current one.
  With a label, sets the status. Any text is accepted; the suggestions carry
  no enforced order. The "Invoiced" and "Completed" labels unlock sales
  recording.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		d := openStore().Load()
		for _, label := range pod.SuggestedStatuses {
			marker := " "
			if label == d.Header.Status {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, label)
		}
		if d.Header.Status != "" && !slices.Contains(pod.SuggestedStatuses, d.Header.Status) {
			fmt.Printf("* %s (custom)\n", d.Header.Status)
		}
		return subcommands.ExitSuccess
	}

	label := strings.Join(f.Args(), " ")
	var unlocked bool
	status := editDocument(func(d *pod.Document) error {
		d.Header.Status = label
		unlocked = d.SalesUnlocked()
		return nil
	})
	if status == subcommands.ExitSuccess && unlocked {
		fmt.Println("Sales recording is now unlocked.")
	}
	return status
}
