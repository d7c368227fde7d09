package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pod"
	"github.com/google/subcommands"
)

type optionCmd struct{}

func (*optionCmd) Name() string     { return "option" }
func (*optionCmd) Synopsis() string { return "list or select the beneficiary option" }
func (*optionCmd) Usage() string {
	return `pod option [<key>]

  With no argument, lists the available beneficiary options, marking the
  selected one. With a key, selects that option and fills in the beneficiary
  name and LTSA number. Editing those header fields afterwards never changes
  the selected option.
`
}

func (c *optionCmd) SetFlags(f *flag.FlagSet) {}

func (c *optionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	presets := loadPresets()

	if f.NArg() == 0 {
		d := openStore().Load()
		for _, name := range presets.Names() {
			preset, _ := presets.Get(name)
			marker := " "
			if name == d.Option {
				marker = "*"
			}
			fmt.Printf("%s %s: %s (%s)\n", marker, name, preset.Beneficiary, preset.LTSANumber)
		}
		return subcommands.ExitSuccess
	}

	key := f.Arg(0)
	return editDocument(func(d *pod.Document) error {
		return d.SetOption(presets, key)
	})
}
