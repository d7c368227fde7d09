package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pod/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion. When invoked by the shell it prints
// the candidates and exits; otherwise it is a no-op.
func completion() {
	itemFlags := map[string]complete.Predictor{
		"maximo":      predict.Something,
		"item":        predict.Something,
		"description": predict.Something,
		"tpi":         predict.Something,
		"material":    predict.Something,
		"grade":       predict.Something,
		"unit":        predict.Set{"EA", "M", "KG", "SET"},
		"qty":         predict.Something,
		"price":       predict.Something,
	}
	editFlags := map[string]complete.Predictor{"row": predict.Something}
	for name, p := range itemFlags {
		editFlags[name] = p
	}

	pod := &complete.Command{
		Sub: map[string]*complete.Command{
			"new": {},
			"show": {Flags: map[string]complete.Predictor{
				"sales": predict.Nothing,
			}},
			"option": {Args: predict.Set{"knpc", "koc"}},
			"header": {Flags: map[string]complete.Predictor{
				"po":          predict.Something,
				"ltsa":        predict.Something,
				"beneficiary": predict.Something,
				"description": predict.Something,
				"issue":       predict.Set{"today"},
				"site":        predict.Set{"today"},
				"franco":      predict.Set{"today"},
			}},
			"status":      {},
			"add":         {Flags: itemFlags},
			"edit":        {Flags: editFlags},
			"rm":          {},
			"clear-items": {},
			"sell":        {Flags: map[string]complete.Predictor{"row": predict.Something}},
			"export": {Flags: map[string]complete.Predictor{
				"o":    predict.Files("*"),
				"xlsx": predict.Nothing,
			}},
			"import":      {Args: predict.Files("*.json")},
			"clear-saved": {},
			"topic":       {Args: predict.Set{"readme", "fileformat", "workflow", "*"}},
		},
	}
	pod.Complete("pod")
}
