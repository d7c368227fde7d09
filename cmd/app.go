// Package cmd implements the CLI application to edit a purchase order.
package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pod"
	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"
)

// Register the subcommands.
// A main package will call Register() to install them, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "document")
	c.Register(&showCmd{}, "document")
	c.Register(&optionCmd{}, "document")
	c.Register(&headerCmd{}, "document")
	c.Register(&statusCmd{}, "document")

	c.Register(&addCmd{}, "items")
	c.Register(&editCmd{}, "items")
	c.Register(&rmCmd{}, "items")
	c.Register(&clearItemsCmd{}, "items")

	c.Register(&sellCmd{}, "sales")

	c.Register(&exportCmd{}, "files")
	c.Register(&importCmd{}, "files")
	c.Register(&clearSavedCmd{}, "files")

	c.Register(&topicCmd{}, "help")
}

// appConfig is the environment-driven configuration, prefixed POD_.
// As a CLI application it has a very short lived lifecycle, so it is ok to
// keep it in a global variable.
type appConfig struct {
	Home       string `default:".pod"` // POD_HOME: document storage directory
	Currency   string `default:"KWD"`  // POD_CURRENCY: ISO code for money columns
	Presets    string // POD_PRESETS: optional YAML file with extra beneficiary options
	TestingNow string `envconfig:"TESTING_NOW"` // POD_TESTING_NOW: freeze the clock, "2006-01-02 15:04:05"
}

var config = loadConfig()

func loadConfig() appConfig {
	var c appConfig
	if err := envconfig.Process("pod", &c); err != nil {
		log.Printf("warning, invalid environment configuration: %v", err)
	}
	return c
}

// clock returns the application clock. POD_TESTING_NOW freezes it so deadline
// banners are reproducible.
func clock() pod.Clock {
	if config.TestingNow == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", config.TestingNow, time.Local)
	if err != nil {
		log.Printf("warning, ignoring invalid POD_TESTING_NOW %q: %v", config.TestingNow, err)
		return nil
	}
	return func() time.Time { return t }
}

// openStore opens the document store in the configured home directory.
func openStore() *pod.Store {
	return pod.NewStore(pod.NewDirStorage(config.Home), clock())
}

// loadPresets returns the built-in beneficiary presets merged with the
// optional POD_PRESETS file.
func loadPresets() pod.Presets {
	p := pod.DefaultPresets()
	if config.Presets == "" {
		return p
	}
	if err := p.LoadFile(config.Presets); err != nil {
		log.Printf("warning, %v", err)
	}
	return p
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the fancy renderer cannot run.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// editDocument loads the current document, applies fn and saves the result.
// A failed fn leaves the stored document untouched.
func editDocument(fn func(d *pod.Document) error) subcommands.ExitStatus {
	store := openStore()
	d := store.Load()
	if err := fn(&d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store.Save(d)
	return subcommands.ExitSuccess
}
