// Package docs embeds the user documentation topics served by the
// `pod topic` command.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Get returns the content of a documentation topic. The special name "*"
// expands to every topic concatenated in alphabetical order.
func Get(topic string) (string, error) {
	if topic == "*" {
		var b strings.Builder
		for _, t := range All() {
			content, err := Get(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// All returns the names of every available topic, sorted, with the readme
// index excluded.
func All() []string {
	entries, err := docs.ReadDir(".")
	if err != nil {
		return nil
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics
}
