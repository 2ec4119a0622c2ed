package docs

// this file handles
// documentation topics.

import (
	"bytes"
	"embed"
	"fmt"
	"iter"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic. The special topic
// "*" expands to every topic in alphabetical order.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(AllTopics()...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics
// concatenated together. Each topic may be "*" to expand all of them.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		if topic == "*" {
			for _, t := range AllTopics() {
				content, err := GetTopic(t)
				if err != nil {
					return "", err
				}
				b.WriteString(content)
				b.WriteString("\n")
			}
			continue
		}
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// AllTopics returns every available documentation topic, sorted. The index
// file itself is not a topic.
func AllTopics() []string {
	return slices.Sorted(topicNames())
}

func topicNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		files, _ := docs.ReadDir(".")
		for _, f := range files {
			name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
			if name == "readme" {
				continue
			}
			if !yield(name) {
				return
			}
		}
	}
}
