package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic list from readme.md. Topics are the
// bullet lines of the form "* name: description".
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks two things:
	// 1. Every topic listed in readme.md can be successfully loaded by the fv topic <topic_name> command.
	// 2. Every .md file in the docs directory (excluding readme.md itself) is listed in readme.md.
	topicsInReadme := readmeTopics(t)

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := filepath.Base(file)
		if base == "readme.md" {
			continue
		}
		topic := strings.TrimSuffix(base, ".md")
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestAllTopics(t *testing.T) {
	topics := AllTopics()
	if slices.Contains(topics, "readme") {
		t.Error("AllTopics() lists the index file as a topic")
	}
	if !slices.IsSorted(topics) {
		t.Errorf("AllTopics() = %v, want sorted", topics)
	}
	for _, want := range readmeTopics(t) {
		if !slices.Contains(topics, want) {
			t.Errorf("AllTopics() misses %q", want)
		}
	}
}

func TestGetTopicStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error: %v", err)
	}
	for _, topic := range AllTopics() {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) error: %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("GetTopic(*) misses the content of %q", topic)
		}
	}
}

// TestTopicStructure parses each topic and checks the shape every topic
// must have: a single level-1 heading first, and a language tag on every
// fenced code block so the terminal renderer can highlight it.
func TestTopicStructure(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			first := true
			err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				switch node := n.(type) {
				case *ast.Heading:
					if first && node.Level != 1 {
						t.Errorf("%s: first heading has level %d, want 1", file, node.Level)
					}
					first = false
				case *ast.FencedCodeBlock:
					if node.Info == nil || len(node.Info.Segment.Value(content)) == 0 {
						t.Errorf("%s: fenced code block without a language tag", file)
					}
				}
				return ast.WalkContinue, nil
			})
			if err != nil {
				t.Fatalf("walking %s: %v", file, err)
			}
		})
	}
}
