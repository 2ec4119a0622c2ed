package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders markdown for the terminal. When the renderer
// cannot be built or fails, the raw markdown is returned, which is still
// readable.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// printMarkdown renders markdown to stdout.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
