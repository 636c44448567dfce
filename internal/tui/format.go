// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"github.com/charmbracelet/glamour"
)

// FormatType specifies the type of content to format.
type FormatType string

const (
	// FormatMarkdown formats content as Markdown.
	FormatMarkdown FormatType = "markdown"
	// FormatCode formats content as code with syntax highlighting.
	FormatCode FormatType = "code"
)

// FormatOptions configures terminal formatting.
type FormatOptions struct {
	// Content is the text content to format.
	Content string
	// Type specifies how to format the content.
	Type FormatType
	// Language is the language for code syntax highlighting.
	Language string
	// Width is the word wrap width (0 for no wrap).
	Width int
}

// Format formats content according to the specified type.
func Format(opts FormatOptions) (string, error) {
	switch opts.Type {
	case FormatMarkdown:
		return formatMarkdown(opts)
	case FormatCode:
		return formatCode(opts)
	default:
		return opts.Content, nil
	}
}

// formatMarkdown renders markdown content using glamour.
func formatMarkdown(opts FormatOptions) (string, error) {
	rendererOpts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}

	return renderer.Render(opts.Content)
}

// formatCode wraps content in a fenced code block and renders it as markdown.
func formatCode(opts FormatOptions) (string, error) {
	content := "```" + opts.Language + "\n" + opts.Content + "\n```"
	return formatMarkdown(FormatOptions{
		Content: content,
		Type:    FormatMarkdown,
		Width:   opts.Width,
	})
}
