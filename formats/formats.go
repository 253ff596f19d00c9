// Package formats serializes editor documents and page snapshots for
// export: plain text and markdown for the blank note's download/copy
// actions, YAML for whole-page export and import.
package formats

import (
	"fmt"
	"regexp"
	"strings"
)

// DocumentFormat defines how an editor document is serialized and
// deserialized.
type DocumentFormat struct {
	// Name is the format identifier
	Name string

	// Extension is the file extension including the dot
	Extension string

	// Serialize converts title and content into the document string
	Serialize func(title, content string) string

	// Deserialize extracts title and content from a document string.
	// Returns an empty title when none is found, an error when the
	// document is entirely blank.
	Deserialize func(document string) (title, content string, err error)
}

// Filename builds the download filename for a title in this format.
func (f *DocumentFormat) Filename(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = "untitled"
	}
	name = strings.ReplaceAll(name, " ", "-")
	return strings.ToLower(name) + f.Extension
}

// markdownTitleRegex matches a markdown h1 header at the very start
// of a line, no leading space.
var markdownTitleRegex = regexp.MustCompile(`^#\s+(.+?)\s*$`)

// Markdown serializes as "# Title", blank line, content; the title is
// recovered from a leading h1.
var Markdown = &DocumentFormat{
	Name:      "markdown",
	Extension: ".md",
	Serialize: func(title, content string) string {
		if title == "" {
			return content
		}
		return "# " + title + "\n\n" + content
	},
	Deserialize: func(document string) (string, string, error) {
		if strings.TrimSpace(document) == "" {
			return "", "", fmt.Errorf("empty document: both title and content are empty")
		}
		lines := strings.Split(document, "\n")
		if matches := markdownTitleRegex.FindStringSubmatch(lines[0]); len(matches) > 1 {
			title := strings.TrimSpace(matches[1])
			content := strings.TrimLeft(strings.Join(lines[1:], "\n"), "\n")
			return title, content, nil
		}
		return "", document, nil
	},
}

// PlainText serializes as the title on the first line, a blank line,
// then the content.
var PlainText = &DocumentFormat{
	Name:      "plaintext",
	Extension: ".txt",
	Serialize: func(title, content string) string {
		if title == "" {
			return content
		}
		return title + "\n\n" + content
	},
	Deserialize: func(document string) (string, string, error) {
		if strings.TrimSpace(document) == "" {
			return "", "", fmt.Errorf("empty document: both title and content are empty")
		}
		lines := strings.Split(document, "\n")
		if len(lines) >= 2 && strings.TrimSpace(lines[0]) != "" && strings.TrimSpace(lines[1]) == "" {
			title := strings.TrimSpace(lines[0])
			content := strings.TrimLeft(strings.Join(lines[1:], "\n"), "\n")
			return title, content, nil
		}
		return "", document, nil
	},
}

// Get returns a document format by name.
func Get(name string) (*DocumentFormat, error) {
	switch name {
	case Markdown.Name:
		return Markdown, nil
	case PlainText.Name:
		return PlainText, nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}
