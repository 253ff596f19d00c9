// Package editor implements the blank rich-text note template: one
// document with a title and free-form content, formatting inserts
// applied through an explicit surface handle, and export hooks.
//
// Unlike the board templates this page holds a single record, not a
// list; the store snapshot is the Doc itself.
package editor

import (
	"strings"
	"time"

	"github.com/arc-workspace/pagekit/snapshot"
	"github.com/arc-workspace/pagekit/types"
)

// Doc is the page's single document.
type Doc struct {
	types.Meta `yaml:",inline"`

	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// New creates an empty document.
func New(title string) Doc {
	now := time.Now()
	return Doc{
		Meta:  types.Meta{ID: snapshot.NewID(), CreatedAt: now, UpdatedAt: now},
		Title: title,
	}
}

// SetTitle renames the document. Empty titles are ignored
// submissions, same as everywhere else.
func SetTitle(d Doc, title string) Doc {
	title = strings.TrimSpace(title)
	if title == "" {
		return d
	}
	d.Title = title
	d.UpdatedAt = time.Now()
	return d
}

// SetContent replaces the document body.
func SetContent(d Doc, content string) Doc {
	d.Content = content
	d.UpdatedAt = time.Now()
	return d
}

// Surface is an explicit handle on the one editable text surface: a
// selection range in rune offsets. Formatting inserts operate on a
// Surface passed in by the shell, never on a surface discovered by
// global lookup.
type Surface struct {
	Start int
	End   int
}

// clip bounds the surface to the content and orders its ends.
func (sel Surface) clip(length int) Surface {
	if sel.Start > sel.End {
		sel.Start, sel.End = sel.End, sel.Start
	}
	if sel.Start < 0 {
		sel.Start = 0
	}
	if sel.End > length {
		sel.End = length
	}
	if sel.Start > length {
		sel.Start = length
	}
	return sel
}

// Format identifies a formatting insert.
type Format string

// Formatting inserts supported by the editor toolbar.
const (
	Bold    Format = "bold"
	Italic  Format = "italic"
	Heading Format = "heading"
	Quote   Format = "quote"
	Bullet  Format = "bullet"
)

var formatMarks = map[Format]struct{ prefix, suffix string }{
	Bold:    {"**", "**"},
	Italic:  {"*", "*"},
	Heading: {"# ", ""},
	Quote:   {"> ", ""},
	Bullet:  {"- ", ""},
}

// ApplyFormat wraps the selected range of d's content with the
// format's markers and returns the updated document plus the surface
// positioned over the originally selected text. Unknown formats
// leave the document unchanged.
func ApplyFormat(d Doc, sel Surface, f Format) (Doc, Surface) {
	marks, ok := formatMarks[f]
	if !ok {
		return d, sel
	}

	runes := []rune(d.Content)
	sel = sel.clip(len(runes))

	var b strings.Builder
	b.WriteString(string(runes[:sel.Start]))
	b.WriteString(marks.prefix)
	b.WriteString(string(runes[sel.Start:sel.End]))
	b.WriteString(marks.suffix)
	b.WriteString(string(runes[sel.End:]))

	d.Content = b.String()
	d.UpdatedAt = time.Now()

	shift := len([]rune(marks.prefix))
	return d, Surface{Start: sel.Start + shift, End: sel.End + shift}
}

// WordCount reports the number of whitespace-separated words in the
// content, for the editor's footer.
func WordCount(d Doc) int {
	return len(strings.Fields(d.Content))
}
