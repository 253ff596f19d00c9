// Package notes implements the notes board template: colored sticky
// notes with a favorite toggle.
package notes

import (
	"strings"
	"time"

	"github.com/arc-workspace/pagekit/snapshot"
	"github.com/arc-workspace/pagekit/types"
)

// Note is one board entry.
type Note struct {
	types.Meta `yaml:",inline"`

	Title    string `json:"title" yaml:"title"`
	Body     string `json:"body,omitempty" yaml:"body,omitempty"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
	Favorite bool   `json:"favorite" yaml:"favorite"`
}

// Fields carries user input for Add.
type Fields struct {
	Title string
	Body  string
	Color string
}

// Add appends a new note. Empty titles are ignored submissions.
func Add(s []Note, f Fields) []Note {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return s
	}
	now := time.Now()
	return snapshot.Append(s, Note{
		Meta:  types.Meta{ID: snapshot.NewID(), CreatedAt: now, UpdatedAt: now},
		Title: title,
		Body:  f.Body,
		Color: f.Color,
	})
}

// Edit replaces the matching note's title and body. An empty new
// title is rejected the same way an empty submission is: the
// snapshot comes back unchanged.
func Edit(s []Note, id, title, body string) []Note {
	title = strings.TrimSpace(title)
	if title == "" {
		return s
	}
	return snapshot.Patch(s, id, func(n Note) Note {
		n.Title = title
		n.Body = body
		n.UpdatedAt = time.Now()
		return n
	})
}

// SetColor changes the matching note's color.
func SetColor(s []Note, id, color string) []Note {
	return snapshot.Patch(s, id, func(n Note) Note {
		n.Color = color
		n.UpdatedAt = time.Now()
		return n
	})
}

// ToggleFavorite flips the matching note's favorite flag. Applying it
// twice restores the original snapshot.
func ToggleFavorite(s []Note, id string) []Note {
	return snapshot.Patch(s, id, func(n Note) Note {
		n.Favorite = !n.Favorite
		return n
	})
}

// Remove drops the matching note; no-op when absent.
func Remove(s []Note, id string) []Note {
	return snapshot.Remove(s, id)
}

// Favorites returns favorited notes in snapshot order.
func Favorites(s []Note) []Note {
	return snapshot.Filter(s, func(n Note) bool { return n.Favorite })
}

// ByColor returns notes of the given color in snapshot order.
func ByColor(s []Note, color string) []Note {
	return snapshot.Filter(s, func(n Note) bool { return n.Color == color })
}
