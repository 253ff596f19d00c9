// Package study implements the study tracker template: topics with a
// binary completed toggle and an accumulated study-time counter.
package study

import (
	"strings"
	"time"

	"github.com/arc-workspace/pagekit/snapshot"
	"github.com/arc-workspace/pagekit/types"
)

// Topic is one tracked study item.
type Topic struct {
	types.Meta `yaml:",inline"`

	Title     string `json:"title" yaml:"title"`
	Subject   string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Completed bool   `json:"completed" yaml:"completed"`
	Minutes   int    `json:"minutes" yaml:"minutes"`
}

// Fields carries user input for Add.
type Fields struct {
	Title   string
	Subject string
}

// Add appends a new topic. Empty titles are ignored submissions. New
// topics start incomplete with no time logged.
func Add(s []Topic, f Fields) []Topic {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return s
	}
	now := time.Now()
	return snapshot.Append(s, Topic{
		Meta:    types.Meta{ID: snapshot.NewID(), CreatedAt: now, UpdatedAt: now},
		Title:   title,
		Subject: f.Subject,
	})
}

// ToggleCompleted flips the matching topic between incomplete and
// completed. Applying it twice restores the original snapshot.
func ToggleCompleted(s []Topic, id string) []Topic {
	return snapshot.Patch(s, id, func(t Topic) Topic {
		t.Completed = !t.Completed
		return t
	})
}

// LogMinutes adds delta to the matching topic's accumulated study
// time. Negative deltas subtract; the counter clamps at zero rather
// than going negative.
func LogMinutes(s []Topic, id string, delta int) []Topic {
	return snapshot.Patch(s, id, func(t Topic) Topic {
		t.Minutes = types.ClampNonNegative(t.Minutes + delta)
		t.UpdatedAt = time.Now()
		return t
	})
}

// Remove drops the matching topic; no-op when absent.
func Remove(s []Topic, id string) []Topic {
	return snapshot.Remove(s, id)
}

// BySubject groups topics over the supplied subject domain. Every
// subject is present in the result, empty groups included.
func BySubject(s []Topic, subjects []string) map[string][]Topic {
	return snapshot.GroupBy(s, subjects, func(t Topic) string { return t.Subject })
}

// TotalMinutes sums accumulated study time across all topics.
func TotalMinutes(s []Topic) int {
	return snapshot.Sum(s, nil, func(t Topic) int { return t.Minutes })
}

// Progress is the tracker's completion percentage:
// round(completed/total*100), 0 for an empty tracker.
func Progress(s []Topic) int {
	done := snapshot.Count(s, func(t Topic) bool { return t.Completed })
	return snapshot.Percent(done, len(s))
}
