// Package roadmap implements the roadmap template: items scheduled
// into quarters with a three-state workflow and a completion
// progress view.
package roadmap

import (
	"strings"
	"time"

	"github.com/arc-workspace/pagekit/snapshot"
	"github.com/arc-workspace/pagekit/types"
)

// Status values. Transitions are free: any state is reachable from
// any other directly.
const (
	StatusPlanned    = "planned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// StatusField is the template's enumerated status dimension.
var StatusField = types.Enum{
	Name:    "status",
	Values:  []string{StatusPlanned, StatusInProgress, StatusCompleted},
	Default: StatusPlanned,
}

// Item is one roadmap entry.
type Item struct {
	types.Meta `yaml:",inline"`

	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Quarter     string `json:"quarter" yaml:"quarter"`
	Status      string `json:"status" yaml:"status"`
}

// Fields carries user input for Add.
type Fields struct {
	Title       string
	Description string
	Quarter     string
	Status      string
}

// Add appends a new item. Empty titles are ignored submissions;
// omitted or invalid status falls back to planned.
func Add(s []Item, f Fields) []Item {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return s
	}
	now := time.Now()
	return snapshot.Append(s, Item{
		Meta:        types.Meta{ID: snapshot.NewID(), CreatedAt: now, UpdatedAt: now},
		Title:       title,
		Description: f.Description,
		Quarter:     f.Quarter,
		Status:      StatusField.Normalize(f.Status),
	})
}

// SetStatus moves the matching item to the given status.
func SetStatus(s []Item, id, status string) []Item {
	return snapshot.Patch(s, id, func(it Item) Item {
		it.Status = StatusField.NormalizeKeep(it.Status, status)
		it.UpdatedAt = time.Now()
		return it
	})
}

// SetQuarter reschedules the matching item into another quarter.
func SetQuarter(s []Item, id, quarter string) []Item {
	return snapshot.Patch(s, id, func(it Item) Item {
		it.Quarter = quarter
		it.UpdatedAt = time.Now()
		return it
	})
}

// Remove drops the matching item; no-op when absent.
func Remove(s []Item, id string) []Item {
	return snapshot.Remove(s, id)
}

// ByQuarter groups items over the supplied quarter domain. Every
// quarter in the domain is present in the result, empty groups
// included; items keep their relative order within a quarter. Items
// scheduled outside the domain are not shown.
func ByQuarter(s []Item, quarters []string) map[string][]Item {
	return snapshot.GroupBy(s, quarters, func(it Item) string { return it.Quarter })
}

// Completed returns items with completed status, in snapshot order.
func Completed(s []Item) []Item {
	return snapshot.Filter(s, func(it Item) bool { return it.Status == StatusCompleted })
}

// Progress is the roadmap's completion percentage:
// round(completed/total*100), 0 for an empty roadmap.
func Progress(s []Item) int {
	done := snapshot.Count(s, func(it Item) bool { return it.Status == StatusCompleted })
	return snapshot.Percent(done, len(s))
}
