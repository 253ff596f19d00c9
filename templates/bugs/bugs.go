// Package bugs implements the bug tracker template: a snapshot of
// bug records with status and priority dimensions, free transitions
// between statuses, and count views for the tracker header.
package bugs

import (
	"strings"
	"time"

	"github.com/arc-workspace/pagekit/snapshot"
	"github.com/arc-workspace/pagekit/types"
)

// Status values, in workflow order. Any status is reachable from any
// other directly; the user picks the target explicitly.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// Priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// StatusField and PriorityField are the template's enumerated
// dimensions.
var (
	StatusField = types.Enum{
		Name:    "status",
		Values:  []string{StatusOpen, StatusInProgress, StatusResolved},
		Default: StatusOpen,
	}
	PriorityField = types.Enum{
		Name:    "priority",
		Values:  []string{PriorityLow, PriorityMedium, PriorityHigh},
		Default: PriorityMedium,
	}
)

// Bug is one tracked issue.
type Bug struct {
	types.Meta `yaml:",inline"`

	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Status      string `json:"status" yaml:"status"`
	Priority    string `json:"priority" yaml:"priority"`
}

// Fields carries user input for Add.
type Fields struct {
	Title       string
	Description string
	Status      string
	Priority    string
}

// Add appends a new bug. An empty or whitespace-only title is an
// ignored submission: the input snapshot is returned unchanged.
// Omitted or invalid status/priority fall back to their defaults.
func Add(s []Bug, f Fields) []Bug {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return s
	}
	now := time.Now()
	return snapshot.Append(s, Bug{
		Meta:        types.Meta{ID: snapshot.NewID(), CreatedAt: now, UpdatedAt: now},
		Title:       title,
		Description: f.Description,
		Status:      StatusField.Normalize(f.Status),
		Priority:    PriorityField.Normalize(f.Priority),
	})
}

// SetStatus moves the matching bug to the given status. Unknown ids
// and out-of-set statuses leave the snapshot unchanged.
func SetStatus(s []Bug, id, status string) []Bug {
	return snapshot.Patch(s, id, func(b Bug) Bug {
		b.Status = StatusField.NormalizeKeep(b.Status, status)
		b.UpdatedAt = time.Now()
		return b
	})
}

// SetPriority changes the matching bug's priority.
func SetPriority(s []Bug, id, priority string) []Bug {
	return snapshot.Patch(s, id, func(b Bug) Bug {
		b.Priority = PriorityField.NormalizeKeep(b.Priority, priority)
		b.UpdatedAt = time.Now()
		return b
	})
}

// SetDescription replaces the matching bug's description.
func SetDescription(s []Bug, id, description string) []Bug {
	return snapshot.Patch(s, id, func(b Bug) Bug {
		b.Description = description
		b.UpdatedAt = time.Now()
		return b
	})
}

// Remove drops the matching bug; no-op when absent.
func Remove(s []Bug, id string) []Bug {
	return snapshot.Remove(s, id)
}

// ByStatus returns bugs with the given status, in snapshot order.
func ByStatus(s []Bug, status string) []Bug {
	return snapshot.Filter(s, func(b Bug) bool { return b.Status == status })
}

// ByPriority returns bugs with the given priority, in snapshot order.
func ByPriority(s []Bug, priority string) []Bug {
	return snapshot.Filter(s, func(b Bug) bool { return b.Priority == priority })
}

// StatusCounts tallies bugs per status for the tracker header chips.
// Every status appears in the result, zero counts included.
func StatusCounts(s []Bug) map[string]int {
	counts := make(map[string]int, len(StatusField.Values))
	for _, status := range StatusField.Values {
		counts[status] = 0
	}
	for _, b := range s {
		counts[b.Status]++
	}
	return counts
}

// OpenCount returns the number of bugs not yet resolved.
func OpenCount(s []Bug) int {
	return snapshot.Count(s, func(b Bug) bool { return b.Status != StatusResolved })
}
