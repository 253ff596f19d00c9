// Package sprint implements the sprint board template: tasks moving
// across four columns, story points, and the burn-style progress
// percentage shown in the board header.
package sprint

import (
	"strings"
	"time"

	"github.com/arc-workspace/pagekit/snapshot"
	"github.com/arc-workspace/pagekit/types"
)

// Status values, one per board column. Transitions are free.
const (
	StatusBacklog    = "backlog"
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// StatusField is the template's enumerated status dimension.
var StatusField = types.Enum{
	Name:    "status",
	Values:  []string{StatusBacklog, StatusTodo, StatusInProgress, StatusDone},
	Default: StatusBacklog,
}

// Task is one board card.
type Task struct {
	types.Meta `yaml:",inline"`

	Title    string `json:"title" yaml:"title"`
	Assignee string `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Points   int    `json:"points" yaml:"points"`
	Status   string `json:"status" yaml:"status"`
}

// Fields carries user input for Add.
type Fields struct {
	Title    string
	Assignee string
	Points   int
	Status   string
}

// Add appends a new task. Empty titles are ignored submissions;
// negative point values clamp to zero.
func Add(s []Task, f Fields) []Task {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return s
	}
	now := time.Now()
	return snapshot.Append(s, Task{
		Meta:     types.Meta{ID: snapshot.NewID(), CreatedAt: now, UpdatedAt: now},
		Title:    title,
		Assignee: f.Assignee,
		Points:   types.ClampNonNegative(f.Points),
		Status:   StatusField.Normalize(f.Status),
	})
}

// Move places the matching task in the given column.
func Move(s []Task, id, status string) []Task {
	return snapshot.Patch(s, id, func(t Task) Task {
		t.Status = StatusField.NormalizeKeep(t.Status, status)
		t.UpdatedAt = time.Now()
		return t
	})
}

// SetPoints re-estimates the matching task, clamping at zero.
func SetPoints(s []Task, id string, points int) []Task {
	return snapshot.Patch(s, id, func(t Task) Task {
		t.Points = types.ClampNonNegative(points)
		t.UpdatedAt = time.Now()
		return t
	})
}

// SetAssignee reassigns the matching task.
func SetAssignee(s []Task, id, assignee string) []Task {
	return snapshot.Patch(s, id, func(t Task) Task {
		t.Assignee = assignee
		t.UpdatedAt = time.Now()
		return t
	})
}

// Remove drops the matching task; no-op when absent.
func Remove(s []Task, id string) []Task {
	return snapshot.Remove(s, id)
}

// Board groups tasks into the four status columns. All columns are
// present, empty ones included; tasks keep their relative order.
func Board(s []Task) map[string][]Task {
	return snapshot.GroupBy(s, StatusField.Values, func(t Task) string { return t.Status })
}

// PointsTotal sums story points over the whole board.
func PointsTotal(s []Task) int {
	return snapshot.Sum(s, nil, func(t Task) int { return t.Points })
}

// PointsDone sums story points over completed tasks.
func PointsDone(s []Task) int {
	return snapshot.Sum(s, func(t Task) bool { return t.Status == StatusDone }, func(t Task) int { return t.Points })
}

// Progress is the sprint's completion percentage by points:
// round(done/total*100), 0 when no points are on the board.
func Progress(s []Task) int {
	return snapshot.Percent(PointsDone(s), PointsTotal(s))
}
