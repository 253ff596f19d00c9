// Package testutil provides a deterministic fixture universe and
// assertion helpers shared by the template and store tests.
package testutil

import (
	"fmt"
	"time"

	"github.com/arc-workspace/pagekit/templates/bugs"
	"github.com/arc-workspace/pagekit/templates/calendar"
	"github.com/arc-workspace/pagekit/templates/notes"
	"github.com/arc-workspace/pagekit/templates/roadmap"
	"github.com/arc-workspace/pagekit/templates/sprint"
	"github.com/arc-workspace/pagekit/templates/study"
	"github.com/arc-workspace/pagekit/types"
)

// Universe holds pre-populated snapshots for every template with
// stable, readable ids so tests can reference records directly.
type Universe struct {
	Bugs    []bugs.Bug
	Events  []calendar.Event
	Notes   []notes.Note
	Roadmap []roadmap.Item
	Sprint  []sprint.Task
	Topics  []study.Topic
}

// baseTime anchors all fixture timestamps.
var baseTime = time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC)

func meta(prefix string, n int) types.Meta {
	ts := baseTime.Add(time.Duration(n) * time.Minute)
	return types.Meta{
		ID:        fmt.Sprintf("%s-%d", prefix, n),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// NewUniverse builds the fixture universe. Records appear in
// insertion order, ids follow the "<template>-<n>" pattern.
func NewUniverse() *Universe {
	return &Universe{
		Bugs: []bugs.Bug{
			{Meta: meta("bug", 1), Title: "Login button unresponsive", Status: bugs.StatusOpen, Priority: bugs.PriorityHigh},
			{Meta: meta("bug", 2), Title: "Avatar upload fails on large files", Status: bugs.StatusInProgress, Priority: bugs.PriorityMedium},
			{Meta: meta("bug", 3), Title: "Typo in settings page", Status: bugs.StatusResolved, Priority: bugs.PriorityLow},
		},
		Events: []calendar.Event{
			{Meta: meta("evt", 1), Title: "Sprint planning", Date: "2025-01-20", Time: "10:00"},
			{Meta: meta("evt", 2), Title: "Design review", Date: "2025-01-20", Time: "14:00"},
			{Meta: meta("evt", 3), Title: "Retro", Date: "2025-01-31", Time: "16:00"},
		},
		Notes: []notes.Note{
			{Meta: meta("note", 1), Title: "Ideas", Body: "Collect onboarding ideas", Color: "yellow", Favorite: true},
			{Meta: meta("note", 2), Title: "Groceries", Body: "Milk, eggs", Color: "blue"},
		},
		Roadmap: []roadmap.Item{
			{Meta: meta("rm", 1), Title: "Public API", Quarter: "Q1 2025", Status: roadmap.StatusInProgress},
			{Meta: meta("rm", 2), Title: "Mobile app", Quarter: "Q2 2025", Status: roadmap.StatusPlanned},
			{Meta: meta("rm", 3), Title: "SSO", Quarter: "Q1 2025", Status: roadmap.StatusCompleted},
		},
		Sprint: []sprint.Task{
			{Meta: meta("task", 1), Title: "Wire auth flow", Points: 5, Status: sprint.StatusDone},
			{Meta: meta("task", 2), Title: "Settings screen", Points: 8, Status: sprint.StatusDone},
			{Meta: meta("task", 3), Title: "Billing webhooks", Points: 13, Status: sprint.StatusInProgress},
			{Meta: meta("task", 4), Title: "Error budget alerts", Points: 5, Status: sprint.StatusTodo},
			{Meta: meta("task", 5), Title: "Docs pass", Points: 3, Status: sprint.StatusBacklog},
		},
		Topics: []study.Topic{
			{Meta: meta("topic", 1), Title: "Goroutines", Subject: "Go", Completed: true, Minutes: 90},
			{Meta: meta("topic", 2), Title: "Generics", Subject: "Go", Minutes: 45},
			{Meta: meta("topic", 3), Title: "Normalization", Subject: "Databases"},
		},
	}
}
