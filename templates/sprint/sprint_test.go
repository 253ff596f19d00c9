package sprint_test

import (
	"testing"

	"github.com/arc-workspace/pagekit/templates/sprint"
	"github.com/arc-workspace/pagekit/testutil"
)

func TestAdd(t *testing.T) {
	got := sprint.Add(nil, sprint.Fields{Title: "Spike: queue backend", Points: 3})
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	if got[0].Status != sprint.StatusBacklog {
		t.Errorf("default status = %q, want backlog", got[0].Status)
	}

	got = sprint.Add(nil, sprint.Fields{Title: "x", Points: -5})
	if got[0].Points != 0 {
		t.Errorf("negative points should clamp to 0, got %d", got[0].Points)
	}

	u := testutil.NewUniverse()
	same := sprint.Add(u.Sprint, sprint.Fields{Title: "  "})
	testutil.AssertUnchanged(t, same, u.Sprint)
}

func TestMove(t *testing.T) {
	u := testutil.NewUniverse()

	// Backlog straight to done is allowed.
	got := sprint.Move(u.Sprint, "task-5", sprint.StatusDone)
	if got[4].Status != sprint.StatusDone {
		t.Errorf("Status = %q, want done", got[4].Status)
	}

	got = sprint.Move(u.Sprint, "task-1", "archived")
	if got[0].Status != sprint.StatusDone {
		t.Errorf("invalid column should keep current, got %q", got[0].Status)
	}

	same := sprint.Move(u.Sprint, "task-99", sprint.StatusDone)
	testutil.AssertUnchanged(t, same, u.Sprint)
}

func TestSetPoints(t *testing.T) {
	u := testutil.NewUniverse()

	got := sprint.SetPoints(u.Sprint, "task-4", 8)
	if got[3].Points != 8 {
		t.Errorf("Points = %d, want 8", got[3].Points)
	}

	got = sprint.SetPoints(u.Sprint, "task-4", -2)
	if got[3].Points != 0 {
		t.Errorf("negative points should clamp to 0, got %d", got[3].Points)
	}
}

func TestSetAssignee(t *testing.T) {
	u := testutil.NewUniverse()
	got := sprint.SetAssignee(u.Sprint, "task-3", "dana")
	if got[2].Assignee != "dana" {
		t.Errorf("Assignee = %q, want dana", got[2].Assignee)
	}
}

func TestBoard(t *testing.T) {
	u := testutil.NewUniverse()

	board := sprint.Board(u.Sprint)

	if len(board) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(board))
	}
	testutil.AssertLen(t, board[sprint.StatusDone], 2, "in done")
	testutil.AssertLen(t, board[sprint.StatusInProgress], 1, "in in_progress")
	testutil.AssertLen(t, board[sprint.StatusTodo], 1, "in todo")
	testutil.AssertLen(t, board[sprint.StatusBacklog], 1, "in backlog")

	done := board[sprint.StatusDone]
	if done[0].ID != "task-1" || done[1].ID != "task-2" {
		t.Errorf("unexpected done column order: %s, %s", done[0].ID, done[1].ID)
	}

	empty := sprint.Board(nil)
	for _, status := range sprint.StatusField.Values {
		if col, ok := empty[status]; !ok || col == nil {
			t.Errorf("empty board missing column %s", status)
		}
	}
}

func TestPoints(t *testing.T) {
	u := testutil.NewUniverse()

	if got := sprint.PointsTotal(u.Sprint); got != 34 {
		t.Errorf("PointsTotal = %d, want 34", got)
	}
	if got := sprint.PointsDone(u.Sprint); got != 13 {
		t.Errorf("PointsDone = %d, want 13", got)
	}
	// round(13/34*100) = 38
	if got := sprint.Progress(u.Sprint); got != 38 {
		t.Errorf("Progress = %d, want 38", got)
	}
	if got := sprint.Progress(nil); got != 0 {
		t.Errorf("Progress(empty) = %d, want 0", got)
	}
}
