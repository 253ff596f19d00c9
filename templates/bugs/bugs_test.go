package bugs_test

import (
	"testing"

	"github.com/arc-workspace/pagekit/templates/bugs"
	"github.com/arc-workspace/pagekit/testutil"
)

func TestAdd(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		got := bugs.Add(nil, bugs.Fields{Title: "Crash on save"})
		if len(got) != 1 {
			t.Fatalf("expected 1 bug, got %d", len(got))
		}
		b := got[0]
		if b.ID == "" {
			t.Error("expected generated id")
		}
		if b.Status != bugs.StatusOpen {
			t.Errorf("default status = %q, want open", b.Status)
		}
		if b.Priority != bugs.PriorityMedium {
			t.Errorf("default priority = %q, want medium", b.Priority)
		}
		if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
			t.Error("expected timestamps to be set")
		}
	})

	t.Run("trims the title", func(t *testing.T) {
		got := bugs.Add(nil, bugs.Fields{Title: "  spaced  "})
		if got[0].Title != "spaced" {
			t.Errorf("Title = %q", got[0].Title)
		}
	})

	t.Run("blank title is ignored", func(t *testing.T) {
		u := testutil.NewUniverse()
		got := bugs.Add(u.Bugs, bugs.Fields{Title: "   "})
		testutil.AssertUnchanged(t, got, u.Bugs)
	})

	t.Run("invalid enum values fall back to defaults", func(t *testing.T) {
		got := bugs.Add(nil, bugs.Fields{Title: "x", Status: "bogus", Priority: "urgent"})
		if got[0].Status != bugs.StatusOpen {
			t.Errorf("Status = %q", got[0].Status)
		}
		if got[0].Priority != bugs.PriorityMedium {
			t.Errorf("Priority = %q", got[0].Priority)
		}
	})
}

func TestSetStatus(t *testing.T) {
	u := testutil.NewUniverse()

	t.Run("any status is reachable directly", func(t *testing.T) {
		got := bugs.SetStatus(u.Bugs, "bug-1", bugs.StatusResolved)
		b := got[0]
		if b.Status != bugs.StatusResolved {
			t.Errorf("Status = %q, want resolved", b.Status)
		}
		if !b.UpdatedAt.After(b.CreatedAt) {
			t.Error("expected UpdatedAt bumped")
		}
	})

	t.Run("moving backward is allowed", func(t *testing.T) {
		got := bugs.SetStatus(u.Bugs, "bug-3", bugs.StatusOpen)
		if got[2].Status != bugs.StatusOpen {
			t.Errorf("Status = %q, want open", got[2].Status)
		}
	})

	t.Run("invalid status keeps current", func(t *testing.T) {
		got := bugs.SetStatus(u.Bugs, "bug-1", "closed")
		if got[0].Status != bugs.StatusOpen {
			t.Errorf("Status = %q, want open", got[0].Status)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		got := bugs.SetStatus(u.Bugs, "bug-99", bugs.StatusResolved)
		testutil.AssertUnchanged(t, got, u.Bugs)
	})
}

func TestSetPriority(t *testing.T) {
	u := testutil.NewUniverse()
	got := bugs.SetPriority(u.Bugs, "bug-2", bugs.PriorityHigh)
	if got[1].Priority != bugs.PriorityHigh {
		t.Errorf("Priority = %q, want high", got[1].Priority)
	}
}

func TestSetDescription(t *testing.T) {
	u := testutil.NewUniverse()
	got := bugs.SetDescription(u.Bugs, "bug-1", "repro: click twice")
	if got[0].Description != "repro: click twice" {
		t.Errorf("Description = %q", got[0].Description)
	}
}

func TestRemove(t *testing.T) {
	u := testutil.NewUniverse()

	got := bugs.Remove(u.Bugs, "bug-2")
	testutil.AssertLen(t, got, 2, "after remove")
	testutil.AssertNoID(t, got, "bug-2")

	same := bugs.Remove(u.Bugs, "bug-99")
	testutil.AssertUnchanged(t, same, u.Bugs)
}

func TestViews(t *testing.T) {
	u := testutil.NewUniverse()

	open := bugs.ByStatus(u.Bugs, bugs.StatusOpen)
	testutil.AssertLen(t, open, 1, "with status open")
	testutil.AssertHasID(t, open, "bug-1")

	high := bugs.ByPriority(u.Bugs, bugs.PriorityHigh)
	testutil.AssertLen(t, high, 1, "with priority high")

	counts := bugs.StatusCounts(u.Bugs)
	if len(counts) != 3 {
		t.Fatalf("expected all 3 statuses in counts, got %d", len(counts))
	}
	for _, status := range bugs.StatusField.Values {
		if counts[status] != 1 {
			t.Errorf("counts[%s] = %d, want 1", status, counts[status])
		}
	}

	empty := bugs.StatusCounts(nil)
	for _, status := range bugs.StatusField.Values {
		if n, ok := empty[status]; !ok || n != 0 {
			t.Errorf("empty counts missing zero entry for %s", status)
		}
	}

	if got := bugs.OpenCount(u.Bugs); got != 2 {
		t.Errorf("OpenCount = %d, want 2", got)
	}
}
