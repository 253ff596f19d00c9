package roadmap_test

import (
	"testing"

	"github.com/arc-workspace/pagekit/templates/roadmap"
	"github.com/arc-workspace/pagekit/testutil"
)

var quarters = []string{"Q1 2025", "Q2 2025", "Q3 2025", "Q4 2025"}

func TestAdd(t *testing.T) {
	got := roadmap.Add(nil, roadmap.Fields{Title: "Plugin system", Quarter: "Q3 2025"})
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].Status != roadmap.StatusPlanned {
		t.Errorf("default status = %q, want planned", got[0].Status)
	}

	u := testutil.NewUniverse()
	same := roadmap.Add(u.Roadmap, roadmap.Fields{Title: ""})
	testutil.AssertUnchanged(t, same, u.Roadmap)
}

func TestSetStatus(t *testing.T) {
	u := testutil.NewUniverse()

	got := roadmap.SetStatus(u.Roadmap, "rm-2", roadmap.StatusCompleted)
	if got[1].Status != roadmap.StatusCompleted {
		t.Errorf("Status = %q, want completed", got[1].Status)
	}

	// Completed items can move back.
	got = roadmap.SetStatus(u.Roadmap, "rm-3", roadmap.StatusPlanned)
	if got[2].Status != roadmap.StatusPlanned {
		t.Errorf("Status = %q, want planned", got[2].Status)
	}

	got = roadmap.SetStatus(u.Roadmap, "rm-1", "shipped")
	if got[0].Status != roadmap.StatusInProgress {
		t.Errorf("invalid status should keep current, got %q", got[0].Status)
	}
}

func TestSetQuarter(t *testing.T) {
	u := testutil.NewUniverse()
	got := roadmap.SetQuarter(u.Roadmap, "rm-2", "Q4 2025")
	if got[1].Quarter != "Q4 2025" {
		t.Errorf("Quarter = %q, want Q4 2025", got[1].Quarter)
	}
}

func TestByQuarter(t *testing.T) {
	u := testutil.NewUniverse()

	groups := roadmap.ByQuarter(u.Roadmap, quarters)

	if len(groups) != len(quarters) {
		t.Fatalf("expected %d quarter groups, got %d", len(quarters), len(groups))
	}
	testutil.AssertLen(t, groups["Q1 2025"], 2, "in Q1 2025")
	testutil.AssertLen(t, groups["Q2 2025"], 1, "in Q2 2025")
	testutil.AssertLen(t, groups["Q3 2025"], 0, "in Q3 2025")
	testutil.AssertLen(t, groups["Q4 2025"], 0, "in Q4 2025")

	// Q1's items keep their snapshot order.
	q1 := groups["Q1 2025"]
	if q1[0].ID != "rm-1" || q1[1].ID != "rm-3" {
		t.Errorf("unexpected Q1 order: %s, %s", q1[0].ID, q1[1].ID)
	}

	// The union of the groups accounts for every in-domain item.
	total := 0
	for _, items := range groups {
		total += len(items)
	}
	if total != len(u.Roadmap) {
		t.Errorf("groups hold %d items, snapshot has %d", total, len(u.Roadmap))
	}
}

func TestByQuarterDropsOutOfDomain(t *testing.T) {
	u := testutil.NewUniverse()
	moved := roadmap.SetQuarter(u.Roadmap, "rm-2", "Q1 2030")

	groups := roadmap.ByQuarter(moved, quarters)
	total := 0
	for _, items := range groups {
		total += len(items)
	}
	if total != 2 {
		t.Errorf("expected the out-of-domain item hidden, got %d items", total)
	}
}

func TestProgress(t *testing.T) {
	u := testutil.NewUniverse()

	// 1 of 3 completed.
	if got := roadmap.Progress(u.Roadmap); got != 33 {
		t.Errorf("Progress = %d, want 33", got)
	}
	if got := roadmap.Progress(nil); got != 0 {
		t.Errorf("Progress(empty) = %d, want 0", got)
	}

	done := roadmap.Completed(u.Roadmap)
	testutil.AssertLen(t, done, 1, "completed")
	testutil.AssertHasID(t, done, "rm-3")
}
