package snapshot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arc-workspace/pagekit/snapshot"
)

type rec struct {
	ID    string
	Label string
}

func (r rec) RecordID() string { return r.ID }

func three() []rec {
	return []rec{
		{ID: "a", Label: "first"},
		{ID: "b", Label: "second"},
		{ID: "c", Label: "third"},
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := snapshot.NewID()
		if id == "" {
			t.Fatal("expected non-empty ID")
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestAppend(t *testing.T) {
	orig := three()
	got := snapshot.Append(orig, rec{ID: "d", Label: "fourth"})

	if len(got) != 4 {
		t.Fatalf("expected 4 records, got %d", len(got))
	}
	if got[3].ID != "d" {
		t.Errorf("expected new record at the end, got %s", got[3].ID)
	}
	if diff := cmp.Diff(three(), got[:3]); diff != "" {
		t.Errorf("prior records changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(three(), orig); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestPatch(t *testing.T) {
	t.Run("updates matching record in place", func(t *testing.T) {
		orig := three()
		got := snapshot.Patch(orig, "b", func(r rec) rec {
			r.Label = "patched"
			return r
		})

		if got[1].Label != "patched" {
			t.Errorf("expected patched label, got %q", got[1].Label)
		}
		if got[1].ID != "b" {
			t.Errorf("expected id preserved, got %q", got[1].ID)
		}
		if got[0].Label != "first" || got[2].Label != "third" {
			t.Error("expected other records untouched")
		}
		if diff := cmp.Diff(three(), orig); diff != "" {
			t.Errorf("input mutated (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		orig := three()
		got := snapshot.Patch(orig, "zzz", func(r rec) rec {
			r.Label = "never"
			return r
		})
		if diff := cmp.Diff(orig, got); diff != "" {
			t.Errorf("expected snapshot unchanged (-want +got):\n%s", diff)
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("drops matching record", func(t *testing.T) {
		got := snapshot.Remove(three(), "b")
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
		if snapshot.Contains(got, "b") {
			t.Error("expected b to be removed")
		}
		if got[0].ID != "a" || got[1].ID != "c" {
			t.Error("expected remaining records in original order")
		}
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		orig := three()
		got := snapshot.Remove(orig, "zzz")
		if diff := cmp.Diff(orig, got); diff != "" {
			t.Errorf("expected snapshot unchanged (-want +got):\n%s", diff)
		}
	})
}

func TestFind(t *testing.T) {
	s := three()

	got, ok := snapshot.Find(s, "c")
	if !ok {
		t.Fatal("expected to find c")
	}
	if got.Label != "third" {
		t.Errorf("expected third, got %q", got.Label)
	}

	if _, ok := snapshot.Find(s, "zzz"); ok {
		t.Error("expected miss for unknown id")
	}
}
