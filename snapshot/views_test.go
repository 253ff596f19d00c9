package snapshot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arc-workspace/pagekit/snapshot"
)

func TestFilter(t *testing.T) {
	s := three()

	got := snapshot.Filter(s, func(r rec) bool { return r.ID != "b" })
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Error("expected order preserved")
	}

	empty := snapshot.Filter(s, func(rec) bool { return false })
	if empty == nil {
		t.Error("expected empty slice, not nil")
	}
	if len(empty) != 0 {
		t.Errorf("expected no matches, got %d", len(empty))
	}
}

func TestGroupBy(t *testing.T) {
	s := []rec{
		{ID: "a", Label: "x"},
		{ID: "b", Label: "y"},
		{ID: "c", Label: "x"},
		{ID: "d", Label: "stray"},
	}
	domain := []string{"x", "y", "z"}

	groups := snapshot.GroupBy(s, domain, func(r rec) string { return r.Label })

	if len(groups) != 3 {
		t.Fatalf("expected all 3 domain keys, got %d", len(groups))
	}
	if got := groups["x"]; len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("unexpected x group: %v", got)
	}
	if len(groups["y"]) != 1 {
		t.Errorf("expected 1 record under y, got %d", len(groups["y"]))
	}
	if groups["z"] == nil {
		t.Error("expected empty group for unused key, got nil")
	}
	if len(groups["z"]) != 0 {
		t.Errorf("expected empty z group, got %d records", len(groups["z"]))
	}
	if _, ok := groups["stray"]; ok {
		t.Error("out-of-domain key leaked into the result")
	}
}

func TestSortBy(t *testing.T) {
	orig := []rec{
		{ID: "b", Label: "2"},
		{ID: "a", Label: "1"},
		{ID: "c", Label: "1"},
	}
	input := make([]rec, len(orig))
	copy(input, orig)

	got := snapshot.SortBy(input, func(x, y rec) bool { return x.Label < y.Label })

	// equal keys keep their relative order: a before c
	if got[0].ID != "a" || got[1].ID != "c" || got[2].ID != "b" {
		t.Errorf("unexpected order: %v", got)
	}
	if diff := cmp.Diff(orig, input); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestCountAndSum(t *testing.T) {
	s := three()

	if got := snapshot.Count(s, func(r rec) bool { return r.ID != "a" }); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}

	lengths := func(r rec) int { return len(r.Label) }
	if got := snapshot.Sum(s, nil, lengths); got != 16 {
		t.Errorf("Sum(nil pred) = %d, want 16", got)
	}
	if got := snapshot.Sum(s, func(r rec) bool { return r.ID == "a" }, lengths); got != 5 {
		t.Errorf("Sum(filtered) = %d, want 5", got)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{13, 34, 38},
		{1, 2, 50},
		{34, 34, 100},
	}
	for _, tc := range cases {
		if got := snapshot.Percent(tc.part, tc.total); got != tc.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tc.part, tc.total, got, tc.want)
		}
	}
}
