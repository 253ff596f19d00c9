package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arc-workspace/pagekit/snapshot"
)

// AssertLen fails the test when the snapshot does not have the
// expected number of records. The context string names the query
// being checked.
func AssertLen[T snapshot.Record](t *testing.T, s []T, want int, context string) {
	t.Helper()
	if len(s) != want {
		t.Errorf("expected %d records %s, got %d", want, context, len(s))
	}
}

// AssertHasID fails when no record with the given id is present.
func AssertHasID[T snapshot.Record](t *testing.T, s []T, id string) {
	t.Helper()
	if !snapshot.Contains(s, id) {
		t.Errorf("expected record %s to be present", id)
	}
}

// AssertNoID fails when a record with the given id is present.
func AssertNoID[T snapshot.Record](t *testing.T, s []T, id string) {
	t.Helper()
	if snapshot.Contains(s, id) {
		t.Errorf("expected record %s to be absent", id)
	}
}

// AssertUnchanged fails unless got is deeply equal to want. Used to
// pin the silent no-op policy: operators given bad input must return
// the snapshot unchanged.
func AssertUnchanged[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot changed (-want +got):\n%s", diff)
	}
}
