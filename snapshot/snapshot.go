// Package snapshot provides the generic record-store core shared by
// every page template: an ordered sequence of typed records, pure
// mutation operators that produce new sequences, and derived views
// (filter, group, sort, aggregate) recomputed on demand.
//
// Operators never mutate their input and never reorder unrelated
// records; only Append grows the sequence, always at the end.
// Mutations addressing an id that is not present return the input
// snapshot unchanged. That silent no-op policy is deliberate and
// uniform across templates.
package snapshot

import "github.com/google/uuid"

// Record is any template record with a stable unique identifier.
type Record interface {
	RecordID() string
}

// NewID returns a fresh record identifier, unique for the lifetime of
// a store. IDs are never reused after deletion.
func NewID() string {
	return uuid.New().String()
}

// Append returns a new snapshot with rec added at the end. Prior
// records keep their positions.
func Append[T Record](s []T, rec T) []T {
	out := make([]T, len(s)+1)
	copy(out, s)
	out[len(s)] = rec
	return out
}

// Patch returns a new snapshot where the record matching id has been
// replaced by fn's result. fn receives a copy; its return value takes
// the record's original position. When id is absent the input
// snapshot is returned unchanged.
func Patch[T Record](s []T, id string, fn func(T) T) []T {
	idx := indexOf(s, id)
	if idx < 0 {
		return s
	}
	out := make([]T, len(s))
	copy(out, s)
	out[idx] = fn(s[idx])
	return out
}

// Remove returns a new snapshot with the matching record filtered
// out, or the input unchanged when id is absent. Removal is
// irreversible; no tombstone is kept.
func Remove[T Record](s []T, id string) []T {
	idx := indexOf(s, id)
	if idx < 0 {
		return s
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:idx]...)
	out = append(out, s[idx+1:]...)
	return out
}

// Find returns the record matching id and whether it was present.
func Find[T Record](s []T, id string) (T, bool) {
	idx := indexOf(s, id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return s[idx], true
}

// Contains reports whether a record with the given id is present.
func Contains[T Record](s []T, id string) bool {
	return indexOf(s, id) >= 0
}

func indexOf[T Record](s []T, id string) int {
	for i, rec := range s {
		if rec.RecordID() == id {
			return i
		}
	}
	return -1
}
