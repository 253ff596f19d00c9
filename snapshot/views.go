package snapshot

import (
	"math"
	"sort"
)

// Filter returns the subsequence of records satisfying pred,
// preserving the snapshot's order.
func Filter[T Record](s []T, pred func(T) bool) []T {
	out := []T{}
	for _, rec := range s {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// GroupBy buckets records by keyFn over a supplied key domain. Every
// key in the domain appears in the result, empty groups included, and
// records keep their relative order within each group. Records whose
// key falls outside the domain are dropped.
func GroupBy[T Record, K comparable](s []T, keys []K, keyFn func(T) K) map[K][]T {
	groups := make(map[K][]T, len(keys))
	for _, k := range keys {
		groups[k] = []T{}
	}
	for _, rec := range s {
		k := keyFn(rec)
		if _, ok := groups[k]; !ok {
			continue
		}
		groups[k] = append(groups[k], rec)
	}
	return groups
}

// SortBy returns a new snapshot ordered by less. The sort is stable
// and the input is left untouched.
func SortBy[T Record](s []T, less func(a, b T) bool) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Count returns the number of records satisfying pred.
func Count[T Record](s []T, pred func(T) bool) int {
	n := 0
	for _, rec := range s {
		if pred(rec) {
			n++
		}
	}
	return n
}

// Sum totals field over the records satisfying pred. A nil pred
// matches every record.
func Sum[T Record](s []T, pred func(T) bool, field func(T) int) int {
	total := 0
	for _, rec := range s {
		if pred == nil || pred(rec) {
			total += field(rec)
		}
	}
	return total
}

// Percent computes round(part/total*100), returning 0 when total is
// zero. Used for the progress chips every board template shows.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
