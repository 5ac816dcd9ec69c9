package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the keys of a map sorted in increasing order.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place in increasing order.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// Min returns the minimum of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// SplitIndexRange splits [0, n) into k contiguous ranges [start, end) of
// size ceil(n/k). The last non-empty range may be shorter and trailing ranges
// may be empty (start == end), e.g. n=9, k=8 yields five non-empty ranges.
// Returns nil if k < 1.
func SplitIndexRange(n, k int) (ranges [][2]int) {

	if k < 1 {
		return nil
	}

	n = Max(n, 0)

	size := (n + k - 1) / k

	ranges = make([][2]int, k)
	for i := range ranges {
		start := Min(i*size, n)
		ranges[i] = [2]int{start, Min(start+size, n)}
	}

	return
}
