package common

import (
	"cmp"
	"sort"
)

// SortedKeys returns the keys of a map in ascending order.
// Map iteration order is random; every consumer that renders or generates
// from a map must go through this to stay deterministic.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}
