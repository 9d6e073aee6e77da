package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// IterSortedSeq2 iterates a map in ascending key order.
func IterSortedSeq2[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return // Stop if the consumer stops
			}
		}
	}
}

// IterMap2 applies fn to every value of a dual-return iterator.
func IterMap2[K any, V any, W any](seq iter.Seq2[K, V], fn func(V) W) iter.Seq2[K, W] {
	return func(yield func(K, W) bool) {
		for key, val := range seq {
			if !yield(key, fn(val)) {
				return
			}
		}
	}
}
