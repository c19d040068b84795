// Package internal holds helpers shared by the assembler predefine
// sources.
package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Sorted iterates over a map in ascending key order.
func Sorted[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return
			}
		}
	}
}

// Concat concatenates define sequences. A key seen earlier in the sequence
// hides any later definition of the same key.
func Concat[K comparable, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seen := map[K]bool{}
		for _, seq := range seqs {
			for key, value := range seq {
				if seen[key] {
					continue
				}
				seen[key] = true
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
