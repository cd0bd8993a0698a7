// File: occurrence.go
// Title: Occurrence Counting
// Description: Builds occurrence maps (value -> count) over a sequence with a
//              single left-to-right scan. Shared by the duplicate analysis
//              functions; callers never depend on map iteration order.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package seqx

// Occurrences returns how many times each distinct value occurs in s.
// The counts sum to len(s) and every element of s is a key.
func Occurrences[S ~[]E, E comparable](s S) map[E]int {
	counts := make(map[E]int, len(s))
	for _, item := range s {
		counts[item]++
	}
	return counts
}

// occurrencesBy counts elements by the key derived from each element.
func occurrencesBy[S ~[]E, E any, K comparable](s S, key func(E) K) map[K]int {
	counts := make(map[K]int, len(s))
	for _, item := range s {
		counts[key(item)]++
	}
	return counts
}
