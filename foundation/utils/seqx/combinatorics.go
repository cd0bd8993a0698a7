// File: combinatorics.go
// Title: Combinatorial Generation
// Description: Exhaustive generation of every sub-selection (power set) and
//              every ordering (permutations) of a sequence. Output order is
//              fixed by the recursive construction and is part of the
//              contract. Output sizes grow as 2^n and n! respectively; bound
//              the input length before calling (see CombinationCount and
//              PermutationCount).
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation
// - 2025-02-11 v0.1.1: Added CombinationsOfSize and output-size estimation
// - 2025-02-14 v0.1.2: Combinations emits all head-augmented subsets first

package seqx

import (
	"math"
	"math/bits"
)

// Combinations returns the power set of s: 2^len(s) subsets including the
// empty one. Repeated values are not merged, so equal subsets may appear
// more than once; apply RemoveAllDuplicates first to avoid that.
//
// The enumeration is recursive over position. For head s[0], the subsets of
// the tail are emitted twice: first all of them with head appended, then
// all of them unchanged. Elements inside a subset therefore appear in
// reverse source order:
//
//	Combinations([]int{1, 2})    // [[2 1] [1] [2] []]
//	Combinations([]int{1, 2, 3}) // [[3 2 1] [2 1] [3 1] [1] [3 2] [2] [3] []]
func Combinations[S ~[]E, E any](s S) []S {
	if len(s) == 0 {
		return []S{make(S, 0)}
	}

	head := s[0]
	tail := Combinations(s[1:])

	result := make([]S, 0, 2*len(tail))
	for _, subset := range tail {
		withHead := make(S, len(subset), len(subset)+1)
		copy(withHead, subset)
		withHead = append(withHead, head)

		result = append(result, withHead)
	}
	return append(result, tail...)
}

// CombinationsOfSize returns the entries of Combinations(s) that hold
// exactly k elements, in the same relative order.
func CombinationsOfSize[S ~[]E, E any](s S, k int) []S {
	if k < 0 || k > len(s) {
		return []S{}
	}

	all := Combinations(s)
	result := make([]S, 0, len(all))
	for _, subset := range all {
		if len(subset) == k {
			result = append(result, subset)
		}
	}
	return result
}

// Permutations returns all len(s)! orderings of s. Results are grouped by
// the element placed first, taken in source order; within each group the
// remaining elements are permuted the same way. Repeated values produce
// repeated permutations. The empty sequence has exactly one permutation,
// itself.
func Permutations[S ~[]E, E any](s S) []S {
	if len(s) == 0 {
		return []S{make(S, 0)}
	}
	if len(s) == 1 {
		return []S{append(S(nil), s...)}
	}

	var result []S
	for i, item := range s {
		others := make(S, 0, len(s)-1)
		others = append(others, s[:i]...)
		others = append(others, s[i+1:]...)

		for _, rest := range Permutations(others) {
			perm := make(S, 0, len(s))
			perm = append(perm, item)
			perm = append(perm, rest...)
			result = append(result, perm)
		}
	}
	return result
}

// CombinationCount returns 2^n, the number of subsets Combinations yields
// for an input of length n. The boolean is false if n is negative or the
// count does not fit in an int.
func CombinationCount(n int) (int, bool) {
	if n < 0 || n >= bits.UintSize-1 {
		return 0, false
	}
	return 1 << n, true
}

// PermutationCount returns n!, the number of orderings Permutations yields
// for an input of length n. The boolean is false if n is negative or the
// count does not fit in an int.
func PermutationCount(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}

	count := 1
	for i := 2; i <= n; i++ {
		if count > math.MaxInt/i {
			return 0, false
		}
		count *= i
	}
	return count, true
}
