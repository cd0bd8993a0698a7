// Package seqx implements generic duplicate analysis, combinatorial
// generation and subsequence search over Go slices.
//
// Package: seqx
// Title: Sequence Analysis Utilities for Go
// Description: This package provides pure, generic functions that classify
//              and filter slice elements by occurrence count, enumerate every
//              subset and every ordering of a slice, and test contiguous
//              containment. Functions never mutate their input unless the
//              name ends in InPlace, and never fail.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation
// - 2025-02-11 v0.1.1: Sized combinations, output-size estimation, replication
//
// # Duplicate Analysis
//
// Four notions of "duplicate" are easy to conflate; the functions keep them
// apart. For the input [1 3 3 1 5 7]:
//
//   - RemoveAdjacentDuplicates: [1 3 1 5 7] (only neighbouring repeats go)
//   - RemoveAllDuplicates:      [1 3 5 7]   (first occurrence of each value)
//   - RemoveNonUniqueElements:  [5 7]       (every repeated value goes)
//   - FirstNonRepeatingElement: 5
//
// CountUniques, HasDuplicates and IsAllGrouped answer questions about the
// same occurrence counts (see Occurrences). The *By variants accept a key
// function for element types that are not comparable.
//
// # Combinatorial Generation
//
// Combinations returns the power set and Permutations every ordering. Both
// return the full result eagerly, in a fixed order described on each
// function:
//
//	seqx.Combinations([]int{1, 2})    // [[2 1] [1] [2] []]
//	seqx.Permutations([]int{1, 2, 3}) // [[1 2 3] [1 3 2] [2 1 3] ...]
//
// Input values are not deduplicated. Compose with RemoveAllDuplicates when
// subsets or orderings of distinct values are wanted:
//
//	seqx.Permutations(seqx.RemoveAllDuplicates(values))
//
// Output grows as 2^n and n!. Use CombinationCount and PermutationCount to
// reject inputs that are too long before generating.
//
// # Subsequence Search
//
// ContainsSubarray and IndexOfSubarray compare a window at every offset.
// The empty sequence is contained in everything.
//
// # Thread Safety
//
// All functions are safe for concurrent use as long as the input slice is not
// modified concurrently. The package holds no state.
package seqx
