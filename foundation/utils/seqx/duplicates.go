// File: duplicates.go
// Title: Duplicate Analysis
// Description: Classifies and filters sequence elements by how often they
//              occur. Four distinct policies are provided: adjacent-only
//              removal, first-occurrence keeping, removal of every value
//              that repeats, and uniqueness tests.
// Author: msto63
// Version: v0.1.2
// Created: 2025-02-03
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation
// - 2025-02-10 v0.1.1: Added key-function variants for non-comparable elements
// - 2025-02-14 v0.1.2: Documented nil key results

package seqx

// ===============================
// Counting and Testing
// ===============================

// CountUniques returns the number of distinct values in s.
// It always equals len(RemoveAllDuplicates(s)).
func CountUniques[S ~[]E, E comparable](s S) int {
	return len(Occurrences(s))
}

// HasDuplicates reports whether some value occurs at least twice in s.
func HasDuplicates[S ~[]E, E comparable](s S) bool {
	seen := make(map[E]struct{}, len(s))
	for _, item := range s {
		if _, ok := seen[item]; ok {
			return true
		}
		seen[item] = struct{}{}
	}
	return false
}

// FirstNonRepeatingElement returns the first element, by position, whose
// value occurs exactly once in s. The boolean is false when no such element
// exists, including for an empty s.
func FirstNonRepeatingElement[S ~[]E, E comparable](s S) (E, bool) {
	counts := Occurrences(s)
	for _, item := range s {
		if counts[item] == 1 {
			return item, true
		}
	}

	var zero E
	return zero, false
}

// IsAllGrouped reports whether all occurrences of every value in s are
// contiguous. [1 1 2 2] is grouped, [2 1 1 2] is not.
func IsAllGrouped[S ~[]E, E comparable](s S) bool {
	// A value that shows up in two separate runs survives adjacent
	// deduplication twice.
	runs := Occurrences(RemoveAdjacentDuplicates(s))
	for _, item := range s {
		if runs[item] > 1 {
			return false
		}
	}
	return true
}

// ===============================
// Filtering
// ===============================

// RemoveAdjacentDuplicates returns a copy of s in which every element equal
// to the last kept element is dropped. Non-adjacent repeats survive:
// [1 3 3 1 5 7] becomes [1 3 1 5 7].
func RemoveAdjacentDuplicates[S ~[]E, E comparable](s S) S {
	result := make(S, 0, len(s))
	for _, item := range s {
		if len(result) > 0 && result[len(result)-1] == item {
			continue
		}
		result = append(result, item)
	}
	return result
}

// RemoveAllDuplicates returns the first occurrence of every distinct value
// in s, in original order: [1 3 3 1 5 7] becomes [1 3 5 7].
func RemoveAllDuplicates[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	result := make(S, 0, len(s))
	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// RemoveNonUniqueElements keeps only the elements whose value occurs exactly
// once in s. Every instance of a repeated value is dropped, including its
// first: [1 3 3 1 5 7] becomes [5 7].
func RemoveNonUniqueElements[S ~[]E, E comparable](s S) S {
	counts := Occurrences(s)
	result := make(S, 0, len(s))
	for _, item := range s {
		if counts[item] == 1 {
			result = append(result, item)
		}
	}
	return result
}

// ===============================
// Key-Function Variants
// ===============================

// CountUniquesBy counts the distinct keys produced by key over s. A nil key
// yields no keys at all, so the count is 0 even for non-empty s.
func CountUniquesBy[S ~[]E, E any, K comparable](s S, key func(E) K) int {
	if key == nil {
		return 0
	}
	return len(occurrencesBy(s, key))
}

// RemoveAllDuplicatesBy keeps the first element for every distinct key.
// A nil key keeps nothing.
func RemoveAllDuplicatesBy[S ~[]E, E any, K comparable](s S, key func(E) K) S {
	result := make(S, 0, len(s))
	if key == nil {
		return result
	}

	seen := make(map[K]struct{}, len(s))
	for _, item := range s {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, item)
	}
	return result
}

// HasDuplicatesBy reports whether two elements of s share a key. A nil key
// reports false.
func HasDuplicatesBy[S ~[]E, E any, K comparable](s S, key func(E) K) bool {
	if key == nil {
		return false
	}
	return len(occurrencesBy(s, key)) < len(s)
}
