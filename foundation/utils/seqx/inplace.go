// File: inplace.go
// Title: In-Place Duplicate Removal
// Description: Mutating counterparts of the duplicate filters. Each produces
//              the same contents as its pure variant but reuses the backing
//              array of the input, following the slices.Compact convention.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation

package seqx

// RemoveAdjacentDuplicatesInPlace is RemoveAdjacentDuplicates operating on
// the storage of s. It returns the shortened slice; the elements between the
// new length and the original length are zeroed.
func RemoveAdjacentDuplicatesInPlace[S ~[]E, E comparable](s S) S {
	w := 0
	for _, item := range s {
		if w > 0 && s[w-1] == item {
			continue
		}
		s[w] = item
		w++
	}
	clear(s[w:])
	return s[:w]
}

// RemoveAllDuplicatesInPlace is RemoveAllDuplicates operating on the storage
// of s.
func RemoveAllDuplicatesInPlace[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	w := 0
	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		s[w] = item
		w++
	}
	clear(s[w:])
	return s[:w]
}

// RemoveNonUniqueElementsInPlace is RemoveNonUniqueElements operating on the
// storage of s.
func RemoveNonUniqueElementsInPlace[S ~[]E, E comparable](s S) S {
	counts := Occurrences(s)
	w := 0
	for _, item := range s {
		if counts[item] != 1 {
			continue
		}
		s[w] = item
		w++
	}
	clear(s[w:])
	return s[:w]
}
