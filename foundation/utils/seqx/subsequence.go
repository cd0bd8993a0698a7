// File: subsequence.go
// Title: Subsequence Search
// Description: Contiguous-run containment tests. A straightforward window
//              comparison at every offset, O(n*m); there is no KMP or
//              automaton behind it, so prefer a dedicated search for large
//              inputs.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-04
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation
// - 2025-02-14 v0.1.1: Empty sub matches even without an eq function

package seqx

// ContainsSubarray reports whether sub occurs in s as a contiguous run.
// An empty sub is contained in every sequence.
func ContainsSubarray[S ~[]E, E comparable](s, sub S) bool {
	return IndexOfSubarray(s, sub) >= 0
}

// IndexOfSubarray returns the first offset at which sub occurs in s as a
// contiguous run, or -1.
func IndexOfSubarray[S ~[]E, E comparable](s, sub S) int {
	return IndexOfSubarrayFunc(s, sub, func(a, b E) bool { return a == b })
}

// ContainsSubarrayFunc is ContainsSubarray using eq to compare elements.
func ContainsSubarrayFunc[S ~[]E, E any](s, sub S, eq func(a, b E) bool) bool {
	return IndexOfSubarrayFunc(s, sub, eq) >= 0
}

// IndexOfSubarrayFunc is IndexOfSubarray using eq to compare elements.
// An empty sub is found at 0 whatever eq is; otherwise a nil eq never
// matches.
func IndexOfSubarrayFunc[S ~[]E, E any](s, sub S, eq func(a, b E) bool) int {
	if len(sub) == 0 {
		return 0
	}
	if len(sub) > len(s) || eq == nil {
		return -1
	}

	for i := 0; i <= len(s)-len(sub); i++ {
		if windowEqual(s[i:i+len(sub)], sub, eq) {
			return i
		}
	}
	return -1
}

func windowEqual[S ~[]E, E any](window, sub S, eq func(a, b E) bool) bool {
	for j := range sub {
		if !eq(window[j], sub[j]) {
			return false
		}
	}
	return true
}
