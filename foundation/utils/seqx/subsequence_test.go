// File: subsequence_test.go
// Title: Subsequence Search Tests
// Description: Tests for contiguous-run containment and offset lookup.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial test implementation

package seqx

import (
	"strings"
	"testing"
)

func TestContainsSubarray(t *testing.T) {
	tests := []struct {
		name string
		s    []int
		sub  []int
		want bool
	}{
		{"prefix", []int{1, 2, 3, 4}, []int{1, 2}, true},
		{"middle", []int{1, 2, 3, 4}, []int{2, 3}, true},
		{"suffix", []int{1, 2, 3, 4}, []int{3, 4}, true},
		{"not contiguous", []int{1, 2, 3, 4}, []int{1, 3}, false},
		{"wrong order", []int{1, 2, 3, 4}, []int{2, 1}, false},
		{"longer sub", []int{1, 2}, []int{1, 2, 3}, false},
		{"empty sub", []int{1, 2}, []int{}, true},
		{"empty both", []int{}, []int{}, true},
		{"nil sub", nil, nil, true},
		{"empty s", []int{}, []int{1}, false},
		{"partial overlap at end", []int{1, 2, 1, 2, 3}, []int{1, 2, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsSubarray(tt.s, tt.sub); got != tt.want {
				t.Errorf("ContainsSubarray(%v, %v) = %v, want %v", tt.s, tt.sub, got, tt.want)
			}
		})
	}

	t.Run("every sequence contains itself and the empty sequence", func(t *testing.T) {
		for _, input := range propertyInputs {
			if !ContainsSubarray(input, input) {
				t.Errorf("ContainsSubarray(%v, itself) = false", input)
			}
			if !ContainsSubarray(input, []int{}) {
				t.Errorf("ContainsSubarray(%v, []) = false", input)
			}
		}
	})
}

func TestIndexOfSubarray(t *testing.T) {
	s := []string{"a", "b", "a", "b", "c"}

	if got := IndexOfSubarray(s, []string{"a", "b", "c"}); got != 2 {
		t.Errorf("IndexOfSubarray() = %d, want 2", got)
	}
	if got := IndexOfSubarray(s, []string{"a", "b"}); got != 0 {
		t.Errorf("IndexOfSubarray() = %d, want 0", got)
	}
	if got := IndexOfSubarray(s, []string{"c", "a"}); got != -1 {
		t.Errorf("IndexOfSubarray() = %d, want -1", got)
	}
}

func TestContainsSubarrayFunc(t *testing.T) {
	s := []string{"Alpha", "BETA", "gamma"}
	fold := func(a, b string) bool { return strings.EqualFold(a, b) }

	if !ContainsSubarrayFunc(s, []string{"beta", "GAMMA"}, fold) {
		t.Error("ContainsSubarrayFunc() with EqualFold = false, want true")
	}
	if ContainsSubarrayFunc(s, []string{"beta", "GAMMA"}, func(a, b string) bool { return a == b }) {
		t.Error("ContainsSubarrayFunc() with exact match = true, want false")
	}
	if !ContainsSubarrayFunc(s, []string{}, nil) {
		t.Error("ContainsSubarrayFunc() with empty sub and nil eq = false, want true")
	}
	if got := IndexOfSubarrayFunc([]string{}, []string{}, nil); got != 0 {
		t.Errorf("IndexOfSubarrayFunc() empty in empty with nil eq = %d, want 0", got)
	}
	if ContainsSubarrayFunc(s, []string{"BETA"}, nil) {
		t.Error("ContainsSubarrayFunc() with nil eq = true, want false")
	}
	if got := IndexOfSubarrayFunc(s, []string{"GAMMA"}, fold); got != 2 {
		t.Errorf("IndexOfSubarrayFunc() = %d, want 2", got)
	}
}
