// File: inplace_test.go
// Title: In-Place Duplicate Removal Tests
// Description: Verifies that the InPlace variants match their pure
//              counterparts and reuse the input storage.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial test implementation

package seqx

import (
	"slices"
	"testing"
)

func TestInPlaceVariants(t *testing.T) {
	variants := []struct {
		name    string
		pure    func([]int) []int
		inPlace func([]int) []int
	}{
		{"adjacent", RemoveAdjacentDuplicates[[]int], RemoveAdjacentDuplicatesInPlace[[]int]},
		{"all", RemoveAllDuplicates[[]int], RemoveAllDuplicatesInPlace[[]int]},
		{"non-unique", RemoveNonUniqueElements[[]int], RemoveNonUniqueElementsInPlace[[]int]},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			for _, input := range propertyInputs {
				want := v.pure(input)

				work := slices.Clone(input)
				got := v.inPlace(work)

				if !slices.Equal(got, want) {
					t.Errorf("%s in place(%v) = %v, want %v", v.name, input, got, want)
				}
				if len(got) > 0 && &got[0] != &work[0] {
					t.Errorf("%s in place(%v) did not reuse storage", v.name, input)
				}
				for i := len(got); i < len(work); i++ {
					if work[i] != 0 {
						t.Errorf("%s in place(%v) left %d at vacated index %d", v.name, input, work[i], i)
					}
				}
			}
		})
	}
}

func TestRemoveAdjacentDuplicatesInPlace_Sample(t *testing.T) {
	work := []int{1, 3, 3, 1, 5, 7}
	got := RemoveAdjacentDuplicatesInPlace(work)
	if !slices.Equal(got, []int{1, 3, 1, 5, 7}) {
		t.Errorf("RemoveAdjacentDuplicatesInPlace() = %v", got)
	}
	if !slices.Equal(work, []int{1, 3, 1, 5, 7, 0}) {
		t.Errorf("backing array = %v", work)
	}
}
