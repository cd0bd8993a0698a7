// File: benchmark_test.go
// Title: Sequence Analysis Benchmarks
// Description: Benchmarks over growing input sizes. The generators use small
//              sizes because their output is exponential.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial benchmark implementation

package seqx

import (
	"strconv"
	"testing"
)

// repeating builds a sequence of size n drawing from size/4 distinct values.
func repeating(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i % (n/4 + 1)
	}
	return s
}

func BenchmarkRemoveAllDuplicates(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		input := repeating(size)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				RemoveAllDuplicates(input)
			}
		})
	}
}

func BenchmarkIsAllGrouped(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		input := repeating(size)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				IsAllGrouped(input)
			}
		})
	}
}

func BenchmarkCombinations(b *testing.B) {
	for _, size := range []int{4, 8, 12} {
		input := repeating(size)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Combinations(input)
			}
		})
	}
}

func BenchmarkPermutations(b *testing.B) {
	for _, size := range []int{3, 5, 7} {
		input := repeating(size)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Permutations(input)
			}
		})
	}
}

func BenchmarkContainsSubarray(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		input := repeating(size)
		sub := []int{-1}
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ContainsSubarray(input, sub)
			}
		})
	}
}
