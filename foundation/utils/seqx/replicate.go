// File: replicate.go
// Title: Replication and Pair Helpers
// Description: Tiles a sequence into a higher-dimensional structure and
//              checks membership of two-element tuples.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation

package seqx

// Tile returns n rows, each an independent copy of s:
// Tile([]int{1, 3, 5}, 2) is [[1 3 5] [1 3 5]]. n <= 0 yields no rows.
func Tile[S ~[]E, E any](s S, n int) []S {
	if n <= 0 {
		return []S{}
	}

	rows := make([]S, n)
	for i := range rows {
		rows[i] = append(make(S, 0, len(s)), s...)
	}
	return rows
}

// Tile2D returns n layers, each an independent copy of the 2D slice m.
func Tile2D[S ~[]E, E any](m []S, n int) [][]S {
	if n <= 0 {
		return [][]S{}
	}

	layers := make([][]S, n)
	for i := range layers {
		layer := make([]S, len(m))
		for j, row := range m {
			layer[j] = append(make(S, 0, len(row)), row...)
		}
		layers[i] = layer
	}
	return layers
}

// Pair is a two-element tuple with comparable members.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// ContainsPair reports whether pairs holds an element equal to p in both
// members.
func ContainsPair[A, B comparable](pairs []Pair[A, B], p Pair[A, B]) bool {
	for _, item := range pairs {
		if item.First == p.First && item.Second == p.Second {
			return true
		}
	}
	return false
}
