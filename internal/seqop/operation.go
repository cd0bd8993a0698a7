// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     seqop
// Description: Registry of sequence operations exposed by the seqx command
// Author:      Mike Stoffels
// Created:     2025-02-08
// License:     MIT
// ============================================================================

package seqop

import (
	"sort"

	skerror "github.com/msto63/seqkit/foundation/core/error"
)

// Kind describes which Result fields an operation fills
type Kind string

const (
	KindCount     Kind = "count"
	KindBool      Kind = "bool"
	KindElement   Kind = "element"
	KindSequence  Kind = "sequence"
	KindSequences Kind = "sequences"
	KindMatch     Kind = "match"
	KindReport    Kind = "report"
)

// Operation names
const (
	OpCountUniques    = "count-uniques"
	OpHasDuplicates   = "has-duplicates"
	OpFirstUnique     = "first-unique"
	OpIsGrouped       = "is-grouped"
	OpRemoveAdjacent  = "remove-adjacent"
	OpRemoveAll       = "remove-all"
	OpRemoveNonUnique = "remove-non-unique"
	OpOccurrences     = "occurrences"
	OpAnalyze         = "analyze"
	OpCombinations    = "combinations"
	OpPermutations    = "permutations"
	OpContains        = "contains"
	OpTile            = "tile"
)

// Operation describes one registered operation
type Operation struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Kind        Kind   `json:"kind" yaml:"kind"`
}

var registry = map[string]Operation{
	OpCountUniques:    {OpCountUniques, "Count distinct elements", KindCount},
	OpHasDuplicates:   {OpHasDuplicates, "Report whether any element occurs more than once", KindBool},
	OpFirstUnique:     {OpFirstUnique, "Find the first element that occurs exactly once", KindElement},
	OpIsGrouped:       {OpIsGrouped, "Report whether equal elements form contiguous runs", KindBool},
	OpRemoveAdjacent:  {OpRemoveAdjacent, "Collapse runs of equal adjacent elements", KindSequence},
	OpRemoveAll:       {OpRemoveAll, "Keep the first occurrence of every element", KindSequence},
	OpRemoveNonUnique: {OpRemoveNonUnique, "Keep only elements that occur exactly once", KindSequence},
	OpOccurrences:     {OpOccurrences, "Count occurrences per element", KindReport},
	OpAnalyze:         {OpAnalyze, "Run all duplicate metrics at once", KindReport},
	OpCombinations:    {OpCombinations, "Generate all subsets (power set)", KindSequences},
	OpPermutations:    {OpPermutations, "Generate all orderings", KindSequences},
	OpContains:        {OpContains, "Find a contiguous subsequence", KindMatch},
	OpTile:            {OpTile, "Repeat the sequence as rows", KindSequences},
}

// Lookup returns the operation registered under name
func Lookup(name string) (Operation, error) {
	op, ok := registry[name]
	if !ok {
		return Operation{}, skerror.Newf("unknown operation %q", name).
			WithCode(skerror.CodeUnknownOperation).
			WithOperation("seqop.Lookup").
			WithDetail("operation", name)
	}
	return op, nil
}

// Operations returns all registered operations sorted by name
func Operations() []Operation {
	ops := make([]Operation, 0, len(registry))
	for _, op := range registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name < ops[j].Name
	})
	return ops
}
