// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     seqop
// Description: Request and result types of sequence operations
// Author:      Mike Stoffels
// Created:     2025-02-08
// License:     MIT
// ============================================================================

package seqop

import "time"

// AllSizes selects every combination size
const AllSizes = -1

// Request holds the operands of one operation
type Request struct {
	// Input sequence
	Input []string

	// Sub is the sequence searched for by contains
	Sub []string

	// Size restricts combinations to one length (AllSizes for the power set)
	Size int

	// Times is the row count for tile
	Times int

	// Distinct drops repeated sequences from combinations and permutations
	Distinct bool

	// InPlace uses the in-place removal variants
	InPlace bool
}

// Analysis bundles all duplicate metrics of one sequence
type Analysis struct {
	Length        int     `json:"length" yaml:"length"`
	Uniques       int     `json:"uniques" yaml:"uniques"`
	HasDuplicates bool    `json:"has_duplicates" yaml:"has_duplicates"`
	Grouped       bool    `json:"grouped" yaml:"grouped"`
	FirstUnique   *string `json:"first_unique" yaml:"first_unique"`
}

// Match is the outcome of a subsequence search
type Match struct {
	Contains bool `json:"contains" yaml:"contains"`
	Index    int  `json:"index" yaml:"index"`
}

// Result holds the outcome of an operation. Only the fields matching Kind
// are meaningful.
type Result struct {
	Operation string
	Kind      Kind
	Input     []string
	Sub       []string

	Count       int
	Bool        bool
	Element     string
	Found       bool
	Match       Match
	Sequence    []string
	Sequences   [][]string
	Occurrences map[string]int
	Analysis    *Analysis

	Elapsed time.Duration
}

// Value returns the field selected by the result kind
func (r *Result) Value() interface{} {
	switch r.Kind {
	case KindCount:
		return r.Count
	case KindBool:
		return r.Bool
	case KindElement:
		if !r.Found {
			return nil
		}
		return r.Element
	case KindSequence:
		return r.Sequence
	case KindSequences:
		return r.Sequences
	case KindMatch:
		return r.Match
	case KindReport:
		if r.Analysis != nil {
			return r.Analysis
		}
		return r.Occurrences
	default:
		return nil
	}
}
