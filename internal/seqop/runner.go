// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     seqop
// Description: Runner dispatching operations to the seqx library
// Author:      Mike Stoffels
// Created:     2025-02-08
// License:     MIT
// ============================================================================

package seqop

import (
	"context"
	"errors"
	"fmt"
	"slices"

	skerror "github.com/msto63/seqkit/foundation/core/error"
	sklog "github.com/msto63/seqkit/foundation/core/log"
	"github.com/msto63/seqkit/foundation/utils/seqx"
	"github.com/msto63/seqkit/pkg/core/config"
)

// Limits bounds the input sizes accepted by the runner
type Limits struct {
	MaxInputLength       int
	MaxCombinationLength int
	MaxPermutationLength int
}

// LimitsFromConfig extracts the limits section of the configuration
func LimitsFromConfig(cfg *config.Config) Limits {
	return Limits{
		MaxInputLength:       cfg.Limits.MaxInputLength,
		MaxCombinationLength: cfg.Limits.MaxCombinationLength,
		MaxPermutationLength: cfg.Limits.MaxPermutationLength,
	}
}

// Runner executes operations
type Runner struct {
	limits Limits
	logger *sklog.Logger
}

// NewRunner creates a runner. A nil logger uses the default logger.
func NewRunner(limits Limits, logger *sklog.Logger) *Runner {
	if logger == nil {
		logger = sklog.GetDefault()
	}
	return &Runner{
		limits: limits,
		logger: logger.WithName("seqop"),
	}
}

// Run executes the named operation
func (r *Runner) Run(ctx context.Context, name string, req Request) (*Result, error) {
	op, err := Lookup(name)
	if err != nil {
		r.logger.LogError(err)
		return nil, err
	}

	if err := checkpoint(ctx, name); err != nil {
		return nil, err
	}

	if err := r.checkLimits(op, req); err != nil {
		r.logger.LogError(err)
		return nil, err
	}

	if r.logger.IsLevelEnabled(sklog.LevelTrace) {
		r.logger.Trace("operation input", sklog.Fields{"input": req.Input})
	}

	timer := r.logger.StartTimer(name).
		WithLevel(sklog.LevelDebug).
		WithField("input_length", len(req.Input))

	result := &Result{
		Operation: op.Name,
		Kind:      op.Kind,
		Input:     req.Input,
	}
	if err := r.dispatch(ctx, op, req, result); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	result.Elapsed = timer.StopWithResult(sklog.Fields{"kind": string(op.Kind)})
	return result, nil
}

func (r *Runner) checkLimits(op Operation, req Request) error {
	n := len(req.Input)
	if r.limits.MaxInputLength > 0 && n > r.limits.MaxInputLength {
		return outOfRange(op.Name, "input", n, r.limits.MaxInputLength)
	}

	switch op.Name {
	case OpCombinations:
		if r.limits.MaxCombinationLength > 0 && n > r.limits.MaxCombinationLength {
			return outOfRange(op.Name, "input", n, r.limits.MaxCombinationLength)
		}
		if _, ok := seqx.CombinationCount(n); !ok {
			return outOfRange(op.Name, "input", n, 0)
		}
	case OpPermutations:
		if r.limits.MaxPermutationLength > 0 && n > r.limits.MaxPermutationLength {
			return outOfRange(op.Name, "input", n, r.limits.MaxPermutationLength)
		}
		if _, ok := seqx.PermutationCount(n); !ok {
			return outOfRange(op.Name, "input", n, 0)
		}
	case OpContains:
		if r.limits.MaxInputLength > 0 && len(req.Sub) > r.limits.MaxInputLength {
			return outOfRange(op.Name, "sub", len(req.Sub), r.limits.MaxInputLength)
		}
	case OpTile:
		if req.Times < 0 {
			return skerror.Newf("times must not be negative, got %d", req.Times).
				WithCode(skerror.CodeInvalidInput).
				WithOperation(op.Name).
				WithDetail("times", req.Times)
		}
		if r.limits.MaxInputLength > 0 && req.Times > r.limits.MaxInputLength {
			return outOfRange(op.Name, "times", req.Times, r.limits.MaxInputLength)
		}
	}
	return nil
}

func outOfRange(op, what string, got, limit int) error {
	msg := fmt.Sprintf("%s length %d exceeds the limit of %d for %s", what, got, limit, op)
	if limit == 0 {
		msg = fmt.Sprintf("%s length %d overflows the result size of %s", what, got, op)
	}
	return skerror.New(msg).
		WithCode(skerror.CodeValueOutOfRange).
		WithOperation(op).
		WithDetail("length", got).
		WithDetail("limit", limit)
}

// checkpoint reports a canceled or expired context as CodeCanceled
func checkpoint(ctx context.Context, op string) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	msg := "operation canceled"
	if errors.Is(err, context.DeadlineExceeded) {
		msg = "operation timed out"
	}
	return skerror.Wrap(err, msg).
		WithCode(skerror.CodeCanceled).
		WithOperation(op)
}

func (r *Runner) dispatch(ctx context.Context, op Operation, req Request, res *Result) error {
	in := req.Input
	var err error

	switch op.Name {
	case OpCountUniques:
		res.Count = seqx.CountUniques(in)
	case OpHasDuplicates:
		res.Bool = seqx.HasDuplicates(in)
	case OpFirstUnique:
		res.Element, res.Found = seqx.FirstNonRepeatingElement(in)
	case OpIsGrouped:
		res.Bool = seqx.IsAllGrouped(in)
	case OpRemoveAdjacent:
		if req.InPlace {
			res.Sequence = seqx.RemoveAdjacentDuplicatesInPlace(slices.Clone(in))
		} else {
			res.Sequence = seqx.RemoveAdjacentDuplicates(in)
		}
	case OpRemoveAll:
		if req.InPlace {
			res.Sequence = seqx.RemoveAllDuplicatesInPlace(slices.Clone(in))
		} else {
			res.Sequence = seqx.RemoveAllDuplicates(in)
		}
	case OpRemoveNonUnique:
		if req.InPlace {
			res.Sequence = seqx.RemoveNonUniqueElementsInPlace(slices.Clone(in))
		} else {
			res.Sequence = seqx.RemoveNonUniqueElements(in)
		}
	case OpOccurrences:
		res.Occurrences = seqx.Occurrences(in)
	case OpAnalyze:
		res.Analysis = analyze(in)
	case OpCombinations:
		if res.Sequences, err = combinations(ctx, in, req.Size); err != nil {
			return err
		}
		if req.Distinct {
			res.Sequences, err = distinct(ctx, op.Name, res.Sequences)
		}
	case OpPermutations:
		if res.Sequences, err = permutations(ctx, in); err != nil {
			return err
		}
		if req.Distinct {
			res.Sequences, err = distinct(ctx, op.Name, res.Sequences)
		}
	case OpContains:
		res.Sub = req.Sub
		res.Match.Index = seqx.IndexOfSubarray(in, req.Sub)
		res.Match.Contains = res.Match.Index >= 0
	case OpTile:
		res.Sequences = seqx.Tile(in, req.Times)
	}
	return err
}

func analyze(in []string) *Analysis {
	a := &Analysis{
		Length:        len(in),
		Uniques:       seqx.CountUniques(in),
		HasDuplicates: seqx.HasDuplicates(in),
		Grouped:       seqx.IsAllGrouped(in),
	}
	if first, ok := seqx.FirstNonRepeatingElement(in); ok {
		a.FirstUnique = &first
	}
	return a
}

// combinations builds the power set in the order of seqx.Combinations, with
// a cancellation check between generating the tail subsets and extending
// them by the head. Size filtering follows seqx.CombinationsOfSize.
func combinations(ctx context.Context, in []string, size int) ([][]string, error) {
	if size != AllSizes && (size < 0 || size > len(in)) {
		return [][]string{}, nil
	}
	if err := checkpoint(ctx, OpCombinations); err != nil {
		return nil, err
	}
	if len(in) == 0 {
		return seqx.Combinations(in), nil
	}

	tail := seqx.Combinations(in[1:])
	if err := checkpoint(ctx, OpCombinations); err != nil {
		return nil, err
	}

	all := make([][]string, 0, 2*len(tail))
	for _, subset := range tail {
		withHead := make([]string, len(subset), len(subset)+1)
		copy(withHead, subset)
		all = append(all, append(withHead, in[0]))
	}
	all = append(all, tail...)
	if size == AllSizes {
		return all, nil
	}

	sized := make([][]string, 0, len(all))
	for _, subset := range all {
		if len(subset) == size {
			sized = append(sized, subset)
		}
	}
	return sized, nil
}

// permutations builds the orderings in the order of seqx.Permutations, one
// group per leading element, checking for cancellation between groups.
func permutations(ctx context.Context, in []string) ([][]string, error) {
	if len(in) <= 1 {
		return seqx.Permutations(in), nil
	}

	result := make([][]string, 0)
	for i, first := range in {
		if err := checkpoint(ctx, OpPermutations); err != nil {
			return nil, err
		}

		others := make([]string, 0, len(in)-1)
		others = append(others, in[:i]...)
		others = append(others, in[i+1:]...)

		for _, rest := range seqx.Permutations(others) {
			perm := make([]string, 0, len(in))
			perm = append(perm, first)
			result = append(result, append(perm, rest...))
		}
	}
	return result, nil
}

// distinct keeps the first occurrence of every sequence
func distinct(ctx context.Context, op string, seqs [][]string) ([][]string, error) {
	if err := checkpoint(ctx, op); err != nil {
		return nil, err
	}
	return seqx.RemoveAllDuplicatesBy(seqs, func(s []string) string {
		return fmt.Sprintf("%q", s)
	}), nil
}
