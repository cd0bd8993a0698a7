package seqop

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skerror "github.com/msto63/seqkit/foundation/core/error"
	sklog "github.com/msto63/seqkit/foundation/core/log"
	"github.com/msto63/seqkit/foundation/utils/seqx"
	"github.com/msto63/seqkit/pkg/core/config"
)

var sample = []string{"1", "3", "3", "1", "5", "7"}

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := sklog.NewWithConfig(sklog.Config{
		Level:  sklog.LevelDebug,
		Format: sklog.FormatJSON,
		Output: &buf,
	})
	return NewRunner(LimitsFromConfig(config.Default()), logger), &buf
}

func run(t *testing.T, r *Runner, name string, req Request) *Result {
	t.Helper()
	res, err := r.Run(context.Background(), name, req)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, name, res.Operation)
	return res
}

func TestRunner_DuplicateOperations(t *testing.T) {
	r, _ := newTestRunner(t)
	req := Request{Input: sample}

	assert.Equal(t, 4, run(t, r, OpCountUniques, req).Count)
	assert.True(t, run(t, r, OpHasDuplicates, req).Bool)
	assert.False(t, run(t, r, OpIsGrouped, req).Bool)
	assert.Equal(t, []string{"1", "3", "1", "5", "7"}, run(t, r, OpRemoveAdjacent, req).Sequence)
	assert.Equal(t, []string{"1", "3", "5", "7"}, run(t, r, OpRemoveAll, req).Sequence)
	assert.Equal(t, []string{"5", "7"}, run(t, r, OpRemoveNonUnique, req).Sequence)

	first := run(t, r, OpFirstUnique, req)
	assert.True(t, first.Found)
	assert.Equal(t, "5", first.Element)
	assert.Equal(t, "5", first.Value())

	occ := run(t, r, OpOccurrences, req).Occurrences
	assert.Equal(t, map[string]int{"1": 2, "3": 2, "5": 1, "7": 1}, occ)
}

func TestRunner_FirstUniqueAbsent(t *testing.T) {
	r, _ := newTestRunner(t)

	res := run(t, r, OpFirstUnique, Request{Input: []string{"1", "1", "2", "2"}})
	assert.False(t, res.Found)
	assert.Nil(t, res.Value())
}

func TestRunner_InPlaceKeepsInput(t *testing.T) {
	r, _ := newTestRunner(t)
	input := []string{"a", "a", "b", "a"}

	tests := []struct {
		op       string
		expected []string
	}{
		{OpRemoveAdjacent, []string{"a", "b", "a"}},
		{OpRemoveAll, []string{"a", "b"}},
		{OpRemoveNonUnique, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			pure := run(t, r, tt.op, Request{Input: input})
			inPlace := run(t, r, tt.op, Request{Input: input, InPlace: true})

			assert.Equal(t, tt.expected, pure.Sequence)
			assert.Equal(t, pure.Sequence, inPlace.Sequence)
			assert.Equal(t, []string{"a", "a", "b", "a"}, input)
		})
	}
}

func TestRunner_Analyze(t *testing.T) {
	r, _ := newTestRunner(t)

	a := run(t, r, OpAnalyze, Request{Input: []string{"2", "1", "1", "2"}}).Analysis
	require.NotNil(t, a)
	assert.Equal(t, 4, a.Length)
	assert.Equal(t, 2, a.Uniques)
	assert.True(t, a.HasDuplicates)
	assert.False(t, a.Grouped)
	assert.Nil(t, a.FirstUnique)

	a = run(t, r, OpAnalyze, Request{Input: []string{}}).Analysis
	assert.Equal(t, 0, a.Uniques)
	assert.False(t, a.HasDuplicates)
	assert.True(t, a.Grouped)
}

func TestRunner_Combinations(t *testing.T) {
	r, _ := newTestRunner(t)

	res := run(t, r, OpCombinations, Request{Input: []string{"a", "b"}, Size: AllSizes})
	assert.Equal(t, [][]string{{"b", "a"}, {"a"}, {"b"}, {}}, res.Sequences)

	res = run(t, r, OpCombinations, Request{Input: []string{"a", "b", "c"}, Size: 2})
	assert.Equal(t, [][]string{{"b", "a"}, {"c", "a"}, {"c", "b"}}, res.Sequences)

	res = run(t, r, OpCombinations, Request{Input: []string{"x", "x"}, Size: AllSizes, Distinct: true})
	assert.Equal(t, [][]string{{"x", "x"}, {"x"}, {}}, res.Sequences)
}

func TestRunner_Permutations(t *testing.T) {
	r, _ := newTestRunner(t)

	res := run(t, r, OpPermutations, Request{Input: []string{}})
	assert.Equal(t, [][]string{{}}, res.Sequences)

	res = run(t, r, OpPermutations, Request{Input: []string{"a", "b", "a"}})
	assert.Len(t, res.Sequences, 6)

	res = run(t, r, OpPermutations, Request{Input: []string{"a", "b", "a"}, Distinct: true})
	assert.Equal(t, [][]string{{"a", "b", "a"}, {"a", "a", "b"}, {"b", "a", "a"}}, res.Sequences)
}

func TestRunner_Contains(t *testing.T) {
	r, _ := newTestRunner(t)

	tests := []struct {
		name     string
		sub      []string
		expected Match
	}{
		{"present", []string{"3", "1"}, Match{Contains: true, Index: 2}},
		{"absent", []string{"1", "5", "1"}, Match{Contains: false, Index: -1}},
		{"empty", []string{}, Match{Contains: true, Index: 0}},
		{"whole", sample, Match{Contains: true, Index: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, r, OpContains, Request{Input: sample, Sub: tt.sub})
			assert.Equal(t, tt.expected, res.Match)
			assert.Equal(t, tt.expected, res.Value())
		})
	}
}

func TestRunner_Tile(t *testing.T) {
	r, _ := newTestRunner(t)

	res := run(t, r, OpTile, Request{Input: []string{"1", "3", "5"}, Times: 2})
	assert.Equal(t, [][]string{{"1", "3", "5"}, {"1", "3", "5"}}, res.Sequences)

	res = run(t, r, OpTile, Request{Input: []string{"1"}, Times: 0})
	assert.Empty(t, res.Sequences)
}

func TestRunner_Errors(t *testing.T) {
	r, _ := newTestRunner(t)
	long := make([]string, 10)

	tests := []struct {
		name string
		op   string
		req  Request
		code skerror.Code
	}{
		{"unknown operation", "explode", Request{}, skerror.CodeUnknownOperation},
		{"permutation limit", OpPermutations, Request{Input: long}, skerror.CodeValueOutOfRange},
		{"combination limit", OpCombinations, Request{Input: make([]string, 21), Size: AllSizes}, skerror.CodeValueOutOfRange},
		{"input limit", OpCountUniques, Request{Input: make([]string, 4097)}, skerror.CodeValueOutOfRange},
		{"negative times", OpTile, Request{Times: -1}, skerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Run(context.Background(), tt.op, tt.req)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, tt.code, skerror.GetCode(err))
		})
	}
}

func TestRunner_Canceled(t *testing.T) {
	r, _ := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, OpCountUniques, Request{Input: sample})
	require.Error(t, err)
	assert.True(t, skerror.HasCode(err, skerror.CodeCanceled))
}

func TestRunner_LogsTiming(t *testing.T) {
	r, buf := newTestRunner(t)

	run(t, r, OpCountUniques, Request{Input: sample})

	assert.Contains(t, buf.String(), "operation completed")
	assert.Contains(t, buf.String(), `"operation":"count-uniques"`)
}

func TestRegistry(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, len(registry))

	for i := 1; i < len(ops); i++ {
		assert.Less(t, ops[i-1].Name, ops[i].Name)
	}

	op, err := Lookup(OpContains)
	require.NoError(t, err)
	assert.Equal(t, KindMatch, op.Kind)
}

// expiringCtx reports cancellation once Err has been consulted more than
// budget times, simulating a deadline that passes during generation.
type expiringCtx struct {
	context.Context
	budget int
}

func (c *expiringCtx) Err() error {
	if c.budget <= 0 {
		return context.DeadlineExceeded
	}
	c.budget--
	return nil
}

func TestRunner_ExpiredDeadline(t *testing.T) {
	r, _ := newTestRunner(t)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	res, err := r.Run(ctx, OpPermutations, Request{Input: []string{"a", "b", "c"}})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, skerror.CodeCanceled, skerror.GetCode(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "timed out")
}

func TestRunner_DeadlineDuringGeneration(t *testing.T) {
	r, buf := newTestRunner(t)
	input := []string{"a", "b", "c", "d"}

	// budget counts the checks that pass; Run itself consumes the first
	tests := []struct {
		name   string
		op     string
		req    Request
		budget int
	}{
		{"permutations between groups", OpPermutations, Request{Input: input}, 2},
		{"combinations after tail", OpCombinations, Request{Input: input, Size: AllSizes}, 2},
		{"distinct permutations", OpPermutations, Request{Input: []string{"a"}, Distinct: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &expiringCtx{Context: context.Background(), budget: tt.budget}

			res, err := r.Run(ctx, tt.op, tt.req)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, skerror.CodeCanceled, skerror.GetCode(err))
		})
	}
	assert.Contains(t, buf.String(), "operation failed")
}

func TestGenerators_MatchLibraryOrder(t *testing.T) {
	ctx := context.Background()
	inputs := [][]string{{}, {"a"}, {"a", "b"}, {"x", "y", "x"}, {"1", "2", "3", "4"}}

	for _, in := range inputs {
		perms, err := permutations(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, seqx.Permutations(in), perms, "permutations of %v", in)

		all, err := combinations(ctx, in, AllSizes)
		require.NoError(t, err)
		assert.Equal(t, seqx.Combinations(in), all, "combinations of %v", in)

		for k := -2; k <= len(in)+1; k++ {
			if k == AllSizes {
				continue
			}
			sized, err := combinations(ctx, in, k)
			require.NoError(t, err)
			assert.Equal(t, seqx.CombinationsOfSize(in, k), sized, "size %d of %v", k, in)
		}
	}
}

func TestRunner_TraceInput(t *testing.T) {
	var buf bytes.Buffer
	logger := sklog.NewWithConfig(sklog.Config{
		Level:  sklog.LevelTrace,
		Format: sklog.FormatJSON,
		Output: &buf,
	})
	r := NewRunner(LimitsFromConfig(config.Default()), logger)

	_, err := r.Run(context.Background(), OpCountUniques, Request{Input: []string{"q", "q"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"operation input"`)

	quiet, qbuf := newTestRunner(t)
	_, err = quiet.Run(context.Background(), OpCountUniques, Request{Input: []string{"q", "q"}})
	require.NoError(t, err)
	assert.NotContains(t, qbuf.String(), "operation input")
}
