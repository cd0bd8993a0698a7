// File: error_test.go
// Title: Core Error Tests
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-02-12 v0.2.0: Rewritten with testify for the pkg/errors backend

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("boom")

	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, CodeUnknown, err.Code())
	assert.Equal(t, SeverityMedium, err.Severity())
	assert.False(t, err.Timestamp().IsZero())
	assert.NotEmpty(t, err.StackTrace())
	assert.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf("length %d exceeds %d", 12, 9)
	assert.Equal(t, "length 12 exceeds 9", err.Error())
}

func TestWithCodeSetsSeverity(t *testing.T) {
	t.Run("derived from code", func(t *testing.T) {
		err := New("bad").WithCode(CodeInvalidConfig)
		assert.Equal(t, SeverityHigh, err.Severity())
	})

	t.Run("explicit severity wins", func(t *testing.T) {
		err := New("bad").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
		assert.Equal(t, SeverityCritical, err.Severity())
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "ignored"))
	})

	t.Run("standard error", func(t *testing.T) {
		cause := io.ErrUnexpectedEOF
		err := Wrap(cause, "reading input")

		assert.Equal(t, "reading input: unexpected EOF", err.Error())
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
		assert.NotEmpty(t, err.StackTrace())
		assert.Equal(t, cause, err.RootCause())
	})

	t.Run("inherits code and severity", func(t *testing.T) {
		inner := New("too long").WithCode(CodeValueOutOfRange)
		err := Wrap(inner, "permutations")

		assert.Equal(t, CodeValueOutOfRange, err.Code())
		assert.Equal(t, SeverityLow, err.Severity())
		assert.Equal(t, inner.StackTrace(), err.StackTrace())

		var target *Error
		require.True(t, errors.As(err, &target))
		assert.Equal(t, CodeValueOutOfRange, target.Code())
	})
}

func TestDetails(t *testing.T) {
	err := New("x").
		WithDetail("length", 3).
		WithDetails(map[string]interface{}{"limit": 2, "op": "perms"}).
		WithOperation("seqop.Run")

	details := err.Details()
	assert.Equal(t, 3, details["length"])
	assert.Equal(t, 2, details["limit"])
	assert.Equal(t, "seqop.Run", err.Operation())

	details["length"] = 99
	assert.Equal(t, 3, err.Details()["length"], "Details must return a copy")
}

func TestHasCodeAndGetters(t *testing.T) {
	inner := New("bad config").WithCode(CodeInvalidConfig)
	outer := fmt.Errorf("startup: %w", inner)

	assert.True(t, HasCode(outer, CodeInvalidConfig))
	assert.False(t, HasCode(outer, CodeInvalidInput))
	assert.False(t, HasCode(nil, CodeInvalidInput))
	assert.Equal(t, CodeInvalidConfig, GetCode(outer))
	assert.Equal(t, SeverityHigh, GetSeverity(outer))
	assert.Equal(t, CodeUnknown, GetCode(errors.New("plain")))
	assert.Equal(t, SeverityMedium, GetSeverity(errors.New("plain")))
}

func TestFormat(t *testing.T) {
	err := New("formatted")

	assert.Equal(t, "formatted", fmt.Sprintf("%v", err))
	assert.Equal(t, "formatted", fmt.Sprintf("%s", err))
	assert.Equal(t, `"formatted"`, fmt.Sprintf("%q", err))

	verbose := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(verbose, "formatted"))
	assert.Contains(t, verbose, "TestFormat")
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "parse").
		WithCode(CodeInvalidFormat).
		WithOperation("seqop.ParseInput").
		WithDetail("line", 4)

	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "parse", decoded["message"])
	assert.Equal(t, "INVALID_FORMAT", decoded["code"])
	assert.Equal(t, "low", decoded["severity"])
	assert.Equal(t, "eof", decoded["cause"])
	assert.Equal(t, "seqop.ParseInput", decoded["operation"])
}

func TestCodes(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidInput, "input", 2},
		{CodeValueOutOfRange, "input", 2},
		{CodeUnknownOperation, "input", 2},
		{CodeInvalidConfig, "configuration", 3},
		{CodeInternal, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.True(t, tt.code.IsValid())
			assert.Equal(t, tt.category, tt.code.Category())
			assert.Equal(t, tt.exit, tt.code.ExitCode())
		})
	}

	assert.False(t, Code("NOPE").IsValid())
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, "low", SeverityLow.String())
	assert.Equal(t, "critical", SeverityCritical.String())
	assert.Equal(t, "unknown", Severity(42).String())
	assert.True(t, SeverityHigh.ShouldAlert())
	assert.False(t, SeverityMedium.ShouldAlert())
	assert.Equal(t, SeverityCritical, GetSeverityFromCode(CodeInternal))
	assert.Equal(t, SeverityMedium, GetSeverityFromCode(CodeUnknown))
}
