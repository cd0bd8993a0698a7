// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     render
// Description: Output format selection
// Author:      Mike Stoffels
// Created:     2025-02-09
// License:     MIT
// ============================================================================

package render

import (
	"strings"

	skerror "github.com/msto63/seqkit/foundation/core/error"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses an output format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", skerror.Newf("unknown output format %q", s).
			WithCode(skerror.CodeInvalidInput).
			WithOperation("render.ParseFormat").
			WithDetail("format", s)
	}
}
