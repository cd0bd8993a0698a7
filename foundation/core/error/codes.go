// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes for classifying failures of the
//              seqkit command-line layers. The seqx library itself never
//              returns errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-02-12 v0.2.0: Reduced to the codes used by seqkit

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeCanceled Code = "CANCELED"

	// Input handling
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeUnknownOperation Code = "UNKNOWN_OPERATION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeCanceled,
		CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeUnknownOperation,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeUnknownOperation:
		return "input"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a command should use for c.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
