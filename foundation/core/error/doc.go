// Package error provides structured errors for the seqkit tools.
//
// Package: error
// Title: seqkit Error Handling
// Description: Errors carry a code, a severity, the failing operation and
//              free-form details on top of a wrapped cause. Root causes are
//              recorded with github.com/pkg/errors so every error has a stack
//              trace, and the standard errors.Is/As/Unwrap chain works.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-02-12 v0.2.0: Stack traces via pkg/errors, codes trimmed to seqkit needs
//
// Usage:
//
//	import skerror "github.com/msto63/seqkit/foundation/core/error"
//
//	err := skerror.New("input too long for permutations").
//		WithCode(skerror.CodeValueOutOfRange).
//		WithOperation("seqop.Run").
//		WithDetail("length", 12)
//
//	if skerror.HasCode(err, skerror.CodeValueOutOfRange) {
//		// ask for a shorter sequence
//	}
//
// Formatting an error with %+v prints the message followed by the stack
// trace of the root cause.
package error
