// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     seqop
// Description: Input parsing for sequence operations
// Author:      Mike Stoffels
// Created:     2025-02-08
// License:     MIT
// ============================================================================

package seqop

import (
	"bufio"
	"io"
	"os"

	skerror "github.com/msto63/seqkit/foundation/core/error"
)

// StdinPath selects standard input as the input file
const StdinPath = "-"

// ParseInput returns the elements of a sequence. Elements come either from
// args or from a whitespace separated file; giving both is an error.
func ParseInput(args []string, file string, stdin io.Reader) ([]string, error) {
	if file == "" {
		out := make([]string, len(args))
		copy(out, args)
		return out, nil
	}

	if len(args) > 0 {
		return nil, skerror.New("elements given both as arguments and via --file").
			WithCode(skerror.CodeInvalidInput).
			WithOperation("seqop.ParseInput").
			WithDetail("file", file)
	}

	if file == StdinPath {
		return readElements(stdin, file)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, skerror.Wrap(err, "failed to open input file").
			WithCode(skerror.CodeInvalidInput).
			WithOperation("seqop.ParseInput").
			WithDetail("file", file)
	}
	defer f.Close()

	return readElements(f, file)
}

func readElements(r io.Reader, source string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	elements := make([]string, 0)
	for scanner.Scan() {
		elements = append(elements, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, skerror.Wrap(err, "failed to read input").
			WithCode(skerror.CodeInvalidFormat).
			WithOperation("seqop.ParseInput").
			WithDetail("file", source)
	}
	return elements, nil
}
