package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	skerror "github.com/msto63/seqkit/foundation/core/error"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	noColor      bool
	usePager     bool
	inputFile    string
)

var rootCmd = &cobra.Command{
	Use:   "seqx",
	Short: "seqx - duplicate analysis, combinatorics and subsequence search",
	Long: `seqx runs sequence operations over whitespace separated elements.

Elements are given as arguments or read from a file (--file, "-" for stdin).
Elements are compared as strings.

Operations:
  uniques       - count distinct elements
  dedupe        - remove adjacent, all or non-unique duplicates
  has-dups      - report whether duplicates exist
  first-unique  - first element occurring exactly once
  grouped       - report whether equal elements are contiguous
  occurrences   - count occurrences per element
  analyze       - all duplicate metrics at once
  combos        - power set or sized combinations
  perms         - all orderings
  contains      - contiguous subsequence search
  tile          - repeat the sequence as rows`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

// ExitCode maps an error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return skerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SEQX_CONFIG or ./configs/seqx.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging and timings")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "o", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&usePager, "pager", false, "show text results in a scrollable pager")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "read elements from file (- for stdin)")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
