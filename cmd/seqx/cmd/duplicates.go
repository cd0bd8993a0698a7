package cmd

import (
	"github.com/spf13/cobra"

	skerror "github.com/msto63/seqkit/foundation/core/error"
	"github.com/msto63/seqkit/internal/seqop"
)

var (
	dedupeMode    string
	dedupeInPlace bool
)

var uniquesCmd = &cobra.Command{
	Use:   "uniques [elements...]",
	Short: "Count distinct elements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, seqop.OpCountUniques, args, seqop.Request{})
	},
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe [elements...]",
	Short: "Remove duplicates",
	Long: `Remove duplicates from a sequence.

Modes:
  adjacent    - collapse runs of equal neighbours  (1 3 3 1 5 7 -> 1 3 1 5 7)
  all         - keep the first occurrence of each (1 3 3 1 5 7 -> 1 3 5 7)
  non-unique  - keep elements occurring once     (1 3 3 1 5 7 -> 5 7)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := dedupeOperation(dedupeMode)
		if err != nil {
			return err
		}
		return runOperation(cmd, op, args, seqop.Request{InPlace: dedupeInPlace})
	},
}

var hasDupsCmd = &cobra.Command{
	Use:   "has-dups [elements...]",
	Short: "Report whether any element occurs more than once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, seqop.OpHasDuplicates, args, seqop.Request{})
	},
}

var firstUniqueCmd = &cobra.Command{
	Use:   "first-unique [elements...]",
	Short: "Find the first element occurring exactly once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, seqop.OpFirstUnique, args, seqop.Request{})
	},
}

var groupedCmd = &cobra.Command{
	Use:   "grouped [elements...]",
	Short: "Report whether equal elements form contiguous runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, seqop.OpIsGrouped, args, seqop.Request{})
	},
}

var occurrencesCmd = &cobra.Command{
	Use:   "occurrences [elements...]",
	Short: "Count occurrences per element",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, seqop.OpOccurrences, args, seqop.Request{})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [elements...]",
	Short: "Run all duplicate metrics at once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, seqop.OpAnalyze, args, seqop.Request{})
	},
}

func dedupeOperation(mode string) (string, error) {
	switch mode {
	case "adjacent":
		return seqop.OpRemoveAdjacent, nil
	case "all":
		return seqop.OpRemoveAll, nil
	case "non-unique":
		return seqop.OpRemoveNonUnique, nil
	default:
		return "", skerror.Newf("unknown dedupe mode %q (adjacent, all, non-unique)", mode).
			WithCode(skerror.CodeInvalidInput).
			WithOperation("dedupe").
			WithDetail("mode", mode)
	}
}

func init() {
	dedupeCmd.Flags().StringVarP(&dedupeMode, "mode", "m", "all", "adjacent, all or non-unique")
	dedupeCmd.Flags().BoolVar(&dedupeInPlace, "in-place", false, "use the in-place variants")

	rootCmd.AddCommand(uniquesCmd, dedupeCmd, hasDupsCmd, firstUniqueCmd, groupedCmd, occurrencesCmd, analyzeCmd)
}
