package cmd

import (
	"github.com/spf13/cobra"

	skerror "github.com/msto63/seqkit/foundation/core/error"
	"github.com/msto63/seqkit/internal/seqop"
)

var (
	combosSize     int
	combosDistinct bool
	permsDistinct  bool
	tileTimes      int
)

var combosCmd = &cobra.Command{
	Use:   "combos [elements...]",
	Short: "Generate all subsets, or those of one size",
	Long: `Generate the power set of a sequence (2^n subsets).

All subsets containing the first element come first, followed by all
subsets without it. Elements inside a subset appear in reverse source order:
  seqx combos 1 2  ->  [2 1] [1] [2] []`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if combosSize < seqop.AllSizes {
			return skerror.Newf("size must be -1 (all) or non-negative, got %d", combosSize).
				WithCode(skerror.CodeInvalidInput).
				WithOperation("combos").
				WithDetail("size", combosSize)
		}
		return runOperation(cmd, seqop.OpCombinations, args, seqop.Request{
			Size:     combosSize,
			Distinct: combosDistinct,
		})
	},
}

var permsCmd = &cobra.Command{
	Use:   "perms [elements...]",
	Short: "Generate all orderings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, seqop.OpPermutations, args, seqop.Request{Distinct: permsDistinct})
	},
}

var tileCmd = &cobra.Command{
	Use:   "tile [elements...]",
	Short: "Repeat the sequence as rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, seqop.OpTile, args, seqop.Request{Times: tileTimes})
	},
}

func init() {
	combosCmd.Flags().IntVarP(&combosSize, "size", "k", seqop.AllSizes, "only subsets of this size (-1 for all)")
	combosCmd.Flags().BoolVar(&combosDistinct, "distinct", false, "drop repeated subsets")
	permsCmd.Flags().BoolVar(&permsDistinct, "distinct", false, "drop repeated orderings")
	tileCmd.Flags().IntVarP(&tileTimes, "times", "n", 2, "number of rows")

	rootCmd.AddCommand(combosCmd, permsCmd, tileCmd)
}
