package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/seqkit/internal/seqop"
)

var (
	runSize     int
	runTimes    int
	runSub      string
	runDistinct bool
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List available operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.renderer.RenderOperations(cmd.OutOrStdout(), seqop.Operations())
	},
}

var runCmd = &cobra.Command{
	Use:   "run <operation> [elements...]",
	Short: "Run an operation by its registry name (see ops)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, args[0], args[1:], seqop.Request{
			Size:     runSize,
			Times:    runTimes,
			Sub:      strings.Fields(runSub),
			Distinct: runDistinct,
		})
	},
}

func init() {
	runCmd.Flags().IntVar(&runSize, "size", seqop.AllSizes, "combination size (-1 for all)")
	runCmd.Flags().IntVar(&runTimes, "times", 2, "rows for tile")
	runCmd.Flags().StringVar(&runSub, "sub", "", "subsequence for contains")
	runCmd.Flags().BoolVar(&runDistinct, "distinct", false, "drop repeated sequences")

	rootCmd.AddCommand(opsCmd, runCmd)
}
