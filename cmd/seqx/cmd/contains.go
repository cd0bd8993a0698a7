package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/seqkit/internal/seqop"
)

var containsSub string

var containsCmd = &cobra.Command{
	Use:   "contains --sub \"elements\" [elements...]",
	Short: "Find a contiguous subsequence",
	Long: `Report whether --sub occurs as a contiguous run inside the sequence,
and at which index. An empty --sub is always found at index 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, seqop.OpContains, args, seqop.Request{
			Sub: strings.Fields(containsSub),
		})
	},
}

func init() {
	containsCmd.Flags().StringVarP(&containsSub, "sub", "s", "", "whitespace separated subsequence")

	rootCmd.AddCommand(containsCmd)
}
