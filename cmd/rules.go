package cmd

import (
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the style rules",
		Long:  "List every style rule in evaluation order with the input it reads and what it checks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Rules(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
