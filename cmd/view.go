package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pepcheck.dev/pkg/pepcheck/internal/domain"
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View saved style reports",
		Long: `Without arguments, list the reports saved in the output directory.
With a report path, show that report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viewArgs := domain.ViewArgs{Reports: m.Path(viper.GetString(outputFlagName))}
			if len(args) == 1 {
				viewArgs.Report = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), viewArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
