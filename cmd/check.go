package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pepcheck.dev/pkg/pepcheck/internal/domain"
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

var checkSaveFlag bool
var checkFormatFlag string
var checkParallelFlag uint
var checkStrictFlag bool
var checkExtensionsFlag []string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check Python files for style violations",
		Long:  checkLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := domain.ParseFormat(viper.GetString(checkFormatKey))
			if err != nil {
				return err
			}

			// Usage is only useful for argument errors, not for check outcomes.
			cmd.SilenceUsage = true

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths:      parsePaths(args),
				Extensions: viper.GetStringSlice(extensionsKey),
				Output:     m.Path(viper.GetString(outputFlagName)),
				Save:       viper.GetBool(checkSaveKey),
				Format:     format,
				Parallel:   viper.GetUint(checkParallelKey),
				Strict:     viper.GetBool(checkStrictKey),
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&checkSaveFlag, saveFlagName, "s", viper.GetBool(checkSaveKey), "save reports to the output directory instead of printing them")
	bindFlagToConfig(cmd.Flags().Lookup(saveFlagName), checkSaveKey)

	cmd.Flags().StringVarP(&checkFormatFlag, formatFlagName, "f", viper.GetString(checkFormatKey), "report format (text, yaml)")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), checkFormatKey)

	cmd.Flags().UintVarP(&checkParallelFlag, parallelFlagName, "p", viper.GetUint(checkParallelKey), "number of files checked concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), checkParallelKey)

	cmd.Flags().BoolVar(&checkStrictFlag, strictFlagName, viper.GetBool(checkStrictKey), "exit with an error when any violation is found")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), checkStrictKey)

	cmd.Flags().StringSliceVarP(&checkExtensionsFlag, extensionsFlagName, "e", viper.GetStringSlice(extensionsKey), "accepted file extensions (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(extensionsFlagName), extensionsKey)
}
