// Package cmd provides the root command and CLI setup for pepcheck.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pepcheck.dev/pkg/pepcheck/internal/adapter"
	"pepcheck.dev/pkg/pepcheck/internal/controller"
	"pepcheck.dev/pkg/pepcheck/internal/domain"
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

var sourceFSAdapter adapter.SourceFSAdapter
var pythonFileAdapter adapter.PythonFileAdapter
var reportStore adapter.ReportStore
var engine domain.Engine
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	pythonFileAdapter = adapter.NewLocalPythonFileAdapter()
	reportStore = adapter.NewLocalReportStore(sourceFSAdapter)
	engine = domain.NewEngine(pythonFileAdapter)
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		reportStore,
		ui,
		engine,
	)
}

const rootLongDescription = `pepcheck checks Python source files against a fixed set of PEP 8 style
rules: header lines, docstrings, type hints, naming, layout and the
script entry point. Every file gets a report listing each rule and the
violations it found.`

const checkLongDescription = `Check one or more Python files and print a report for each of them.

Every path must name an existing regular file with a recognized extension
(.py by default, see --ext). All paths are validated before any file is
checked. With --save the reports are written to the output directory as
<name>_analyzation_result.txt (or .yaml) instead of being printed.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pepcheck",
		Short: "Python style checker",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its persistent flags, for tests
// that attach fresh subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory for saved reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
