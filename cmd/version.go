package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"pepcheck.dev/pkg/pepcheck/internal/domain"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version used to build pepcheck and the number of style rules.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
			} else {
				cmd.Println("pepcheck version\t", info.Main.Version)
				cmd.Println("go version\t", info.GoVersion)
			}

			cmd.Println("rules\t", len(domain.DefaultRules()))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
