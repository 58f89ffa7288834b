package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	BinaryName = "proxfs"
	Version    = "local-build"
	Commit     = "unknown"
	BuildTime  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the command line tool version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %s | Commit %s | Built: %s\n", Version, Commit, BuildTime)
	},
}
