package cmd

import (
	"context"
	"strings"

	"github.com/proxfs/proxfs-go/ctl/internal/cmd/entry"
	"github.com/proxfs/proxfs-go/ctl/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Main entry point of the tool.
func Execute() int {
	cmd := &cobra.Command{
		Use:   BinaryName,
		Short: "The proxfs command line tool.",
		Long: `The proxfs command line tool.

This tool drives a virtual filesystem mounted over the filesystem-proxy
service. Paths are device-prefixed ("sdmc:/dir/file"); the device is
mounted from the configured backing root before each command runs.

* View help for specific commands with "<command> help".`,
		SilenceUsage: true,
	}

	// Normalize flags to lowercase - makes the program accept case
	// insensitive flags.
	cmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	config.InitGlobalFlags(cmd)

	cmd.AddCommand(versionCmd)
	cmd.AddCommand(entry.NewEntryCmd())

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}
