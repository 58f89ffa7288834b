package entry

import (
	"fmt"

	"github.com/proxfs/proxfs-go/common/fsp"
	"github.com/proxfs/proxfs-go/common/logger"
	"github.com/proxfs/proxfs-go/common/vfs"
	"github.com/spf13/cobra"
)

type remove_Config struct {
	recursive bool
}

func newRemoveCmd() *cobra.Command {
	cfg := remove_Config{}

	cmd := &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *vfs.Client, log *logger.Logger) error {
				return runRemoveCmd(client, args[0], cfg)
			})
		},
	}

	cmd.Flags().BoolVar(&cfg.recursive, "recursive", false,
		"Required to remove directories; everything below is removed too.")

	return cmd
}

func runRemoveCmd(client *vfs.Client, path string, cfg remove_Config) error {
	entryType, err := client.GetEntryType(path)
	if err != nil {
		return err
	}
	if entryType == fsp.EntryTypeDirectory {
		if !cfg.recursive {
			return fmt.Errorf("%s is a directory (use --recursive to remove it)", path)
		}
		return client.DeleteDirectory(path)
	}
	return client.DeleteFile(path)
}
