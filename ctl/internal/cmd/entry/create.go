package entry

import (
	"github.com/proxfs/proxfs-go/common/fsp"
	"github.com/proxfs/proxfs-go/common/logger"
	"github.com/proxfs/proxfs-go/common/vfs"
	"github.com/spf13/cobra"
)

type create_Config struct {
	size int64
	dir  bool
}

func newCreateCmd() *cobra.Command {
	cfg := create_Config{}

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *vfs.Client, log *logger.Logger) error {
				if cfg.dir {
					return client.CreateDirectory(args[0])
				}
				return client.CreateFile(args[0], cfg.size, fsp.FileAttributeNone)
			})
		},
	}

	cmd.Flags().Int64Var(&cfg.size, "size", 0,
		"Preallocate the file to this many bytes.")
	cmd.Flags().BoolVar(&cfg.dir, "dir", false,
		"Create a directory instead of a file (--size is ignored).")

	return cmd
}
