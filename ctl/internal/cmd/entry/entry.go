package entry

import (
	"github.com/proxfs/proxfs-go/common/logger"
	"github.com/proxfs/proxfs-go/common/vfs"
	"github.com/proxfs/proxfs-go/ctl/internal/config"
	"github.com/spf13/cobra"
)

// Creates the "entry" command.
func NewEntryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Inspect and modify entries on a mounted device",
		Long:  "Contains commands working with file and directory entries through device-prefixed paths.",
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newTypeCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newReadCmd())
	cmd.AddCommand(newWriteCmd())

	return cmd
}

// withClient wires up logging and a mounted client for a subcommand run and
// tears both down afterwards.
func withClient(fn func(client *vfs.Client, log *logger.Logger) error) error {
	log, err := config.NewLogger()
	if err != nil {
		return err
	}
	defer func() {
		// Sync on stderr may fail (e.g. when it is a terminal); nothing
		// useful can be done about it here.
		_ = log.Sync()
	}()

	client, err := config.NewMountedClient(log)
	if err != nil {
		return err
	}
	defer client.Finalize()
	return fn(client, log)
}
