package entry

import (
	"fmt"

	"github.com/proxfs/proxfs-go/common/logger"
	"github.com/proxfs/proxfs-go/common/vfs"
	"github.com/spf13/cobra"
)

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <path>",
		Short: "Print whether a path is a file or a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *vfs.Client, log *logger.Logger) error {
				entryType, err := client.GetEntryType(args[0])
				if err != nil {
					return err
				}
				fmt.Println(entryType)
				return nil
			})
		},
	}
}
