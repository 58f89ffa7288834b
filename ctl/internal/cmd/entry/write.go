package entry

import (
	"io"
	"os"

	"github.com/proxfs/proxfs-go/common/logger"
	"github.com/proxfs/proxfs-go/common/vfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type write_Config struct {
	appendTo bool
}

func newWriteCmd() *cobra.Command {
	cfg := write_Config{}

	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Write stdin to a file, creating it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *vfs.Client, log *logger.Logger) error {
				return runWriteCmd(client, log, args[0], cfg)
			})
		},
	}

	cmd.Flags().BoolVar(&cfg.appendTo, "append", false,
		"Append to the file instead of overwriting from the start.")

	return cmd
}

func runWriteCmd(client *vfs.Client, log *logger.Logger, path string, cfg write_Config) error {
	opt := vfs.OpenCreate | vfs.OpenWrite
	if cfg.appendTo {
		opt |= vfs.OpenAppend
	}

	file, err := client.OpenFile(path, opt)
	if err != nil {
		return err
	}

	buf := make([]byte, readChunkSize)
	var written int64
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if _, werr := file.Write(buf[:n]); werr != nil {
				return werr
			}
			written += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	log.Debug("wrote file", zap.String("path", path), zap.Int64("bytes", written))
	return nil
}
