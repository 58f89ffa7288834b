package entry

import (
	"fmt"
	"os"

	"github.com/proxfs/proxfs-go/common/logger"
	"github.com/proxfs/proxfs-go/common/vfs"
	"github.com/spf13/cobra"
)

// Content is streamed in chunks of this size.
const readChunkSize = 32 * 1024

type read_Config struct {
	offset int64
	length int64
}

func newReadCmd() *cobra.Command {
	cfg := read_Config{}

	cmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Read file content to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *vfs.Client, log *logger.Logger) error {
				return runReadCmd(client, args[0], cfg)
			})
		},
	}

	cmd.Flags().Int64Var(&cfg.offset, "offset", 0,
		"Start reading at this byte offset.")
	cmd.Flags().Int64Var(&cfg.length, "length", -1,
		"Read at most this many bytes (-1 reads to the end of the file).")

	return cmd
}

func runReadCmd(client *vfs.Client, path string, cfg read_Config) error {
	if cfg.offset < 0 {
		return fmt.Errorf("--offset must not be negative")
	}

	file, err := client.OpenFile(path, vfs.OpenRead)
	if err != nil {
		return err
	}

	remaining := cfg.length
	if remaining < 0 {
		size, err := file.GetSize()
		if err != nil {
			return err
		}
		remaining = size - cfg.offset
	}
	if err := file.Seek(cfg.offset, vfs.SeekStart); err != nil {
		return err
	}

	buf := make([]byte, readChunkSize)
	for remaining > 0 {
		chunk := buf
		if remaining < int64(len(chunk)) {
			chunk = chunk[:remaining]
		}
		n, err := file.Read(chunk)
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		if _, err := os.Stdout.Write(chunk[:n]); err != nil {
			return err
		}
		remaining -= int64(len(chunk))
	}
	return nil
}
