package entry

import (
	"fmt"
	"os"

	"github.com/dsnet/golib/unitconv"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/proxfs/proxfs-go/common/fsp"
	"github.com/proxfs/proxfs-go/common/logger"
	"github.com/proxfs/proxfs-go/common/vfs"
	"github.com/spf13/cobra"
)

type list_Config struct {
	dirsOnly  bool
	filesOnly bool
	raw       bool
}

func newListCmd() *cobra.Command {
	cfg := list_Config{}

	cmd := &cobra.Command{
		Use:   "list <path>",
		Short: "List the entries of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *vfs.Client, log *logger.Logger) error {
				return runListCmd(client, args[0], cfg)
			})
		},
	}

	cmd.Flags().BoolVar(&cfg.dirsOnly, "dirs-only", false,
		"Only list directory entries.")
	cmd.Flags().BoolVar(&cfg.filesOnly, "files-only", false,
		"Only list file entries.")
	cmd.Flags().BoolVar(&cfg.raw, "raw", false,
		"Print sizes in bytes without IEC prefixes.")

	return cmd
}

func runListCmd(client *vfs.Client, path string, cfg list_Config) error {
	if cfg.dirsOnly && cfg.filesOnly {
		return fmt.Errorf("--dirs-only and --files-only are mutually exclusive")
	}
	mode := fsp.DirectoryOpenAll
	if cfg.dirsOnly {
		mode = fsp.DirectoryOpenDirectories
	} else if cfg.filesOnly {
		mode = fsp.DirectoryOpenFiles
	}

	dir, err := client.OpenDirectory(path, mode)
	if err != nil {
		return err
	}

	// Use a very simple style with only spaces as separators to make
	// parsing the output easier.
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.Style{
		Box: table.BoxStyle{
			PaddingRight:  "  ",
			PageSeparator: "\n",
		},
		Format: table.FormatOptions{
			Footer: text.FormatUpper,
			Header: text.FormatUpper,
		},
	})
	tbl.AppendHeader(table.Row{"name", "type", "size"})

	for {
		e, err := dir.Next()
		if err != nil {
			return err
		}
		if e == nil {
			break
		}
		size := "-"
		if e.Type == fsp.EntryTypeFile {
			if cfg.raw {
				size = fmt.Sprintf("%d", e.Size)
			} else {
				size = unitconv.FormatPrefix(float64(e.Size), unitconv.IEC, 1) + "B"
			}
		}
		tbl.AppendRow(table.Row{e.Name, e.Type.String(), size})
	}

	tbl.Render()
	return nil
}
