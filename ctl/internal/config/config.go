// Package config holds the global configuration of the proxfs tool. Values
// are registered as persistent flags on the root command and mirrored into
// Viper so commands and helper packages can read them without threading a
// config struct everywhere.
package config

import (
	"fmt"
	"strings"

	"github.com/proxfs/proxfs-go/common/fsp"
	"github.com/proxfs/proxfs-go/common/logger"
	"github.com/proxfs/proxfs-go/common/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viper keys for the global config. Should be used when accessing it
// instead of raw strings. These double as the command line flag and env
// variable names.
const (
	// Directory backing the mounted device, or MemoryRoot to keep everything
	// in memory for the lifetime of the process.
	RootKey = "root"
	// The device name the backing filesystem is mounted under.
	DeviceKey = "device"
	// Set the log level (1 - least verbosity, 5 - highest verbosity).
	LogLevelKey = "log-level"
	// Write logs to this file instead of stderr.
	LogFileKey = "log-file"
	// Sets up a reasonable default development logging configuration:
	// everything at DebugLevel and above with a console encoder.
	LogDeveloperKey = "log-developer"
)

// MemoryRoot selects the in-memory service instead of a backing directory.
const MemoryRoot = "mem"

// InitGlobalFlags registers the global flags on the root command and binds
// them to Viper together with PROXFS_* environment variables.
func InitGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(RootKey, MemoryRoot,
		"Directory backing the mounted device (\"mem\" keeps everything in memory).")
	cmd.PersistentFlags().String(DeviceKey, "sdmc",
		"Name the backing filesystem is mounted under.")
	cmd.PersistentFlags().Int8(LogLevelKey, 3,
		"Set the log level (1, 3 or 5).")
	cmd.PersistentFlags().String(LogFileKey, "",
		"Write logs to this file instead of stderr.")
	cmd.PersistentFlags().Bool(LogDeveloperKey, false,
		"Enable the developer logging configuration.")

	viper.SetEnvPrefix("proxfs")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlags(cmd.PersistentFlags()))
}

// NewLogger builds the logger selected by the global flags.
func NewLogger() (*logger.Logger, error) {
	cfg := logger.Config{
		Type:      logger.StdErr,
		Level:     int8(viper.GetInt(LogLevelKey)),
		Developer: viper.GetBool(LogDeveloperKey),
	}
	if file := viper.GetString(LogFileKey); file != "" {
		cfg.Type = logger.LogFile
		cfg.File = file
	}
	return logger.New(cfg)
}

// Device returns the configured device name without a trailing delimiter.
func Device() string {
	return strings.TrimSuffix(viper.GetString(DeviceKey), ":")
}

// NewMountedClient returns an initialized client with the configured device
// mounted. The caller must call Finalize when done.
func NewMountedClient(log *logger.Logger) (*vfs.Client, error) {
	root := viper.GetString(RootKey)
	factory := vfs.SessionFactory(func() (fsp.Provider, error) {
		return fsp.NewMemoryProvider(), nil
	})
	if root != MemoryRoot {
		factory = func() (fsp.Provider, error) {
			return fsp.NewLocalProvider(root)
		}
	}

	client := vfs.New(factory, vfs.WithLogger(log.Logger))
	if err := client.Initialize(); err != nil {
		return nil, fmt.Errorf("unable to establish a filesystem proxy session: %w", err)
	}
	if err := client.MountSdCard(Device()); err != nil {
		client.Finalize()
		return nil, fmt.Errorf("unable to mount device %s: %w", Device(), err)
	}
	return client, nil
}
