// Package logger provides the common logging implementation for proxfs
// tools. It wraps zap so logging destinations and verbosity can be extended
// later with minimal changes inside individual applications.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a wrapper around zap.Logger. The atomic level is kept so the
// verbosity can be adjusted after the application has started.
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// Config represents the configuration for a Logger.
type Config struct {
	Type            supportedLogTypes `mapstructure:"type"`
	File            string            `mapstructure:"file"`
	Level           int8              `mapstructure:"level"`
	MaxSize         int               `mapstructure:"max-size"`
	NumRotatedFiles int               `mapstructure:"num-rotated-files"`
	Developer       bool              `mapstructure:"developer"`
}

type supportedLogTypes string

const (
	StdOut  supportedLogTypes = "stdout"
	StdErr  supportedLogTypes = "stderr"
	LogFile supportedLogTypes = "logfile"
)

// SupportedLogTypes is a slice of supported log types. Any log types added
// in the future must be added to this slice. It is used for printing help
// text, for example if an invalid type is specified.
var SupportedLogTypes = []supportedLogTypes{
	StdOut,
	StdErr,
	LogFile,
}

// New returns a new logger based on the provided configuration.
func New(newConfig Config) (*Logger, error) {

	logMgr := Logger{}

	// Use the opinionated Zap development configuration. This notably gives
	// us stack traces at warn and error levels.
	if newConfig.Developer {
		// Ignore the configured level and log everything for developer
		// configurations.
		zapLevel, err := getLevel(5)
		if err != nil {
			return nil, err
		}
		logMgr.level = zap.NewAtomicLevelAt(zapLevel)

		cfg := zap.NewDevelopmentConfig()
		cfg.Level = logMgr.level
		l, err := cfg.Build()
		if err != nil {
			return nil, err
		}
		logMgr.Logger = l
		return &logMgr, nil
	}

	// Otherwise build a production config based on the user settings:
	zapConfig := zap.NewProductionEncoderConfig()
	zapConfig.TimeKey = "timestamp"
	zapConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapEncoder := zapcore.NewConsoleEncoder(zapConfig)

	zapLevel, err := getLevel(newConfig.Level)
	if err != nil {
		return nil, err
	}
	logMgr.level = zap.NewAtomicLevelAt(zapLevel)

	// WriteSyncers handle writing the encoded entries somewhere. Supporting
	// a new log destination only requires swapping out the WriteSyncer.
	var logDestination zapcore.WriteSyncer
	switch newConfig.Type {
	case StdOut:
		logDestination = zapcore.AddSync(os.Stdout)
	case StdErr:
		logDestination = zapcore.AddSync(os.Stderr)
	case LogFile:
		// Just being able to write to the provided log file is not
		// sufficient if we want to rotate log files. Make sure the directory
		// selected for logging exists and we can write to it.
		if err := ensureLogsAreWritable(newConfig.File); err != nil {
			return nil, err
		}
		logDestination = zapcore.AddSync(&lumberjack.Logger{
			Filename:   newConfig.File,
			MaxSize:    newConfig.MaxSize,
			MaxBackups: newConfig.NumRotatedFiles,
		})
	default:
		return nil, fmt.Errorf("unsupported log type: %s", newConfig.Type)
	}

	logMgr.Logger = zap.New(zapcore.NewCore(zapEncoder, logDestination, logMgr.level))
	return &logMgr, nil
}

// SetLevel adjusts the verbosity of an already built logger.
func (lm *Logger) SetLevel(newLevel int8) error {
	zapLevel, err := getLevel(newLevel)
	if err != nil {
		return err
	}
	lm.level.SetLevel(zapLevel)
	return nil
}

// getLevel maps proxfs log levels to Zap log levels. The use of an atomic
// level means this can change after the application has started.
func getLevel(newLevel int8) (zapcore.Level, error) {
	switch newLevel {
	case 1:
		return zapcore.WarnLevel, nil
	case 3:
		return zapcore.InfoLevel, nil
	case 5:
		return zapcore.DebugLevel, nil
	default:
		// If we used zapcore.InvalidLevel we could cause a panic. So instead
		// return a sane level just in case something decides to ignore the
		// error and use the level we return anyway.
		return zapcore.InfoLevel, fmt.Errorf("the provided log.level (%d) is invalid (must be 1, 3, or 5)", newLevel)
	}
}

// ensureLogsAreWritable verifies the directory holding the log file exists
// and is writable before lumberjack takes over.
func ensureLogsAreWritable(logFile string) error {
	dir := filepath.Dir(logFile)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("unable to use %s for logging: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("unable to use %s for logging: not a directory", dir)
	}
	probe, err := os.CreateTemp(dir, ".proxfs-log-probe-*")
	if err != nil {
		return fmt.Errorf("unable to write logs to %s: %w", dir, err)
	}
	name := probe.Name()
	if err := probe.Close(); err != nil {
		return err
	}
	return os.Remove(name)
}
