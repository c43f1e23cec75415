package logger

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/viant/refd/config"
)

// LevelEnv overrides the configured log level
const LevelEnv = "REFD_LOG_LEVEL"

// New creates a new hclog.Logger writing to stderr based on the configuration and the provided name.
func New(cfg *config.Config, name string) hclog.Logger {
	return NewWithOutput(cfg, name, os.Stderr)
}

// NewWithOutput creates a logger writing to output
func NewWithOutput(cfg *config.Config, name string, output io.Writer) hclog.Logger {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: cfg.Logger.DisableTime,
		JSONFormat:  cfg.Logger.JSON,
		Output:      output,
		Level:       determineLogLevel(cfg, output),
	})
}

// determineLogLevel returns a log level determined first by an environment variable, and if not set, by the configuration.
func determineLogLevel(cfg *config.Config, output io.Writer) hclog.Level {
	if levelEnv := os.Getenv(LevelEnv); levelEnv != "" {
		return parseLogLevel(strings.ToUpper(levelEnv), output)
	}
	return parseLogLevel(strings.ToUpper(cfg.Logger.Level), output)
}

// parseLogLevel converts a string level to hclog.Level.
func parseLogLevel(levelStr string, output io.Writer) hclog.Level {
	switch levelStr {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO", "":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		hclog.New(&hclog.LoggerOptions{
			Level:       hclog.Warn,
			DisableTime: true,
			Output:      output,
		}).Warn("Unrecognized log level, defaulting to INFO", "providedLevel", levelStr)
		return hclog.Info
	}
}
