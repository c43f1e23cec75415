// Package config loads refd settings from .refd.yaml and REFD_ prefixed environment variables
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FileName is the config file name without extension
	FileName = ".refd"
	// EnvPrefix prefixes environment overrides, e.g. REFD_GRAPH_PATH
	EnvPrefix = "REFD"
)

// Config represents refd configuration
type Config struct {
	Graph   GraphConfig   `json:"graph" mapstructure:"graph"`
	Report  ReportConfig  `json:"report" mapstructure:"report"`
	Logger  LoggerConfig  `json:"logger" mapstructure:"logger"`
	Project ProjectConfig `json:"project" mapstructure:"project"`
}

// GraphConfig locates the program graph snapshot
type GraphConfig struct {
	Path   string `json:"path" mapstructure:"path"`
	Format string `json:"format" mapstructure:"format"`
}

// ReportConfig controls danger reporting
type ReportConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Output string `json:"output" mapstructure:"output"`
}

// LoggerConfig controls logging
type LoggerConfig struct {
	Level       string `json:"level" mapstructure:"level"`
	JSON        bool   `json:"json" mapstructure:"json"`
	DisableTime bool   `json:"disableTime" mapstructure:"disableTime"`
}

// ProjectConfig controls project detection
type ProjectConfig struct {
	Root string `json:"root" mapstructure:"root"`
}

// Graph formats
const (
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// Report formats
const (
	ReportText  = "text"
	ReportYAML  = "yaml"
	ReportSARIF = "sarif"
)

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Graph:  GraphConfig{Path: "refd.graph.yaml", Format: FormatYAML},
		Report: ReportConfig{Format: ReportText},
		Logger: LoggerConfig{Level: "info", DisableTime: true},
	}
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("graph.path", defaults.Graph.Path)
	v.SetDefault("graph.format", defaults.Graph.Format)
	v.SetDefault("report.format", defaults.Report.Format)
	v.SetDefault("report.output", defaults.Report.Output)
	v.SetDefault("logger.level", defaults.Logger.Level)
	v.SetDefault("logger.json", defaults.Logger.JSON)
	v.SetDefault("logger.disableTime", defaults.Logger.DisableTime)
	v.SetDefault("project.root", defaults.Project.Root)
}

// Load reads configuration from file when it is not empty, otherwise from .refd.yaml in dir;
// a missing default file yields defaults with environment overrides
func Load(dir, file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Clean(dir))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch strings.ToLower(c.Graph.Format) {
	case FormatYAML, FormatSQLite:
	default:
		return &Error{Field: "graph.format", Message: fmt.Sprintf("unsupported format %q", c.Graph.Format)}
	}
	switch strings.ToLower(c.Report.Format) {
	case ReportText, ReportYAML, ReportSARIF:
	default:
		return &Error{Field: "report.format", Message: fmt.Sprintf("unsupported format %q", c.Report.Format)}
	}
	return nil
}

// Error represents an invalid setting
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
