// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// Config holds the application configuration. The engine packages take
// their few tunables as plain arguments; this covers the outer surfaces
// (logging, default context, history, output).
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Context ContextConfig `mapstructure:"context" yaml:"context"`
	History HistoryConfig `mapstructure:"history" yaml:"history"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
}

// LoggerConfig controls the zap logger setup.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"` // console or json
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// ContextConfig is the declared project context. Empty fields are filled by
// the inference heuristic at assessment time.
type ContextConfig struct {
	ProjectName string   `mapstructure:"project_name" yaml:"project_name"`
	Domain      string   `mapstructure:"domain" yaml:"domain"`
	Stage       string   `mapstructure:"stage" yaml:"stage"`
	TeamSize    string   `mapstructure:"team_size" yaml:"team_size"`
	Criticality string   `mapstructure:"criticality" yaml:"criticality"`
	Tags        []string `mapstructure:"tags" yaml:"tags"`
}

// ProjectContext converts the config section into the engine's context
// value. Unknown enum values are left to the engine's normalization, which
// replaces them with defaults rather than failing.
func (c ContextConfig) ProjectContext() schemas.ProjectContext {
	return schemas.ProjectContext{
		ProjectName: c.ProjectName,
		Domain:      schemas.Domain(c.Domain),
		Stage:       schemas.Stage(c.Stage),
		TeamSize:    schemas.TeamSize(c.TeamSize),
		Criticality: schemas.Criticality(c.Criticality),
		Tags:        c.Tags,
	}
}

// HistoryConfig controls the append-only snapshot history.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// OutputConfig controls report rendering defaults.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // json, yaml, or markdown
}

// SetDefaults initializes default values on a viper instance.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "reqlens")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Context --
	// No defaults for domain/stage/team_size/criticality: empty means
	// "infer from project name and tags".
	v.SetDefault("context.tags", []string{})

	// -- History --
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.path", "reqlens-history.db")

	// -- Output --
	v.SetDefault("output.format", "markdown")
}

// NewConfigFromViper unmarshals and validates a configuration.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// NewDefaultConfig returns the configuration produced by defaults alone.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := NewConfigFromViper(v)
	if err != nil {
		// Defaults are static; this only fires on a programming error.
		panic(fmt.Sprintf("default configuration invalid: %v", err))
	}
	return cfg
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	switch c.Output.Format {
	case "", "json", "yaml", "markdown":
	default:
		return fmt.Errorf("output.format must be json, yaml, or markdown, got %q", c.Output.Format)
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}
	return nil
}
