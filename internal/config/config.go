// Package config loads alias-resolver settings from alias-resolver.yaml, the
// environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FileName is the config file name without extension.
	FileName = "alias-resolver"
	fileType = "yaml"

	// EnvPrefix prefixes environment overrides, e.g. ALIAS_RESOLVER_LOG_LEVEL.
	EnvPrefix = "ALIAS_RESOLVER"
)

// Keys shared with flag bindings.
const (
	KeyModelFiles    = "model.files"
	KeyModelPackages = "model.packages"
	KeyCacheEnabled  = "cache.enabled"
	KeyMappingType   = "endpoint.mapping_type"
	KeyLogLevel      = "log.level"
	KeyLogQuiet      = "log.quiet"
)

// Config represents the alias-resolver configuration
type Config struct {
	Model    ModelConfig    `mapstructure:"model"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Endpoint EndpointConfig `mapstructure:"endpoint"`
	Log      LogConfig      `mapstructure:"log"`
}

// ModelConfig lists the model sources.
type ModelConfig struct {
	Files    []string `mapstructure:"files"`    // YAML model files
	Packages []string `mapstructure:"packages"` // Go package patterns
}

// CacheConfig controls alias link caching.
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// EndpointConfig configures the endpoint reader.
type EndpointConfig struct {
	MappingType string `mapstructure:"mapping_type"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Quiet bool   `mapstructure:"quiet"`
}

// New returns a viper instance with defaults and environment lookup set up.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyCacheEnabled, true)
	v.SetDefault(KeyMappingType, "org.springframework.web.bind.annotation.RequestMapping")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogQuiet, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file and returns the merged configuration. With an
// empty path alias-resolver.yaml is looked up in the current directory and
// may be missing; an explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType(fileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	if _, err := c.Log.level(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Endpoint.MappingType) == "" {
		return fmt.Errorf("%s must not be empty", KeyMappingType)
	}

	return nil
}

// HasModel reports whether any model source is configured.
func (c *Config) HasModel() bool {
	return len(c.Model.Files) > 0 || len(c.Model.Packages) > 0
}

func (c LogConfig) level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return lvl, fmt.Errorf("invalid %s %q: %w", KeyLogLevel, c.Level, err)
	}

	return lvl, nil
}

// NewLogger builds the logger described by c: a no-op logger when quiet, a
// development logger at debug level and a production logger otherwise.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	if c.Quiet {
		return zap.NewNop(), nil
	}

	lvl, err := c.level()
	if err != nil {
		return nil, err
	}

	if lvl == zapcore.DebugLevel {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
