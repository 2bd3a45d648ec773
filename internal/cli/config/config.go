package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the stencil configuration
type Config struct {
	Server    ServerConfig   `mapstructure:"server"`
	Manifests ManifestConfig `mapstructure:"manifests"`
	Watch     WatchConfig    `mapstructure:"watch"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// ManifestConfig controls which pattern manifests are loaded
type ManifestConfig struct {
	// Dirs lists directories of manifest JSON files loaded on top of the
	// built-in pattern set
	Dirs []string `mapstructure:"dirs"`

	// DisableBuiltins skips registering the built-in pattern set
	DisableBuiltins bool `mapstructure:"disable_builtins"`
}

// WatchConfig controls the file watcher
type WatchConfig struct {
	// DebounceMillis is the quiet period after a file event before
	// revalidation runs
	DebounceMillis int `mapstructure:"debounce_millis"`
}

// Load loads the configuration from stencil.yml or stencil.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 7420)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("watch.debounce_millis", 250)

	v.SetConfigName("stencil")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support (STENCIL_SERVER_PORT etc.)
	v.SetEnvPrefix("stencil")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Watch.DebounceMillis < 0 {
		return nil, fmt.Errorf("invalid watch debounce: %d", config.Watch.DebounceMillis)
	}

	return &config, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
