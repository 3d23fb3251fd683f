package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const AppName = "folio"

type Config struct {
	Content    string `mapstructure:"content"`
	StaticDir  string `mapstructure:"static_dir"`
	OutputDir  string `mapstructure:"output_dir"`
	Stylesheet string `mapstructure:"stylesheet"`
	Addr       string `mapstructure:"addr"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	Dev        bool   `mapstructure:"dev"`
}

// New returns a viper instance with folio's defaults, search paths and
// FOLIO_ environment binding. An explicit file overrides the search paths.
func New(file string) *viper.Viper {
	v := viper.New()

	v.SetDefault("content", "content.yaml")
	v.SetDefault("static_dir", "static")
	v.SetDefault("output_dir", "dist")
	v.SetDefault("stylesheet", "")
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("dev", false)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Read loads the config file if there is one. A missing file is only an
// error when it was named explicitly.
func Read(v *viper.Viper, explicit bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && !explicit {
		return nil
	}
	return fmt.Errorf("failed to read config file: %w", err)
}

func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Content == "" {
		return fmt.Errorf("content path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format: %s (must be text or json)", c.LogFormat)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn or error)", c.LogLevel)
	}

	return nil
}

// Dir is the user-level config directory, $XDG_CONFIG_HOME/folio.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
