package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/punchline/internal/model"
)

const (
	backendFile   = "file"
	backendDuckDB = "duckdb"
)

// appConfig is the runtime configuration, read from defaults, the config
// file, PUNCHLINE_* environment variables, and flags, in increasing priority.
type appConfig struct {
	APIBaseURL       string        `mapstructure:"api-base-url"`
	RequestTimeout   time.Duration `mapstructure:"request-timeout"`
	DefaultCategory  string        `mapstructure:"default-category"`
	StorageBackend   string        `mapstructure:"storage-backend"`
	DataDir          string        `mapstructure:"data-dir"`
	DBPath           string        `mapstructure:"db-path"`
	CompanionEnabled bool          `mapstructure:"companion-enabled"`
	CompanionAddr    string        `mapstructure:"companion-addr"`
	ToastDuration    time.Duration `mapstructure:"toast-duration"`
	ConfigPath       string        `mapstructure:"-"` // not from config file
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"category":        "default-category",
	"storage-backend": "storage-backend",
	"api-base-url":    "api-base-url",
	"request-timeout": "request-timeout",
}

func loadConfig(configPath string, flags *pflag.FlagSet) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	dataDir := filepath.Join(home, ".local", "share", "punchline")

	v := viper.New()
	v.SetEnvPrefix("PUNCHLINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-base-url", model.DefaultAPIBaseURL)
	v.SetDefault("request-timeout", model.DefaultRequestTimeout)
	v.SetDefault("default-category", model.CategoryAny)
	v.SetDefault("storage-backend", backendFile)
	v.SetDefault("data-dir", dataDir)
	v.SetDefault("db-path", filepath.Join(dataDir, "punchline.duckdb"))
	v.SetDefault("companion-enabled", true)
	v.SetDefault("companion-addr", model.DefaultCompanionAddr)
	v.SetDefault("toast-duration", model.DefaultToastDuration)

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return cfg, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "punchline", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if flags != nil {
		if off, err := flags.GetBool("no-companion"); err == nil && off {
			cfg.CompanionEnabled = false
		}
	}

	cfg.DataDir = expandHome(cfg.DataDir, home)
	cfg.DBPath = expandHome(cfg.DBPath, home)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *appConfig) validate() error {
	category, ok := model.CanonicalCategory(c.DefaultCategory)
	if !ok {
		return fmt.Errorf("invalid default-category %q (want one of %s)", c.DefaultCategory, strings.Join(model.Categories, ", "))
	}
	c.DefaultCategory = category

	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case backendFile, backendDuckDB:
	default:
		return fmt.Errorf("invalid storage-backend %q (want %s or %s)", c.StorageBackend, backendFile, backendDuckDB)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid request-timeout: %s", c.RequestTimeout)
	}
	if c.ToastDuration <= 0 {
		c.ToastDuration = model.DefaultToastDuration
	}
	return nil
}

// expandHome expands a leading ~/ in path.
func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// printableConfig is the YAML shape written by --print-config.
type printableConfig struct {
	APIBaseURL       string `yaml:"api-base-url"`
	RequestTimeout   string `yaml:"request-timeout"`
	DefaultCategory  string `yaml:"default-category"`
	StorageBackend   string `yaml:"storage-backend"`
	DataDir          string `yaml:"data-dir"`
	DBPath           string `yaml:"db-path"`
	CompanionEnabled bool   `yaml:"companion-enabled"`
	CompanionAddr    string `yaml:"companion-addr"`
	ToastDuration    string `yaml:"toast-duration"`
}

// marshalConfigYAML renders the effective configuration as a config file.
func marshalConfigYAML(cfg appConfig) ([]byte, error) {
	return yaml.Marshal(printableConfig{
		APIBaseURL:       cfg.APIBaseURL,
		RequestTimeout:   cfg.RequestTimeout.String(),
		DefaultCategory:  cfg.DefaultCategory,
		StorageBackend:   cfg.StorageBackend,
		DataDir:          cfg.DataDir,
		DBPath:           cfg.DBPath,
		CompanionEnabled: cfg.CompanionEnabled,
		CompanionAddr:    cfg.CompanionAddr,
		ToastDuration:    cfg.ToastDuration.String(),
	})
}
