// Package config loads the application configuration from
// ~/.config/taskpad/config.json, creating it with defaults on first run.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// StorageDriver selects the durable store: "sqlite" (default) or "postgres".
	StorageDriver string `mapstructure:"storage_driver"`
	// StoragePath is the SQLite file path, or the lib/pq DSN for postgres.
	StoragePath string `mapstructure:"storage_path"`
	// KeyMap holds per-action key binding overrides.
	KeyMap map[string]string `mapstructure:"keymap"`
	// LogFile receives log output while the TUI is running.
	LogFile string `mapstructure:"log_file"`
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "taskpad"), nil
}

// Load reads the configuration from configPath, or from the default location
// when configPath is empty. A missing default file is created so the user
// has something to edit.
func Load(configPath string) (Config, error) {
	configDir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		StorageDriver: "sqlite",
		StoragePath:   filepath.Join(configDir, "taskpad.db"),
		KeyMap:        map[string]string{},
		LogFile:       filepath.Join(configDir, "taskpad.log"),
	}

	v := viper.New()
	v.SetConfigType("json")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	v.SetDefault("storage_driver", cfg.StorageDriver)
	v.SetDefault("storage_path", cfg.StoragePath)
	v.SetDefault("keymap", cfg.KeyMap)
	v.SetDefault("log_file", cfg.LogFile)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, err
		}
		// Config file not found, create default config
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return cfg, err
		}
		if err := v.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
