// Package config loads and saves the user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all fornance configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Provider ProviderConfig `toml:"provider"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	StateFile string `toml:"state_file,omitempty"`
}

// ProviderConfig holds exchange rate service settings.
type ProviderConfig struct {
	APIKey  string `toml:"api_key,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			StateFile: DefaultStateFile(),
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fornance")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fornance")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultStateFile returns the XDG-compliant location of the persisted state
// document.
func DefaultStateFile() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fornance", "fornance.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fornance", "fornance.json")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config file %q: %w", ConfigPath(), err)
	}
	if cfg.General.StateFile == "" {
		cfg.General.StateFile = DefaultStateFile()
	}
	return cfg, nil
}

// Save writes the config file, creating the config directory when needed.
func Save(cfg Config) error {
	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	f, err := os.Create(ConfigPath())
	if err != nil {
		return fmt.Errorf("could not open config file for writing: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
