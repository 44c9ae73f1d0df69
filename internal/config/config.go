// Package config handles loading and saving stt configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/stt/config.yaml
//   - Data:   ~/.local/share/stt/stt.db
//   - State:  ~/.local/state/stt/stt.log
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for stt.
type Config struct {
	DBPath    string `yaml:"db_path,omitempty"`    // SQLite file; empty uses the XDG data dir
	SaveEvery int    `yaml:"save_every,omitempty"` // Timer ticks between saves
	ExportDir string `yaml:"export_dir,omitempty"` // Where exports are written
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SaveEvery: 5,
		ExportDir: ".",
	}
}

// ConfigDir returns the config directory for stt. STT_CONFIG_DIR overrides
// the XDG location.
func ConfigDir() string {
	if v := strings.TrimSpace(os.Getenv("STT_CONFIG_DIR")); v != "" {
		return v
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "stt")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stt")
}

// StateDir returns the XDG state directory for stt.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "stt")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "stt")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.SaveEvery <= 0 {
		cfg.SaveEvery = DefaultConfig().SaveEvery
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = DefaultConfig().ExportDir
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.ExportDir = expandHome(cfg.ExportDir)
	return cfg, nil
}

// Save writes config to the config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}
	return SaveTo(path, cfg)
}

// SaveTo writes config to a specific path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
