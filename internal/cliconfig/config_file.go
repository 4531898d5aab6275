package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Domain          *int   `toml:"domain"`
	InitialCapacity *int   `toml:"initial_capacity"`
	Decompress      *bool  `toml:"decompress"`
	Compression     string `toml:"compression"`
	XALZ            *bool  `toml:"xalz"`
	LogLevel        string `toml:"log_level"`
	Debounce        string `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.memload/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".memload", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("domain", fc.Domain, &cfg.Domain)
	s.setInt("initial-capacity", fc.InitialCapacity, &cfg.InitialCapacity)
	s.setBool("decompress", fc.Decompress, &cfg.Decompress)
	s.setString("compression", fc.Compression, &cfg.Compression)
	s.setBool("xalz", fc.XALZ, &cfg.XALZ)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	return s.setDuration("debounce", fc.Debounce, &cfg.Debounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
