package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (MEMLOAD_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("domain", os.Getenv("MEMLOAD_DOMAIN"), &cfg.Domain); err != nil {
		return err
	}
	if err := s.setIntFromString("initial-capacity", os.Getenv("MEMLOAD_INITIAL_CAPACITY"), &cfg.InitialCapacity); err != nil {
		return err
	}

	s.setBoolFromString("decompress", os.Getenv("MEMLOAD_DECOMPRESS"), &cfg.Decompress)
	s.setString("compression", os.Getenv("MEMLOAD_COMPRESSION"), &cfg.Compression)
	s.setBoolFromString("xalz", os.Getenv("MEMLOAD_XALZ"), &cfg.XALZ)
	s.setString("log-level", os.Getenv("MEMLOAD_LOG_LEVEL"), &cfg.LogLevel)

	return s.setDuration("debounce", os.Getenv("MEMLOAD_DEBOUNCE"), &cfg.Debounce)
}
