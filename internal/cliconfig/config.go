package cliconfig

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/bft-labs/memload/internal/domain"
	"github.com/bft-labs/memload/pkg/bundle"
	"github.com/bft-labs/memload/pkg/log"
)

// Config holds CLI configuration for memload.
type Config struct {
	// Domain is the execution domain id bundles are registered under.
	Domain int

	InitialCapacity int

	// Decompress enables decoding of XALZ-compressed images on registration.
	Decompress bool

	// Compression is the bundle framing written by pack ("none" or "zstd").
	Compression string

	// XALZ makes pack store each image LZ4-compressed in an XALZ envelope.
	XALZ bool

	LogLevel string

	// Debounce delays re-registration after a watched bundle changes.
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Domain:          1,
		InitialCapacity: 4,
		Decompress:      true,
		Compression:     "zstd",
		LogLevel:        "info",
		Debounce:        200 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Domain < math.MinInt32 || c.Domain > math.MaxInt32 {
		return fmt.Errorf("%w: domain %d out of range", domain.ErrInvalidConfig, c.Domain)
	}
	if c.InitialCapacity <= 0 {
		return fmt.Errorf("%w: initial capacity must be positive", domain.ErrInvalidConfig)
	}
	if _, err := bundle.ParseCompression(c.Compression); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", domain.ErrInvalidConfig, err)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// DomainID returns Domain as a domain id. Call Validate first.
func (c *Config) DomainID() domain.DomainID {
	return domain.DomainID(c.Domain)
}

// BundleCompression returns the parsed Compression. Call Validate first.
func (c *Config) BundleCompression() bundle.Compression {
	comp, _ := bundle.ParseCompression(c.Compression)
	return comp
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Zero and negative values are applied; domain ids may be either.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
