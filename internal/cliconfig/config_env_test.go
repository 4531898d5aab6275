package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"MEMLOAD_DOMAIN":           "7",
				"MEMLOAD_INITIAL_CAPACITY": "16",
				"MEMLOAD_DECOMPRESS":       "1",
				"MEMLOAD_COMPRESSION":      "none",
				"MEMLOAD_XALZ":             "true",
				"MEMLOAD_LOG_LEVEL":        "debug",
				"MEMLOAD_DEBOUNCE":         "1s",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Domain:          7,
				InitialCapacity: 16,
				Decompress:      true,
				Compression:     "none",
				XALZ:            true,
				LogLevel:        "debug",
				Debounce:        time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"MEMLOAD_DOMAIN":    "7",
				"MEMLOAD_LOG_LEVEL": "debug",
			},
			changed: map[string]bool{"domain": true},
			initial: Config{Domain: 3},
			expected: Config{
				Domain:   3,
				LogLevel: "debug",
			},
		},
		{
			name: "false-ish bool disables",
			envVars: map[string]string{
				"MEMLOAD_DECOMPRESS": "no",
			},
			changed:  map[string]bool{},
			initial:  Config{Decompress: true},
			expected: Config{Decompress: false},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"MEMLOAD_DEBOUNCE": "soon",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"MEMLOAD_DOMAIN": "root",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range envKeys {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

var envKeys = []string{
	"MEMLOAD_DOMAIN",
	"MEMLOAD_INITIAL_CAPACITY",
	"MEMLOAD_DECOMPRESS",
	"MEMLOAD_COMPRESSION",
	"MEMLOAD_XALZ",
	"MEMLOAD_LOG_LEVEL",
	"MEMLOAD_DEBOUNCE",
}
