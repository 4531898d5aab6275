package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
domain = -2
initial_capacity = 8
decompress = false
compression = "none"
xalz = true
log_level = "warn"
debounce = "750ms"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Domain == nil || *fc.Domain != -2 {
		t.Errorf("Domain = %v, want -2", fc.Domain)
	}
	if fc.InitialCapacity == nil || *fc.InitialCapacity != 8 {
		t.Errorf("InitialCapacity = %v, want 8", fc.InitialCapacity)
	}
	if fc.Decompress == nil || *fc.Decompress {
		t.Errorf("Decompress = %v, want false", fc.Decompress)
	}
	if fc.Compression != "none" {
		t.Errorf("Compression = %q, want none", fc.Compression)
	}
	if fc.XALZ == nil || !*fc.XALZ {
		t.Errorf("XALZ = %v, want true", fc.XALZ)
	}
	if fc.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", fc.LogLevel)
	}
	if fc.Debounce != "750ms" {
		t.Errorf("Debounce = %q, want 750ms", fc.Debounce)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("domain = [unterminated"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	domainID := 9
	capacity := 32
	off := false

	tests := []struct {
		name     string
		fc       FileConfig
		changed  map[string]bool
		expected func(Config) Config
		wantErr  bool
	}{
		{
			name: "applies every field",
			fc: FileConfig{
				Domain:          &domainID,
				InitialCapacity: &capacity,
				Decompress:      &off,
				Compression:     "none",
				LogLevel:        "error",
				Debounce:        "2s",
			},
			changed: map[string]bool{},
			expected: func(c Config) Config {
				c.Domain = 9
				c.InitialCapacity = 32
				c.Decompress = false
				c.Compression = "none"
				c.LogLevel = "error"
				c.Debounce = 2 * time.Second
				return c
			},
		},
		{
			name:    "flags win over file",
			fc:      FileConfig{Domain: &domainID, LogLevel: "error"},
			changed: map[string]bool{"domain": true, "log-level": true},
			expected: func(c Config) Config {
				return c
			},
		},
		{
			name:     "empty file keeps defaults",
			fc:       FileConfig{},
			changed:  map[string]bool{},
			expected: func(c Config) Config { return c },
		},
		{
			name:    "invalid debounce",
			fc:      FileConfig{Debounce: "later"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ApplyFileConfig(&cfg, tt.fc, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			want := tt.expected(DefaultConfig())
			if cfg != want {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, want)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path == "" {
		t.Skip("home directory not available")
	}
	if !strings.HasSuffix(path, filepath.Join(".memload", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %q, want suffix .memload/config.toml", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existing, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if !FileExists(existing) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "missing.txt")) {
		t.Error("FileExists() = true for missing file")
	}
}
