package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ohm-tools/bandcode/internal/resistor"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "bandcode") {
		t.Errorf("GetConfigDir() = %v, should contain 'bandcode'", configDir)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %v, want 1", cfg.Version)
	}
	if cfg.DefaultBandCount != 6 {
		t.Errorf("DefaultBandCount = %v, want 6", cfg.DefaultBandCount)
	}
	policy, err := cfg.TolerancePolicy()
	if err != nil {
		t.Fatalf("TolerancePolicy() error = %v", err)
	}
	if policy != resistor.ToleranceUnspecified {
		t.Errorf("TolerancePolicy() = %v, want unspecified", policy)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`version: 1
three_band_tolerance: conventional20
default_band_count: 4
log_level: debug
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	policy, err := cfg.TolerancePolicy()
	if err != nil {
		t.Fatalf("TolerancePolicy() error = %v", err)
	}
	if policy != resistor.ToleranceConventional20 {
		t.Errorf("TolerancePolicy() = %v, want conventional20", policy)
	}
	if cfg.DefaultBandCount != 4 {
		t.Errorf("DefaultBandCount = %v, want 4", cfg.DefaultBandCount)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad version", "version: 2\n"},
		{"bad policy", "version: 1\nthree_band_tolerance: maybe\n"},
		{"bad band count", "version: 1\ndefault_band_count: 9\n"},
		{"not yaml", ": : :\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.data)
			}
		})
	}
}

func TestParseDefaultsMissingPolicy(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	policy, err := cfg.TolerancePolicy()
	if err != nil {
		t.Fatalf("TolerancePolicy() error = %v", err)
	}
	if policy != resistor.ToleranceUnspecified {
		t.Errorf("TolerancePolicy() = %v, want unspecified", policy)
	}
}

func TestSaveReloadRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)

	cfg := NewConfig()
	cfg.ThreeBandTolerance = "conventional20"
	cfg.DefaultBandCount = 4
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if loaded.ThreeBandTolerance != "conventional20" {
		t.Errorf("three_band_tolerance = %q, want conventional20", loaded.ThreeBandTolerance)
	}
	if loaded.DefaultBandCount != 4 {
		t.Errorf("default_band_count = %d, want 4", loaded.DefaultBandCount)
	}
	policy, err := loaded.TolerancePolicy()
	if err != nil {
		t.Fatalf("TolerancePolicy() error = %v", err)
	}
	if policy != resistor.ToleranceConventional20 {
		t.Errorf("TolerancePolicy() = %v, want conventional20", policy)
	}
}
