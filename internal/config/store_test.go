package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "luxtap") {
		t.Errorf("GetConfigDir() = %v, should contain 'luxtap'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
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

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("NewConfig().Version = %v, want 1", cfg.Version)
	}
	if cfg.ServiceClass != "IOService" {
		t.Errorf("NewConfig().ServiceClass = %v, want IOService", cfg.ServiceClass)
	}
	if cfg.LuxProperty != "CurrentLux" {
		t.Errorf("NewConfig().LuxProperty = %v, want CurrentLux", cfg.LuxProperty)
	}
	if cfg.WatchInterval != 1 {
		t.Errorf("NewConfig().WatchInterval = %v, want 1", cfg.WatchInterval)
	}
	if cfg.Nicknames == nil {
		t.Error("NewConfig().Nicknames should not be nil")
	}
}

func TestDisplayName(t *testing.T) {
	cfg := NewConfig()
	cfg.Nicknames["AmbientLightSensor"] = "Lid Sensor"

	tests := []struct {
		name        string
		serviceName string
		expected    string
	}{
		{
			name:        "nickname set",
			serviceName: "AmbientLightSensor",
			expected:    "Lid Sensor",
		},
		{
			name:        "no nickname",
			serviceName: "OtherSensor",
			expected:    "OtherSensor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.DisplayName(tt.serviceName); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.serviceName, got, tt.expected)
			}
		})
	}
}

func TestDisplayName_NilMap(t *testing.T) {
	cfg := &Config{}
	if got := cfg.DisplayName("AmbientLightSensor"); got != "AmbientLightSensor" {
		t.Errorf("DisplayName() with nil map = %q, want service name", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := NewConfig()
	cfg.ServiceClass = "AppleLMUController"
	cfg.WatchInterval = 5
	cfg.Nicknames["AmbientLightSensor"] = "Lid Sensor"

	if err := cfg.saveToPath(path); err != nil {
		t.Fatalf("saveToPath() error = %v", err)
	}

	loaded, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath() error = %v", err)
	}

	if loaded.ServiceClass != "AppleLMUController" {
		t.Errorf("ServiceClass = %v, want AppleLMUController", loaded.ServiceClass)
	}
	if loaded.LuxProperty != "CurrentLux" {
		t.Errorf("LuxProperty = %v, want CurrentLux", loaded.LuxProperty)
	}
	if loaded.WatchInterval != 5 {
		t.Errorf("WatchInterval = %v, want 5", loaded.WatchInterval)
	}
	if loaded.Nicknames["AmbientLightSensor"] != "Lid Sensor" {
		t.Errorf("Nicknames = %v, want Lid Sensor entry", loaded.Nicknames)
	}
}

func TestSaveLoad_NicknameLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	// Set a nickname and persist it.
	cfg := NewConfig()
	cfg.Nicknames["AmbientLightSensor"] = "Lid Sensor"
	if err := cfg.saveToPath(path); err != nil {
		t.Fatalf("saveToPath() error = %v", err)
	}

	loaded, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath() error = %v", err)
	}
	if got := loaded.DisplayName("AmbientLightSensor"); got != "Lid Sensor" {
		t.Fatalf("DisplayName() after save = %q, want %q", got, "Lid Sensor")
	}

	// Remove it and persist again.
	delete(loaded.Nicknames, "AmbientLightSensor")
	if err := loaded.saveToPath(path); err != nil {
		t.Fatalf("saveToPath() after removal error = %v", err)
	}

	reloaded, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath() after removal error = %v", err)
	}
	if got := reloaded.DisplayName("AmbientLightSensor"); got != "AmbientLightSensor" {
		t.Errorf("DisplayName() after removal = %q, want service name", got)
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("loadFromPath() error = %v", err)
	}
	if cfg.ServiceClass != "IOService" {
		t.Errorf("missing file should yield defaults, got ServiceClass = %v", cfg.ServiceClass)
	}
}

func TestLoadFromPath_BadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 7\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFromPath(path); err == nil {
		t.Error("loadFromPath() should reject unsupported versions")
	}
}
