package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Data.PropertiesPath != "uprops.dat" {
		t.Errorf("Expected PropertiesPath=uprops.dat, got %s", cfg.Data.PropertiesPath)
	}
	if cfg.Data.NormalizationPath != "unorm.dat" {
		t.Errorf("Expected NormalizationPath=unorm.dat, got %s", cfg.Data.NormalizationPath)
	}

	if cfg.REPL.HistorySize != 1000 {
		t.Errorf("Expected HistorySize=1000, got %d", cfg.REPL.HistorySize)
	}
	if cfg.REPL.DefaultForm != "nfc" {
		t.Errorf("Expected DefaultForm=nfc, got %s", cfg.REPL.DefaultForm)
	}

	if cfg.Display.CodePointFmt != "hex" {
		t.Errorf("Expected CodePointFmt=hex, got %s", cfg.Display.CodePointFmt)
	}

	if cfg.Service.ListenAddr != ":8080" {
		t.Errorf("Expected ListenAddr=:8080, got %s", cfg.Service.ListenAddr)
	}

	if cfg.Builder.MaxDataLength != 1<<20 {
		t.Errorf("Expected MaxDataLength=%d, got %d", 1<<20, cfg.Builder.MaxDataLength)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}
	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "ucore" && path != "config.toml" {
			t.Errorf("Expected path in ucore directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Data.PropertiesPath = "/tmp/custom-uprops.dat"
	cfg.REPL.HistorySize = 500
	cfg.Display.ColorOutput = false
	cfg.Service.ListenAddr = ":9090"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Data.PropertiesPath != "/tmp/custom-uprops.dat" {
		t.Errorf("Expected PropertiesPath=/tmp/custom-uprops.dat, got %s", loaded.Data.PropertiesPath)
	}
	if loaded.REPL.HistorySize != 500 {
		t.Errorf("Expected HistorySize=500, got %d", loaded.REPL.HistorySize)
	}
	if loaded.Display.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
	if loaded.Service.ListenAddr != ":9090" {
		t.Errorf("Expected ListenAddr=:9090, got %s", loaded.Service.ListenAddr)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.Data.PropertiesPath != "uprops.dat" {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[builder]
max_data_length = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
