package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds process-wide settings for the CLI tools and query service.
type Config struct {
	// Data settings: where the serialized properties/normalization images
	// live on disk.
	Data struct {
		PropertiesPath   string `toml:"properties_path"`
		NormalizationPath string `toml:"normalization_path"`
	} `toml:"data"`

	// REPL settings for cmd/uprops.
	REPL struct {
		HistorySize     int    `toml:"history_size"`
		DefaultForm     string `toml:"default_form"` // nfc, nfd, nfkc, nfkd
		ShowCombiningCC bool   `toml:"show_combining_class"`
	} `toml:"repl"`

	// Display settings shared by the REPL and browse TUI.
	Display struct {
		ColorOutput  bool   `toml:"color_output"`
		CodePointFmt string `toml:"code_point_format"` // hex, dec, both
		OutputFormat string `toml:"output_format"`     // table, json
	} `toml:"display"`

	// Service settings for the HTTP query server.
	Service struct {
		ListenAddr     string `toml:"listen_addr"`
		RequestTimeout int    `toml:"request_timeout_seconds"`
	} `toml:"service"`

	// Builder settings for cmd/gennorm.
	Builder struct {
		MaxDataLength int  `toml:"max_data_length"`
		StrictMode    bool `toml:"strict_mode"` // fail on first invariant violation instead of collecting
	} `toml:"builder"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Data.PropertiesPath = "uprops.dat"
	cfg.Data.NormalizationPath = "unorm.dat"

	cfg.REPL.HistorySize = 1000
	cfg.REPL.DefaultForm = "nfc"
	cfg.REPL.ShowCombiningCC = true

	cfg.Display.ColorOutput = true
	cfg.Display.CodePointFmt = "hex"
	cfg.Display.OutputFormat = "table"

	cfg.Service.ListenAddr = ":8080"
	cfg.Service.RequestTimeout = 30

	cfg.Builder.MaxDataLength = 1 << 20
	cfg.Builder.StrictMode = false

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "ucore")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "ucore")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file, returning defaults
// unchanged if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
