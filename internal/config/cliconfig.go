package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig is the CLI configuration, read from a TOML file. The
// daemon stays env-driven; the CLI keeps a dotfile like any local
// tool would.
type FileConfig struct {
	Storage StorageConfig `toml:"storage"`
	Pay     PayConfig     `toml:"pay"`
}

// StorageConfig holds local database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// PayConfig holds defaults applied when flags are omitted.
type PayConfig struct {
	DefaultRate float64 `toml:"default_rate"`
}

// DefaultFileConfig returns the CLI defaults.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Storage: StorageConfig{DBPath: defaultDBPath()},
		Pay:     PayConfig{DefaultRate: 0},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shiftpay.db"
	}
	return filepath.Join(home, ".local", "share", "shiftpay", "shiftpay.db")
}

// DefaultConfigPath returns the CLI config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "shiftpay", "config.toml")
}

// LoadFile loads the CLI configuration from path, starting from
// defaults, overlaying the file if it exists, then env overrides.
func LoadFile(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file is fine; defaults plus env apply.
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if v := os.Getenv("SHIFTPAY_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SHIFTPAY_DEFAULT_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("SHIFTPAY_DEFAULT_RATE must be a number: %w", err)
		}
		cfg.Pay.DefaultRate = rate
	}

	return cfg, nil
}
