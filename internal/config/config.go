package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration for the daemon.
type Config struct {
	Punch struct {
		BaseURL  string // default: http://localhost:8090
		APIToken string // empty disables scheduled imports
	}
	MySQL struct {
		DSN string // e.g., user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
	}
	HTTP struct {
		Addr string // default: :8080
	}
	Sched struct {
		Timezone string // e.g., UTC (default), Europe/Berlin
	}
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config

	cfg.MySQL.DSN = os.Getenv("MYSQL_DSN")
	if cfg.MySQL.DSN == "" {
		return cfg, errors.New("MYSQL_DSN is required")
	}

	cfg.Punch.APIToken = os.Getenv("PUNCH_API_TOKEN")
	cfg.Punch.BaseURL = os.Getenv("PUNCH_BASE_URL")
	if cfg.Punch.BaseURL == "" {
		cfg.Punch.BaseURL = "http://localhost:8090"
	}

	cfg.HTTP.Addr = os.Getenv("HTTP_ADDR")
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}

	cfg.Sched.Timezone = os.Getenv("SCHED_TZ")
	if cfg.Sched.Timezone == "" {
		cfg.Sched.Timezone = "UTC"
	}

	return cfg, nil
}
