package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")
	if _, err := Load(); err == nil {
		t.Error("expected error without MYSQL_DSN")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/shiftpay?parseTime=true&multiStatements=true")
	t.Setenv("PUNCH_BASE_URL", "")
	t.Setenv("PUNCH_API_TOKEN", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SCHED_TZ", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Punch.BaseURL != "http://localhost:8090" {
		t.Errorf("Punch.BaseURL = %q", cfg.Punch.BaseURL)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Sched.Timezone != "UTC" {
		t.Errorf("Sched.Timezone = %q", cfg.Sched.Timezone)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "dsn")
	t.Setenv("PUNCH_BASE_URL", "https://clock.example.com")
	t.Setenv("PUNCH_API_TOKEN", "tok")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("SCHED_TZ", "Europe/Berlin")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Punch.BaseURL != "https://clock.example.com" || cfg.Punch.APIToken != "tok" {
		t.Errorf("punch config = %+v", cfg.Punch)
	}
	if cfg.HTTP.Addr != ":9999" || cfg.Sched.Timezone != "Europe/Berlin" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFileDefaultsWhenMissing(t *testing.T) {
	t.Setenv("SHIFTPAY_DB_PATH", "")
	t.Setenv("SHIFTPAY_DEFAULT_RATE", "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("expected a default db path")
	}
}

func TestLoadFileParsesToml(t *testing.T) {
	t.Setenv("SHIFTPAY_DB_PATH", "")
	t.Setenv("SHIFTPAY_DEFAULT_RATE", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[storage]\ndb_path = \"/tmp/x.db\"\n\n[pay]\ndefault_rate = 22.5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Storage.DBPath != "/tmp/x.db" {
		t.Errorf("DBPath = %q", cfg.Storage.DBPath)
	}
	if cfg.Pay.DefaultRate != 22.5 {
		t.Errorf("DefaultRate = %v", cfg.Pay.DefaultRate)
	}
}

func TestLoadFileEnvOverrides(t *testing.T) {
	t.Setenv("SHIFTPAY_DB_PATH", "/override/y.db")
	t.Setenv("SHIFTPAY_DEFAULT_RATE", "31")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Storage.DBPath != "/override/y.db" {
		t.Errorf("DBPath = %q", cfg.Storage.DBPath)
	}
	if cfg.Pay.DefaultRate != 31 {
		t.Errorf("DefaultRate = %v", cfg.Pay.DefaultRate)
	}
}
