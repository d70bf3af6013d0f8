package database

import (
	"strings"
	"testing"
)

func TestConfig_SQLite(t *testing.T) {
	cfg := &Config{Driver: DriverSQLite, SQLitePath: "./data/ledger.db"}
	if got := cfg.DSN(); got != "./data/ledger.db?_foreign_keys=on" {
		t.Errorf("unexpected dsn %q", got)
	}
	if got := cfg.MigrationURL(); got != "sqlite3://./data/ledger.db" {
		t.Errorf("unexpected migration url %q", got)
	}
}

func TestConfig_Postgres(t *testing.T) {
	cfg := &Config{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     "5432",
		User:     "ledger",
		Password: "p@ss word",
		DBName:   "ledger",
		SSLMode:  "disable",
	}
	if got := cfg.DSN(); !strings.Contains(got, "host=db") || !strings.Contains(got, "dbname=ledger") {
		t.Errorf("unexpected dsn %q", got)
	}
	got := cfg.MigrationURL()
	if !strings.HasPrefix(got, "postgres://ledger:") || !strings.HasSuffix(got, "@db:5432/ledger?sslmode=disable") {
		t.Errorf("unexpected migration url %q", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("expected password to be escaped, got %q", got)
	}
}

func TestNewConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := NewConfig(); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SQLITE_PATH", "")
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Driver != DriverSQLite || cfg.SQLitePath != "./data/ledger.db" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}
