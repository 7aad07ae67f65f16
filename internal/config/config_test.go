package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Database.DBName != "acadrecords" {
		t.Errorf("unexpected default dbname %q", cfg.Database.DBName)
	}
	if cfg.JWT.AccessTokenExpiration != "1h" {
		t.Errorf("unexpected default token expiration %q", cfg.JWT.AccessTokenExpiration)
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "9090"
database:
  host: db.internal
jwt:
  secret: file-secret
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// Environment variables win over file values
	t.Setenv("DB_HOST", "env.internal")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected file port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Database.Host != "env.internal" {
		t.Errorf("expected env override for host, got %q", cfg.Database.Host)
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Errorf("expected file secret, got %q", cfg.JWT.Secret)
	}
}

func TestLoadConfigRejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing JWT secret")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Password = "pw"

	got := cfg.GetPostgresConnectionString()
	want := "postgres://postgres:pw@localhost:5432/acadrecords?sslmode=disable"
	if got != want {
		t.Errorf("connection string mismatch:\n got %q\nwant %q", got, want)
	}
}
