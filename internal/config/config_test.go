package config

import "testing"

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("COMPANY_NAME", "")

	cfg := Load()

	if cfg.DBPath != defaultDBPath {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, defaultDBPath)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("Port = %q, want %q", cfg.Port, defaultPort)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected default env to be dev, got %q", cfg.Env)
	}
	if cfg.CompanyName == "" {
		t.Fatal("expected a default company name")
	}
}

func TestLoadPrefersEnvironment(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/est.db")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("COMPANY_NAME", "Acme Signs")

	cfg := Load()

	if cfg.DBPath != "/tmp/est.db" || cfg.Port != "9090" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.IsDev() {
		t.Fatal("production env should not report dev")
	}
	if cfg.CompanyName != "Acme Signs" {
		t.Fatalf("CompanyName = %q", cfg.CompanyName)
	}
}
