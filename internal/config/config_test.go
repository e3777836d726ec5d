package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/caretrack_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.Env != "development" || !cfg.IsDev() {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.DBMaxConns != 20 || cfg.DBMinConns != 5 {
		t.Errorf("pool sizes = %d/%d, want 20/5", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.EDIUsageIndicator != "P" {
		t.Errorf("EDIUsageIndicator = %q, want P", cfg.EDIUsageIndicator)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("Load must fail without DATABASE_URL")
	}
}

func TestValidateUsageIndicator(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/caretrack_test")
	t.Setenv("EDI_USAGE_INDICATOR", "X")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate must reject usage indicator X")
	}
}

func TestValidateProductionRequiresProductionIndicator(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/caretrack_test")
	t.Setenv("ENV", "production")
	t.Setenv("EDI_USAGE_INDICATOR", "T")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate must reject T in production")
	}
}
