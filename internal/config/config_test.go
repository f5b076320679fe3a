package config

import (
	"testing"

	"github.com/clubechip/signup-api/internal/form"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TAXID_BASE_URL", "https://cpf.example.com")
	t.Setenv("TAXID_TOKEN", "secret")
	t.Setenv("SIGNUP_BASE_URL", "https://signup.example.com")
	t.Setenv("SIGNUP_TOKEN", "csrf")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.AddressBaseURL != "https://viacep.com.br" {
		t.Errorf("AddressBaseURL = %q, want public default", cfg.AddressBaseURL)
	}
	if cfg.TaxIDToken != "secret" || cfg.SignupToken != "csrf" {
		t.Errorf("credentials not loaded: %+v", cfg)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SIGNUP_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing SIGNUP_TOKEN")
	}
}

func TestPlansCoverAllOperators(t *testing.T) {
	plans := Plans()
	for _, op := range []form.Operator{form.OperatorVivo, form.OperatorClaro, form.OperatorTIM} {
		if len(plans[op]) == 0 {
			t.Errorf("no plans for operator %s", op)
		}
	}
}

func TestRegions(t *testing.T) {
	regions := Regions()
	if len(regions) != 27 {
		t.Fatalf("expected 27 region codes, got %d", len(regions))
	}
	seen := make(map[string]bool, len(regions))
	for _, r := range regions {
		if len(r) != 2 {
			t.Errorf("region %q is not a 2-letter code", r)
		}
		if seen[r] {
			t.Errorf("duplicate region %q", r)
		}
		seen[r] = true
	}
}
