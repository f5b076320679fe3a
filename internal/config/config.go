package config

import (
	"fmt"
	"os"

	"github.com/clubechip/signup-api/internal/form"
)

// Config carries everything the workflow needs at construction time.
// Credentials and endpoints deliberately live here rather than in
// process-wide state so tests and environments can swap them freely.
type Config struct {
	Port string

	// AddressBaseURL points at a ViaCEP-compatible lookup service.
	AddressBaseURL string

	// TaxIDBaseURL and TaxIDToken configure the CPF verification API.
	TaxIDBaseURL string
	TaxIDToken   string

	// SignupBaseURL is the remote registration endpoint; SignupToken is the
	// anti-forgery token forwarded as _token on every submission.
	SignupBaseURL string
	SignupToken   string
}

// Load reads configuration from the environment. The two credentials and
// the signup endpoint are required; the lookup URLs fall back to the public
// defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           envOr("PORT", "8080"),
		AddressBaseURL: envOr("ADDRESS_BASE_URL", "https://viacep.com.br"),
		TaxIDBaseURL:   os.Getenv("TAXID_BASE_URL"),
		TaxIDToken:     os.Getenv("TAXID_TOKEN"),
		SignupBaseURL:  os.Getenv("SIGNUP_BASE_URL"),
		SignupToken:    os.Getenv("SIGNUP_TOKEN"),
	}

	for _, req := range []struct{ name, value string }{
		{"TAXID_BASE_URL", cfg.TaxIDBaseURL},
		{"TAXID_TOKEN", cfg.TaxIDToken},
		{"SIGNUP_BASE_URL", cfg.SignupBaseURL},
		{"SIGNUP_TOKEN", cfg.SignupToken},
	} {
		if req.value == "" {
			return Config{}, fmt.Errorf("missing required environment variable %s", req.name)
		}
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Plans returns the fixed plan catalog keyed by carrier.
func Plans() form.Catalog {
	return form.Catalog{
		form.OperatorVivo: {
			{ID: "vivo-8", Name: "Vivo 8GB + ligações ilimitadas"},
			{ID: "vivo-15", Name: "Vivo 15GB + ligações ilimitadas"},
			{ID: "vivo-25", Name: "Vivo 25GB + ligações ilimitadas"},
		},
		form.OperatorClaro: {
			{ID: "claro-10", Name: "Claro 10GB + ligações ilimitadas"},
			{ID: "claro-20", Name: "Claro 20GB + ligações ilimitadas"},
		},
		form.OperatorTIM: {
			{ID: "tim-9", Name: "TIM 9GB + ligações ilimitadas"},
			{ID: "tim-16", Name: "TIM 16GB + ligações ilimitadas"},
			{ID: "tim-30", Name: "TIM 30GB + ligações ilimitadas"},
		},
	}
}

// Regions returns the fixed list of region (UF) codes for the selection
// control.
func Regions() []string {
	return []string{
		"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
		"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
		"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
	}
}
