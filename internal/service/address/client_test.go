package address

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/01001000/json/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"logradouro": "Praça da Sé",
			"bairro":     "Sé",
			"localidade": "São Paulo",
			"uf":         "SP",
		})
	}))
	defer srv.Close()

	client := NewClient(http.DefaultClient, WithBaseURL(srv.URL))
	addr, err := client.Lookup(context.Background(), "01001000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Street != "Praça da Sé" {
		t.Errorf("Street = %q", addr.Street)
	}
	if addr.District != "Sé" {
		t.Errorf("District = %q", addr.District)
	}
	if addr.City != "São Paulo" {
		t.Errorf("City = %q", addr.City)
	}
	if addr.Region != "SP" {
		t.Errorf("Region = %q", addr.Region)
	}
}

func TestLookupErroFlag(t *testing.T) {
	// ViaCEP reports unknown codes with 200 + erro flag, not a 404.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"erro": true})
	}))
	defer srv.Close()

	client := NewClient(http.DefaultClient, WithBaseURL(srv.URL))
	_, err := client.Lookup(context.Background(), "99999999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(http.DefaultClient, WithBaseURL(srv.URL))
	_, err := client.Lookup(context.Background(), "01001000")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *UpstreamError, got %T", err)
	}
	if upstreamErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", upstreamErr.Status)
	}
}

func TestLookupNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // closed on purpose

	client := NewClient(http.DefaultClient, WithBaseURL(srv.URL))
	if _, err := client.Lookup(context.Background(), "01001000"); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}
