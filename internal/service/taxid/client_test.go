package taxid

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cpf" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("Authorization = %q", got)
		}
		var body struct {
			CPF string `json:"cpf"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if body.CPF != "52998224725" {
			t.Errorf("cpf = %q", body.CPF)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"nome_da_pf":      "Maria da Silva",
				"data_nascimento": "1990-04-12",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(http.DefaultClient, WithBaseURL(srv.URL), WithToken("secret-token"))
	person, err := client.Verify(context.Background(), "52998224725")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if person.Name != "Maria da Silva" {
		t.Errorf("Name = %q", person.Name)
	}
	if person.BirthDate != "1990-04-12" {
		t.Errorf("BirthDate = %q", person.BirthDate)
	}
}

func TestVerifyPartialData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"nome_da_pf": "Maria da Silva"},
		})
	}))
	defer srv.Close()

	client := NewClient(http.DefaultClient, WithBaseURL(srv.URL))
	person, err := client.Verify(context.Background(), "52998224725")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if person.Name != "Maria da Silva" {
		t.Errorf("Name = %q", person.Name)
	}
	if person.BirthDate != "" {
		t.Errorf("BirthDate = %q, want empty", person.BirthDate)
	}
}

func TestVerifyUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(http.DefaultClient, WithBaseURL(srv.URL), WithToken("expired"))
	_, err := client.Verify(context.Background(), "52998224725")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifyUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(http.DefaultClient, WithBaseURL(srv.URL))
	_, err := client.Verify(context.Background(), "52998224725")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) || upstreamErr.Status != http.StatusBadGateway {
		t.Fatalf("expected *UpstreamError with status 502, got %v", err)
	}
}
