package address

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://viacep.com.br"

// Client implements Service against a ViaCEP-compatible endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new address lookup client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// viaCEPResponse mirrors the upstream JSON. The service reports an unknown
// postal code with HTTP 200 and an "erro" flag rather than a 404.
type viaCEPResponse struct {
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	Region   string `json:"uf"`
	Erro     bool   `json:"erro"`
}

func (c *Client) Lookup(ctx context.Context, cep string) (*Address, error) {
	u := c.baseURL + "/ws/" + url.PathEscape(cep) + "/json/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching address: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, cause: ErrUpstream}
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding address response: %w", err)
	}
	if body.Erro {
		return nil, ErrNotFound
	}

	return &Address{
		Street:   body.Street,
		District: body.District,
		City:     body.City,
		Region:   body.Region,
	}, nil
}

// Compile-time interface check
var _ Service = (*Client)(nil)
