package taxid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const verifyPath = "/api/cpf"

// Client implements Service against the bearer-token-authenticated CPF
// verification API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithToken sets the Bearer token for authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a new CPF verification client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{httpClient: httpClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type verifyRequest struct {
	CPF string `json:"cpf"`
}

// verifyResponse mirrors the upstream JSON, nested under "data".
type verifyResponse struct {
	Data struct {
		Name      string `json:"nome_da_pf"`
		BirthDate string `json:"data_nascimento"`
	} `json:"data"`
}

func (c *Client) Verify(ctx context.Context, cpf string) (*Person, error) {
	payload, err := json.Marshal(verifyRequest{CPF: cpf})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+verifyPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verifying cpf: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &UpstreamError{Status: resp.StatusCode, cause: ErrUnauthorized}
	default:
		return nil, &UpstreamError{Status: resp.StatusCode, cause: ErrUpstream}
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding verification response: %w", err)
	}

	return &Person{
		Name:      body.Data.Name,
		BirthDate: body.Data.BirthDate,
	}, nil
}

// Compile-time interface check
var _ Service = (*Client)(nil)
