// Package vault implements a minimal HTTP client for the Vault API plus the
// idempotent setup orchestration launchbay runs against a local dev Vault.
// Everything cryptographic (sealing, key shares) stays inside Vault itself.
package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is an HTTP client for the Vault API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Vault API client.
// token may be empty for unauthenticated endpoints (health, init, unseal).
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithToken returns a copy of the client authenticated with token
func (c *Client) WithToken(token string) *Client {
	return &Client{
		baseURL:    c.baseURL,
		token:      token,
		httpClient: c.httpClient,
	}
}

// HealthResponse represents the response from /v1/sys/health
type HealthResponse struct {
	Initialized bool   `json:"initialized"`
	Sealed      bool   `json:"sealed"`
	Standby     bool   `json:"standby"`
	Version     string `json:"version"`
	ClusterName string `json:"cluster_name"`
	ClusterID   string `json:"cluster_id"`
	StatusCode  int    `json:"-"`
}

// Health checks the health status of Vault.
// The endpoint encodes state in the status code:
//
//	200 - initialized, unsealed, and active
//	429 - unsealed and standby
//	472 - disaster recovery replication secondary
//	473 - performance standby
//	501 - not initialized
//	503 - sealed
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	url := fmt.Sprintf("%s/v1/sys/health", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var health HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	health.StatusCode = resp.StatusCode
	return &health, nil
}

// IsReady returns true if Vault is initialized, unsealed, and active
func (h *HealthResponse) IsReady() bool {
	return h.Initialized && !h.Sealed && h.StatusCode == 200
}

// TokenLookupSelf verifies the client token is valid and usable
func (c *Client) TokenLookupSelf(ctx context.Context) error {
	resp, err := c.doRequest(ctx, "GET", "/v1/auth/token/lookup-self", nil)
	if err != nil {
		return fmt.Errorf("failed to look up token: %w", err)
	}

	if err := readResponse(resp, nil); err != nil {
		return fmt.Errorf("token is not valid: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request with the configured token
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("X-Vault-Token", c.token)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	return resp, nil
}

// readResponse reads and unmarshals the response body
func readResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// KVv2Response represents the response structure from the KV v2 API
type KVv2Response struct {
	Data struct {
		Data     map[string]interface{} `json:"data"`
		Metadata struct {
			Version int `json:"version"`
		} `json:"metadata"`
	} `json:"data"`
}

// ReadSecretV2 reads a secret from the KV v2 secrets engine at
// /v1/<mount>/data/<path>
func (c *Client) ReadSecretV2(ctx context.Context, mount, path string) (map[string]interface{}, error) {
	apiPath := fmt.Sprintf("/v1/%s/data/%s", mount, path)

	resp, err := c.doRequest(ctx, "GET", apiPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}

	var result KVv2Response
	if err := readResponse(resp, &result); err != nil {
		return nil, err
	}

	if result.Data.Data == nil {
		return nil, fmt.Errorf("secret not found at path: %s", path)
	}

	return result.Data.Data, nil
}

// WriteSecretV2 writes a secret to the KV v2 secrets engine
func (c *Client) WriteSecretV2(ctx context.Context, mount, path string, data map[string]interface{}) error {
	apiPath := fmt.Sprintf("/v1/%s/data/%s", mount, path)

	body := map[string]interface{}{
		"data": data,
	}

	resp, err := c.doRequest(ctx, "POST", apiPath, body)
	if err != nil {
		return fmt.Errorf("failed to write secret: %w", err)
	}

	return readResponse(resp, nil)
}

// DeleteSecretV2 soft-deletes a secret from the KV v2 secrets engine
func (c *Client) DeleteSecretV2(ctx context.Context, mount, path string) error {
	apiPath := fmt.Sprintf("/v1/%s/data/%s", mount, path)

	resp, err := c.doRequest(ctx, "DELETE", apiPath, nil)
	if err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}

	return readResponse(resp, nil)
}
