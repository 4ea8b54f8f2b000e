package vault

import (
	"context"
	"fmt"
)

// InitRequest represents the request body for operator init
type InitRequest struct {
	SecretShares    int `json:"secret_shares"`
	SecretThreshold int `json:"secret_threshold"`
}

// InitResponse represents the response from operator init
type InitResponse struct {
	Keys       []string `json:"keys"`
	KeysBase64 []string `json:"keys_base64"`
	RootToken  string   `json:"root_token"`
}

// Initialize performs operator init on an uninitialized Vault
func (c *Client) Initialize(ctx context.Context, shares, threshold int) (*InitResponse, error) {
	if shares < 1 {
		return nil, fmt.Errorf("secret_shares must be at least 1")
	}
	if threshold < 1 {
		return nil, fmt.Errorf("secret_threshold must be at least 1")
	}
	if threshold > shares {
		return nil, fmt.Errorf("secret_threshold (%d) cannot exceed secret_shares (%d)", threshold, shares)
	}

	req := InitRequest{
		SecretShares:    shares,
		SecretThreshold: threshold,
	}

	resp, err := c.doRequest(ctx, "PUT", "/v1/sys/init", req)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	var initResp InitResponse
	if err := readResponse(resp, &initResp); err != nil {
		return nil, fmt.Errorf("failed to read init response: %w", err)
	}

	return &initResp, nil
}

// UnsealRequest represents the request body for an unseal operation
type UnsealRequest struct {
	Key   string `json:"key"`
	Reset bool   `json:"reset,omitempty"`
}

// UnsealResponse represents the response from an unseal operation
type UnsealResponse struct {
	Sealed   bool   `json:"sealed"`
	T        int    `json:"t"`
	N        int    `json:"n"`
	Progress int    `json:"progress"`
	Nonce    string `json:"nonce"`
	Version  string `json:"version"`
}

// Unseal submits a single unseal key
func (c *Client) Unseal(ctx context.Context, key string) (*UnsealResponse, error) {
	if key == "" {
		return nil, fmt.Errorf("unseal key is required")
	}

	req := UnsealRequest{Key: key}

	resp, err := c.doRequest(ctx, "PUT", "/v1/sys/unseal", req)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal: %w", err)
	}

	var unsealResp UnsealResponse
	if err := readResponse(resp, &unsealResp); err != nil {
		return nil, fmt.Errorf("failed to read unseal response: %w", err)
	}

	return &unsealResp, nil
}

// UnsealWithKeys submits keys in order until Vault reports unsealed.
// Submission stops at the first key that clears the seal; supplying every
// key is not required when the threshold is lower.
func (c *Client) UnsealWithKeys(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("at least one unseal key is required")
	}

	for i, key := range keys {
		resp, err := c.Unseal(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to unseal with key %d: %w", i+1, err)
		}

		if !resp.Sealed {
			return nil
		}

		if i == len(keys)-1 {
			return fmt.Errorf("still sealed after %d keys (need %d of %d)", resp.Progress, resp.T, resp.N)
		}
	}

	return nil
}

// Seal seals the server. Requires a root token.
func (c *Client) Seal(ctx context.Context) error {
	resp, err := c.doRequest(ctx, "PUT", "/v1/sys/seal", nil)
	if err != nil {
		return fmt.Errorf("failed to seal: %w", err)
	}

	if err := readResponse(resp, nil); err != nil {
		return fmt.Errorf("seal request rejected: %w", err)
	}

	return nil
}

// ResetUnseal discards any partially-submitted unseal progress
func (c *Client) ResetUnseal(ctx context.Context) error {
	req := UnsealRequest{Reset: true}

	resp, err := c.doRequest(ctx, "PUT", "/v1/sys/unseal", req)
	if err != nil {
		return fmt.Errorf("failed to reset unseal: %w", err)
	}

	var unsealResp UnsealResponse
	if err := readResponse(resp, &unsealResp); err != nil {
		return fmt.Errorf("failed to read reset response: %w", err)
	}

	return nil
}
