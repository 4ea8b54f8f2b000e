package vault

import (
	"context"
	"fmt"
	"strings"
)

// AppRoleCredentials is the role-id/secret-id pair an application logs in with
type AppRoleCredentials struct {
	RoleID   string `json:"role_id"`
	SecretID string `json:"secret_id"`
}

type authMethodsResponse struct {
	Data map[string]struct {
		Type string `json:"type"`
	} `json:"data"`
}

// EnableAppRoleAuth enables the approle auth method when it is not already
// enabled; enabling twice is an error in Vault, so this checks first.
func (c *Client) EnableAppRoleAuth(ctx context.Context) error {
	resp, err := c.doRequest(ctx, "GET", "/v1/sys/auth", nil)
	if err != nil {
		return fmt.Errorf("failed to list auth methods: %w", err)
	}

	var methods authMethodsResponse
	if err := readResponse(resp, &methods); err != nil {
		return err
	}

	if _, ok := methods.Data["approle/"]; ok {
		return nil
	}

	body := map[string]interface{}{"type": "approle"}
	resp, err = c.doRequest(ctx, "POST", "/v1/sys/auth/approle", body)
	if err != nil {
		return fmt.Errorf("failed to enable approle auth: %w", err)
	}

	return readResponse(resp, nil)
}

// CreateAppRole creates or updates an AppRole with the given policies
func (c *Client) CreateAppRole(ctx context.Context, name string, policies []string, tokenTTL string) error {
	if name == "" {
		return fmt.Errorf("role name is required")
	}
	if tokenTTL == "" {
		tokenTTL = "1h"
	}

	body := map[string]interface{}{
		"token_ttl":      tokenTTL,
		"token_policies": strings.Join(policies, ","),
	}

	resp, err := c.doRequest(ctx, "POST", fmt.Sprintf("/v1/auth/approle/role/%s", name), body)
	if err != nil {
		return fmt.Errorf("failed to create approle %s: %w", name, err)
	}

	return readResponse(resp, nil)
}

type roleIDResponse struct {
	Data struct {
		RoleID string `json:"role_id"`
	} `json:"data"`
}

type secretIDResponse struct {
	Data struct {
		SecretID string `json:"secret_id"`
	} `json:"data"`
}

// AppRoleCredentialsFor reads the role-id and generates a fresh secret-id
func (c *Client) AppRoleCredentialsFor(ctx context.Context, name string) (*AppRoleCredentials, error) {
	resp, err := c.doRequest(ctx, "GET", fmt.Sprintf("/v1/auth/approle/role/%s/role-id", name), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read role-id for %s: %w", name, err)
	}

	var roleID roleIDResponse
	if err := readResponse(resp, &roleID); err != nil {
		return nil, err
	}

	resp, err = c.doRequest(ctx, "POST", fmt.Sprintf("/v1/auth/approle/role/%s/secret-id", name), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret-id for %s: %w", name, err)
	}

	var secretID secretIDResponse
	if err := readResponse(resp, &secretID); err != nil {
		return nil, err
	}

	return &AppRoleCredentials{
		RoleID:   roleID.Data.RoleID,
		SecretID: secretID.Data.SecretID,
	}, nil
}
