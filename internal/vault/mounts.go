package vault

import (
	"context"
	"fmt"
)

// DefaultMount is where launchbay expects the KV v2 engine
const DefaultMount = "secret"

// MountInfo describes a mounted secrets engine
type MountInfo struct {
	Type    string            `json:"type"`
	Options map[string]string `json:"options"`
}

type mountsResponse struct {
	Data map[string]MountInfo `json:"data"`
}

// ListMounts returns the mounted secrets engines keyed by mount path
// (paths carry a trailing slash, e.g. "secret/")
func (c *Client) ListMounts(ctx context.Context) (map[string]MountInfo, error) {
	resp, err := c.doRequest(ctx, "GET", "/v1/sys/mounts", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list mounts: %w", err)
	}

	var result mountsResponse
	if err := readResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// EnableKVv2 mounts a KV v2 secrets engine at the given path
func (c *Client) EnableKVv2(ctx context.Context, mount string) error {
	body := map[string]interface{}{
		"type":    "kv",
		"options": map[string]string{"version": "2"},
	}

	resp, err := c.doRequest(ctx, "POST", fmt.Sprintf("/v1/sys/mounts/%s", mount), body)
	if err != nil {
		return fmt.Errorf("failed to enable kv v2 at %s: %w", mount, err)
	}

	return readResponse(resp, nil)
}

// DisableMount unmounts the secrets engine at the given path
func (c *Client) DisableMount(ctx context.Context, mount string) error {
	resp, err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/v1/sys/mounts/%s", mount), nil)
	if err != nil {
		return fmt.Errorf("failed to disable mount %s: %w", mount, err)
	}

	return readResponse(resp, nil)
}

// EnsureKVv2 makes sure a KV v2 engine is mounted at the given path.
// An existing v1 mount at the path is remounted as v2; the dev tool owns
// the mount, so this is safe.
func (c *Client) EnsureKVv2(ctx context.Context, mount string) error {
	mounts, err := c.ListMounts(ctx)
	if err != nil {
		return err
	}

	info, exists := mounts[mount+"/"]
	if exists {
		if info.Type == "kv" && info.Options["version"] == "2" {
			return nil
		}

		fmt.Printf("Mount %s/ exists but is not KV v2, remounting...\n", mount)
		if err := c.DisableMount(ctx, mount); err != nil {
			return err
		}
	}

	if err := c.EnableKVv2(ctx, mount); err != nil {
		return err
	}
	fmt.Printf("✓ KV v2 enabled at %s/\n", mount)

	return nil
}
