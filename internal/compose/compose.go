// Package compose wraps the `docker compose` CLI for per-service project
// directories, plus the docker network plumbing the services share.
package compose

import (
	"context"
	"fmt"
	"strconv"

	"github.com/launchbay/launchbay/internal/shell"
)

// ComposeFileName is the compose file every service directory must contain
const ComposeFileName = "docker-compose.yml"

// Client runs docker compose commands in service directories
type Client struct {
	runner shell.Runner
}

// NewClient creates a compose Client
func NewClient(runner shell.Runner) *Client {
	return &Client{runner: runner}
}

// Up starts the compose project in dir in detached mode
func (c *Client) Up(ctx context.Context, dir string) error {
	if _, err := c.runner.Run(ctx, dir, "docker", "compose", "up", "-d"); err != nil {
		return fmt.Errorf("compose up failed in %s: %w", dir, err)
	}
	return nil
}

// Down stops and removes the compose project in dir
func (c *Client) Down(ctx context.Context, dir string) error {
	if _, err := c.runner.Run(ctx, dir, "docker", "compose", "down"); err != nil {
		return fmt.Errorf("compose down failed in %s: %w", dir, err)
	}
	return nil
}

// Ps returns the compose status table for the project in dir
func (c *Client) Ps(ctx context.Context, dir string) (string, error) {
	result, err := c.runner.Run(ctx, dir, "docker", "compose", "ps")
	if err != nil {
		return "", fmt.Errorf("compose ps failed in %s: %w", dir, err)
	}
	return result.Stdout, nil
}

// Logs returns the last tail lines of logs for the project in dir
func (c *Client) Logs(ctx context.Context, dir string, tail int) (string, error) {
	args := []string{"compose", "logs", "--no-color"}
	if tail > 0 {
		args = append(args, "--tail", strconv.Itoa(tail))
	}

	result, err := c.runner.Run(ctx, dir, "docker", args...)
	if err != nil {
		return "", fmt.Errorf("compose logs failed in %s: %w", dir, err)
	}
	return result.Stdout, nil
}

// EnsureNetwork creates the shared external network if it does not exist.
// Compose files reference it as an external network, so it must exist
// before any service comes up.
func (c *Client) EnsureNetwork(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("network name is empty - set network in the config file or DOCKER_EXTERNAL_NETWORK")
	}

	result, err := c.runner.Run(ctx, "", "docker", "network", "ls",
		"--filter", fmt.Sprintf("name=^%s$", name),
		"--format", "{{.Name}}")
	if err != nil {
		return fmt.Errorf("failed to list docker networks: %w", err)
	}

	if result.Stdout == name {
		return nil
	}

	fmt.Printf("Network %q not found, creating it...\n", name)
	if _, err := c.runner.Run(ctx, "", "docker", "network", "create", name); err != nil {
		return fmt.Errorf("failed to create network %s: %w", name, err)
	}
	fmt.Printf("✓ Network %q created\n", name)

	return nil
}
