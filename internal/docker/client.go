// Package docker talks to the Docker Engine API directly for read-only
// inspection. Lifecycle operations go through docker compose instead; the
// API client exists so `launchbay containers` does not depend on parsing
// CLI table output.
package docker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// ContainerInfo is the subset of container state the CLI displays
type ContainerInfo struct {
	ID      string
	Name    string
	Image   string
	State   string
	Status  string
	Created time.Time
	Ports   string
}

// Client wraps the Docker Engine API client
type Client struct {
	cli *client.Client
}

// NewClient creates a Docker API client from the environment
// (DOCKER_HOST et al., with API version negotiation)
func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}
	return &Client{cli: cli}, nil
}

// Close releases Docker client resources
func (c *Client) Close() error {
	return c.cli.Close()
}

// Ping verifies the Docker daemon is accessible
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.cli.Ping(ctx); err != nil {
		return fmt.Errorf("docker daemon not accessible (is Colima running?): %w", err)
	}
	return nil
}

// ListContainers returns containers sorted by name.
// With all set, stopped containers are included.
func (c *Client) ListContainers(ctx context.Context, all bool) ([]ContainerInfo, error) {
	summaries, err := c.cli.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}

	infos := make([]ContainerInfo, 0, len(summaries))
	for _, s := range summaries {
		infos = append(infos, ContainerInfo{
			ID:      shortID(s.ID),
			Name:    primaryName(s.Names),
			Image:   s.Image,
			State:   s.State,
			Status:  s.Status,
			Created: time.Unix(s.Created, 0),
			Ports:   FormatPorts(s.Ports),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos, nil
}

// shortID truncates a container ID to the familiar 12 characters
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// primaryName strips the leading slash the API puts on container names
func primaryName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.TrimPrefix(names[0], "/")
}
