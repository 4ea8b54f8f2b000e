// Package service manages per-service compose project directories: resolving
// them, starting and stopping them, and scaffolding new ones from templates.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/launchbay/launchbay/internal/compose"
)

// ErrServiceNotFound is returned when a named service directory is missing
// or has no compose file
var ErrServiceNotFound = errors.New("service not found")

// Manager starts and stops services by name
type Manager struct {
	servicesDir string
	compose     *compose.Client
}

// NewManager creates a Manager rooted at servicesDir
func NewManager(servicesDir string, composeClient *compose.Client) *Manager {
	return &Manager{servicesDir: servicesDir, compose: composeClient}
}

// Resolve maps a service name to its compose project directory
func (m *Manager) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("service name is required")
	}

	dir := filepath.Join(m.servicesDir, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: no directory %s", ErrServiceNotFound, dir)
	}

	composeFile := filepath.Join(dir, compose.ComposeFileName)
	if _, err := os.Stat(composeFile); err != nil {
		return "", fmt.Errorf("%w: %s has no %s", ErrServiceNotFound, dir, compose.ComposeFileName)
	}

	return dir, nil
}

// Start brings the named service up and prints its compose status
func (m *Manager) Start(ctx context.Context, name string) error {
	dir, err := m.Resolve(name)
	if err != nil {
		return err
	}

	if err := m.compose.Up(ctx, dir); err != nil {
		return err
	}
	fmt.Printf("✓ Service %q started\n", name)

	status, err := m.compose.Ps(ctx, dir)
	if err != nil {
		return err
	}
	fmt.Println(status)

	return nil
}

// Stop takes the named service down
func (m *Manager) Stop(ctx context.Context, name string) error {
	dir, err := m.Resolve(name)
	if err != nil {
		return err
	}

	if err := m.compose.Down(ctx, dir); err != nil {
		return err
	}
	fmt.Printf("✓ Service %q stopped\n", name)

	return nil
}

// Status prints the compose status for the named service
func (m *Manager) Status(ctx context.Context, name string) (string, error) {
	dir, err := m.Resolve(name)
	if err != nil {
		return "", err
	}
	return m.compose.Ps(ctx, dir)
}

// Logs returns recent container log output for the named service
func (m *Manager) Logs(ctx context.Context, name string, tail int) (string, error) {
	dir, err := m.Resolve(name)
	if err != nil {
		return "", err
	}
	return m.compose.Logs(ctx, dir, tail)
}

// List returns the names of all service directories that contain a compose
// file, sorted alphabetically
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.servicesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read services directory %s: %w", m.servicesDir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		composeFile := filepath.Join(m.servicesDir, entry.Name(), compose.ComposeFileName)
		if _, err := os.Stat(composeFile); err == nil {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}
