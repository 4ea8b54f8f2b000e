// Package colima manages the Colima VM that provides the container runtime
// on macOS hosts. All operations shell out to the colima binary.
package colima

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/launchbay/launchbay/internal/config"
	"github.com/launchbay/launchbay/internal/shell"
)

// DefaultProfile is the colima profile used when none is configured
const DefaultProfile = "default"

// Status describes a Colima VM instance
type Status struct {
	Name    string `json:"name"`
	Running bool   `json:"-"`
	State   string `json:"status"`
	Arch    string `json:"arch"`
	Runtime string `json:"runtime"`
	CPUs    int    `json:"cpus"`
	Memory  int64  `json:"memory"`
	Disk    int64  `json:"disk"`
}

// Manager controls the Colima VM lifecycle
type Manager struct {
	runner  shell.Runner
	profile string
	cfg     config.ColimaConfig

	// startTimeout bounds how long EnsureRunning waits for the VM
	startTimeout time.Duration
	pollInterval time.Duration
}

// NewManager creates a Manager for the configured profile
func NewManager(runner shell.Runner, cfg config.ColimaConfig) *Manager {
	profile := cfg.Profile
	if profile == "" {
		profile = DefaultProfile
	}
	return &Manager{
		runner:       runner,
		profile:      profile,
		cfg:          cfg,
		startTimeout: 3 * time.Minute,
		pollInterval: 3 * time.Second,
	}
}

// Status reports the state of the configured Colima profile.
// `colima list --json` emits one JSON object per line, one per profile.
// A profile that does not appear in the listing has never been created.
func (m *Manager) Status(ctx context.Context) (*Status, error) {
	result, err := m.runner.Run(ctx, "", "colima", "list", "--json")
	if err != nil {
		var exitErr *shell.ExitError
		if errors.As(err, &exitErr) {
			// Older colima releases have no `list --json`; fall back to
			// scraping `colima status` the way the shell scripts did.
			return m.statusFallback(ctx)
		}
		return nil, err
	}

	scanner := bufio.NewScanner(strings.NewReader(result.Stdout))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var st Status
		if err := json.Unmarshal([]byte(line), &st); err != nil {
			return nil, fmt.Errorf("failed to parse colima list output: %w", err)
		}
		if st.Name == m.profile {
			st.Running = strings.EqualFold(st.State, "Running")
			return &st, nil
		}
	}

	// Profile not created yet
	return &Status{Name: m.profile, State: "Stopped"}, nil
}

// statusFallback uses plain `colima status`, which exits non-zero and says
// "colima is not running" when the VM is down.
func (m *Manager) statusFallback(ctx context.Context) (*Status, error) {
	args := []string{"status"}
	if m.profile != DefaultProfile {
		args = append(args, "--profile", m.profile)
	}

	result, err := m.runner.Run(ctx, "", "colima", args...)
	if err != nil {
		var exitErr *shell.ExitError
		if errors.As(err, &exitErr) {
			return &Status{Name: m.profile, State: "Stopped"}, nil
		}
		return nil, err
	}

	combined := result.Stdout + result.Stderr
	running := strings.Contains(strings.ToLower(combined), "running")
	state := "Stopped"
	if running {
		state = "Running"
	}
	return &Status{Name: m.profile, Running: running, State: state}, nil
}

// EnsureRunning starts Colima when it is not already running.
// This is the preflight check that runs before any compose operation.
func (m *Manager) EnsureRunning(ctx context.Context) error {
	status, err := m.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to check colima status: %w", err)
	}

	if status.Running {
		return nil
	}

	fmt.Printf("Colima is not running, starting profile %q...\n", m.profile)
	if err := m.Start(ctx); err != nil {
		return err
	}

	deadline := time.Now().Add(m.startTimeout)
	for time.Now().Before(deadline) {
		status, err := m.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to check colima status: %w", err)
		}
		if status.Running {
			fmt.Println("✓ Colima is running")
			return nil
		}
		time.Sleep(m.pollInterval)
	}

	return fmt.Errorf("colima did not become ready within %s", m.startTimeout)
}

// Start starts the Colima VM with the configured resources
func (m *Manager) Start(ctx context.Context) error {
	args := []string{"start"}
	if m.profile != DefaultProfile {
		args = append(args, "--profile", m.profile)
	}
	if m.cfg.CPUs > 0 {
		args = append(args, "--cpu", strconv.Itoa(m.cfg.CPUs))
	}
	if m.cfg.Memory > 0 {
		args = append(args, "--memory", strconv.Itoa(m.cfg.Memory))
	}
	if m.cfg.Disk > 0 {
		args = append(args, "--disk", strconv.Itoa(m.cfg.Disk))
	}

	if _, err := m.runner.Run(ctx, "", "colima", args...); err != nil {
		return fmt.Errorf("failed to start colima: %w", err)
	}
	return nil
}

// Stop stops the Colima VM
func (m *Manager) Stop(ctx context.Context) error {
	args := []string{"stop"}
	if m.profile != DefaultProfile {
		args = append(args, "--profile", m.profile)
	}

	if _, err := m.runner.Run(ctx, "", "colima", args...); err != nil {
		return fmt.Errorf("failed to stop colima: %w", err)
	}
	return nil
}

// Delete removes the Colima VM instance and its disk
func (m *Manager) Delete(ctx context.Context) error {
	args := []string{"delete", "--force"}
	if m.profile != DefaultProfile {
		args = append(args, "--profile", m.profile)
	}

	if _, err := m.runner.Run(ctx, "", "colima", args...); err != nil {
		return fmt.Errorf("failed to delete colima instance: %w", err)
	}
	return nil
}
