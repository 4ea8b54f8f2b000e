package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	content := `network: testnet
services_dir: /tmp/services
templates_dir: /tmp/templates
vault:
  addr: http://127.0.0.1:8200
`
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func TestShowCommand(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("LAUNCHBAY_CONFIG_DIR", tempDir)
	t.Setenv("DOCKER_EXTERNAL_NETWORK", "")
	t.Setenv("VAULT_ADDR", "")
	writeTestConfig(t, tempDir)

	output, err := captureStdout(t, func() error {
		return newTestApp().Run(context.Background(), []string{"launchbay", "config", "show"})
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Configuration:")
	assert.Contains(t, output, "network: testnet")
	// Defaults are applied before printing
	assert.Contains(t, output, "service_name: vault")
}

func TestShowCommand_NoConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("LAUNCHBAY_CONFIG_DIR", tempDir)

	err := newTestApp().Run(context.Background(), []string{"launchbay", "config", "show"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config init")
}

func TestPathCommand(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("LAUNCHBAY_CONFIG_DIR", tempDir)
	configPath := writeTestConfig(t, tempDir)

	output, err := captureStdout(t, func() error {
		return newTestApp().Run(context.Background(), []string{"launchbay", "config", "path"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, configPath)
}
