package vault

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func newTestApp() *cli.Command {
	return &cli.Command{
		Name: "launchbay",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
		},
		Commands: []*cli.Command{Command},
	}
}

func writeVaultTestConfig(t *testing.T, configDir, addr string) {
	t.Helper()
	content := fmt.Sprintf(`network: testnet
services_dir: %s
templates_dir: %s
vault:
  addr: %s
`, configDir, configDir, addr)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644))
}

func runCaptured(t *testing.T, args ...string) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := newTestApp().Run(context.Background(), append([]string{"launchbay"}, args...))

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func TestStatusCommand_Unsealed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/sys/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"initialized": true, "sealed": false, "standby": false}`)
	}))
	defer server.Close()

	tempDir := t.TempDir()
	t.Setenv("LAUNCHBAY_CONFIG_DIR", tempDir)
	t.Setenv("VAULT_ADDR", "")
	t.Setenv("DOCKER_EXTERNAL_NETWORK", "")
	writeVaultTestConfig(t, tempDir, server.URL)

	output, err := runCaptured(t, "vault", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "unsealed")
	assert.Contains(t, output, "✓ Vault is ready")
}

func TestStatusCommand_Sealed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"initialized": true, "sealed": true, "standby": false}`)
	}))
	defer server.Close()

	tempDir := t.TempDir()
	t.Setenv("LAUNCHBAY_CONFIG_DIR", tempDir)
	t.Setenv("VAULT_ADDR", "")
	t.Setenv("DOCKER_EXTERNAL_NETWORK", "")
	writeVaultTestConfig(t, tempDir, server.URL)

	output, err := runCaptured(t, "vault", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "sealed")
	assert.Contains(t, output, "launchbay vault unseal")
}

func TestStatusCommand_Down(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("LAUNCHBAY_CONFIG_DIR", tempDir)
	t.Setenv("VAULT_ADDR", "")
	t.Setenv("DOCKER_EXTERNAL_NETWORK", "")
	// Point at a closed port
	writeVaultTestConfig(t, tempDir, "http://127.0.0.1:1")

	output, err := runCaptured(t, "vault", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "down")
	assert.Contains(t, output, "launchbay vault setup")
}

func TestUnsealCommand_NoKeys(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("LAUNCHBAY_CONFIG_DIR", tempDir)
	t.Setenv("VAULT_ADDR", "")
	t.Setenv("DOCKER_EXTERNAL_NETWORK", "")
	writeVaultTestConfig(t, tempDir, "http://127.0.0.1:1")

	err := newTestApp().Run(context.Background(), []string{"launchbay", "vault", "unseal"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no keys found")
}
