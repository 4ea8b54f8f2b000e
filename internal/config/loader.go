package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a configuration file from the given path.
// Environment overrides and defaults are applied before validation.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader reads and parses a configuration from an io.Reader
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// applyEnvOverrides lets the environment win over the file.
// DOCKER_EXTERNAL_NETWORK and VAULT_ADDR match the variables the wrapped
// tools themselves honor.
func applyEnvOverrides(c *Config) {
	if network := os.Getenv("DOCKER_EXTERNAL_NETWORK"); network != "" {
		c.Network = network
	}
	if addr := os.Getenv("VAULT_ADDR"); addr != "" {
		c.Vault.Addr = addr
	}
}

func applyDefaults(c *Config) {
	c.ServicesDir = expandHome(c.ServicesDir)
	c.TemplatesDir = expandHome(c.TemplatesDir)
	c.Vault.KeysFile = expandHome(c.Vault.KeysFile)

	if c.Vault.Addr == "" {
		c.Vault.Addr = DefaultVaultAddr
	}
	if c.Vault.ServiceName == "" {
		c.Vault.ServiceName = DefaultVaultService
	}
	if c.Vault.KeysFile == "" {
		c.Vault.KeysFile = DefaultKeysPath()
	}
	if c.Vault.Shares == 0 {
		c.Vault.Shares = DefaultVaultShares
	}
	if c.Vault.Threshold == 0 {
		c.Vault.Threshold = DefaultVaultThreshold
	}
}

// expandHome resolves a leading ~/ against the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// VaultServiceDir returns the compose directory for the Vault service
func (c *Config) VaultServiceDir() string {
	return filepath.Join(c.ServicesDir, c.Vault.ServiceName)
}
