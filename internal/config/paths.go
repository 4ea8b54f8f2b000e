package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultConfigDir is the default directory name for launchbay configs
	DefaultConfigDir = ".launchbay"
	// DefaultConfigName is the default config file name
	DefaultConfigName = "config.yaml"
)

// GetConfigDir returns the launchbay configuration directory path
// Defaults to ~/.launchbay/ unless overridden by environment
func GetConfigDir() (string, error) {
	if dir := os.Getenv("LAUNCHBAY_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() string {
	configDir, err := GetConfigDir()
	if err != nil {
		return DefaultConfigName
	}
	return filepath.Join(configDir, DefaultConfigName)
}

// DefaultKeysPath returns the default Vault key material file path
func DefaultKeysPath() string {
	configDir, err := GetConfigDir()
	if err != nil {
		return ".vault-keys.json"
	}
	return filepath.Join(configDir, "vault-keys.json")
}

// FindConfig finds a configuration file by name
// If name is an absolute path, returns it as-is
// If name is a filename, looks in the config directory
// If name is empty, looks for the default config
func FindConfig(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("config file not found: %s", name)
			}
			return "", fmt.Errorf("failed to stat config file %s: %w", name, err)
		}
		return name, nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if name == "" {
		name = DefaultConfigName
	}

	if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name = name + ".yaml"
	}

	path := filepath.Join(configDir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("config file not found: %s (run 'launchbay config init' to create one)", path)
		}
		return "", fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	return path, nil
}
