package config

import (
	"fmt"
	"strings"
)

// Config represents the launchbay configuration
type Config struct {
	// Network is the external docker network shared by all services
	Network string `yaml:"network"`
	// ServicesDir is the directory containing one compose project per service
	ServicesDir string `yaml:"services_dir"`
	// TemplatesDir is the directory containing service templates
	TemplatesDir string `yaml:"templates_dir"`

	Colima ColimaConfig `yaml:"colima,omitempty"`
	Vault  VaultConfig  `yaml:"vault,omitempty"`
}

// ColimaConfig defines how the Colima VM is started
type ColimaConfig struct {
	Profile string `yaml:"profile,omitempty"`
	CPUs    int    `yaml:"cpus,omitempty"`
	Memory  int    `yaml:"memory,omitempty"` // GiB
	Disk    int    `yaml:"disk,omitempty"`   // GiB
}

// VaultConfig defines how the Vault service is reached and initialized
type VaultConfig struct {
	// Addr is the Vault API address as seen from the host
	Addr string `yaml:"addr"`
	// ServiceName is the name of the compose service directory for Vault
	ServiceName string `yaml:"service_name"`
	// KeysFile is where init key material is stored
	KeysFile string `yaml:"keys_file,omitempty"`
	// Shares and Threshold control operator init key splitting
	Shares    int `yaml:"shares,omitempty"`
	Threshold int `yaml:"threshold,omitempty"`
}

// Default values applied when the config file omits them
const (
	DefaultVaultAddr      = "http://127.0.0.1:8200"
	DefaultVaultService   = "vault"
	DefaultVaultShares    = 5
	DefaultVaultThreshold = 3
)

// Validate performs validation on the Config struct
func (c *Config) Validate() error {
	if c.Network == "" {
		return fmt.Errorf("network is required (set it in the config file or via DOCKER_EXTERNAL_NETWORK)")
	}
	if strings.ContainsAny(c.Network, " \t") {
		return fmt.Errorf("network name %q must not contain whitespace", c.Network)
	}
	if c.ServicesDir == "" {
		return fmt.Errorf("services_dir is required")
	}
	if c.TemplatesDir == "" {
		return fmt.Errorf("templates_dir is required")
	}
	if err := c.Vault.Validate(); err != nil {
		return fmt.Errorf("vault validation failed: %w", err)
	}
	return nil
}

// Validate performs validation on the VaultConfig struct
func (v *VaultConfig) Validate() error {
	if v.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if !strings.HasPrefix(v.Addr, "http://") && !strings.HasPrefix(v.Addr, "https://") {
		return fmt.Errorf("addr %q must be an http(s) URL", v.Addr)
	}
	if v.Shares < 1 {
		return fmt.Errorf("shares must be at least 1")
	}
	if v.Threshold < 1 {
		return fmt.Errorf("threshold must be at least 1")
	}
	if v.Threshold > v.Shares {
		return fmt.Errorf("threshold (%d) cannot exceed shares (%d)", v.Threshold, v.Shares)
	}
	return nil
}
