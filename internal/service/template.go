package service

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ManifestFileName is the template manifest every template must have
	ManifestFileName = "template.yaml"
	// TemplateSuffix marks files that get rendered rather than copied
	TemplateSuffix = ".tmpl"
	// VaultAgentTemplate marks a template as Vault-integrated
	VaultAgentTemplate = "vault-agent.hcl" + TemplateSuffix
	// ComposeTemplate is the one file every template must render
	ComposeTemplate = "docker-compose.yml" + TemplateSuffix
)

// Variable describes one value a template needs at creation time
type Variable struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	// Secret variables are prompted without echo and never printed back
	Secret bool `yaml:"secret,omitempty"`
}

// Manifest is the parsed template.yaml
type Manifest struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Variables   []Variable `yaml:"variables"`
}

// LoadManifest parses the manifest in templateDir
func LoadManifest(templateDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(templateDir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFileName, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFileName, err)
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ManifestFileName, err)
	}

	return &manifest, nil
}

// Validate checks the manifest for duplicate or unnamed variables
func (m *Manifest) Validate() error {
	seen := make(map[string]bool)
	for i, v := range m.Variables {
		if v.Name == "" {
			return fmt.Errorf("variable %d has no name", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate variable %q", v.Name)
		}
		seen[v.Name] = true
	}
	return nil
}
