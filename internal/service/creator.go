package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var (
	// ErrTemplateNotFound is returned for an unknown template name
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateMalformed is returned when a template lacks required files
	ErrTemplateMalformed = errors.New("template is malformed")
	// ErrServiceExists is returned when the target service already exists
	ErrServiceExists = errors.New("service already exists")
)

// SecretWriter stores generated credentials; satisfied by *vault.Client
type SecretWriter interface {
	WriteSecretV2(ctx context.Context, mount, path string, data map[string]interface{}) error
}

// SecretMount is the KV v2 mount used for generated service credentials
const SecretMount = "secret"

// SecretPathVariable is the manifest variable naming the KV path for a
// Vault-integrated template
const SecretPathVariable = "SECRET_PATH"

// Creator scaffolds new service directories from templates
type Creator struct {
	TemplatesDir string
	ServicesDir  string
	Prompter     Prompter

	// Secrets and LoadToken are only consulted for Vault-integrated
	// templates (those carrying a vault-agent.hcl.tmpl)
	Secrets   SecretWriter
	LoadToken func() (string, error)

	// GeneratePassword produces credentials for Vault-integrated services
	GeneratePassword func(length int) (string, error)
}

// Create renders a new service directory from the named template.
// On any failure the partially-created directory is removed.
func (c *Creator) Create(ctx context.Context, templateName, serviceName string) error {
	templateDir, serviceDir, err := c.validatePaths(templateName, serviceName)
	if err != nil {
		return err
	}

	manifest, err := LoadManifest(templateDir)
	if err != nil {
		return err
	}
	if manifest.Description != "" {
		fmt.Printf("Template: %s\n", manifest.Description)
	}

	values := make(map[string]string, len(manifest.Variables))
	for _, v := range manifest.Variables {
		value, err := c.Prompter.Resolve(v)
		if err != nil {
			return err
		}
		values[v.Name] = value
	}

	vaultIntegrated := fileExists(filepath.Join(templateDir, VaultAgentTemplate))
	if vaultIntegrated {
		if err := c.provisionSecrets(ctx, values); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(serviceDir, 0755); err != nil {
		return fmt.Errorf("failed to create service directory: %w", err)
	}

	if err := c.renderTemplateDir(templateDir, serviceDir, values); err != nil {
		os.RemoveAll(serviceDir)
		return err
	}

	if vaultIntegrated {
		if err := writeConsulTemplates(serviceDir, values[SecretPathVariable]); err != nil {
			os.RemoveAll(serviceDir)
			return err
		}
	}

	c.printSummary(serviceName, serviceDir, vaultIntegrated, values)
	return nil
}

func (c *Creator) validatePaths(templateName, serviceName string) (string, string, error) {
	if templateName == "" || serviceName == "" {
		return "", "", fmt.Errorf("template and service names are required")
	}

	templateDir := filepath.Join(c.TemplatesDir, templateName)
	info, err := os.Stat(templateDir)
	if err != nil || !info.IsDir() {
		return "", "", fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, templateName, c.TemplatesDir)
	}

	if !fileExists(filepath.Join(templateDir, ManifestFileName)) {
		return "", "", fmt.Errorf("%w: %q is missing %s", ErrTemplateMalformed, templateName, ManifestFileName)
	}
	if !fileExists(filepath.Join(templateDir, ComposeTemplate)) {
		return "", "", fmt.Errorf("%w: %q is missing %s", ErrTemplateMalformed, templateName, ComposeTemplate)
	}

	serviceDir := filepath.Join(c.ServicesDir, serviceName)
	if _, err := os.Stat(serviceDir); err == nil {
		return "", "", fmt.Errorf("%w: %s", ErrServiceExists, serviceDir)
	}

	return templateDir, serviceDir, nil
}

// provisionSecrets generates credentials, stores them in Vault, and makes
// the Vault token available to the render context
func (c *Creator) provisionSecrets(ctx context.Context, values map[string]string) error {
	secretPath, ok := values[SecretPathVariable]
	if !ok || secretPath == "" {
		return fmt.Errorf("vault-integrated template requires a %s variable", SecretPathVariable)
	}
	if c.Secrets == nil || c.LoadToken == nil || c.GeneratePassword == nil {
		return fmt.Errorf("vault integration is not available - run 'launchbay vault setup' first")
	}

	fmt.Println("Vault integration detected, generating and storing credentials...")

	rootPassword, err := c.GeneratePassword(0)
	if err != nil {
		return fmt.Errorf("failed to generate root password: %w", err)
	}
	userPassword, err := c.GeneratePassword(0)
	if err != nil {
		return fmt.Errorf("failed to generate user password: %w", err)
	}

	data := map[string]interface{}{
		"root_password": rootPassword,
		"user_password": userPassword,
	}
	if err := c.Secrets.WriteSecretV2(ctx, SecretMount, secretPath, data); err != nil {
		return fmt.Errorf("failed to store credentials in Vault: %w", err)
	}
	fmt.Printf("✓ Credentials stored at %s/%s\n", SecretMount, secretPath)

	token, err := c.LoadToken()
	if err != nil {
		return err
	}
	values["VAULT_TOKEN"] = token

	return nil
}

// renderTemplateDir walks the template directory, rendering *.tmpl files
// and copying everything else (the manifest excluded)
func (c *Creator) renderTemplateDir(templateDir, serviceDir string, values map[string]string) error {
	return filepath.WalkDir(templateDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(templateDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			return os.MkdirAll(filepath.Join(serviceDir, rel), 0755)
		}

		if rel == ManifestFileName {
			return nil
		}

		if strings.HasSuffix(rel, TemplateSuffix) {
			target := filepath.Join(serviceDir, strings.TrimSuffix(rel, TemplateSuffix))
			return renderFile(path, target, values)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		return os.WriteFile(filepath.Join(serviceDir, rel), data, 0644)
	})
}

// renderFile renders a single template file; unresolved variables are an
// error rather than rendering as "<no value>"
func renderFile(src, dst string, values map[string]string) error {
	tmpl, err := template.New(filepath.Base(src)).Option("missingkey=error").ParseFiles(src)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if err := tmpl.Execute(out, values); err != nil {
		return fmt.Errorf("failed to render %s: %w", filepath.Base(src), err)
	}

	return nil
}

// writeConsulTemplates emits the .ctmpl files the Vault agent sidecar uses
// to materialize credentials for the service
func writeConsulTemplates(serviceDir, secretPath string) error {
	dir := filepath.Join(serviceDir, "templates")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create templates directory: %w", err)
	}

	for _, key := range []string{"root_password", "user_password"} {
		content := fmt.Sprintf(`{{ with secret "%s/data/%s" }}{{ .Data.data.%s }}{{ end }}`,
			SecretMount, secretPath, key)
		path := filepath.Join(dir, key+".ctmpl")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return nil
}

func (c *Creator) printSummary(serviceName, serviceDir string, vaultIntegrated bool, values map[string]string) {
	fmt.Printf("✓ Service %q created\n", serviceName)
	fmt.Printf("  Configuration written to %s\n", serviceDir)
	fmt.Printf("  Start it with: launchbay service start %s\n", serviceName)
	if vaultIntegrated {
		fmt.Printf("  Inspect credentials with: vault kv get %s/%s\n", SecretMount, values[SecretPathVariable])
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
