package vault

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// KeyMaterial contains the secrets produced by operator init
type KeyMaterial struct {
	RootToken  string   `json:"root_token"`
	UnsealKeys []string `json:"unseal_keys"`
	Shares     int      `json:"shares"`
	Threshold  int      `json:"threshold"`
}

// KeyMaterialFromInit builds KeyMaterial from an init response.
// Base64 keys are preferred; hex keys are kept when base64 is absent.
func KeyMaterialFromInit(resp *InitResponse, shares, threshold int) *KeyMaterial {
	keys := resp.KeysBase64
	if len(keys) == 0 {
		keys = resp.Keys
	}
	return &KeyMaterial{
		RootToken:  resp.RootToken,
		UnsealKeys: keys,
		Shares:     shares,
		Threshold:  threshold,
	}
}

// ThresholdKeys returns only the keys needed to clear the seal
func (m *KeyMaterial) ThresholdKeys() []string {
	if m.Threshold > 0 && m.Threshold < len(m.UnsealKeys) {
		return m.UnsealKeys[:m.Threshold]
	}
	return m.UnsealKeys
}

// SaveKeyMaterial writes key material to path as JSON.
// The write is atomic (temp file + rename) and the file is 0600; losing
// this file on a crash mid-write would orphan the Vault instance.
func SaveKeyMaterial(path string, material *KeyMaterial) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create keys directory: %w", err)
	}

	data, err := json.MarshalIndent(material, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keys: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp keys file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set keys file permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write keys file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close keys file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move keys file into place: %w", err)
	}

	return nil
}

// LoadKeyMaterial loads key material from path
func LoadKeyMaterial(path string) (*KeyMaterial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keys file: %w", err)
	}

	var material KeyMaterial
	if err := json.Unmarshal(data, &material); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keys: %w", err)
	}

	return &material, nil
}

// KeyMaterialExists checks whether a keys file is present at path
func KeyMaterialExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
