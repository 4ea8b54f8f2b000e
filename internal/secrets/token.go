package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/launchbay/launchbay/internal/config"
)

const (
	// KeyringService is the service name used in the OS keyring
	KeyringService = "launchbay"
	// KeyringUser is the user/account name for the Vault root token
	KeyringUser = "vault-root-token"
	// FallbackFileName is the filename for fallback file storage
	FallbackFileName = ".vault-token"
)

// StoreRootToken stores the Vault root token in the OS keyring
// Falls back to file storage if keyring is unavailable
func StoreRootToken(token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	err := keyring.Set(KeyringService, KeyringUser, token)
	if err == nil {
		return nil
	}

	return storeTokenInFile(token)
}

// LoadRootToken retrieves the Vault root token from the OS keyring
// Falls back to file storage if keyring is unavailable
func LoadRootToken() (string, error) {
	token, err := keyring.Get(KeyringService, KeyringUser)
	if err == nil {
		return token, nil
	}

	return loadTokenFromFile()
}

// ClearRootToken removes the Vault root token from storage
func ClearRootToken() error {
	keyringErr := keyring.Delete(KeyringService, KeyringUser)

	// Also try the file in case it was stored there
	fileErr := deleteTokenFile()

	if keyringErr != nil && fileErr != nil {
		return fmt.Errorf("failed to clear token from keyring (%v) and file (%v)", keyringErr, fileErr)
	}

	return nil
}

func getTokenFilePath() (string, error) {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FallbackFileName), nil
}

// storeTokenInFile stores the token in a file with restrictive permissions
func storeTokenInFile(token string) error {
	tokenPath, err := getTokenFilePath()
	if err != nil {
		return fmt.Errorf("failed to get token file path: %w", err)
	}

	dir := filepath.Dir(tokenPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(tokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// loadTokenFromFile loads the token from file storage
func loadTokenFromFile() (string, error) {
	tokenPath, err := getTokenFilePath()
	if err != nil {
		return "", fmt.Errorf("failed to get token file path: %w", err)
	}

	if _, err := os.Stat(tokenPath); os.IsNotExist(err) {
		return "", fmt.Errorf("no Vault token found in keyring or file storage - run 'launchbay vault setup' first")
	}

	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file is empty")
	}

	return token, nil
}

// deleteTokenFile removes the fallback token file
func deleteTokenFile() error {
	tokenPath, err := getTokenFilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(tokenPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("token file does not exist")
		}
		return fmt.Errorf("failed to delete token file: %w", err)
	}

	return nil
}
