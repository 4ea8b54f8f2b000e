package secrets

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PasswordAlphabet is the character set used for generated passwords
const PasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// DefaultPasswordLength is the length used when callers pass 0
const DefaultPasswordLength = 24

// GeneratePassword returns a cryptographically random password
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}

	max := big.NewInt(int64(len(PasswordAlphabet)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random index: %w", err)
		}
		password[i] = PasswordAlphabet[n.Int64()]
	}

	return string(password), nil
}
