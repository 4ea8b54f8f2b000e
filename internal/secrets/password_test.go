package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	password, err := GeneratePassword(24)
	require.NoError(t, err)
	assert.Len(t, password, 24)

	for _, c := range password {
		assert.True(t, strings.ContainsRune(PasswordAlphabet, c),
			"character %q not in alphabet", c)
	}
}

func TestGeneratePassword_DefaultLength(t *testing.T) {
	password, err := GeneratePassword(0)
	require.NoError(t, err)
	assert.Len(t, password, DefaultPasswordLength)
}

func TestGeneratePassword_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		password, err := GeneratePassword(16)
		require.NoError(t, err)
		assert.False(t, seen[password], "generated duplicate password")
		seen[password] = true
	}
}
