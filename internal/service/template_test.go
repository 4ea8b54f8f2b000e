package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mysqlManifest = `
name: mysql
description: MySQL single-instance service
variables:
  - name: CONTAINER_NAME
    description: Container name
    default: mysql
  - name: MYSQL_PORT
    description: Host port for MySQL
    default: "3306"
  - name: SECRET_PATH
    description: KV path for generated credentials
`

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(mysqlManifest), 0644))

	manifest, err := LoadManifest(dir)
	require.NoError(t, err)

	assert.Equal(t, "mysql", manifest.Name)
	require.Len(t, manifest.Variables, 3)
	assert.Equal(t, "CONTAINER_NAME", manifest.Variables[0].Name)
	assert.Equal(t, "mysql", manifest.Variables[0].Default)
	assert.Equal(t, "", manifest.Variables[2].Default)
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	require.Error(t, err)
}

func TestLoadManifest_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte("variables: [oops"), 0644))

	_, err := LoadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestManifest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		wantErr  string
	}{
		{
			name:     "valid",
			manifest: Manifest{Variables: []Variable{{Name: "A"}, {Name: "B"}}},
		},
		{
			name:     "unnamed variable",
			manifest: Manifest{Variables: []Variable{{Description: "no name"}}},
			wantErr:  "has no name",
		},
		{
			name:     "duplicate variable",
			manifest: Manifest{Variables: []Variable{{Name: "A"}, {Name: "A"}}},
			wantErr:  "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
