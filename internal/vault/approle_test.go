package vault

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_EnableAppRoleAuth(t *testing.T) {
	t.Run("already enabled", func(t *testing.T) {
		var enableCalled bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v1/sys/auth":
				json.NewEncoder(w).Encode(map[string]interface{}{
					"data": map[string]interface{}{
						"approle/": map[string]interface{}{"type": "approle"},
						"token/":   map[string]interface{}{"type": "token"},
					},
				})
			case "/v1/sys/auth/approle":
				enableCalled = true
				w.WriteHeader(http.StatusNoContent)
			}
		}))
		defer server.Close()

		client := NewClient(server.URL, "hvs.root")
		require.NoError(t, client.EnableAppRoleAuth(context.Background()))
		assert.False(t, enableCalled)
	})

	t.Run("enables when missing", func(t *testing.T) {
		var enableCalled bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v1/sys/auth":
				json.NewEncoder(w).Encode(map[string]interface{}{
					"data": map[string]interface{}{
						"token/": map[string]interface{}{"type": "token"},
					},
				})
			case "/v1/sys/auth/approle":
				enableCalled = true
				assert.Equal(t, "POST", r.Method)
				w.WriteHeader(http.StatusNoContent)
			}
		}))
		defer server.Close()

		client := NewClient(server.URL, "hvs.root")
		require.NoError(t, client.EnableAppRoleAuth(context.Background()))
		assert.True(t, enableCalled)
	})
}

func TestClient_CreateAppRole(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/auth/approle/role/mysql-app", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "hvs.root")
	err := client.CreateAppRole(context.Background(), "mysql-app", []string{"default", "mysql-read"}, "")
	require.NoError(t, err)

	assert.Equal(t, "1h", received["token_ttl"])
	assert.Equal(t, "default,mysql-read", received["token_policies"])
}

func TestClient_CreateAppRole_EmptyName(t *testing.T) {
	client := NewClient("http://localhost:8200", "hvs.root")
	err := client.CreateAppRole(context.Background(), "", nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role name is required")
}

func TestClient_AppRoleCredentialsFor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/approle/role/mysql-app/role-id":
			assert.Equal(t, "GET", r.Method)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{"role_id": "role-123"},
			})
		case "/v1/auth/approle/role/mysql-app/secret-id":
			assert.Equal(t, "POST", r.Method)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{"secret_id": "secret-456"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "hvs.root")
	creds, err := client.AppRoleCredentialsFor(context.Background(), "mysql-app")
	require.NoError(t, err)

	assert.Equal(t, "role-123", creds.RoleID)
	assert.Equal(t, "secret-456", creds.SecretID)
}
