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

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8200", "test-token")
	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8200", client.baseURL)
	assert.Equal(t, "test-token", client.token)
	assert.NotNil(t, client.httpClient)
}

func TestWithToken(t *testing.T) {
	client := NewClient("http://localhost:8200", "")
	authed := client.WithToken("hvs.root")

	assert.Equal(t, "", client.token)
	assert.Equal(t, "hvs.root", authed.token)
	assert.Equal(t, client.baseURL, authed.baseURL)
}

func TestClient_Health(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       HealthResponse
	}{
		{
			name:       "initialized, unsealed, active",
			statusCode: 200,
			body:       HealthResponse{Initialized: true, Sealed: false, Version: "1.17.0"},
		},
		{
			name:       "sealed",
			statusCode: 503,
			body:       HealthResponse{Initialized: true, Sealed: true},
		},
		{
			name:       "not initialized",
			statusCode: 501,
			body:       HealthResponse{Initialized: false, Sealed: true},
		},
		{
			name:       "standby",
			statusCode: 429,
			body:       HealthResponse{Initialized: true, Standby: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/sys/health", r.URL.Path)
				assert.Equal(t, "GET", r.Method)

				w.WriteHeader(tt.statusCode)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client := NewClient(server.URL, "")
			health, err := client.Health(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.body.Initialized, health.Initialized)
			assert.Equal(t, tt.body.Sealed, health.Sealed)
			assert.Equal(t, tt.statusCode, health.StatusCode)
		})
	}
}

func TestClient_Health_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "")
	_, err := client.Health(context.Background())
	require.Error(t, err)
}

func TestHealthResponse_IsReady(t *testing.T) {
	assert.True(t, (&HealthResponse{Initialized: true, Sealed: false, StatusCode: 200}).IsReady())
	assert.False(t, (&HealthResponse{Initialized: true, Sealed: true, StatusCode: 503}).IsReady())
	assert.False(t, (&HealthResponse{Initialized: false, StatusCode: 501}).IsReady())
}

func TestClient_ReadSecretV2(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/secret/data/mysql/creds", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "hvs.root", r.Header.Get("X-Vault-Token"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"data":     map[string]interface{}{"password": "s3cret"},
				"metadata": map[string]interface{}{"version": 1},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "hvs.root")
	data, err := client.ReadSecretV2(context.Background(), "secret", "mysql/creds")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", data["password"])
}

func TestClient_ReadSecretV2_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "hvs.root")
	_, err := client.ReadSecretV2(context.Background(), "secret", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_WriteSecretV2(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/secret/data/mysql/creds", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "hvs.root")
	err := client.WriteSecretV2(context.Background(), "secret", "mysql/creds",
		map[string]interface{}{"password": "s3cret"})
	require.NoError(t, err)

	// KV v2 requires the payload nested under "data"
	data, ok := received["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "s3cret", data["password"])
}

func TestClient_DeleteSecretV2(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/secret/data/mysql/creds", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "hvs.root")
	require.NoError(t, client.DeleteSecretV2(context.Background(), "secret", "mysql/creds"))
}

func TestClient_TokenLookupSelf(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/auth/token/lookup-self", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{"id": "hvs.root"}})
		}))
		defer server.Close()

		client := NewClient(server.URL, "hvs.root")
		require.NoError(t, client.TokenLookupSelf(context.Background()))
	})

	t.Run("invalid token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"errors":["permission denied"]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "bad-token")
		err := client.TokenLookupSelf(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token is not valid")
	})
}
