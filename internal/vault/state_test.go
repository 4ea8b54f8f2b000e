package vault

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateFromHealth(t *testing.T) {
	tests := []struct {
		name     string
		health   *HealthResponse
		expected State
	}{
		{
			name:     "nil is down",
			health:   nil,
			expected: StateDown,
		},
		{
			name:     "not initialized",
			health:   &HealthResponse{Initialized: false, Sealed: true, StatusCode: 501},
			expected: StateNotInitialized,
		},
		{
			name:     "sealed",
			health:   &HealthResponse{Initialized: true, Sealed: true, StatusCode: 503},
			expected: StateSealed,
		},
		{
			name:     "unsealed active",
			health:   &HealthResponse{Initialized: true, Sealed: false, StatusCode: 200},
			expected: StateUnsealed,
		},
		{
			name:     "standby 429",
			health:   &HealthResponse{Initialized: true, Sealed: false, Standby: true, StatusCode: 429},
			expected: StateStandby,
		},
		{
			name:     "performance standby 473",
			health:   &HealthResponse{Initialized: true, Sealed: false, StatusCode: 473},
			expected: StateStandby,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StateFromHealth(tt.health))
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "down", StateDown.String())
	assert.Equal(t, "not initialized", StateNotInitialized.String())
	assert.Equal(t, "sealed", StateSealed.String())
	assert.Equal(t, "unsealed", StateUnsealed.String())
	assert.Equal(t, "standby", StateStandby.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestClient_State(t *testing.T) {
	t.Run("unreachable is down", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "")
		assert.Equal(t, StateDown, client.State(context.Background()))
	})

	t.Run("maps health response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(503)
			json.NewEncoder(w).Encode(HealthResponse{Initialized: true, Sealed: true})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		assert.Equal(t, StateSealed, client.State(context.Background()))
	})
}
