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

// mountsServer fakes /v1/sys/mounts and records engine changes
type mountsServer struct {
	mounts   map[string]MountInfo
	enabled  []string
	disabled []string
}

func (m *mountsServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v1/sys/mounts" && r.Method == "GET":
			json.NewEncoder(w).Encode(map[string]interface{}{"data": m.mounts})
		case r.Method == "POST":
			m.enabled = append(m.enabled, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		case r.Method == "DELETE":
			m.disabled = append(m.disabled, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestClient_ListMounts(t *testing.T) {
	fake := &mountsServer{mounts: map[string]MountInfo{
		"secret/": {Type: "kv", Options: map[string]string{"version": "2"}},
		"sys/":    {Type: "system"},
	}}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewClient(server.URL, "hvs.root")
	mounts, err := client.ListMounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "kv", mounts["secret/"].Type)
	assert.Equal(t, "2", mounts["secret/"].Options["version"])
}

func TestClient_EnsureKVv2(t *testing.T) {
	t.Run("already v2", func(t *testing.T) {
		fake := &mountsServer{mounts: map[string]MountInfo{
			"secret/": {Type: "kv", Options: map[string]string{"version": "2"}},
		}}
		server := httptest.NewServer(fake.handler())
		defer server.Close()

		client := NewClient(server.URL, "hvs.root")
		require.NoError(t, client.EnsureKVv2(context.Background(), "secret"))
		assert.Empty(t, fake.enabled)
		assert.Empty(t, fake.disabled)
	})

	t.Run("absent, mounts v2", func(t *testing.T) {
		fake := &mountsServer{mounts: map[string]MountInfo{}}
		server := httptest.NewServer(fake.handler())
		defer server.Close()

		client := NewClient(server.URL, "hvs.root")
		require.NoError(t, client.EnsureKVv2(context.Background(), "secret"))
		assert.Equal(t, []string{"/v1/sys/mounts/secret"}, fake.enabled)
		assert.Empty(t, fake.disabled)
	})

	t.Run("v1 mount gets remounted", func(t *testing.T) {
		fake := &mountsServer{mounts: map[string]MountInfo{
			"secret/": {Type: "kv", Options: map[string]string{"version": "1"}},
		}}
		server := httptest.NewServer(fake.handler())
		defer server.Close()

		client := NewClient(server.URL, "hvs.root")
		require.NoError(t, client.EnsureKVv2(context.Background(), "secret"))
		assert.Equal(t, []string{"/v1/sys/mounts/secret"}, fake.disabled)
		assert.Equal(t, []string{"/v1/sys/mounts/secret"}, fake.enabled)
	})
}
