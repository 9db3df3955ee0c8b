package kubeconfig

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("FullConfig", func(t *testing.T) {
		path := writeTestConfig(t, `
current-context: prod
contexts:
  prod:
    server: https://api.example.com:6443
    token: secret-token
    namespace: payments
  staging:
    server: https://staging.example.com:6443
`)

		config, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "prod", config.CurrentContext)
		assert.Len(t, config.Contexts, 2)
		assert.Equal(t, "https://api.example.com:6443", config.Contexts["prod"].Server)
		assert.Equal(t, "payments", config.Contexts["prod"].Namespace)
	})

	t.Run("MissingFileYieldsEmptyConfig", func(t *testing.T) {
		config, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
		require.NoError(t, err)
		assert.Empty(t, config.CurrentContext)
		assert.Empty(t, config.Contexts)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeTestConfig(t, "contexts: [not a map")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	config := New()
	config.SetContext("dev", &Context{
		Server: "https://dev.example.com:6443",
		Token:  "dev-token",
	})
	require.NoError(t, config.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", loaded.CurrentContext)
	assert.Equal(t, "dev-token", loaded.Contexts["dev"].Token)
}

func TestCurrentCluster(t *testing.T) {
	t.Run("Resolved", func(t *testing.T) {
		config := New()
		config.SetContext("prod", &Context{Server: "https://api.example.com:6443"})

		cluster, ok := config.CurrentCluster()
		require.True(t, ok)
		assert.Equal(t, "prod", cluster.Name)
		assert.Equal(t, "https://api.example.com:6443", cluster.Server)
	})

	t.Run("NoCurrentContext", func(t *testing.T) {
		config := New()
		_, ok := config.CurrentCluster()
		assert.False(t, ok)
	})

	t.Run("ContextWithoutServer", func(t *testing.T) {
		config := New()
		config.SetContext("broken", &Context{Token: "only-a-token"})
		_, ok := config.CurrentCluster()
		assert.False(t, ok)
	})
}

func TestApplyToRequest(t *testing.T) {
	newRequest := func(t *testing.T) *http.Request {
		t.Helper()
		req, err := http.NewRequest(http.MethodGet, "https://api.example.com/api/v1/namespaces/default/pods/web/log", nil)
		require.NoError(t, err)
		return req
	}

	t.Run("BearerToken", func(t *testing.T) {
		config := New()
		config.SetContext("prod", &Context{Server: "https://api.example.com", Token: "secret"})

		req := newRequest(t)
		require.NoError(t, config.ApplyToRequest(req))
		assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
	})

	t.Run("TokenFile", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(tokenPath, []byte("from-file\n"), 0600))

		config := New()
		config.SetContext("prod", &Context{Server: "https://api.example.com", TokenFile: tokenPath})

		req := newRequest(t)
		require.NoError(t, config.ApplyToRequest(req))
		assert.Equal(t, "Bearer from-file", req.Header.Get("Authorization"))
	})

	t.Run("BasicAuth", func(t *testing.T) {
		config := New()
		config.SetContext("prod", &Context{Server: "https://api.example.com", Username: "admin", Password: "hunter2"})

		req := newRequest(t)
		require.NoError(t, config.ApplyToRequest(req))
		user, pass, ok := req.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "hunter2", pass)
	})

	t.Run("NoContext", func(t *testing.T) {
		config := New()
		req := newRequest(t)
		assert.Error(t, config.ApplyToRequest(req))
	})
}

func TestContextManagement(t *testing.T) {
	config := New()
	config.SetContext("a", &Context{Server: "https://a.example.com"})
	config.SetContext("b", &Context{Server: "https://b.example.com"})

	// First context becomes current automatically.
	assert.Equal(t, "a", config.CurrentContext)

	require.NoError(t, config.UseContext("b"))
	assert.Equal(t, "b", config.CurrentContext)

	assert.Error(t, config.UseContext("missing"))

	assert.True(t, config.DeleteContext("b"))
	assert.Empty(t, config.CurrentContext)
	assert.False(t, config.DeleteContext("b"))

	assert.ElementsMatch(t, []string{"a"}, config.ContextNames())
}

func TestHTTPClient(t *testing.T) {
	t.Run("PlainClientWithoutTLSSettings", func(t *testing.T) {
		config := New()
		config.SetContext("prod", &Context{Server: "http://api.example.com"})

		client, err := config.HTTPClient()
		require.NoError(t, err)
		assert.Nil(t, client.Transport)
	})

	t.Run("InsecureSkipVerify", func(t *testing.T) {
		config := New()
		config.SetContext("prod", &Context{
			Server:                "https://api.example.com",
			InsecureSkipTLSVerify: true,
		})

		client, err := config.HTTPClient()
		require.NoError(t, err)
		transport, ok := client.Transport.(*http.Transport)
		require.True(t, ok)
		assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
	})

	t.Run("BadCertificateAuthorityData", func(t *testing.T) {
		config := New()
		config.SetContext("prod", &Context{
			Server:                   "https://api.example.com",
			CertificateAuthorityData: "not-base64!!",
		})

		_, err := config.HTTPClient()
		assert.Error(t, err)
	})
}
