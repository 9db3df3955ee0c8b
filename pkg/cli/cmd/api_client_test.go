package cmd

import (
	"testing"

	"github.com/podtail/podtail/pkg/kubeconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverrides(t *testing.T) {
	t.Run("NoOverridesKeepsContext", func(t *testing.T) {
		config := kubeconfig.New()
		config.SetContext("prod", &kubeconfig.Context{Server: "https://prod.example.com", Token: "prod-token"})

		applyOverrides(config, "", "")

		ctx, ok := config.Current()
		require.True(t, ok)
		assert.Equal(t, "https://prod.example.com", ctx.Server)
		assert.Equal(t, "prod-token", ctx.Token)
	})

	t.Run("ServerOverride", func(t *testing.T) {
		config := kubeconfig.New()
		config.SetContext("prod", &kubeconfig.Context{Server: "https://prod.example.com", Token: "prod-token"})

		applyOverrides(config, "https://other.example.com", "")

		ctx, _ := config.Current()
		assert.Equal(t, "https://other.example.com", ctx.Server)
		assert.Equal(t, "prod-token", ctx.Token, "token untouched by server override")
	})

	t.Run("TokenOverrideClearsTokenFile", func(t *testing.T) {
		config := kubeconfig.New()
		config.SetContext("prod", &kubeconfig.Context{Server: "https://prod.example.com", TokenFile: "/var/run/token"})

		applyOverrides(config, "", "cli-token")

		ctx, _ := config.Current()
		assert.Equal(t, "cli-token", ctx.Token)
		assert.Empty(t, ctx.TokenFile)
	})

	t.Run("OverridesWithoutAnyContext", func(t *testing.T) {
		config := kubeconfig.New()

		applyOverrides(config, "https://adhoc.example.com", "adhoc-token")

		cluster, ok := config.CurrentCluster()
		require.True(t, ok)
		assert.Equal(t, "https://adhoc.example.com", cluster.Server)
	})
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "******", maskToken("short"))
	assert.Equal(t, "abc******xyz", maskToken("abcdefuvwxyz"))
}
