package cmd

import (
	"fmt"

	"github.com/podtail/podtail/pkg/api/client"
	"github.com/podtail/podtail/pkg/kubeconfig"
	"github.com/spf13/viper"
)

// loadClientConfig loads the podtail config file, honoring the global
// --config flag and the PODTAIL_CONFIG environment variable.
func loadClientConfig() (*kubeconfig.Config, error) {
	path, err := kubeconfig.ResolvePath(cfgFile)
	if err != nil {
		return nil, err
	}
	return kubeconfig.Load(path)
}

// applyOverrides layers command-line and environment overrides on top of the
// loaded config. Precedence: explicit flag > PODTAIL_SERVER/PODTAIL_TOKEN
// env > config file context.
func applyOverrides(config *kubeconfig.Config, serverOverride, tokenOverride string) {
	if serverOverride == "" {
		serverOverride = viper.GetString("server")
	}
	if tokenOverride == "" {
		tokenOverride = viper.GetString("token")
	}
	if serverOverride == "" && tokenOverride == "" {
		return
	}

	ctx, ok := config.Current()
	if !ok {
		ctx = &kubeconfig.Context{}
		config.SetContext("override", ctx)
		config.CurrentContext = "override"
	}
	if serverOverride != "" {
		ctx.Server = serverOverride
	}
	if tokenOverride != "" {
		ctx.Token = tokenOverride
		ctx.TokenFile = ""
	}
}

// newLogClient builds a LogClient backed by the loaded config, with optional
// server/token overrides applied.
func newLogClient(serverOverride, tokenOverride string) (*client.LogClient, *kubeconfig.Config, error) {
	config, err := loadClientConfig()
	if err != nil {
		return nil, nil, err
	}
	applyOverrides(config, serverOverride, tokenOverride)

	httpClient, err := config.HTTPClient()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build HTTP client: %w", err)
	}

	c, err := client.NewClient(&client.ClientOptions{
		Resolver:   config,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, nil, err
	}
	return client.NewLogClient(c), config, nil
}
