package kubeconfig

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/podtail/podtail/pkg/types"
)

// CurrentCluster resolves the active cluster from the current context.
// It reports false when no usable cluster is configured.
func (c *Config) CurrentCluster() (*types.Cluster, bool) {
	ctx, ok := c.Current()
	if !ok || ctx.Server == "" {
		return nil, false
	}
	return &types.Cluster{
		Name:   c.CurrentContext,
		Server: ctx.Server,
	}, true
}

// ApplyToRequest decorates an outgoing request with the credentials of the
// current context: a bearer token when one is configured, basic auth otherwise.
func (c *Config) ApplyToRequest(req *http.Request) error {
	ctx, ok := c.Current()
	if !ok {
		return types.NewConfigError("no context configured")
	}

	token := ctx.Token
	if token == "" && ctx.TokenFile != "" {
		data, err := os.ReadFile(ctx.TokenFile)
		if err != nil {
			return fmt.Errorf("failed to read token file: %w", err)
		}
		token = strings.TrimSpace(string(data))
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
	if ctx.Username != "" {
		req.SetBasicAuth(ctx.Username, ctx.Password)
	}
	return nil
}

// HTTPClient builds an HTTP client honoring the TLS settings of the current
// context. Without a current context or TLS settings it returns a plain client.
func (c *Config) HTTPClient() (*http.Client, error) {
	ctx, ok := c.Current()
	if !ok {
		return &http.Client{}, nil
	}

	tlsConfig, err := ctx.tlsConfig()
	if err != nil {
		return nil, err
	}
	if tlsConfig == nil {
		return &http.Client{}, nil
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig
	return &http.Client{Transport: transport}, nil
}

func (ctx *Context) tlsConfig() (*tls.Config, error) {
	hasTLS := ctx.InsecureSkipTLSVerify ||
		ctx.CertificateAuthority != "" ||
		ctx.CertificateAuthorityData != "" ||
		ctx.ClientCertificate != ""
	if !hasTLS {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: ctx.InsecureSkipTLSVerify, //nolint:gosec
	}

	var caData []byte
	switch {
	case ctx.CertificateAuthorityData != "":
		decoded, err := base64.StdEncoding.DecodeString(ctx.CertificateAuthorityData)
		if err != nil {
			return nil, fmt.Errorf("failed to decode certificate authority data: %w", err)
		}
		caData = decoded
	case ctx.CertificateAuthority != "":
		data, err := os.ReadFile(ctx.CertificateAuthority)
		if err != nil {
			return nil, fmt.Errorf("failed to read certificate authority: %w", err)
		}
		caData = data
	}
	if caData != nil {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caData) {
			return nil, fmt.Errorf("no certificates found in certificate authority data")
		}
		tlsConfig.RootCAs = pool
	}

	if ctx.ClientCertificate != "" {
		cert, err := tls.LoadX509KeyPair(ctx.ClientCertificate, ctx.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}
