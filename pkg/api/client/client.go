// Package client implements the podtail API client: a thin HTTP client for
// the cluster API with a log-streaming operation on top.
package client

import (
	"fmt"
	"net/http"

	"github.com/podtail/podtail/pkg/log"
	"github.com/podtail/podtail/pkg/types"
	"github.com/podtail/podtail/pkg/version"
)

// ConfigResolver resolves the active cluster and decorates outgoing requests
// with credentials. The configuration subsystem behind it is opaque to the
// client; pkg/kubeconfig provides the standard implementation.
type ConfigResolver interface {
	// CurrentCluster returns the active cluster, or false when none is configured.
	CurrentCluster() (*types.Cluster, bool)

	// ApplyToRequest mutates the request with authentication settings.
	ApplyToRequest(req *http.Request) error
}

// StatusDecoder decodes a non-200 response body into a structured status
// object, failing on anything that is not one.
type StatusDecoder interface {
	Decode(data []byte) (*types.Status, error)
}

// jsonStatusDecoder is the default StatusDecoder.
type jsonStatusDecoder struct{}

func (jsonStatusDecoder) Decode(data []byte) (*types.Status, error) {
	return types.DecodeStatus(data)
}

// ClientOptions holds configuration options for the API client.
type ClientOptions struct {
	// Resolver supplies the active cluster and request credentials. Required.
	Resolver ConfigResolver

	// StatusDecoder decodes error response bodies. Defaults to JSON decoding.
	StatusDecoder StatusDecoder

	// HTTPClient issues the requests. Defaults to a client without timeouts,
	// since followed log streams stay open indefinitely.
	HTTPClient *http.Client

	// UserAgent sent with every request.
	UserAgent string

	// Logger
	Logger log.Logger
}

// DefaultClientOptions returns the default client options.
func DefaultClientOptions() *ClientOptions {
	return &ClientOptions{
		StatusDecoder: jsonStatusDecoder{},
		HTTPClient:    &http.Client{},
		UserAgent:     "podtail/" + version.Version,
		Logger:        log.GetDefaultLogger().WithComponent("api-client"),
	}
}

// Client provides a client for interacting with the cluster API server.
type Client struct {
	resolver   ConfigResolver
	decoder    StatusDecoder
	httpClient *http.Client
	userAgent  string
	logger     log.Logger
}

// NewClient creates a new API client with the given options.
func NewClient(options *ClientOptions) (*Client, error) {
	if options == nil || options.Resolver == nil {
		return nil, fmt.Errorf("a config resolver is required")
	}

	defaults := DefaultClientOptions()

	decoder := options.StatusDecoder
	if decoder == nil {
		decoder = defaults.StatusDecoder
	}
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = defaults.HTTPClient
	}
	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = defaults.UserAgent
	}
	logger := options.Logger
	if logger == nil {
		logger = defaults.Logger
	}

	return &Client{
		resolver:   options.Resolver,
		decoder:    decoder,
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}
