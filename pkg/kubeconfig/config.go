// Package kubeconfig loads and manages the podtail client configuration
// file: a set of named contexts (server, credentials, TLS settings) plus the
// name of the context currently in use.
package kubeconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable that overrides the config file location.
const EnvConfigPath = "PODTAIL_CONFIG"

// Context represents a single named connection target.
type Context struct {
	// Server is the base URL of the cluster API.
	Server string `yaml:"server"`

	// Bearer token authentication. TokenFile is read lazily on each request
	// so rotated tokens are picked up.
	Token     string `yaml:"token,omitempty"`
	TokenFile string `yaml:"token-file,omitempty"`

	// Basic authentication, used only when no token is configured.
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	// Namespace is the default namespace for operations in this context.
	Namespace string `yaml:"namespace,omitempty"`

	// TLS settings.
	CertificateAuthority     string `yaml:"certificate-authority,omitempty"`
	CertificateAuthorityData string `yaml:"certificate-authority-data,omitempty"`
	ClientCertificate        string `yaml:"client-certificate,omitempty"`
	ClientKey                string `yaml:"client-key,omitempty"`
	InsecureSkipTLSVerify    bool   `yaml:"insecure-skip-tls-verify,omitempty"`
}

// Config represents the structure of the podtail config file.
type Config struct {
	CurrentContext string              `yaml:"current-context"`
	Contexts       map[string]*Context `yaml:"contexts"`

	// path the config was loaded from; empty for in-memory configs.
	path string
}

// New returns an empty in-memory config.
func New() *Config {
	return &Config{
		Contexts: map[string]*Context{},
	}
}

// DefaultPath returns the default config file location, ~/.podtail/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".podtail", "config.yaml"), nil
}

// ResolvePath picks the config file location: explicit path, then the
// PODTAIL_CONFIG environment variable, then the default location.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	return DefaultPath()
}

// Load reads a config file from the given path. A missing file yields an
// empty config rather than an error, so first-run commands can proceed.
func Load(path string) (*Config, error) {
	config := New()
	config.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config at %s: %w", path, err)
	}
	if config.Contexts == nil {
		config.Contexts = map[string]*Context{}
	}
	return config, nil
}

// LoadDefault loads the config from the resolved default location.
func LoadDefault() (*Config, error) {
	path, err := ResolvePath("")
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to the given path, creating the parent
// directory if needed. An empty path falls back to the load location.
func (c *Config) Save(path string) error {
	if path == "" {
		path = c.path
	}
	if path == "" {
		return fmt.Errorf("no config path to save to")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config at %s: %w", path, err)
	}
	c.path = path
	return nil
}

// Current returns the active context, if one is configured.
func (c *Config) Current() (*Context, bool) {
	if c.CurrentContext == "" {
		return nil, false
	}
	ctx, ok := c.Contexts[c.CurrentContext]
	if !ok || ctx == nil {
		return nil, false
	}
	return ctx, true
}

// SetContext adds or replaces a named context.
func (c *Config) SetContext(name string, ctx *Context) {
	if c.Contexts == nil {
		c.Contexts = map[string]*Context{}
	}
	c.Contexts[name] = ctx
	if c.CurrentContext == "" {
		c.CurrentContext = name
	}
}

// DeleteContext removes a named context. It reports whether the context existed.
func (c *Config) DeleteContext(name string) bool {
	if _, ok := c.Contexts[name]; !ok {
		return false
	}
	delete(c.Contexts, name)
	if c.CurrentContext == name {
		c.CurrentContext = ""
	}
	return true
}

// UseContext switches the current context.
func (c *Config) UseContext(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("context %q not found", name)
	}
	c.CurrentContext = name
	return nil
}

// ContextNames returns the configured context names.
func (c *Config) ContextNames() []string {
	names := make([]string, 0, len(c.Contexts))
	for name := range c.Contexts {
		names = append(names, name)
	}
	return names
}
