package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/podtail/podtail/pkg/kubeconfig"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	var server string
	var namespace string
	var token string
	var tokenFile string
	var contextName string
	var insecure bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save cluster credentials to the config file",
		Long: `Save a cluster server and its credentials as a context in the podtail
config file (default $HOME/.podtail/config.yaml) and make it the current
context. Without --token or --token-file the token is prompted for.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if server == "" {
				return fmt.Errorf("--server is required")
			}
			if token == "" && tokenFile == "" {
				prompted, err := promptForToken()
				if err != nil {
					return err
				}
				token = prompted
			}

			path, err := kubeconfig.ResolvePath(cfgFile)
			if err != nil {
				return err
			}
			config, err := kubeconfig.Load(path)
			if err != nil {
				return err
			}

			config.SetContext(contextName, &kubeconfig.Context{
				Server:                server,
				Token:                 token,
				TokenFile:             tokenFile,
				Namespace:             namespace,
				InsecureSkipTLSVerify: insecure,
			})
			if err := config.UseContext(contextName); err != nil {
				return err
			}
			if err := config.Save(path); err != nil {
				return err
			}

			fmt.Printf("Context %q saved to %s\n", contextName, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "Cluster API server URL")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Optional default namespace")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token value")
	cmd.Flags().StringVar(&tokenFile, "token-file", "", "Path to file containing the bearer token")
	cmd.Flags().StringVar(&contextName, "context", "default", "Name of the context to create or update")
	cmd.Flags().BoolVar(&insecure, "insecure-skip-tls-verify", false, "Skip TLS certificate verification")
	return cmd
}

// promptForToken reads a token from the terminal without echoing it.
func promptForToken() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("must provide --token or --token-file when not running interactively")
	}

	fmt.Fprint(os.Stderr, "Token: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", fmt.Errorf("empty token")
	}
	return token, nil
}
