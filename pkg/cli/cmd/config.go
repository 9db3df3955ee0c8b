package cmd

import (
	"fmt"
	"sort"

	"github.com/podtail/podtail/pkg/kubeconfig"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage podtail configuration and contexts",
		Long: `Manage podtail configuration and contexts.

This command allows you to:
- View current configuration
- Set context properties
- Switch between contexts
- List available contexts`,
	}

	cmd.AddCommand(newConfigViewCmd())
	cmd.AddCommand(newConfigSetContextCmd())
	cmd.AddCommand(newConfigUseContextCmd())
	cmd.AddCommand(newConfigListContextsCmd())
	cmd.AddCommand(newConfigDeleteContextCmd())

	return cmd
}

func newConfigViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadClientConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fmt.Printf("Current Context: %s\n", config.CurrentContext)
			fmt.Println()

			ctx, ok := config.Current()
			if !ok {
				fmt.Println("Current context not found in configuration")
				return nil
			}

			fmt.Printf("Server: %s\n", ctx.Server)
			if ctx.Token != "" {
				fmt.Printf("Token: %s\n", maskToken(ctx.Token))
			}
			if ctx.TokenFile != "" {
				fmt.Printf("Token File: %s\n", ctx.TokenFile)
			}
			if ctx.Namespace != "" {
				fmt.Printf("Default Namespace: %s\n", ctx.Namespace)
			}
			return nil
		},
	}
}

func newConfigSetContextCmd() *cobra.Command {
	var server string
	var token string
	var tokenFile string
	var namespace string
	var insecure bool

	cmd := &cobra.Command{
		Use:   "set-context [context-name]",
		Short: "Set or update a context configuration",
		Long: `Set or update a context configuration.

If context-name is not provided, it will use "default".
--server is required; credentials are optional.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contextName := "default"
			if len(args) > 0 {
				contextName = args[0]
			}
			if server == "" {
				return fmt.Errorf("--server is required")
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
			if err := config.Save(path); err != nil {
				return err
			}

			fmt.Printf("Context %q updated\n", contextName)
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "Cluster API server URL")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token value")
	cmd.Flags().StringVar(&tokenFile, "token-file", "", "Path to file containing the bearer token")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Default namespace for this context")
	cmd.Flags().BoolVar(&insecure, "insecure-skip-tls-verify", false, "Skip TLS certificate verification")
	return cmd
}

func newConfigUseContextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use-context CONTEXT",
		Short: "Switch to a different context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := kubeconfig.ResolvePath(cfgFile)
			if err != nil {
				return err
			}
			config, err := kubeconfig.Load(path)
			if err != nil {
				return err
			}

			if err := config.UseContext(args[0]); err != nil {
				return err
			}
			if err := config.Save(path); err != nil {
				return err
			}

			fmt.Printf("Switched to context %q\n", args[0])
			return nil
		},
	}
}

func newConfigListContextsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-contexts",
		Short: "List available contexts",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadClientConfig()
			if err != nil {
				return err
			}

			names := config.ContextNames()
			if len(names) == 0 {
				fmt.Println("No contexts configured")
				return nil
			}
			sort.Strings(names)

			for _, name := range names {
				marker := " "
				if name == config.CurrentContext {
					marker = "*"
				}
				fmt.Printf("%s %s\t%s\n", marker, name, config.Contexts[name].Server)
			}
			return nil
		},
	}
}

func newConfigDeleteContextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-context CONTEXT",
		Short: "Delete a context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := kubeconfig.ResolvePath(cfgFile)
			if err != nil {
				return err
			}
			config, err := kubeconfig.Load(path)
			if err != nil {
				return err
			}

			if !config.DeleteContext(args[0]) {
				return fmt.Errorf("context %q not found", args[0])
			}
			if err := config.Save(path); err != nil {
				return err
			}

			fmt.Printf("Deleted context %q\n", args[0])
			return nil
		},
	}
}

func maskToken(t string) string {
	if len(t) <= 6 {
		return "******"
	}
	return t[:3] + "******" + t[len(t)-3:]
}
