package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/podtail/podtail/pkg/log"
	"github.com/podtail/podtail/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podtail",
	Short: "podtail - stream container logs from a cluster API",
	Long: `podtail streams the log output of a container running in a remote
cluster straight to your terminal. It talks to the cluster's log endpoint
over HTTP and leaves retrying, parsing and aggregation to you.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help() //nolint:errcheck
			return
		}
	},
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initRoot)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.podtail/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	viper.SetEnvPrefix("PODTAIL")
	viper.AutomaticEnv() // read in environment variables that match

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// initRoot applies global settings before any command runs.
func initRoot() {
	if verbose {
		log.GetDefaultLogger().SetLevel(log.DebugLevel)
	}
}
