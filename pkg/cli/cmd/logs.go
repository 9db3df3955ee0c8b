package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/podtail/podtail/pkg/types"
	"github.com/spf13/cobra"
)

var (
	// Logs command flags
	logsNamespace    string
	logsContainer    string
	logsFollow       bool
	logsPrevious     bool
	logsTimestamps   bool
	logsPretty       bool
	logsTail         int64
	logsLimitBytes   int64
	logsSinceStr     string
	logsSinceTimeStr string
	logsServer       string
	logsToken        string
)

// logsCmd represents the logs command
var logsCmd = &cobra.Command{
	Use:   "logs POD -c CONTAINER",
	Short: "Stream the logs of a container",
	Long: `Stream the logs of a container in a pod to stdout.

Examples:
  # Print the logs of the nginx container in pod web-0
  podtail logs web-0 -c nginx

  # Stream new log lines as they are produced
  podtail logs web-0 -c nginx -f

  # Show only the last 20 lines
  podtail logs web-0 -c nginx --tail=20

  # Logs of the previous terminated instance of the container
  podtail logs web-0 -c nginx --previous

  # Logs from the last 10 minutes, with timestamps
  podtail logs web-0 -c nginx --since=10m --timestamps

  # Target a cluster without a config file
  podtail logs web-0 -c nginx --server=https://api.example.com:6443 --token=...`,
	Aliases:       []string{"log"},
	Args:          cobra.ExactArgs(1),
	RunE:          runLogs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	// Local flags for the logs command
	logsCmd.Flags().StringVarP(&logsNamespace, "namespace", "n", "", "Namespace of the pod (defaults to the context namespace)")
	logsCmd.Flags().StringVarP(&logsContainer, "container", "c", "", "Name of the container")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Stream logs in real-time")
	logsCmd.Flags().BoolVarP(&logsPrevious, "previous", "p", false, "Logs of the prior terminated instance of the container")
	logsCmd.Flags().BoolVar(&logsTimestamps, "timestamps", false, "Prefix each line with its timestamp")
	logsCmd.Flags().BoolVar(&logsPretty, "pretty", false, "Ask the server to pretty-print output")
	logsCmd.Flags().Int64VarP(&logsTail, "tail", "t", -1, "Number of recent log lines to show (-1 for all available)")
	logsCmd.Flags().Int64Var(&logsLimitBytes, "limit-bytes", 0, "Cap the response size in bytes (0 for no cap)")
	logsCmd.Flags().StringVar(&logsSinceStr, "since", "", "Show logs newer than a relative duration (e.g. '5m', '2h')")
	logsCmd.Flags().StringVar(&logsSinceTimeStr, "since-time", "", "Show logs after an absolute time (RFC3339)")
	logsCmd.MarkFlagRequired("container") //nolint:errcheck

	// API client flags
	logsCmd.Flags().StringVar(&logsServer, "server", "", "Cluster API server URL (overrides the config file)")
	logsCmd.Flags().StringVar(&logsToken, "token", "", "Bearer token (overrides the config file)")
}

// runLogs is the main entry point for the logs command
func runLogs(cmd *cobra.Command, args []string) error {
	podName := args[0]

	options, err := parseLogsOptions()
	if err != nil {
		return err
	}

	lc, config, err := newLogClient(logsServer, logsToken)
	if err != nil {
		return err
	}

	namespace := logsNamespace
	if namespace == "" {
		if ctx, ok := config.Current(); ok && ctx.Namespace != "" {
			namespace = ctx.Namespace
		} else {
			namespace = "default"
		}
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt, shutting down...")
		cancel()
	}()

	stream, err := lc.FetchLogs(ctx, namespace, podName, logsContainer, os.Stdout, options, nil)
	if err != nil {
		return err
	}

	<-stream.Done()
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// parseLogsOptions converts command line flags into LogOptions. Conflicting
// selections (e.g. --since together with --since-time) are passed through and
// left for the server to arbitrate.
func parseLogsOptions() (*types.LogOptions, error) {
	options := &types.LogOptions{
		Follow:     logsFollow,
		Previous:   logsPrevious,
		Timestamps: logsTimestamps,
		Pretty:     logsPretty,
	}

	if logsTail >= 0 {
		options.TailLines = types.Int64(logsTail)
	}
	if logsLimitBytes > 0 {
		options.LimitBytes = types.Int64(logsLimitBytes)
	}

	if logsSinceStr != "" {
		duration, err := time.ParseDuration(logsSinceStr)
		if err != nil {
			return nil, fmt.Errorf("invalid since duration: %w", err)
		}
		options.SinceSeconds = types.Int64(int64(duration.Seconds()))
	}

	if logsSinceTimeStr != "" {
		sinceTime, err := time.Parse(time.RFC3339, logsSinceTimeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid since time: %w", err)
		}
		options.SinceTime = &sinceTime
	}

	return options, nil
}
