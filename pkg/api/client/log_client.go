package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/podtail/podtail/pkg/log"
	"github.com/podtail/podtail/pkg/types"
)

// podLogPath is the fixed log endpoint template of the cluster API.
const podLogPath = "/api/v1/namespaces/%s/pods/%s/log"

// CompletionCallback is an optional notification hook invoked exactly once
// per fetch: with nil on clean stream completion, with the typed error on any
// failure. It fires in addition to the primary return values.
type CompletionCallback func(err error)

// completion broadcasts the single terminal event of a fetch to the optional
// callback. The sync.Once keeps the at-most-once guarantee even if a failure
// path and the pipe goroutine both try to report.
type completion struct {
	once     sync.Once
	callback CompletionCallback
}

func (c *completion) fire(err error) {
	c.once.Do(func() {
		if c.callback != nil {
			c.callback(err)
		}
	})
}

// LogClient provides methods for fetching container logs from the cluster API.
type LogClient struct {
	client *Client
	logger log.Logger
}

// NewLogClient creates a new log client.
func NewLogClient(client *Client) *LogClient {
	return &LogClient{
		client: client,
		logger: client.logger.WithComponent("log-client"),
	}
}

// FetchLogs streams the logs of a container to sink.
//
// It resolves the active cluster, issues a GET against the log endpoint and
// classifies the outcome: on a 200 response it returns a live LogStream and
// pipes the response body to sink from a goroutine; on anything else it
// returns a typed error (*types.ConfigError before any I/O,
// *types.TransportError on network failure, *types.StatusError on a non-200
// response). Exactly one of the two return values is set.
//
// Streaming begins only after the 200 header, so no bytes from an error
// response ever reach sink. With LogOptions.Follow the stream stays open
// until the server or transport closes it, or the caller cancels ctx or
// closes the returned stream.
func (c *LogClient) FetchLogs(ctx context.Context, namespace, podName, containerName string, sink io.Writer, opts *types.LogOptions, onComplete CompletionCallback) (*LogStream, error) {
	comp := &completion{callback: onComplete}

	cluster, ok := c.client.resolver.CurrentCluster()
	if !ok {
		err := types.NewConfigError("no cluster configured")
		comp.fire(err)
		return nil, err
	}

	endpoint := strings.TrimSuffix(cluster.Server, "/") + fmt.Sprintf(podLogPath, namespace, podName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		cfgErr := types.NewConfigError("invalid log endpoint %q: %v", endpoint, err)
		comp.fire(cfgErr)
		return nil, cfgErr
	}

	query := opts.Query()
	query.Set("container", containerName)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", c.client.userAgent)

	if err := c.client.resolver.ApplyToRequest(req); err != nil {
		cfgErr := types.NewConfigError("failed to apply credentials: %v", err)
		comp.fire(cfgErr)
		return nil, cfgErr
	}

	logger := c.logger.With(
		log.Str("namespace", namespace),
		log.Str("pod", podName),
		log.Str("container", containerName),
	)
	logger.Debug("Fetching container logs", log.Str("endpoint", req.URL.String()))

	resp, err := c.client.httpClient.Do(req)
	if err != nil {
		transportErr := types.NewTransportError(err)
		logger.Debug("Log request failed", log.Err(transportErr))
		comp.fire(transportErr)
		return nil, transportErr
	}

	if resp.StatusCode != http.StatusOK {
		// Buffer the whole error body so it can be decoded before reporting.
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close() //nolint:errcheck
		if readErr != nil {
			transportErr := types.NewTransportError(readErr)
			comp.fire(transportErr)
			return nil, transportErr
		}

		var fetchErr error
		if status, decodeErr := c.client.decoder.Decode(body); decodeErr == nil {
			fetchErr = types.NewStatusError(resp.StatusCode, status, string(body))
		} else {
			fetchErr = types.NewStatusError(resp.StatusCode, nil, string(body))
		}
		logger.Debug("Log request rejected", log.Int("status", resp.StatusCode))
		comp.fire(fetchErr)
		return nil, fetchErr
	}

	stream := newLogStream(resp.Body)
	logger.Debug("Log stream started", log.Str("stream", stream.ID()))

	go stream.pipe(sink, comp)

	return stream, nil
}

// LogStream is the handle to an in-flight log stream. The caller may wait for
// it to end, inspect the terminal error, or close it to abort the connection.
type LogStream struct {
	id   string
	body io.ReadCloser
	done chan struct{}

	mu  sync.Mutex
	err error

	closeOnce sync.Once
}

func newLogStream(body io.ReadCloser) *LogStream {
	return &LogStream{
		id:   uuid.NewString(),
		body: body,
		done: make(chan struct{}),
	}
}

// ID returns the identifier of this stream, used to correlate log entries.
func (s *LogStream) ID() string {
	return s.id
}

// Done is closed when the stream has ended, cleanly or not.
func (s *LogStream) Done() <-chan struct{} {
	return s.done
}

// Err returns the terminal stream error, or nil on clean completion.
// It is meaningful only after Done is closed.
func (s *LogStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close aborts the underlying connection. Whether bytes already received
// still reach the sink is up to the transport.
func (s *LogStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.body.Close()
	})
	return err
}

// pipe forwards the response body to sink and reports the terminal event.
func (s *LogStream) pipe(sink io.Writer, comp *completion) {
	_, err := io.Copy(sink, s.body)
	s.Close() //nolint:errcheck

	if err != nil {
		err = types.NewTransportError(err)
	}

	s.mu.Lock()
	s.err = err
	s.mu.Unlock()

	// Fire the callback before closing done, so anything waiting on the
	// handle observes a fully reported outcome.
	comp.fire(err)
	close(s.done)
}
