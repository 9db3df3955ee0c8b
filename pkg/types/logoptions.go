package types

import (
	"net/url"
	"strconv"
	"time"
)

// LogOptions controls server-side log selection for a single fetch.
// Every field is optional; the zero value asks for the server defaults.
// No validation happens client-side: conflicting combinations (for example
// SinceSeconds together with SinceTime) are rejected by the server.
type LogOptions struct {
	// Follow keeps the stream open and delivers new log lines as they are
	// produced, until the server or the transport closes the connection.
	Follow bool

	// Previous fetches logs from the prior terminated instance of the
	// container instead of the current one.
	Previous bool

	// Timestamps prefixes every line with an RFC3339 timestamp.
	Timestamps bool

	// Pretty asks the server to pretty-print its output.
	Pretty bool

	// SinceSeconds limits logs to the given relative time window.
	SinceSeconds *int64

	// SinceTime limits logs to those produced after an absolute time.
	SinceTime *time.Time

	// TailLines shows only the last N lines.
	TailLines *int64

	// LimitBytes caps the response size. The boundary may split a line.
	LimitBytes *int64
}

// Query encodes the set options as request query parameters. Unset fields
// are omitted so the server applies its own defaults.
func (o *LogOptions) Query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Follow {
		q.Set("follow", "true")
	}
	if o.Previous {
		q.Set("previous", "true")
	}
	if o.Timestamps {
		q.Set("timestamps", "true")
	}
	if o.Pretty {
		q.Set("pretty", "true")
	}
	if o.SinceSeconds != nil {
		q.Set("sinceSeconds", strconv.FormatInt(*o.SinceSeconds, 10))
	}
	if o.SinceTime != nil {
		q.Set("sinceTime", o.SinceTime.Format(time.RFC3339))
	}
	if o.TailLines != nil {
		q.Set("tailLines", strconv.FormatInt(*o.TailLines, 10))
	}
	if o.LimitBytes != nil {
		q.Set("limitBytes", strconv.FormatInt(*o.LimitBytes, 10))
	}
	return q
}

// Int64 returns a pointer to the given value, for use in LogOptions fields.
func Int64(v int64) *int64 {
	return &v
}
