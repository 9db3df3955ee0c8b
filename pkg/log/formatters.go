package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TextFormatter formats log entries as human-readable text.
type TextFormatter struct {
	TimestampFormat  string // Format for timestamps
	DisableTimestamp bool   // Disable timestamp output
}

// NewTextFormatter creates a new TextFormatter with sensible defaults.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000",
	}
}

// Format formats the entry as text.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if !f.DisableTimestamp {
		timestampFormat := f.TimestampFormat
		if timestampFormat == "" {
			timestampFormat = "2006-01-02T15:04:05.000"
		}
		b.WriteString(entry.Timestamp.Format(timestampFormat))
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "%-5s %s", entry.Level.String(), entry.Message)

	for _, field := range entry.Fields {
		fmt.Fprintf(&b, " %s=%v", field.Key, field.Value)
	}
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

// JSONFormatter formats log entries as JSON.
type JSONFormatter struct {
	TimestampFormat string // Format for timestamps
}

// Format formats the entry as JSON.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = time.RFC3339
	}

	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(timestampFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}
	for _, field := range entry.Fields {
		// Don't overwrite standard fields
		if field.Key != "timestamp" && field.Key != "level" && field.Key != "message" {
			data[field.Key] = field.Value
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
