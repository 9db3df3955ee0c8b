package types

import (
	"encoding/json"
	"fmt"
)

// StatusKind is the kind field every structured API status object carries.
const StatusKind = "Status"

// Status is the structured status object the cluster API returns on
// non-200 responses.
type Status struct {
	Kind       string `json:"kind,omitempty"`
	APIVersion string `json:"apiVersion,omitempty"`
	Status     string `json:"status,omitempty"`
	Message    string `json:"message,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Code       int32  `json:"code,omitempty"`
}

// DecodeStatus decodes a raw API response body into a Status object.
// It fails on malformed JSON and on objects that are not of kind Status,
// so callers can fall back to treating the body as plain text.
func DecodeStatus(data []byte) (*Status, error) {
	var status Status
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("failed to decode status object: %w", err)
	}
	if status.Kind != StatusKind {
		return nil, fmt.Errorf("unexpected object kind %q, want %q", status.Kind, StatusKind)
	}
	return &status, nil
}
