package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	configErr := NewConfigError("no cluster configured")
	transportErr := NewTransportError(errors.New("connection refused"))
	statusErr := NewStatusError(404, &Status{Kind: StatusKind, Message: "not found", Code: 404}, "")

	assert.True(t, IsConfigError(configErr))
	assert.False(t, IsConfigError(transportErr))

	assert.True(t, IsTransportError(transportErr))
	assert.False(t, IsTransportError(statusErr))

	assert.True(t, IsStatusError(statusErr))
	assert.False(t, IsStatusError(configErr))
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetching logs: %w", NewTransportError(errors.New("dns failure")))
	assert.True(t, IsTransportError(wrapped))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 500, StatusCode(NewStatusError(500, nil, "internal error")))
	assert.Equal(t, 0, StatusCode(NewConfigError("nope")))
	assert.Equal(t, 0, StatusCode(nil))
}

func TestStatusErrorMessage(t *testing.T) {
	t.Run("DecodedStatus", func(t *testing.T) {
		err := NewStatusError(403, &Status{Kind: StatusKind, Message: "forbidden"}, "")
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "forbidden")
	})

	t.Run("RawBodyFallback", func(t *testing.T) {
		err := NewStatusError(500, nil, "internal error")
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "internal error")
	})

	t.Run("EmptyBody", func(t *testing.T) {
		err := NewStatusError(502, nil, "")
		assert.Equal(t, "server returned 502", err.Error())
	})
}
