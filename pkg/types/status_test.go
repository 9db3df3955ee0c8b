package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatus(t *testing.T) {
	t.Run("ValidStatus", func(t *testing.T) {
		body := `{"kind":"Status","apiVersion":"v1","status":"Failure","message":"not found","reason":"NotFound","code":404}`

		status, err := DecodeStatus([]byte(body))

		require.NoError(t, err)
		assert.Equal(t, "Status", status.Kind)
		assert.Equal(t, "not found", status.Message)
		assert.Equal(t, "NotFound", status.Reason)
		assert.Equal(t, int32(404), status.Code)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := DecodeStatus([]byte("internal error"))
		assert.Error(t, err)
	})

	t.Run("WrongKind", func(t *testing.T) {
		_, err := DecodeStatus([]byte(`{"kind":"Pod"}`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected object kind")
	})
}
