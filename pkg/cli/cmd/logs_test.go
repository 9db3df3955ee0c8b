package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLogsOptions tests the parseLogsOptions function
func TestParseLogsOptions(t *testing.T) {
	// Save original flag values
	origFollow := logsFollow
	origPrevious := logsPrevious
	origTimestamps := logsTimestamps
	origPretty := logsPretty
	origTail := logsTail
	origLimitBytes := logsLimitBytes
	origSince := logsSinceStr
	origSinceTime := logsSinceTimeStr

	// Restore flag values after test
	defer func() {
		logsFollow = origFollow
		logsPrevious = origPrevious
		logsTimestamps = origTimestamps
		logsPretty = origPretty
		logsTail = origTail
		logsLimitBytes = origLimitBytes
		logsSinceStr = origSince
		logsSinceTimeStr = origSinceTime
	}()

	t.Run("Defaults", func(t *testing.T) {
		logsFollow = false
		logsPrevious = false
		logsTimestamps = false
		logsPretty = false
		logsTail = -1
		logsLimitBytes = 0
		logsSinceStr = ""
		logsSinceTimeStr = ""

		options, err := parseLogsOptions()

		require.NoError(t, err)
		assert.False(t, options.Follow)
		assert.False(t, options.Previous)
		assert.Nil(t, options.TailLines)
		assert.Nil(t, options.LimitBytes)
		assert.Nil(t, options.SinceSeconds)
		assert.Nil(t, options.SinceTime)
	})

	t.Run("CustomOptions", func(t *testing.T) {
		logsFollow = true
		logsPrevious = true
		logsTimestamps = true
		logsPretty = true
		logsTail = 50
		logsLimitBytes = 4096
		logsSinceStr = ""
		logsSinceTimeStr = ""

		options, err := parseLogsOptions()

		require.NoError(t, err)
		assert.True(t, options.Follow)
		assert.True(t, options.Previous)
		assert.True(t, options.Timestamps)
		assert.True(t, options.Pretty)
		require.NotNil(t, options.TailLines)
		assert.Equal(t, int64(50), *options.TailLines)
		require.NotNil(t, options.LimitBytes)
		assert.Equal(t, int64(4096), *options.LimitBytes)
	})

	t.Run("TailZeroIsExplicit", func(t *testing.T) {
		logsTail = 0
		logsLimitBytes = 0
		logsSinceStr = ""
		logsSinceTimeStr = ""

		options, err := parseLogsOptions()

		require.NoError(t, err)
		require.NotNil(t, options.TailLines)
		assert.Equal(t, int64(0), *options.TailLines)
	})

	t.Run("SinceDuration", func(t *testing.T) {
		logsTail = -1
		logsSinceStr = "10m"
		logsSinceTimeStr = ""

		options, err := parseLogsOptions()

		require.NoError(t, err)
		require.NotNil(t, options.SinceSeconds)
		assert.Equal(t, int64(600), *options.SinceSeconds)
	})

	t.Run("InvalidSinceDuration", func(t *testing.T) {
		logsSinceStr = "not-a-duration"
		logsSinceTimeStr = ""

		_, err := parseLogsOptions()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid since duration")
	})

	t.Run("SinceTime", func(t *testing.T) {
		logsSinceStr = ""
		logsSinceTimeStr = "2023-06-01T12:00:00Z"

		options, err := parseLogsOptions()

		require.NoError(t, err)
		require.NotNil(t, options.SinceTime)
		expected, _ := time.Parse(time.RFC3339, "2023-06-01T12:00:00Z")
		assert.True(t, options.SinceTime.Equal(expected))
	})

	t.Run("InvalidSinceTime", func(t *testing.T) {
		logsSinceStr = ""
		logsSinceTimeStr = "yesterday"

		_, err := parseLogsOptions()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid since time")
	})
}
