package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0s", formatSeconds(0))
	assert.Equal(t, "59s", formatSeconds(59))
	assert.Equal(t, "1m 0s", formatSeconds(60))
	assert.Equal(t, "5m 3s", formatSeconds(303))
	assert.Equal(t, "1h 5m 3s", formatSeconds(3903))
	assert.Equal(t, "0s", formatSeconds(-10))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1h 0m 0s", formatDuration(time.Hour))
	assert.Equal(t, "2m 30s", formatDuration(150*time.Second))
	assert.Equal(t, "0s", formatDuration(-time.Second))
	// Sub-second remainders are floored
	assert.Equal(t, "1s", formatDuration(1900*time.Millisecond))
}
