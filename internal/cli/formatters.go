package cli

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as "1h 5m 3s", dropping leading zero units
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return formatSeconds(int64(d.Seconds()))
}

// formatSeconds formats a second count as "1h 5m 3s", dropping leading zero units
func formatSeconds(total int64) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
