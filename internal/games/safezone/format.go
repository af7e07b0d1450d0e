package safezone

import (
	"fmt"
	"time"
)

// FormatTime renders d as mm:ss:mmm. Negative durations render as zero.
func FormatTime(d time.Duration) string {
	ms := max(d.Milliseconds(), 0)
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%03d", minutes, seconds, millis)
}
