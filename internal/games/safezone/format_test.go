package safezone

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:000"},
		{30 * time.Second, "00:30:000"},
		{29*time.Second + 5*ms, "00:29:005"},
		{61*time.Second + 250*ms, "01:01:250"},
		{-5 * time.Second, "00:00:000"},
		{999 * time.Microsecond, "00:00:000"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
