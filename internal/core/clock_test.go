package core

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	var c ManualClock
	if c.Now() != 0 {
		t.Errorf("zero ManualClock should start at 0, got %v", c.Now())
	}
	c.Advance(16 * time.Millisecond)
	c.Advance(16 * time.Millisecond)
	if c.Now() != 32*time.Millisecond {
		t.Errorf("Now() = %v, expected 32ms", c.Now())
	}
	c.Set(time.Second)
	if c.Now() != time.Second {
		t.Errorf("Now() = %v, expected 1s", c.Now())
	}
}

func TestMonotonicClockNeverGoesBack(t *testing.T) {
	c := NewMonotonicClock()
	a := c.Now()
	b := c.Now()
	if b < a {
		t.Errorf("monotonic clock went backwards: %v then %v", a, b)
	}
	if a%time.Millisecond != 0 {
		t.Errorf("Now() should be truncated to milliseconds, got %v", a)
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("Bright_Red"); !ok || c != ColorBrightRed {
		t.Errorf("ParseColor(Bright_Red) = %v, %v", c, ok)
	}
	if c, ok := ParseColor("chartreuse"); ok || c != ColorDefault {
		t.Errorf("unknown color should map to default, got %v, %v", c, ok)
	}
}
