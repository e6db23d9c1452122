package sim

import (
	"testing"
	"time"
)

func TestClock_Delta(t *testing.T) {
	c := NewClock()
	start := time.Unix(1000, 0)

	if d := c.Delta(start); d != 0 {
		t.Errorf("first delta = %v, want 0", d)
	}
	if d := c.Delta(start.Add(16 * time.Millisecond)); d < 0.015 || d > 0.017 {
		t.Errorf("delta = %v, want ~0.016", d)
	}
}

func TestClock_ClampsSpikes(t *testing.T) {
	c := NewClock()
	start := time.Unix(1000, 0)
	c.Delta(start)

	if d := c.Delta(start.Add(5 * time.Second)); d != DefaultMaxDelta {
		t.Errorf("spike delta = %v, want clamp %v", d, DefaultMaxDelta)
	}
}

func TestClock_BackwardsTimeIsZero(t *testing.T) {
	c := NewClock()
	start := time.Unix(1000, 0)
	c.Delta(start)

	if d := c.Delta(start.Add(-time.Second)); d != 0 {
		t.Errorf("backwards delta = %v, want 0", d)
	}
}

func TestClock_ResetForgets(t *testing.T) {
	c := NewClock()
	start := time.Unix(1000, 0)
	c.Delta(start)
	c.Reset()

	if d := c.Delta(start.Add(time.Hour)); d != 0 {
		t.Errorf("delta after reset = %v, want 0", d)
	}
}
