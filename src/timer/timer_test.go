package timer

import (
	"testing"
	"time"
)

func TestNewPacer(t *testing.T) {
	if _, ok := NewPacer(0).(NoPacer); !ok {
		t.Error("NewPacer(0) should not wait")
	}
	if _, ok := NewPacer(-time.Second).(NoPacer); !ok {
		t.Error("NewPacer(-1s) should not wait")
	}
}

func TestTickPacerWaits(t *testing.T) {
	const interval = 20 * time.Millisecond
	pacer := NewPacer(interval)
	start := time.Now()
	for i := 0; i < 3; i++ {
		pacer.Wait()
	}
	if elapsed := time.Since(start); elapsed < 3*interval {
		t.Errorf("three waits took %v, want at least %v", elapsed, 3*interval)
	}
}
