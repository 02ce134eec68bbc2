package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func TestFixedStepWaitPacesTicks(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now
	fs.sleep = clock.sleep

	fs.Wait()
	if len(clock.slept) != 0 {
		t.Fatal("first Wait should not sleep")
	}

	clock.t = clock.t.Add(30 * time.Millisecond)
	fs.Wait()
	if len(clock.slept) != 1 || clock.slept[0] != 70*time.Millisecond {
		t.Fatalf("slept %v, want [70ms]", clock.slept)
	}

	// Falling behind resets the schedule instead of bursting.
	clock.t = clock.t.Add(time.Second)
	fs.Wait()
	if len(clock.slept) != 1 {
		t.Fatalf("late Wait slept %v", clock.slept[1:])
	}
}

func TestFixedStepDisabled(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Enabled() {
		t.Fatal("tps 0 should disable pacing")
	}
	fs.sleep = func(time.Duration) { t.Fatal("disabled pacer must not sleep") }
	fs.Wait()
	fs.Wait()

	fs.SetTPS(60)
	if !fs.Enabled() {
		t.Fatal("SetTPS(60) should enable pacing")
	}
}
