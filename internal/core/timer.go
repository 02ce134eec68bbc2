package core

import "time"

// FixedStep paces a loop at a steady ticks-per-second rate. A zero-value or
// non-positive rate disables pacing.
type FixedStep struct {
	step time.Duration
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, sleep: time.Sleep}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Values <= 0 turn pacing off.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Enabled reports whether Wait will ever block.
func (f *FixedStep) Enabled() bool { return f.step > 0 }

// Wait blocks until the next tick is due. The first call returns immediately.
// A loop that falls behind is not made to catch up.
func (f *FixedStep) Wait() {
	if f.step <= 0 {
		return
	}
	now := f.now()
	if f.next.IsZero() || now.After(f.next) {
		f.next = now.Add(f.step)
		return
	}
	f.sleep(f.next.Sub(now))
	f.next = f.next.Add(f.step)
}
