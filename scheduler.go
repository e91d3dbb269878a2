package escape

import "time"

// TimerHandle identifies a repeating timer created by a Scheduler.
// The zero handle never refers to a live timer.
type TimerHandle uint32

// Scheduler is the timer service a Game runs on. It stands in for a
// browser's setInterval / requestAnimationFrame pair so the simulation can
// be driven by a real frame loop or stepped deterministically in tests.
type Scheduler interface {
	// ScheduleRepeating calls fn every period until the handle is canceled.
	ScheduleRepeating(period time.Duration, fn func()) TimerHandle
	// ScheduleFrame calls fn once on the next frame.
	ScheduleFrame(fn func())
	// Cancel stops a repeating timer. Unknown or canceled handles are ignored.
	Cancel(h TimerHandle)
}

type timer struct {
	id       TimerHandle
	period   time.Duration
	next     time.Duration
	fn       func()
	canceled bool
}

// Clock is a Scheduler driven explicitly by Advance. It never starts
// goroutines; every callback runs inside Advance on the caller's goroutine.
type Clock struct {
	now    time.Duration
	nextID TimerHandle
	timers []*timer
	frames []func()
	run    []func()
}

var _ Scheduler = (*Clock)(nil)

// NewClock creates a clock at time zero with no timers.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the total time advanced so far.
func (c *Clock) Now() time.Duration {
	return c.now
}

// ScheduleRepeating registers fn to fire every period, first at Now()+period.
// It panics if period is not positive.
func (c *Clock) ScheduleRepeating(period time.Duration, fn func()) TimerHandle {
	if period <= 0 {
		panic("escape: ScheduleRepeating with non-positive period")
	}
	c.nextID++
	c.timers = append(c.timers, &timer{
		id:     c.nextID,
		period: period,
		next:   c.now + period,
		fn:     fn,
	})
	return c.nextID
}

// ScheduleFrame queues fn for the next Advance.
func (c *Clock) ScheduleFrame(fn func()) {
	c.frames = append(c.frames, fn)
}

// Cancel stops the timer identified by h.
func (c *Clock) Cancel(h TimerHandle) {
	for _, t := range c.timers {
		if t.id == h {
			t.canceled = true
			return
		}
	}
}

// Active returns the number of live repeating timers.
func (c *Clock) Active() int {
	n := 0
	for _, t := range c.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}

// PendingFrames returns the number of frame callbacks waiting for Advance.
func (c *Clock) PendingFrames() int {
	return len(c.frames)
}

// Advance moves the clock forward by dt. Timers due within the step fire in
// time order (creation order on ties), as many times as they fall due. Then
// every frame callback queued before this call runs once; callbacks they
// queue wait for the next Advance.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.next
		t.next += t.period
		t.fn()
	}
	c.now = target
	c.compact()

	c.run, c.frames = c.frames, c.run[:0]
	for i, fn := range c.run {
		fn()
		c.run[i] = nil
	}
	c.run = c.run[:0]
}

// nextDue returns the live timer with the earliest deadline at or before
// target, or nil.
func (c *Clock) nextDue(target time.Duration) *timer {
	var best *timer
	for _, t := range c.timers {
		if t.canceled || t.next > target {
			continue
		}
		if best == nil || t.next < best.next {
			best = t
		}
	}
	return best
}

// compact drops canceled timers.
func (c *Clock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.canceled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}
