package clock

import (
	"sync"
	"time"
)

// Source reports the current wall-clock time.
type Source interface {
	Now() time.Time
}

// Real reads the system clock. Readings carry the monotonic component so
// deltas are immune to wall-clock adjustments.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Manual is a controllable Source for tests and replays.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Clock turns a Source into frame timing: world time in milliseconds since
// the epoch the clock was created at, and the elapsed seconds between
// consecutive frames.
type Clock struct {
	src   Source
	epoch time.Time
	last  time.Time
}

func New(src Source) *Clock {
	if src == nil {
		src = Real{}
	}
	return &Clock{src: src, epoch: src.Now()}
}

// Frame samples the source once and returns the world time in milliseconds
// along with the seconds elapsed since the previous Frame call. The first
// call reports a zero delta. A source that steps backwards also yields zero.
func (c *Clock) Frame() (now time.Time, worldMS float64, delta float64) {
	now = c.src.Now()
	worldMS = Millis(now.Sub(c.epoch))
	if !c.last.IsZero() {
		delta = now.Sub(c.last).Seconds()
		if delta < 0 {
			delta = 0
		}
	}
	return now, worldMS, delta
}

// Mark records now as the time of the last completed frame.
func (c *Clock) Mark(now time.Time) {
	c.last = now
}

// WorldTime returns the current world time in milliseconds without
// touching frame bookkeeping.
func (c *Clock) WorldTime() float64 {
	return Millis(c.src.Now().Sub(c.epoch))
}

// Uptime is the wall time since the clock was created.
func (c *Clock) Uptime() time.Duration {
	return c.src.Now().Sub(c.epoch)
}

// Millis converts a duration into fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
