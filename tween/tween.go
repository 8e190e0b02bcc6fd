// Package tween interpolates a single value between two endpoints over a
// fixed duration. Time is supplied by the caller in milliseconds; nothing
// in here sleeps or reads a clock.
package tween

import "math"

// Handler receives the results of Step. Step is called with the sampled
// value while the tween runs; Complete is called once with the end value.
type Handler interface {
	Step(v float64)
	Complete(end float64)
}

// Tween is plain data so it can be copied, compared and inspected in tests.
type Tween struct {
	StartValue float64
	EndValue   float64
	StartTime  float64
	Duration   float64
	InProgress bool
}

// Begin (re)starts the tween. An unfinished run is replaced without
// completing it.
func (t *Tween) Begin(now, from, to, duration float64) {
	t.StartValue = from
	t.EndValue = to
	t.StartTime = now
	t.Duration = duration
	t.InProgress = true
}

// Sample returns the value at now and whether the tween has reached its end.
// Values are rounded to whole units; a sample equal to the end value counts
// as finished even before the duration elapses.
func (t *Tween) Sample(now float64) (v float64, done bool) {
	if t.Duration <= 0 {
		return t.EndValue, true
	}
	elapsed := now - t.StartTime
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > t.Duration {
		elapsed = t.Duration
	}
	v = Round(t.StartValue + (t.EndValue-t.StartValue)/t.Duration*elapsed)
	return v, elapsed == t.Duration || v == t.EndValue
}

// Step samples the tween at now and reports to h. It returns false when the
// tween was not running.
func (t *Tween) Step(now float64, h Handler) bool {
	if !t.InProgress {
		return false
	}
	v, done := t.Sample(now)
	if done {
		t.InProgress = false
		if h != nil {
			h.Complete(t.EndValue)
		}
		return true
	}
	if h != nil {
		h.Step(v)
	}
	return true
}

// Round rounds half up, so -2.5 becomes -2 and 2.5 becomes 3.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}
