// Package anim holds frame timers for sprites and animated map tiles. All
// timing is in world-time milliseconds supplied by the caller.
package anim

// Animation cycles through Length frames of a sprite sheet row, Speed
// milliseconds per frame. With Loops > 0 it stops after that many cycles.
type Animation struct {
	Name   string
	Length int
	Row    int
	Width  int
	Height int
	Speed  float64
	Loops  int

	Index    int
	lastTime float64
	primed   bool
	done     bool
}

func New(name string, length, row, width, height int) *Animation {
	return &Animation{
		Name:   name,
		Length: length,
		Row:    row,
		Width:  width,
		Height: height,
		Speed:  100,
	}
}

// Update advances the animation if a full frame period has elapsed since the
// last advance. The first call only starts the timer. It reports whether the
// visible frame changed.
func (a *Animation) Update(now float64) bool {
	if a == nil || a.done || a.Length <= 1 || a.Speed <= 0 {
		return false
	}
	if !a.primed {
		a.primed = true
		a.lastTime = now
		return false
	}
	if now-a.lastTime < a.Speed {
		return false
	}
	a.lastTime = now
	a.tick()
	return true
}

func (a *Animation) tick() {
	a.Index++
	if a.Index < a.Length {
		return
	}
	a.Index = 0
	if a.Loops > 0 {
		a.Loops--
		if a.Loops == 0 {
			a.done = true
		}
	}
}

// Reset rewinds to the first frame and restarts the timer on the next Update.
func (a *Animation) Reset() {
	a.Index = 0
	a.primed = false
	a.done = false
}

// Done reports whether a looping-limited animation has finished.
func (a *Animation) Done() bool {
	return a.done
}

// Frame returns the current frame index and its top-left pixel position in
// the sprite sheet.
func (a *Animation) Frame() (index, x, y int) {
	return a.Index, a.Index * a.Width, a.Row * a.Height
}
