package updater

import (
	"math"

	"tilewalk/entity"
)

const (
	// fadeDuration is how long a fade-in takes, in milliseconds.
	fadeDuration = 1000
	// arrivalDistance is how close, in pixels, a projectile must get to its
	// destination to count as arrived. Fractional steps never land exactly.
	arrivalDistance = 5
)

func (u *Updater) updateEntities() {
	if u.entities == nil {
		return
	}
	u.entities.ForEachEntity(u.updateEntity)
}

func (u *Updater) updateEntity(e entity.Entity) {
	now := u.frame.Time
	switch e := e.(type) {
	case *entity.Projectile:
		e.Animation.Update(now)
		u.updateProjectile(e)
	case *entity.Character:
		u.fadeAndAnimate(&e.Base)
		u.updateCharacter(e)
	default:
		u.fadeAndAnimate(e.Common())
	}
}

func (u *Updater) fadeAndAnimate(b *entity.Base) {
	if b.SpriteLoaded {
		u.updateFading(b)
	}
	b.Animation.Update(u.frame.Time)
}

// updateFading ramps the alpha linearly over fadeDuration and pins it to
// fully opaque once the duration has passed.
func (u *Updater) updateFading(b *entity.Base) {
	if !b.Fading {
		return
	}
	dt := u.frame.Time - b.FadingTime
	if dt >= fadeDuration {
		b.Fading = false
		b.FadingAlpha = 1
		return
	}
	if dt < 0 {
		dt = 0
	}
	b.FadingAlpha = dt / fadeDuration
}

func (u *Updater) updateProjectile(p *entity.Projectile) {
	if p.Impacted {
		return
	}
	dx := p.DestX - p.X
	dy := p.DestY - p.Y
	remaining := math.Hypot(dx, dy)
	if remaining > 0 {
		amount := p.Speed * u.frame.Delta / remaining
		if amount > 1 {
			amount = 1
		}
		if amount > 0 {
			p.X += dx * amount
			p.Y += dy * amount
		}
	}
	if remaining < arrivalDistance {
		p.Impacted = true
		u.stats.Impacts++
		u.entities.Impact(p)
	}
}

func (u *Updater) updateCharacter(c *entity.Character) {
	now := u.frame.Time
	s := stepper{u: u, c: c}
	if c.Movement.InProgress {
		c.Movement.Step(now, s)
	}
	if c.HasPath() && !c.Movement.InProgress {
		if c.BeginStep(now) {
			u.stats.StepsStarted++
		}
	}
}

// stepper applies a character's movement tween to its position.
type stepper struct {
	u *Updater
	c *entity.Character
}

func (s stepper) Step(v float64) {
	s.c.SetCoord(s.c.Movement.Axis, v)
	s.u.entities.Moved(s.c)
}

// Complete snaps to the end value so the character lands exactly on the
// cell boundary, then moves on to the next path cell.
func (s stepper) Complete(end float64) {
	s.c.SetCoord(s.c.Movement.Axis, end)
	s.u.entities.Moved(s.c)
	s.c.NextStep()
	s.u.stats.StepsCompleted++
}
