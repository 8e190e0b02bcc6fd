package entity

import "math"

// Projectile flies in a straight line toward DestX, DestY at Speed pixels
// per second. Impacted latches once it has arrived.
type Projectile struct {
	Base
	Speed        float64
	DestX, DestY float64
	Owner        int
	Target       int
	Impacted     bool
}

func NewProjectile(id int, x, y, destX, destY, speed float64) *Projectile {
	return &Projectile{
		Base:  Base{ID: id, X: x, Y: y},
		Speed: speed,
		DestX: destX,
		DestY: destY,
	}
}

func (*Projectile) Kind() Kind { return KindProjectile }

// Remaining is the straight-line distance left to the destination.
func (p *Projectile) Remaining() float64 {
	return math.Hypot(p.DestX-p.X, p.DestY-p.Y)
}

// Angle is the heading in radians, used to rotate the sprite.
func (p *Projectile) Angle() float64 {
	return math.Atan2(p.DestY-p.Y, p.DestX-p.X)
}
