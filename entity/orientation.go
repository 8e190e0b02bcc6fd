package entity

// Orientation is the facing of an entity on the grid. The zero value means
// no direction.
type Orientation int

const (
	None Orientation = iota
	Up
	Down
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the grid offset of one step in direction o.
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Toward returns the orientation that faces from one cell to another,
// preferring the axis with the larger distance.
func Toward(from, to Cell) Orientation {
	dx, dy := to.X-from.X, to.Y-from.Y
	ax, ay := dx, dy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	switch {
	case ax == 0 && ay == 0:
		return None
	case ax >= ay && dx < 0:
		return Left
	case ax >= ay:
		return Right
	case dy < 0:
		return Up
	default:
		return Down
	}
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell in direction o.
func (c Cell) Step(o Orientation) Cell {
	dx, dy := o.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
