package entity

// DefaultMovementSpeed is the duration of one grid step in milliseconds.
const DefaultMovementSpeed = 250

// Character walks from cell to cell along its Path. Direction is the facing
// requested by local input and is only meaningful for the player.
type Character struct {
	Base
	Name          string
	MovementSpeed float64
	Movement      Movement
	Path          Path
	Frozen        bool
	Direction     Orientation
}

func NewCharacter(id int, name string) *Character {
	return &Character{
		Base:          Base{ID: id, Orientation: Down},
		Name:          name,
		MovementSpeed: DefaultMovementSpeed,
	}
}

func (*Character) Kind() Kind { return KindCharacter }

// HasPath reports whether there is another cell to walk to.
func (c *Character) HasPath() bool {
	return c.Path.HasNext()
}

// Moving reports whether a grid step is under way.
func (c *Character) Moving() bool {
	return c.Movement.InProgress
}

// Go replaces the remaining path and turns toward its first cell.
func (c *Character) Go(cells ...Cell) {
	c.Path = NewPath(cells...)
	c.faceNext()
}

// NextStep is called when a grid step lands. The character now occupies the
// cell it walked into and turns toward the following one.
func (c *Character) NextStep() {
	if cell, ok := c.Path.Next(); ok {
		c.GridX, c.GridY = cell.X, cell.Y
	}
	c.faceNext()
}

// Stop drops the remaining path. A step in progress still lands on the
// cell it is heading for.
func (c *Character) Stop() {
	next, ok := c.Path.Peek()
	if c.Moving() && ok {
		c.Path = NewPath(next)
		return
	}
	c.Path.Clear()
}

// Heading returns the cell the character is about to enter: the first cell
// of its path. ok is false when it has nowhere to go.
func (c *Character) Heading() (Cell, bool) {
	return c.Path.Peek()
}

// Occupies reports whether cell is taken by the character, either because
// it stands there or because it is heading into it.
func (c *Character) Occupies(cell Cell) bool {
	if c.Cell() == cell {
		return true
	}
	next, ok := c.Heading()
	return ok && next == cell
}

func (c *Character) faceNext() {
	next, ok := c.Path.Peek()
	if !ok {
		return
	}
	if o := Toward(c.Cell(), next); o != None {
		c.Orientation = o
	}
}

// Coord returns the pixel coordinate on the given axis.
func (c *Character) Coord(a Axis) float64 {
	if a == AxisY {
		return c.Y
	}
	return c.X
}

// SetCoord sets the pixel coordinate on the given axis.
func (c *Character) SetCoord(a Axis, v float64) {
	if a == AxisY {
		c.Y = v
		return
	}
	c.X = v
}

// BeginStep starts a grid step in the current orientation at world time
// now. It returns false when the orientation or speed does not allow one.
func (c *Character) BeginStep(now float64) bool {
	return c.Movement.Begin(now, c.Orientation, c.Coord, c.MovementSpeed)
}
