package entity

// Path is the queue of grid cells a character still has to walk through.
// The cell the character stands on is not part of it.
type Path struct {
	cells []Cell
}

func NewPath(cells ...Cell) Path {
	return Path{cells: append([]Cell(nil), cells...)}
}

func (p *Path) HasNext() bool {
	return len(p.cells) > 0
}

func (p *Path) Len() int {
	return len(p.cells)
}

// Peek returns the next cell without consuming it.
func (p *Path) Peek() (Cell, bool) {
	if len(p.cells) == 0 {
		return Cell{}, false
	}
	return p.cells[0], true
}

// Next consumes and returns the next cell.
func (p *Path) Next() (Cell, bool) {
	if len(p.cells) == 0 {
		return Cell{}, false
	}
	c := p.cells[0]
	p.cells = p.cells[1:]
	if len(p.cells) == 0 {
		p.cells = nil
	}
	return c, true
}

func (p *Path) Clear() {
	p.cells = nil
}
