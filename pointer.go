package main

import (
	"math"

	"tilewalk/entity"
)

// pointer marks the cell the player was sent to. It bobs once per frame
// rather than by time so it keeps a steady rhythm on screen.
type pointer struct {
	cell    entity.Cell
	visible bool
	frame   int
	bob     float64
}

func (p *pointer) show(c entity.Cell) {
	p.cell = c
	p.visible = true
	p.frame = 0
}

func (p *pointer) hide() {
	p.visible = false
}

func (p *pointer) Update() {
	if !p.visible {
		return
	}
	p.frame++
	p.bob = math.Sin(float64(p.frame)*0.15) * 3
}
