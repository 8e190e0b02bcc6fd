package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tilewalk/anim"
	"tilewalk/entity"
)

// input tracks the mouse cursor and turns predicted keyboard steps into
// player paths.
type input struct {
	world  *world
	target *anim.Animation
	// cursorPos reports the cursor in screen pixels.
	cursorPos func() (int, int)

	cursorX, cursorY int
	cursor           entity.Cell
	// predicted is the cell handed to KeyMove this frame, if any.
	predicted    entity.Cell
	hasPredicted bool
}

func newInput(w *world) *input {
	t := anim.New("target", 4, 0, entity.TileSize, entity.TileSize)
	t.Speed = 120
	return &input{world: w, target: t, cursorPos: ebiten.CursorPosition}
}

func (in *input) UpdateCursor() {
	in.cursorX, in.cursorY = in.cursorPos()
	in.cursor = in.world.screenToCell(in.cursorX, in.cursorY)
	in.hasPredicted = false
}

// KeyMove queues a one-cell step into cell when the player is standing
// still. Blocked cells only turn the player to face them.
func (in *input) KeyMove(cell entity.Cell) {
	in.predicted = cell
	in.hasPredicted = true
	p := in.world.Player()
	if p == nil || p.Moving() || p.HasPath() {
		return
	}
	if !in.world.walkable(cell, p) {
		if o := entity.Toward(p.Cell(), cell); o != entity.None {
			p.Orientation = o
		}
		return
	}
	p.Go(cell)
}

func (in *input) TargetAnimation() *anim.Animation {
	return in.target
}
