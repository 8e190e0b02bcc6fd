package anim

import "image"

// Tile is an animated map tile. ID is the tile id currently shown; it runs
// from StartID through StartID+Length-1. The renderer reads Dirty and
// DirtyRect to limit redraws and clears them with Clean.
type Tile struct {
	ID      int
	StartID int
	Length  int
	Speed   float64
	Index   int
	X, Y    int

	Dirty     bool
	DirtyRect image.Rectangle

	lastTime float64
}

func NewTile(startID, length int, speed float64, x, y int) *Tile {
	return &Tile{
		ID:      startID,
		StartID: startID,
		Length:  length,
		Speed:   speed,
		X:       x,
		Y:       y,
	}
}

// Animate moves to the next frame once Speed milliseconds have passed since
// the previous change. Tiles with fewer than two frames or a non-positive
// speed are static.
func (t *Tile) Animate(now float64) bool {
	if t.Length <= 1 || t.Speed <= 0 {
		return false
	}
	if now-t.lastTime < t.Speed {
		return false
	}
	t.Index = (t.Index + 1) % t.Length
	t.ID = t.StartID + t.Index
	t.lastTime = now
	return true
}

// Clean resets the dirty state after the tile has been redrawn.
func (t *Tile) Clean() {
	t.Dirty = false
	t.DirtyRect = image.Rectangle{}
}
