package updater

import "tilewalk/entity"

// Predict returns the cell the player is about to step into, based on the
// facing requested by local input. ok is false when the player is frozen or
// has no direction.
func Predict(p *entity.Character) (cell entity.Cell, ok bool) {
	if p == nil || p.Frozen || p.Direction == entity.None {
		return entity.Cell{}, false
	}
	dx, dy := p.Direction.Delta()
	if dx == 0 && dy == 0 {
		return entity.Cell{}, false
	}
	return entity.Cell{X: p.GridX + dx, Y: p.GridY + dy}, true
}

func (u *Updater) updateInput() {
	if u.input == nil {
		return
	}
	u.input.UpdateCursor()
	u.updateKeyboard()
}

// updateKeyboard hands the predicted cell to input every frame the player
// is walking by keyboard, ahead of the server confirming the move. The
// player's own position is left alone.
func (u *Updater) updateKeyboard() {
	if u.entities == nil {
		return
	}
	if cell, ok := Predict(u.entities.Player()); ok {
		u.input.KeyMove(cell)
	}
}
