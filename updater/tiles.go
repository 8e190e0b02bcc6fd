package updater

import "tilewalk/anim"

func (u *Updater) animateTiles() {
	if u.renderer == nil {
		return
	}
	now := u.frame.Time
	u.renderer.ForEachAnimatedTile(func(t *anim.Tile) {
		if t.Animate(now) {
			t.Dirty = true
			t.DirtyRect = u.renderer.TileBounds(t)
			u.stats.TilesDirtied++
		}
	})
}
