package updater

// verifyScale asks the map to rebuild the tileset on every frame the drawing
// scale does not match it. The map is expected to merge repeated requests,
// so a request that was dropped or failed is simply made again next frame.
func (u *Updater) verifyScale() {
	if u.renderer == nil || u.maps == nil {
		return
	}
	ts := u.renderer.Tileset()
	if ts == nil {
		return
	}
	scale := u.renderer.DrawingScale()
	if ts.Scale() == scale {
		u.loggedScale = 0
		return
	}
	if u.loggedScale != scale {
		u.loggedScale = scale
		u.logf("tileset scale %d does not match drawing scale %d, regenerating", ts.Scale(), scale)
	}
	u.stats.TilesetRequests++
	u.maps.UpdateTileset()
}
