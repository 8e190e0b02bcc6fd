package main

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tilewalk/entity"
	"tilewalk/tileset"
)

// renderer keeps the map in an offscreen image and only redraws the
// animated tiles the updater marked dirty.
type renderer struct {
	mapImg    *ebiten.Image
	tileImgs  []*ebiten.Image
	tileGen   uint64
	tileScale int
	mapScale  int
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.r.drawMap(screen, g.world)
	g.drawTarget(screen)
	g.drawEntities(screen)
	g.drawInfos(screen)
	if gs.ShowBubbles {
		g.drawBubbles(screen)
	}
	g.drawHUD(screen)
}

// syncTiles uploads the tileset images after each regeneration. It reports
// whether the whole map has to be redrawn.
func (r *renderer) syncTiles(ts *tileset.Tileset) bool {
	if gen := ts.Generation(); gen == 0 || gen == r.tileGen {
		return false
	}
	tiles, scale, gen := ts.Snapshot()
	for _, img := range r.tileImgs {
		img.Deallocate()
	}
	r.tileImgs = r.tileImgs[:0]
	for _, tile := range tiles {
		r.tileImgs = append(r.tileImgs, ebiten.NewImageFromImage(tile))
	}
	r.tileGen = gen
	r.tileScale = scale
	return true
}

func (r *renderer) drawTile(dst *ebiten.Image, id, x, y, scale int) {
	if id < 0 || id >= len(r.tileImgs) || r.tileScale == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if r.tileScale != scale {
		f := float64(scale) / float64(r.tileScale)
		op.GeoM.Scale(f, f)
	}
	if gs.Linear {
		op.Filter = ebiten.FilterLinear
	}
	size := entity.TileSize * scale
	op.GeoM.Translate(float64(x*size), float64(y*size))
	dst.DrawImage(r.tileImgs[id], op)
}

func (r *renderer) drawMap(screen *ebiten.Image, w *world) {
	full := r.syncTiles(w.tiles)
	if len(r.tileImgs) == 0 {
		return
	}
	if r.mapImg == nil || r.mapScale != w.scale {
		if r.mapImg != nil {
			r.mapImg.Deallocate()
		}
		size := entity.TileSize * w.scale
		r.mapImg = ebiten.NewImage(mapWidth*size, mapHeight*size)
		r.mapScale = w.scale
		full = true
	}

	if full {
		for y := 0; y < mapHeight; y++ {
			for x := 0; x < mapWidth; x++ {
				r.drawTile(r.mapImg, w.cells[y*mapWidth+x], x, y, w.scale)
			}
		}
	}
	for _, t := range w.water {
		if !full && !t.Dirty {
			continue
		}
		if !full {
			r.mapImg.SubImage(t.DirtyRect).(*ebiten.Image).Clear()
		}
		r.drawTile(r.mapImg, t.ID, t.X, t.Y, w.scale)
		t.Clean()
	}
	screen.DrawImage(r.mapImg, nil)
}

func nameColor(name string) color.NRGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	v := h.Sum32()
	return color.NRGBA{uint8(96 + v%160), uint8(96 + (v>>8)%160), uint8(96 + (v>>16)%160), 0xff}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * a)
	return c
}

func (g *Game) drawEntities(screen *ebiten.Image) {
	s := float32(g.world.scale)
	size := float32(entity.TileSize) * s
	for _, e := range g.world.entities {
		b := e.Common()
		x, y := float32(b.X)*s, float32(b.Y)*s
		bob := float32(0)
		if b.Animation != nil {
			if idx, _, _ := b.Animation.Frame(); idx%2 == 1 {
				bob = -s
			}
		}
		switch e := e.(type) {
		case *entity.Character:
			col := nameColor(e.Name)
			if e == g.world.Player() {
				col = color.NRGBA{0xf0, 0xd0, 0x40, 0xff}
			}
			col = withAlpha(col, b.Alpha())
			inset := 2 * s
			vector.DrawFilledRect(screen, x+inset, y+inset+bob, size-2*inset, size-2*inset, col, false)
			dx, dy := e.Orientation.Delta()
			cx, cy := x+size/2+float32(dx)*size/3, y+size/2+float32(dy)*size/3+bob
			vector.DrawFilledCircle(screen, cx, cy, 1.5*s, withAlpha(color.NRGBA{0x20, 0x20, 0x20, 0xff}, b.Alpha()), true)
		case *entity.Projectile:
			vector.DrawFilledCircle(screen, x, y, 2*s, color.NRGBA{0xff, 0x80, 0x20, 0xff}, true)
			tx, ty := math.Cos(e.Angle()), math.Sin(e.Angle())
			vector.StrokeLine(screen, x, y, x-float32(tx)*4*s, y-float32(ty)*4*s, s, color.NRGBA{0xff, 0xd0, 0x80, 0xc0}, true)
		case *entity.Item:
			col := withAlpha(color.NRGBA{0x60, 0xe0, 0xf0, 0xff}, b.Alpha())
			vector.DrawFilledCircle(screen, x+size/2, y+size/2+bob, size/5, col, true)
		}
	}
}

func (g *Game) drawTarget(screen *ebiten.Image) {
	if !g.pointer.visible {
		return
	}
	s := float32(g.world.scale)
	size := float32(entity.TileSize) * s
	x, y := float32(g.pointer.cell.X)*size, float32(g.pointer.cell.Y)*size
	idx, _, _ := g.input.target.Frame()
	inset := float32(idx) * s
	vector.StrokeRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, s, color.NRGBA{0xff, 0xff, 0xff, 0xc0}, false)

	ay := y - 2*s + float32(g.pointer.bob)*s
	var arrow vector.Path
	arrow.MoveTo(x+size/2-3*s, ay-4*s)
	arrow.LineTo(x+size/2+3*s, ay-4*s)
	arrow.LineTo(x+size/2, ay)
	arrow.Close()
	vs, is := arrow.AppendVerticesAndIndicesForFilling(nil, nil)
	fillVertices(vs, color.White)
	screen.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) drawInfos(screen *ebiten.Image) {
	s := float64(g.world.scale)
	idx, _, _ := g.sprites.sparks.Frame()
	for _, in := range g.world.infos.items {
		x, y := in.x*s, (in.y-in.offset)*s
		for i := 0; i < 4; i++ {
			a := float64(i)*math.Pi/2 + float64(idx)*math.Pi/12
			r := float64(3+idx) * s
			vector.DrawFilledCircle(screen, float32(x+math.Cos(a)*r), float32(y+math.Sin(a)*r), float32(s/2),
				withAlpha(color.NRGBA{0xff, 0xe0, 0x60, 0xff}, in.alpha), true)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(float32(in.alpha))
		text.Draw(screen, in.text, hudFace, op)
	}
}

func (g *Game) drawBubbles(screen *ebiten.Image) {
	s := g.world.scale
	for _, b := range g.world.bubbles.items {
		var owner *entity.Character
		for _, e := range g.world.entities {
			if c, ok := e.(*entity.Character); ok && c.ID == b.owner {
				owner = c
				break
			}
		}
		if owner == nil {
			continue
		}
		x := int(owner.X)*s + entity.TileSize*s/2
		y := int(owner.Y) * s
		drawBubble(screen, b.text, x, y, b.kind, s)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	var lines []string
	if p := g.world.Player(); p != nil {
		lines = append(lines, fmt.Sprintf("%d,%d facing %s", p.GridX, p.GridY, TitleCaser.String(p.Orientation.String())))
	}
	if g.input.hasPredicted {
		lines = append(lines, fmt.Sprintf("next %d,%d", g.input.predicted.X, g.input.predicted.Y))
	}
	if g.trace.recording {
		lines = append(lines, fmt.Sprintf("REC %d frames", len(g.trace.data.Frames)))
	}
	if gs.ShowStats {
		lines = append(lines, statsLines(g.upd.Stats(), g.clock.Uptime())...)
	}
	lines = append(lines, getMessages()...)

	lh := lineHeight(hudFace)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(4, float64(4+i*lh))
		text.Draw(screen, line, hudFace, op)
	}
}
