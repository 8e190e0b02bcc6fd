package updater

import (
	"image"
	"time"

	"tilewalk/anim"
	"tilewalk/clock"
	"tilewalk/entity"
)

var epoch = time.Unix(1700000000, 0)

type callLog struct {
	calls []string
}

func (l *callLog) add(s string) {
	if l != nil {
		l.calls = append(l.calls, s)
	}
}

type fakeTileset struct{ scale int }

func (f *fakeTileset) Scale() int { return f.scale }

type fakeRenderer struct {
	log   *callLog
	tiles []*anim.Tile
	scale int
	ts    *fakeTileset
}

func (r *fakeRenderer) ForEachAnimatedTile(fn func(*anim.Tile)) {
	r.log.add("tiles")
	for _, t := range r.tiles {
		fn(t)
	}
}

func (r *fakeRenderer) TileBounds(t *anim.Tile) image.Rectangle {
	s := entity.TileSize * r.scale
	return image.Rect(t.X*s, t.Y*s, (t.X+1)*s, (t.Y+1)*s)
}

func (r *fakeRenderer) DrawingScale() int { return r.scale }

func (r *fakeRenderer) Tileset() Tileset {
	if r.ts == nil {
		return nil
	}
	return r.ts
}

type fakeWorld struct {
	log     *callLog
	ents    []entity.Entity
	player  *entity.Character
	moved   int
	impacts []int
	onMoved func(*entity.Character)
}

func (w *fakeWorld) ForEachEntity(fn func(entity.Entity)) {
	w.log.add("entities")
	for _, e := range w.ents {
		fn(e)
	}
}

func (w *fakeWorld) Player() *entity.Character { return w.player }

func (w *fakeWorld) Moved(c *entity.Character) {
	w.moved++
	if w.onMoved != nil {
		w.onMoved(c)
	}
}

func (w *fakeWorld) Impact(p *entity.Projectile) {
	w.impacts = append(w.impacts, p.ID)
}

type fakeInput struct {
	log    *callLog
	moves  []entity.Cell
	target *anim.Animation
}

func (i *fakeInput) UpdateCursor() { i.log.add("cursor") }

func (i *fakeInput) KeyMove(cell entity.Cell) {
	i.log.add("keymove")
	i.moves = append(i.moves, cell)
}

func (i *fakeInput) TargetAnimation() *anim.Animation {
	i.log.add("target")
	return i.target
}

type fakeMap struct {
	log      *callLog
	requests int
	apply    func()
}

func (m *fakeMap) UpdateTileset() {
	m.log.add("tileset")
	m.requests++
	if m.apply != nil {
		m.apply()
	}
}

type fakeTicker struct {
	log   *callLog
	name  string
	times []float64
}

func (t *fakeTicker) Update(now float64) {
	t.log.add(t.name)
	t.times = append(t.times, now)
}

type fakePointer struct {
	log   *callLog
	ticks int
}

func (p *fakePointer) Update() {
	p.log.add("pointer")
	p.ticks++
}

type fakeSprites struct{ sparks *anim.Animation }

func (s *fakeSprites) SparksAnimation() *anim.Animation { return s.sparks }

func newManual() (*clock.Manual, *clock.Clock) {
	m := clock.NewManual(epoch)
	return m, clock.New(m)
}
