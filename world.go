package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"tilewalk/anim"
	"tilewalk/clock"
	"tilewalk/entity"
	"tilewalk/tileset"
	"tilewalk/updater"
)

const (
	mapWidth  = 24
	mapHeight = 16

	waterSpeed      = 300
	lavaSpeed       = 450
	projectileSpeed = 120
)

// world is the demo's map and entity registry. Everything except the
// tileset regeneration runs on the game loop goroutine.
type world struct {
	clock  *clock.Clock
	ctx    context.Context
	rng    *rand.Rand
	cells  []int
	water  []*anim.Tile
	tiles  *tileset.Tileset
	scale  int
	nextID int

	entities []entity.Entity
	player   *entity.Character

	infos   *infoList
	bubbles *bubbleList
	trace   *traceRecorder

	regenMu  sync.Mutex
	regening bool
	want     int
	errLimit *rate.Limiter
}

func newWorld(ctx context.Context, c *clock.Clock, seed int64, scale, workers int) *world {
	w := &world{
		clock:   c,
		ctx:     ctx,
		rng:     rand.New(rand.NewSource(seed)),
		cells:   make([]int, mapWidth*mapHeight),
		scale:   scale,
		infos:   newInfoList(),
		bubbles: newBubbleList(),

		errLimit: rate.NewLimiter(rate.Every(5*time.Second), 1),
	}
	w.tiles = tileset.New(tileset.Generate(seed, entity.TileSize), entity.TileSize, workers)
	w.tiles.SetLinear(gs.Linear)
	w.buildMap()
	return w
}

func (w *world) buildMap() {
	for y := 0; y < mapHeight; y++ {
		for x := 0; x < mapWidth; x++ {
			id := tileset.Grass
			switch r := w.rng.Intn(100); {
			case x == 0 || y == 0 || x == mapWidth-1 || y == mapHeight-1:
				id = tileset.Wall
			case r < 6:
				id = tileset.Stone
			case r < 14:
				id = tileset.Dirt
			}
			w.cells[y*mapWidth+x] = id
		}
	}
	w.pool(tileset.Water, tileset.WaterFrames, waterSpeed, 3)
	w.pool(tileset.Lava, tileset.LavaFrames, lavaSpeed, 1)
}

// pool drops count small animated patches onto the map.
func (w *world) pool(start, frames int, speed float64, count int) {
	for i := 0; i < count; i++ {
		cx := 2 + w.rng.Intn(mapWidth-6)
		cy := 2 + w.rng.Intn(mapHeight-6)
		for y := cy; y < cy+2; y++ {
			for x := cx; x < cx+3; x++ {
				if w.cells[y*mapWidth+x] == tileset.Wall {
					continue
				}
				w.cells[y*mapWidth+x] = start
				w.water = append(w.water, anim.NewTile(start, frames, speed, x, y))
			}
		}
	}
}

func (w *world) tileAt(c entity.Cell) int {
	if c.X < 0 || c.Y < 0 || c.X >= mapWidth || c.Y >= mapHeight {
		return tileset.Wall
	}
	return w.cells[c.Y*mapWidth+c.X]
}

// walkable reports whether mover may enter c. A cell is blocked by terrain
// and by any other character standing on it or heading into it. mover may
// be nil.
func (w *world) walkable(c entity.Cell, mover *entity.Character) bool {
	switch w.tileAt(c) {
	case tileset.Wall:
		return false
	case tileset.Grass, tileset.Dirt, tileset.Stone:
	default:
		return false
	}
	for _, e := range w.entities {
		if ch, ok := e.(*entity.Character); ok && ch != mover && ch.Occupies(c) {
			return false
		}
	}
	return true
}

func (w *world) randomFreeCell() (entity.Cell, error) {
	for i := 0; i < 500; i++ {
		c := entity.Cell{X: 1 + w.rng.Intn(mapWidth-2), Y: 1 + w.rng.Intn(mapHeight-2)}
		if w.walkable(c, nil) {
			return c, nil
		}
	}
	return entity.Cell{}, errors.New("world: no free cell")
}

func (w *world) spawnCharacter(name string) (*entity.Character, error) {
	cell, err := w.randomFreeCell()
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", name, err)
	}
	w.nextID++
	c := entity.NewCharacter(w.nextID, name)
	c.SetGridPosition(cell.X, cell.Y)
	c.Animation = anim.New("walk", 4, 0, entity.TileSize, entity.TileSize)
	c.Animation.Speed = 150
	c.SpriteLoaded = true
	c.FadeIn(w.clock.WorldTime())
	w.entities = append(w.entities, c)
	return c, nil
}

func (w *world) spawnItem(name string) (*entity.Item, error) {
	cell, err := w.randomFreeCell()
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", name, err)
	}
	w.nextID++
	it := entity.NewItem(w.nextID, name)
	it.SetGridPosition(cell.X, cell.Y)
	it.Animation = anim.New("glint", 3, 0, entity.TileSize, entity.TileSize)
	it.Animation.Speed = 400
	it.SpriteLoaded = true
	it.FadeIn(w.clock.WorldTime())
	w.entities = append(w.entities, it)
	return it, nil
}

// fire launches a projectile from the centre of owner's cell toward the
// centre of cell.
func (w *world) fire(owner *entity.Character, cell entity.Cell) *entity.Projectile {
	half := float64(entity.TileSize) / 2
	w.nextID++
	p := entity.NewProjectile(w.nextID,
		owner.X+half, owner.Y+half,
		float64(cell.X*entity.TileSize)+half, float64(cell.Y*entity.TileSize)+half,
		projectileSpeed)
	p.Owner = owner.ID
	p.Animation = anim.New("spin", 2, 0, 4, 4)
	w.entities = append(w.entities, p)
	playSound(soundFire)
	return p
}

func (w *world) remove(id int) {
	for i, e := range w.entities {
		if e.Common().ID == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return
		}
	}
}

func (w *world) characterAt(c entity.Cell) *entity.Character {
	for _, e := range w.entities {
		if ch, ok := e.(*entity.Character); ok && ch.Cell() == c {
			return ch
		}
	}
	return nil
}

// Renderer

func (w *world) ForEachAnimatedTile(fn func(*anim.Tile)) {
	for _, t := range w.water {
		fn(t)
	}
}

func (w *world) TileBounds(t *anim.Tile) image.Rectangle {
	size := entity.TileSize * w.scale
	return image.Rect(t.X*size, t.Y*size, (t.X+1)*size, (t.Y+1)*size)
}

func (w *world) DrawingScale() int {
	return w.scale
}

func (w *world) Tileset() updater.Tileset {
	if w.tiles == nil {
		return nil
	}
	return w.tiles
}

// Entities

// ForEachEntity walks a snapshot so fn may spawn or remove entities.
func (w *world) ForEachEntity(fn func(entity.Entity)) {
	list := append([]entity.Entity(nil), w.entities...)
	for _, e := range list {
		fn(e)
	}
}

func (w *world) Player() *entity.Character {
	return w.player
}

func (w *world) Moved(c *entity.Character) {
	if w.trace != nil {
		w.trace.moved(c)
	}
}

func (w *world) Impact(p *entity.Projectile) {
	w.remove(p.ID)
	cell := pixelToCell(p.DestX, p.DestY)
	if target := w.characterAt(cell); target != nil {
		p.Target = target.ID
		w.infos.add(target.X, target.Y, "hit!", w.clock.WorldTime())
		playSound(soundHit)
		return
	}
	w.infos.add(p.DestX, p.DestY, "miss", w.clock.WorldTime())
	playSound(soundMiss)
}

// Map

// UpdateTileset rebuilds the tileset off the game loop. Requests made while
// a rebuild runs only move its target; the worker keeps going until the
// tileset matches the latest requested scale.
func (w *world) UpdateTileset() {
	w.regenMu.Lock()
	w.want = w.scale
	if w.regening {
		w.regenMu.Unlock()
		return
	}
	w.regening = true
	w.regenMu.Unlock()
	go w.regenerate()
}

func (w *world) regenerate() {
	for {
		w.regenMu.Lock()
		scale := w.want
		w.regenMu.Unlock()

		err := w.tiles.Regenerate(w.ctx, scale)
		switch {
		case errors.Is(err, context.Canceled):
		case err != nil:
			if w.errLimit.Allow() {
				logError("tileset: %v", err)
			}
		default:
			logDebug("tileset regenerated at x%d", scale)
		}

		w.regenMu.Lock()
		if err != nil || w.want == scale {
			w.regening = false
			w.regenMu.Unlock()
			return
		}
		w.regenMu.Unlock()
	}
}

func (w *world) screenToCell(x, y int) entity.Cell {
	size := entity.TileSize * w.scale
	if x < 0 || y < 0 || size <= 0 {
		return entity.Cell{X: -1, Y: -1}
	}
	return entity.Cell{X: x / size, Y: y / size}
}

func pixelToCell(x, y float64) entity.Cell {
	return entity.Cell{
		X: int(math.Floor(x / entity.TileSize)),
		Y: int(math.Floor(y / entity.TileSize)),
	}
}

// route plans a walk for c to goal. A character in the middle of a step
// keeps the cell it is entering as the first cell so the step lands where
// it was headed.
func (w *world) route(c *entity.Character, goal entity.Cell) []entity.Cell {
	if next, ok := c.Heading(); ok && c.Moving() {
		if next == goal {
			return []entity.Cell{next}
		}
		rest := w.findPath(next, goal, c)
		if rest == nil {
			return nil
		}
		return append([]entity.Cell{next}, rest...)
	}
	return w.findPath(c.Cell(), goal, c)
}

// findPath returns the cells from start (exclusive) to goal (inclusive)
// along a shortest route mover can walk, or nil when goal cannot be
// reached.
func (w *world) findPath(start, goal entity.Cell, mover *entity.Character) []entity.Cell {
	if start == goal || !w.walkable(goal, mover) {
		return nil
	}
	prev := map[entity.Cell]entity.Cell{start: start}
	queue := []entity.Cell{start}
	dirs := []entity.Orientation{entity.Up, entity.Down, entity.Left, entity.Right}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			break
		}
		for _, o := range dirs {
			next := cur.Step(o)
			if _, seen := prev[next]; seen || !w.walkable(next, mover) {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	if _, ok := prev[goal]; !ok {
		return nil
	}
	var path []entity.Cell
	for c := goal; c != start; c = prev[c] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
