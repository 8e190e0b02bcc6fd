// Package updater advances the client world by one rendered frame: animated
// tiles, entity fading and animation, grid-stepped walking, projectile
// flight, predicted input, ambient effects, tileset scale and the small UI
// widgets that only need a time tick.
//
// Update is meant to be called from the game loop goroutine. Everything it
// touches is mutated in place without locking.
package updater

import (
	"image"
	"time"

	"tilewalk/anim"
	"tilewalk/clock"
	"tilewalk/entity"
)

// Renderer exposes the animated tiles and scale information the updater
// needs from the drawing side.
type Renderer interface {
	ForEachAnimatedTile(fn func(*anim.Tile))
	TileBounds(t *anim.Tile) image.Rectangle
	DrawingScale() int
	// Tileset returns nil while no tileset has been built.
	Tileset() Tileset
}

// Tileset is the cached, pre-scaled tile image set.
type Tileset interface {
	Scale() int
}

// Entities is the registry of live entities plus the side effects the
// updater triggers on them.
type Entities interface {
	ForEachEntity(fn func(entity.Entity))
	// Player returns the local player, or nil before login.
	Player() *entity.Character
	// Moved is called whenever a character's pixel position changed.
	Moved(c *entity.Character)
	// Impact is called once when a projectile reaches its destination.
	Impact(p *entity.Projectile)
}

// Input is the cursor and keyboard side of the client.
type Input interface {
	UpdateCursor()
	KeyMove(cell entity.Cell)
	TargetAnimation() *anim.Animation
}

// Map rebuilds the tileset for the renderer's current scale.
type Map interface {
	UpdateTileset()
}

// Ticker is a widget driven by world time.
type Ticker interface {
	Update(now float64)
}

// Pointer is a widget that updates without a time value.
type Pointer interface {
	Update()
}

// Sprites is the loaded sprite set; only its shared effects are animated
// here.
type Sprites interface {
	SparksAnimation() *anim.Animation
}

// Deps lists the collaborators an Updater calls. Any of them may be nil, in
// which case the matching step is skipped.
type Deps struct {
	Clock    *clock.Clock
	Renderer Renderer
	Entities Entities
	Input    Input
	Map      Map
	Info     Ticker
	Bubble   Ticker
	Pointer  Pointer

	// Logf receives occasional debug lines. Nil discards them.
	Logf func(format string, v ...interface{})
}

// Frame is the timing shared read-only by every step of one Update.
type Frame struct {
	Now time.Time
	// Time is world time in milliseconds.
	Time float64
	// Delta is the seconds elapsed since the previous Update.
	Delta float64
}

// Stats counts what the updater has done since it was created.
type Stats struct {
	Frames          uint64
	LastDelta       float64
	TilesDirtied    uint64
	StepsStarted    uint64
	StepsCompleted  uint64
	Impacts         uint64
	TilesetRequests uint64
}

type Updater struct {
	clock    *clock.Clock
	renderer Renderer
	entities Entities
	input    Input
	maps     Map
	info     Ticker
	bubble   Ticker
	pointer  Pointer
	sprites  Sprites
	logf     func(format string, v ...interface{})

	frame       Frame
	loggedScale int
	stats       Stats
}

func New(d Deps) *Updater {
	c := d.Clock
	if c == nil {
		c = clock.New(clock.Real{})
	}
	logf := d.Logf
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Updater{
		clock:    c,
		renderer: d.Renderer,
		entities: d.Entities,
		input:    d.Input,
		maps:     d.Map,
		info:     d.Info,
		bubble:   d.Bubble,
		pointer:  d.Pointer,
		logf:     logf,
	}
}

// SetSprites installs the sprite set once it has loaded. Passing nil stops
// the sparks animation from being advanced.
func (u *Updater) SetSprites(s Sprites) {
	u.sprites = s
}

// Update runs one frame. The elapsed time is computed before any subsystem
// runs, and the subsystems always run in the same order, so later steps see
// what earlier ones changed in this frame.
func (u *Updater) Update() {
	now, world, delta := u.clock.Frame()
	u.frame = Frame{Now: now, Time: world, Delta: delta}

	u.animateTiles()
	u.updateEntities()
	u.updateInput()
	u.updateAnimations()
	u.verifyScale()
	u.updateInfos()
	u.updateBubbles()

	u.clock.Mark(now)
	u.stats.Frames++
	u.stats.LastDelta = delta
}

// TimeDifferential is the elapsed seconds of the frame being (or last)
// processed.
func (u *Updater) TimeDifferential() float64 {
	return u.frame.Delta
}

// Frame returns the timing of the frame being (or last) processed.
func (u *Updater) Frame() Frame {
	return u.frame
}

func (u *Updater) Stats() Stats {
	return u.stats
}

func (u *Updater) updateAnimations() {
	if u.input != nil {
		u.input.TargetAnimation().Update(u.frame.Time)
	}
	if u.sprites == nil {
		return
	}
	u.sprites.SparksAnimation().Update(u.frame.Time)
}

func (u *Updater) updateInfos() {
	if u.info != nil {
		u.info.Update(u.frame.Time)
	}
}

func (u *Updater) updateBubbles() {
	if u.bubble != nil {
		u.bubble.Update(u.frame.Time)
	}
	if u.pointer != nil {
		u.pointer.Update()
	}
}
