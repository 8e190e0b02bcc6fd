package main

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	dark "github.com/thiagokokada/dark-mode-go"

	"tilewalk/anim"
	"tilewalk/clock"
	"tilewalk/entity"
	"tilewalk/updater"
)

// sprites holds the effects shared by every entity.
type sprites struct {
	sparks *anim.Animation
}

func (s *sprites) SparksAnimation() *anim.Animation {
	return s.sparks
}

type Game struct {
	ctx     context.Context
	clock   *clock.Clock
	world   *world
	input   *input
	pointer *pointer
	sprites *sprites
	upd     *updater.Updater
	stats   *frameStats
	trace   *traceRecorder
	npcs    []*npc

	bg       color.Color
	lastSave time.Time
	r        renderer
}

func newGame(ctx context.Context, seed int64) (*Game, error) {
	c := clock.New(clock.Real{})
	w := newWorld(ctx, c, seed, gs.Scale, gs.TileWorkers)
	p, err := w.spawnCharacter("You")
	if err != nil {
		return nil, err
	}
	w.player = p

	g := &Game{
		ctx:     ctx,
		clock:   c,
		world:   w,
		input:   newInput(w),
		pointer: &pointer{},
		sprites: &sprites{sparks: anim.New("sparks", 6, 0, 8, 8)},
		stats:   newFrameStats(),
		trace:   &traceRecorder{},
		bg:      themeBackground(gs.Theme),
	}
	g.sprites.sparks.Speed = 60
	w.trace = g.trace
	g.npcs = spawnNPCs(w, gs.NPCs)
	for i := 0; i < 3; i++ {
		if _, err := w.spawnItem("gem"); err != nil {
			logError("%v", err)
		}
	}

	g.upd = updater.New(updater.Deps{
		Clock:    c,
		Renderer: w,
		Entities: w,
		Input:    g.input,
		Map:      w,
		Info:     w.infos,
		Bubble:   w.bubbles,
		Pointer:  g.pointer,
		Logf:     logDebug,
	})
	g.upd.SetSprites(g.sprites)
	return g, nil
}

// themeBackground resolves the "dark" and "light" themes, and an empty
// theme from the desktop preference.
func themeBackground(theme string) color.Color {
	if theme == "" {
		theme = "dark"
		if isDark, err := dark.IsDarkMode(); err == nil && !isDark {
			theme = "light"
		}
	}
	if theme == "light" {
		return color.RGBA{0xe8, 0xe4, 0xd8, 0xff}
	}
	return color.RGBA{0x14, 0x16, 0x1c, 0xff}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()

	now := g.clock.WorldTime()
	for _, n := range g.npcs {
		n.think(g.world, now)
	}

	g.upd.Update()

	frame := g.upd.Frame()
	if p := g.world.Player(); p != nil && g.pointer.visible && p.Cell() == g.pointer.cell && !p.Moving() {
		g.pointer.hide()
	}
	g.trace.capture(frame.Time, frame.Delta, g.world.entities)
	g.stats.log(g.upd.Stats(), g.clock.Uptime())

	if time.Since(g.lastSave) >= settingsSaveEvery {
		saveSettingsIfDirty()
		g.lastSave = time.Now()
	}
	return nil
}

var arrowKeys = []struct {
	keys []ebiten.Key
	dir  entity.Orientation
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, entity.Up},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, entity.Down},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, entity.Left},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, entity.Right},
}

func (g *Game) handleKeys() {
	p := g.world.Player()
	if p != nil {
		p.Direction = entity.None
		for _, a := range arrowKeys {
			for _, k := range a.keys {
				if ebiten.IsKeyPressed(k) {
					p.Direction = a.dir
				}
			}
		}
		// Keys take over from a clicked route once its current step lands.
		if p.Direction != entity.None && g.pointer.visible {
			p.Stop()
			g.pointer.hide()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.world.fire(p, p.Cell().Step(p.Orientation).Step(p.Orientation).Step(p.Orientation))
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		g.toggleTrace()
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		updateSettings(func(s *Settings) { s.ShowStats = !s.ShowStats })
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		updateSettings(func(s *Settings) { s.Sound = !s.Sound })
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		updateSettings(func(s *Settings) { s.ShowBubbles = !s.ShowBubbles })
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		updateSettings(func(s *Settings) { s.Linear = !s.Linear })
		g.world.tiles.SetLinear(gs.Linear)
		g.world.UpdateTileset()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.setScale(gs.Scale + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.setScale(gs.Scale - 1)
	}
}

func (g *Game) setScale(s int) {
	s = clampScale(s)
	if s == gs.Scale {
		return
	}
	updateSettings(func(st *Settings) { st.Scale = s })
	g.world.scale = s
	ebiten.SetWindowSize(mapWidth*entity.TileSize*s, mapHeight*entity.TileSize*s)
	addMessage(fmt.Sprintf("Scale x%d", s))
}

func (g *Game) handleMouse() {
	p := g.world.Player()
	if p == nil {
		return
	}
	x, y := ebiten.CursorPosition()
	cell := g.world.screenToCell(x, y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		path := g.world.route(p, cell)
		if path == nil {
			return
		}
		p.Go(path...)
		g.pointer.show(cell)
		g.input.target.Reset()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.world.fire(p, cell)
	}
}

func (g *Game) toggleTrace() {
	if !g.trace.recording {
		g.trace.start(time.Now())
		addMessage("Recording trace")
		return
	}
	data := g.trace.stop()
	addMessage("Trace stopped")
	go saveTrace(data)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return mapWidth * entity.TileSize * g.world.scale, mapHeight * entity.TileSize * g.world.scale
}

func runGame(ctx context.Context, seed int64) {
	initFont()
	g, err := newGame(ctx, seed)
	if err != nil {
		logError("start: %v", err)
		return
	}
	ebiten.SetWindowTitle("tilewalk")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		logError("ebiten: %v", err)
	}
	saveSettings()
}
