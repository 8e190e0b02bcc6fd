// Package tileset keeps the map tiles pre-scaled for the current drawing
// scale. Regeneration rescales every tile on a bounded pool of goroutines
// and swaps the result in only when all of them are done, so readers always
// see a complete set at a single scale.
package tileset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/remeh/sizedwaitgroup"
	"golang.org/x/image/draw"
)

var ErrNoTiles = errors.New("tileset: no tiles")

const defaultWorkers = 4

type Tileset struct {
	mu       sync.RWMutex
	tileSize int
	src      []image.Image
	scaled   []*image.RGBA
	scale    int
	gen      uint64
	workers  int
	linear   bool
}

// New wraps the source tiles. The set has scale 0 until the first
// Regenerate. workers <= 0 selects a default pool size.
func New(tiles []image.Image, tileSize, workers int) *Tileset {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Tileset{
		tileSize: tileSize,
		src:      append([]image.Image(nil), tiles...),
		workers:  workers,
	}
}

// SetLinear selects bilinear filtering for the next Regenerate instead of
// nearest neighbour.
func (t *Tileset) SetLinear(linear bool) {
	t.mu.Lock()
	t.linear = linear
	t.mu.Unlock()
}

// Scale is the scale the current tiles were generated at. A nil Tileset
// reports 0.
func (t *Tileset) Scale() int {
	if t == nil {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scale
}

// Generation increases every time a regeneration completes.
func (t *Tileset) Generation() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gen
}

func (t *Tileset) Len() int {
	return len(t.src)
}

// TileSize is the unscaled tile edge in pixels.
func (t *Tileset) TileSize() int {
	return t.tileSize
}

// Tile returns the scaled image for id, or nil if id is out of range or no
// regeneration has completed yet.
func (t *Tileset) Tile(id int) *image.RGBA {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || id >= len(t.scaled) {
		return nil
	}
	return t.scaled[id]
}

// Snapshot returns the scaled tiles together with the scale and generation
// they were built for. The slice is never modified after a regeneration
// publishes it, so callers may keep reading it.
func (t *Tileset) Snapshot() (tiles []*image.RGBA, scale int, gen uint64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scaled, t.scale, t.gen
}

// Regenerate rescales every source tile to scale. If ctx is cancelled the
// current set is kept and the context error is returned.
func (t *Tileset) Regenerate(ctx context.Context, scale int) error {
	if scale < 1 {
		return fmt.Errorf("tileset: invalid scale %d", scale)
	}
	if len(t.src) == 0 {
		return ErrNoTiles
	}
	t.mu.RLock()
	kernel := draw.Interpolator(draw.NearestNeighbor)
	if t.linear {
		kernel = draw.ApproxBiLinear
	}
	t.mu.RUnlock()

	out := make([]*image.RGBA, len(t.src))
	swg := sizedwaitgroup.New(t.workers)
	for i, src := range t.src {
		if err := swg.AddWithContext(ctx); err != nil {
			break
		}
		go func(i int, src image.Image) {
			defer swg.Done()
			out[i] = scaleTile(src, scale, kernel)
		}(i, src)
	}
	swg.Wait()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("tileset: regenerate x%d: %w", scale, err)
	}

	t.mu.Lock()
	t.scaled = out
	t.scale = scale
	t.gen++
	t.mu.Unlock()
	return nil
}

func scaleTile(src image.Image, scale int, kernel draw.Interpolator) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	kernel.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
