package tileset

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"
)

func TestRegenerate(t *testing.T) {
	ts := New(Generate(1, 16), 16, 3)
	if ts.Scale() != 0 || ts.Tile(Grass) != nil {
		t.Fatalf("fresh tileset already scaled")
	}
	if err := ts.Regenerate(context.Background(), 2); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if ts.Scale() != 2 || ts.Generation() != 1 {
		t.Fatalf("scale=%d generation=%d", ts.Scale(), ts.Generation())
	}
	for id := 0; id < ts.Len(); id++ {
		img := ts.Tile(id)
		if img == nil {
			t.Fatalf("tile %d missing", id)
		}
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
			t.Fatalf("tile %d bounds %v", id, b)
		}
	}
	src := ts.src[Stone].(*image.RGBA)
	got := ts.Tile(Stone)
	if src.RGBAAt(3, 5) != got.RGBAAt(7, 11) {
		t.Fatalf("nearest neighbour pixel mismatch: %v vs %v", src.RGBAAt(3, 5), got.RGBAAt(7, 11))
	}
}

func TestSnapshotConsistentDuringRegenerate(t *testing.T) {
	ts := New(Generate(1, 16), 16, 2)
	if tiles, scale, gen := ts.Snapshot(); tiles != nil || scale != 0 || gen != 0 {
		t.Fatalf("fresh snapshot = %d tiles, scale %d, gen %d", len(tiles), scale, gen)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := 1; s <= 20; s++ {
			if err := ts.Regenerate(context.Background(), s%3+1); err != nil {
				t.Errorf("Regenerate: %v", err)
				return
			}
		}
	}()
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		tiles, scale, gen := ts.Snapshot()
		if gen == 0 {
			continue
		}
		if len(tiles) != Count {
			t.Fatalf("gen %d: %d tiles, want %d", gen, len(tiles), Count)
		}
		for id, tile := range tiles {
			if got := tile.Bounds().Dx(); got != 16*scale {
				t.Fatalf("gen %d: tile %d is %dpx wide at scale %d", gen, id, got, scale)
			}
		}
	}
}

func TestRegenerateCancelledKeepsSet(t *testing.T) {
	ts := New(Generate(1, 8), 8, 2)
	if err := ts.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ts.Regenerate(ctx, 3)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ts.Scale() != 1 || ts.Generation() != 1 {
		t.Fatalf("cancelled regenerate swapped: scale=%d gen=%d", ts.Scale(), ts.Generation())
	}
}

func TestRegenerateErrors(t *testing.T) {
	empty := New(nil, 16, 0)
	if err := empty.Regenerate(context.Background(), 1); !errors.Is(err, ErrNoTiles) {
		t.Fatalf("err = %v, want ErrNoTiles", err)
	}
	ts := New(Generate(1, 16), 16, 0)
	if err := ts.Regenerate(context.Background(), 0); err == nil {
		t.Fatalf("scale 0 accepted")
	}
}

func TestNilScale(t *testing.T) {
	var ts *Tileset
	if ts.Scale() != 0 {
		t.Fatalf("nil tileset scale %d", ts.Scale())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(42, 16)
	b := Generate(42, 16)
	if len(a) != Count {
		t.Fatalf("got %d tiles, want %d", len(a), Count)
	}
	for i := range a {
		pa := a[i].(*image.RGBA).Pix
		pb := b[i].(*image.RGBA).Pix
		if !bytes.Equal(pa, pb) {
			t.Fatalf("tile %d differs between runs", i)
		}
	}
	if bytes.Equal(a[Water].(*image.RGBA).Pix, a[Water+1].(*image.RGBA).Pix) {
		t.Fatalf("water frames identical")
	}
}
