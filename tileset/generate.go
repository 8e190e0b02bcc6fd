package tileset

import (
	"image"
	"image/color"
	"math/rand"
)

// Tile ids produced by Generate. Animated tiles occupy consecutive ids, one
// per frame.
const (
	Grass = iota
	Dirt
	Stone
	Wall
	Water
	Lava = Water + WaterFrames

	WaterFrames = 4
	LavaFrames  = 3
	Count       = Lava + LavaFrames
)

var palette = struct {
	Grass, GrassDark color.RGBA
	Dirt, DirtDark   color.RGBA
	Stone, Mortar    color.RGBA
	Wall, WallEdge   color.RGBA
	Water, Foam      color.RGBA
	Lava, Ember      color.RGBA
}{
	Grass:     color.RGBA{70, 140, 60, 255},
	GrassDark: color.RGBA{50, 110, 45, 255},
	Dirt:      color.RGBA{130, 95, 60, 255},
	DirtDark:  color.RGBA{105, 75, 45, 255},
	Stone:     color.RGBA{125, 125, 130, 255},
	Mortar:    color.RGBA{90, 90, 95, 255},
	Wall:      color.RGBA{60, 60, 70, 255},
	WallEdge:  color.RGBA{150, 150, 160, 255},
	Water:     color.RGBA{40, 90, 180, 255},
	Foam:      color.RGBA{150, 200, 240, 255},
	Lava:      color.RGBA{200, 60, 20, 255},
	Ember:     color.RGBA{255, 190, 40, 255},
}

// Generate draws a placeholder tile sheet of Count tiles, size pixels
// square. The same seed always yields the same pixels.
func Generate(seed int64, size int) []image.Image {
	rng := rand.New(rand.NewSource(seed))
	tiles := make([]image.Image, Count)
	tiles[Grass] = speckled(rng, size, palette.Grass, palette.GrassDark, 6)
	tiles[Dirt] = speckled(rng, size, palette.Dirt, palette.DirtDark, 4)
	tiles[Stone] = bricks(size, palette.Stone, palette.Mortar)
	tiles[Wall] = framed(size, palette.Wall, palette.WallEdge)
	for f := 0; f < WaterFrames; f++ {
		tiles[Water+f] = waves(size, f, WaterFrames, palette.Water, palette.Foam)
	}
	for f := 0; f < LavaFrames; f++ {
		tiles[Lava+f] = waves(size, f, LavaFrames, palette.Lava, palette.Ember)
	}
	return tiles
}

func fill(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func speckled(rng *rand.Rand, size int, base, dot color.RGBA, oneIn int) *image.RGBA {
	img := fill(size, base)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if rng.Intn(oneIn) == 0 {
				img.SetRGBA(x, y, dot)
			}
		}
	}
	return img
}

func bricks(size int, base, mortar color.RGBA) *image.RGBA {
	img := fill(size, base)
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			offset := 0
			if (y/half)%2 == 1 {
				offset = half / 2
			}
			if y%half == 0 || (x+offset)%half == 0 {
				img.SetRGBA(x, y, mortar)
			}
		}
	}
	return img
}

func framed(size int, base, edge color.RGBA) *image.RGBA {
	img := fill(size, base)
	for i := 0; i < size; i++ {
		img.SetRGBA(i, 0, edge)
		img.SetRGBA(0, i, edge)
	}
	return img
}

// waves draws diagonal stripes shifted by frame so consecutive frames
// appear to flow.
func waves(size, frame, frames int, base, crest color.RGBA) *image.RGBA {
	img := fill(size, base)
	period := size / 2
	if period < 2 {
		period = 2
	}
	shift := frame * period / frames
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y+shift)%period == 0 {
				img.SetRGBA(x, y, crest)
			}
		}
	}
	return img
}
