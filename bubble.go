package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bubbleLifetime is how long a bubble stays up, in world milliseconds.
const bubbleLifetime = 4000

type bubbleKind int

const (
	bubbleSay bubbleKind = iota
	bubbleYell
	bubbleThought
)

type bubble struct {
	owner int
	text  string
	kind  bubbleKind
	start float64
}

// bubbleList holds the speech bubbles on screen, at most one per character.
type bubbleList struct {
	items []bubble
}

func newBubbleList() *bubbleList {
	return &bubbleList{}
}

// add shows txt above owner, replacing any bubble it already has.
func (l *bubbleList) add(owner int, txt string, kind bubbleKind, now float64) {
	b := bubble{owner: owner, text: txt, kind: kind, start: now}
	for i := range l.items {
		if l.items[i].owner == owner {
			l.items[i] = b
			return
		}
	}
	l.items = append(l.items, b)
}

// Update drops bubbles older than bubbleLifetime.
func (l *bubbleList) Update(now float64) {
	keep := l.items[:0]
	for _, b := range l.items {
		if now-b.start < bubbleLifetime {
			keep = append(keep, b)
		}
	}
	l.items = keep
}

var whiteImage = ebiten.NewImage(1, 1)

func init() {
	whiteImage.Fill(color.White)
}

// adjustBubbleRect calculates the on-screen rectangle for a bubble and shifts
// the tail tip (x, y) if clamping is required.
func adjustBubbleRect(x, y, width, height, tailHeight, sw, sh int) (left, top, right, bottom, ax, ay int) {
	bottom = y - tailHeight
	left = x - width/2
	top = bottom - height

	origLeft, origTop := left, top

	if left < 0 {
		left = 0
	}
	if left+width > sw {
		left = sw - width
	}
	if top < 0 {
		top = 0
	}
	if top+height > sh {
		top = sh - height
	}

	ax = x + left - origLeft
	ay = y + top - origTop

	right = left + width
	bottom = top + height
	return
}

func bubbleColors(kind bubbleKind, opacity float64) (border, bg, fg color.Color) {
	alpha := uint8(opacity * 255)
	switch kind {
	case bubbleYell:
		border = color.NRGBA{0xff, 0xff, 0x00, 0xff}
		bg = color.NRGBA{0xff, 0xff, 0xff, alpha}
		fg = color.Black
	case bubbleThought:
		border = color.NRGBA{0x00, 0x00, 0x00, 0x00}
		bg = color.NRGBA{0x80, 0x80, 0x80, alpha}
		fg = color.Black
	default:
		border = color.White
		bg = color.NRGBA{0xff, 0xff, 0xff, alpha}
		fg = color.Black
	}
	return
}

func roundedRect(p *vector.Path, left, top, right, bottom, radius float32) {
	p.MoveTo(left+radius, top)
	p.LineTo(right-radius, top)
	p.Arc(right-radius, top+radius, radius, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(right, bottom-radius)
	p.Arc(right-radius, bottom-radius, radius, 0, math.Pi/2, vector.Clockwise)
	p.LineTo(left+radius, bottom)
	p.Arc(left+radius, bottom-radius, radius, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(left, top+radius)
	p.Arc(left+radius, top+radius, radius, math.Pi, 3*math.Pi/2, vector.Clockwise)
	p.Close()
}

func fillVertices(vs []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}

// drawBubble renders txt in a balloon whose tail tip sits at (x, y). The
// balloon is kept inside the screen; the tail follows if it has to move.
func drawBubble(screen *ebiten.Image, txt string, x, y int, kind bubbleKind, scale int) {
	if txt == "" {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	pad := 4 * scale
	tailHeight := 6 * scale
	tailHalf := 4 * scale

	width, lines := wrapText(txt, bubbleFace, float64(sw/3-2*pad))
	lh := lineHeight(bubbleFace)
	width += 2 * pad
	height := lh*len(lines) + 2*pad

	left, top, right, bottom, x, y := adjustBubbleRect(x, y, width, height, tailHeight, sw, sh)
	borderCol, bgCol, textCol := bubbleColors(kind, 0.85)
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}

	var body vector.Path
	roundedRect(&body, float32(left), float32(top), float32(right), float32(bottom), float32(3*scale))
	if kind != bubbleThought {
		body.MoveTo(float32(x-tailHalf), float32(bottom))
		body.LineTo(float32(x), float32(y))
		body.LineTo(float32(x+tailHalf), float32(bottom))
		body.Close()
	}
	vs, is := body.AppendVerticesAndIndicesForFilling(nil, nil)
	fillVertices(vs, bgCol)
	screen.DrawTriangles(vs, is, whiteImage, op)

	var outline vector.Path
	roundedRect(&outline, float32(left), float32(top), float32(right), float32(bottom), float32(3*scale))
	vs, is = outline.AppendVerticesAndIndicesForStroke(vs[:0], is[:0], &vector.StrokeOptions{Width: float32(scale)})
	fillVertices(vs, borderCol)
	screen.DrawTriangles(vs, is, whiteImage, op)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(left+pad), float64(top+pad+i*lh))
		op.ColorScale.ScaleWithColor(textCol)
		text.Draw(screen, line, bubbleFace, op)
	}
}
