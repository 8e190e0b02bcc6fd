package main

import (
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	hudFace    text.Face
	bubbleFace text.Face
)

func initFont() {
	face := text.NewGoXFace(basicfont.Face7x13)
	hudFace = face
	bubbleFace = face
}

// lineHeight is the distance between baselines for face.
func lineHeight(face text.Face) int {
	m := face.Metrics()
	return int(m.HAscent + m.HDescent + m.HLineGap + 0.5)
}
