package entity

import "tilewalk/tween"

// Axis selects the pixel coordinate a grid step animates.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// stepBase is the numerator of the initial step offset: a character moving
// at speed s jumps round(stepBase/s) pixels as soon as the step starts.
const stepBase = 266

// Movement is one grid step: the axis and sign it moves along, the initial
// offset, the coordinate it started from and the tween that carries it to
// Origin ± TileSize.
type Movement struct {
	Axis   Axis
	Sign   float64
	Offset float64
	Origin float64
	tween.Tween
}

// StepTick is the initial offset in pixels for a character whose step takes
// speed milliseconds.
func StepTick(speed float64) float64 {
	return tween.Round(stepBase / speed)
}

// AxisFor maps an orientation to the moving axis and direction. ok is false
// for None and unknown values.
func AxisFor(o Orientation) (a Axis, sign float64, ok bool) {
	switch o {
	case Left:
		return AxisX, -1, true
	case Right:
		return AxisX, 1, true
	case Up:
		return AxisY, -1, true
	case Down:
		return AxisY, 1, true
	}
	return AxisX, 0, false
}

// Begin replaces the current step, in progress or not. coord reads the
// starting coordinate for the chosen axis.
func (m *Movement) Begin(now float64, o Orientation, coord func(Axis) float64, speed float64) bool {
	axis, sign, ok := AxisFor(o)
	if !ok || speed <= 0 {
		return false
	}
	origin := coord(axis)
	m.Axis = axis
	m.Sign = sign
	m.Offset = StepTick(speed)
	m.Origin = origin
	m.Tween.Begin(now, origin+sign*m.Offset, origin+sign*TileSize, speed)
	return true
}
