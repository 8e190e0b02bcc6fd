package main

// infoDuration is how long a floating info text lives, in world
// milliseconds.
const (
	infoDuration = 1000
	infoRise     = 12
)

type info struct {
	x, y  float64
	text  string
	start float64

	// offset is how far the text has risen; alpha its opacity.
	offset float64
	alpha  float64
}

// infoList holds short texts that float up from a world position and fade
// out, such as hit markers.
type infoList struct {
	items []info
}

func newInfoList() *infoList {
	return &infoList{}
}

func (l *infoList) add(x, y float64, txt string, now float64) {
	l.items = append(l.items, info{x: x, y: y, text: txt, start: now, alpha: 1})
}

func (l *infoList) Update(now float64) {
	keep := l.items[:0]
	for _, in := range l.items {
		dt := now - in.start
		if dt >= infoDuration {
			continue
		}
		if dt < 0 {
			dt = 0
		}
		p := dt / infoDuration
		in.offset = p * infoRise
		in.alpha = 1 - p
		keep = append(keep, in)
	}
	l.items = keep
}
