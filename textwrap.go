package main

import (
	"strings"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// wrapText splits s into lines no wider than maxWidth when drawn with face.
// Words longer than maxWidth are broken between runes. The returned width is
// that of the widest line.
func wrapText(s string, face text.Face, maxWidth float64) (int, []string) {
	measure := func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := ""
		for _, word := range words {
			if cur != "" {
				if cand := cur + " " + word; measure(cand) <= maxWidth {
					cur = cand
					continue
				}
				lines = append(lines, cur)
				cur = ""
			}
			if measure(word) <= maxWidth {
				cur = word
				continue
			}
			var runes []rune
			for _, r := range word {
				runes = append(runes, r)
				if len(runes) > 1 && measure(string(runes)) > maxWidth {
					lines = append(lines, string(runes[:len(runes)-1]))
					runes = runes[len(runes)-1:]
				}
			}
			cur = string(runes)
		}
		lines = append(lines, cur)
	}

	widest := 0.0
	for _, l := range lines {
		if w := measure(l); w > widest {
			widest = w
		}
	}
	return int(widest + 0.5), lines
}
