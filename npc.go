package main

import (
	"fmt"

	"tilewalk/entity"
)

var npcNames = []string{"Bramble", "Corvin", "Dusk", "Fenna", "Hollis", "Juniper", "Moss", "Tamsin"}

var npcLines = []string{
	"Lovely day for a walk.",
	"Have you seen the lava pools?",
	"Mind the water, it never sits still.",
	"Hmm...",
	"Stay out of my way!",
}

const (
	npcThinkMin  = 800
	npcThinkSpan = 2500
	npcWanderMax = 4
	npcFireRange = 5
)

// npc drives a non-player character with a tiny wander-and-chat brain.
type npc struct {
	c         *entity.Character
	nextThink float64
}

func spawnNPCs(w *world, n int) []*npc {
	var out []*npc
	for i := 0; i < n; i++ {
		name := npcNames[i%len(npcNames)]
		if i >= len(npcNames) {
			name = fmt.Sprintf("%s %d", name, i/len(npcNames)+1)
		}
		c, err := w.spawnCharacter(name)
		if err != nil {
			logError("%v", err)
			break
		}
		c.MovementSpeed = 300 + float64(w.rng.Intn(200))
		out = append(out, &npc{c: c})
	}
	return out
}

// think runs at most once per npc between nextThink deadlines and only
// while the character is standing still.
func (n *npc) think(w *world, now float64) {
	if now < n.nextThink || n.c.Moving() || n.c.HasPath() {
		return
	}
	n.nextThink = now + npcThinkMin + float64(w.rng.Intn(npcThinkSpan))

	switch r := w.rng.Intn(10); {
	case r < 6:
		goal := entity.Cell{
			X: n.c.GridX + w.rng.Intn(2*npcWanderMax+1) - npcWanderMax,
			Y: n.c.GridY + w.rng.Intn(2*npcWanderMax+1) - npcWanderMax,
		}
		if path := w.route(n.c, goal); path != nil {
			n.c.Go(path...)
		}
	case r < 8:
		if gs.ShowBubbles {
			kind := bubbleSay
			line := npcLines[w.rng.Intn(len(npcLines))]
			switch line[len(line)-1] {
			case '!':
				kind = bubbleYell
			case '.':
				if line == "Hmm..." {
					kind = bubbleThought
				}
			}
			w.bubbles.add(n.c.ID, line, kind, now)
		}
	default:
		p := w.Player()
		if p == nil {
			return
		}
		dx, dy := p.GridX-n.c.GridX, p.GridY-n.c.GridY
		if dx*dx+dy*dy <= npcFireRange*npcFireRange {
			w.fire(n.c, p.Cell())
		}
	}
}
