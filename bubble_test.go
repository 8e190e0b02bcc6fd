package main

import "testing"

func TestAdjustBubbleRectClampLeft(t *testing.T) {
	sw, sh := 200, 200
	width, height := 100, 50
	tailHeight := 10
	x, y := 10, 100
	left, _, right, bottom, ax, ay := adjustBubbleRect(x, y, width, height, tailHeight, sw, sh)

	if left != 0 {
		t.Fatalf("expected left to be clamped to 0, got %d", left)
	}
	if right-left != width {
		t.Fatalf("expected width %d, got %d", width, right-left)
	}
	if ax != left+width/2 {
		t.Fatalf("tail x not shifted correctly: %d != %d", ax, left+width/2)
	}
	if ay != bottom+tailHeight {
		t.Fatalf("tail y not shifted correctly: %d != %d", ay, bottom+tailHeight)
	}
}

func TestAdjustBubbleRectClampTop(t *testing.T) {
	sw, sh := 200, 200
	width, height := 100, 50
	tailHeight := 10
	x, y := 100, 20
	left, top, _, bottom, ax, ay := adjustBubbleRect(x, y, width, height, tailHeight, sw, sh)

	if top != 0 {
		t.Fatalf("expected top to be clamped to 0, got %d", top)
	}
	if bottom-top != height {
		t.Fatalf("expected height %d, got %d", height, bottom-top)
	}
	if ax != left+width/2 {
		t.Fatalf("tail x not shifted correctly: %d != %d", ax, left+width/2)
	}
	if ay != bottom+tailHeight {
		t.Fatalf("tail y not shifted correctly: %d != %d", ay, bottom+tailHeight)
	}
}

func TestBubbleReplacedPerOwner(t *testing.T) {
	l := newBubbleList()
	l.add(1, "hello", bubbleSay, 0)
	l.add(2, "hey", bubbleSay, 0)
	l.add(1, "bye", bubbleYell, 100)
	if len(l.items) != 2 {
		t.Fatalf("got %d bubbles, want 2", len(l.items))
	}
	if l.items[0].text != "bye" || l.items[0].start != 100 {
		t.Fatalf("bubble not replaced: %+v", l.items[0])
	}
}

func TestBubbleExpiry(t *testing.T) {
	l := newBubbleList()
	l.add(1, "a", bubbleSay, 0)
	l.add(2, "b", bubbleSay, 2000)

	tests := []struct {
		now  float64
		want int
	}{
		{3999, 2},
		{4000, 1},
		{5999, 1},
		{6000, 0},
	}
	for _, tt := range tests {
		l.Update(tt.now)
		if len(l.items) != tt.want {
			t.Fatalf("at %v: got %d bubbles, want %d", tt.now, len(l.items), tt.want)
		}
	}
}
