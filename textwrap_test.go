package main

import (
	"strings"
	"testing"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestWrapText(t *testing.T) {
	initFont()
	w1, _ := text.Measure("hello", bubbleFace, 0)
	w2, _ := text.Measure("hello world", bubbleFace, 0)
	maxWidth := (w1 + w2) / 2
	width, lines := wrapText("hello world", bubbleFace, maxWidth)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "hello" || lines[1] != "world" {
		t.Fatalf("got lines %#v", lines)
	}
	if float64(width) > maxWidth+1 {
		t.Fatalf("width %d exceeds max %v", width, maxWidth)
	}
}

func TestWrapTextLongWord(t *testing.T) {
	initFont()
	maxWidth, _ := text.Measure("abcd", bubbleFace, 0)
	_, lines := wrapText("abcdefghij", bubbleFace, maxWidth)
	if len(lines) < 3 {
		t.Fatalf("expected the word to be broken, got %#v", lines)
	}
	if strings.Join(lines, "") != "abcdefghij" {
		t.Fatalf("runes lost: %#v", lines)
	}
	for _, l := range lines {
		if w, _ := text.Measure(l, bubbleFace, 0); w > maxWidth {
			t.Fatalf("line %q too wide: %v > %v", l, w, maxWidth)
		}
	}
}

func TestWrapTextKeepsParagraphs(t *testing.T) {
	initFont()
	_, lines := wrapText("one\n\ntwo", bubbleFace, 1000)
	want := []string{"one", "", "two"}
	if len(lines) != len(want) {
		t.Fatalf("got %#v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}
