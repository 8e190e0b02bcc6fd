package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tilewalk/entity"
)

func TestTraceCapturesOnlyWhileRecording(t *testing.T) {
	c := entity.NewCharacter(1, "Ada")
	c.SetGridPosition(2, 3)
	c.FadeIn(0)
	c.FadingAlpha = 0.5
	list := []entity.Entity{c, entity.NewItem(2, "gem")}

	var r traceRecorder
	r.capture(0, 0, list)
	r.moved(c)
	if len(r.data.Frames) != 0 || r.data.Moves != 0 {
		t.Fatalf("captured while idle: %+v", r.data)
	}

	r.start(time.Unix(0, 0))
	r.capture(16, 0.016, list)
	r.moved(c)
	r.capture(32, 0.016, list)
	data := r.stop()

	if len(data.Frames) != 2 || data.Moves != 1 {
		t.Fatalf("got %d frames, %d moves", len(data.Frames), data.Moves)
	}
	got := data.Frames[0].Entities[0]
	want := traceEntity{ID: 1, Kind: "character", X: 32, Y: 48, Alpha: 0.5}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if data.Frames[0].Entities[1].Alpha != 1 {
		t.Fatalf("item alpha %v", data.Frames[0].Entities[1].Alpha)
	}
	if r.recording || len(r.data.Frames) != 0 {
		t.Fatalf("stop did not reset the recorder")
	}
}

func TestWriteTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	in := traceFile{Moves: 3, Frames: []traceFrame{{Time: 10, Delta: 0.01}}}
	if err := writeTrace(path, in); err != nil {
		t.Fatalf("writeTrace: %v", err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out traceFile
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Moves != 3 || len(out.Frames) != 1 || out.Frames[0].Time != 10 {
		t.Fatalf("got %+v", out)
	}
}

func TestWriteTraceMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "trace.json")
	if err := writeTrace(path, traceFile{}); err == nil {
		t.Fatalf("expected an error")
	}
}
