package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sqweek/dialog"

	"tilewalk/entity"
)

type traceEntity struct {
	ID    int     `json:"id"`
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Alpha float64 `json:"alpha"`
}

type traceFrame struct {
	Time     float64       `json:"time"`
	Delta    float64       `json:"delta"`
	Entities []traceEntity `json:"entities"`
}

type traceFile struct {
	Started time.Time    `json:"started"`
	Moves   int          `json:"moves"`
	Frames  []traceFrame `json:"frames"`
}

// traceRecorder keeps a per-frame copy of entity positions while recording.
type traceRecorder struct {
	recording bool
	data      traceFile
}

func (r *traceRecorder) start(now time.Time) {
	r.recording = true
	r.data = traceFile{Started: now}
}

// stop ends the recording and returns what was captured.
func (r *traceRecorder) stop() traceFile {
	r.recording = false
	data := r.data
	r.data = traceFile{}
	return data
}

func (r *traceRecorder) moved(*entity.Character) {
	if r.recording {
		r.data.Moves++
	}
}

func (r *traceRecorder) capture(worldTime, delta float64, list []entity.Entity) {
	if !r.recording {
		return
	}
	f := traceFrame{Time: worldTime, Delta: delta, Entities: make([]traceEntity, 0, len(list))}
	for _, e := range list {
		b := e.Common()
		f.Entities = append(f.Entities, traceEntity{
			ID:    b.ID,
			Kind:  e.Kind().String(),
			X:     b.X,
			Y:     b.Y,
			Alpha: b.Alpha(),
		})
	}
	r.data.Frames = append(r.data.Frames, f)
}

func writeTrace(path string, data traceFile) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	return nil
}

// saveTrace asks where to put data and writes it there. It blocks on the
// dialog, so it is run off the game loop.
func saveTrace(data traceFile) {
	dir := filepath.Join(baseDir, "traces")
	if err := os.MkdirAll(dir, 0755); err != nil {
		logError("create trace directory: %v", err)
	}
	settingsMu.Lock()
	last := gs.LastTrace
	settingsMu.Unlock()
	if last != "" {
		dir = filepath.Dir(last)
	}
	name := data.Started.Format("2006-01-02-15-04-05") + ".json"
	filename, err := dialog.File().Filter("Trace files", "json").SetStartDir(dir).SetStartFile(name).Title("Save Trace").Save()
	if err != nil {
		if err != dialog.ErrCancelled {
			logError("save trace: %v", err)
		}
		return
	}
	if filepath.Ext(filename) == "" {
		filename += ".json"
	}
	if err := writeTrace(filename, data); err != nil {
		logError("%v", err)
		return
	}
	updateSettings(func(s *Settings) { s.LastTrace = filename })
	addMessage(fmt.Sprintf("Saved %d frames to %s", len(data.Frames), filepath.Base(filename)))
}
