package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	minScale          = 1
	maxScale          = 4
	settingsSaveEvery = 5 * time.Second
)

type Settings struct {
	Scale        int    `json:"scale"`
	Vsync        bool   `json:"vsync"`
	Linear       bool   `json:"linear"`
	Theme        string `json:"theme"`
	ShowBubbles  bool   `json:"showBubbles"`
	ShowStats    bool   `json:"showStats"`
	Sound        bool   `json:"sound"`
	DiscordAppID string `json:"discordAppID"`
	NPCs         int    `json:"npcs"`
	TileWorkers  int    `json:"tileWorkers"`
	LastTrace    string `json:"lastTrace"`
}

var gsdef = Settings{
	Scale:       2,
	Vsync:       true,
	ShowBubbles: true,
	Sound:       true,
	NPCs:        4,
	TileWorkers: 4,
}

var (
	gs            = gsdef
	settingsMu    sync.Mutex
	settingsDirty bool
)

func settingsPath() string {
	return filepath.Join(baseDir, "settings.json")
}

// loadSettings reads settings.json over the defaults. It returns false when
// the file is missing or unreadable, leaving the defaults in place.
func loadSettings() bool {
	data, err := os.ReadFile(settingsPath())
	if err != nil {
		return false
	}
	s := gsdef
	if err := json.Unmarshal(data, &s); err != nil {
		logError("load settings: %v", err)
		return false
	}
	s.Scale = clampScale(s.Scale)
	if s.NPCs < 0 {
		s.NPCs = 0
	}
	settingsMu.Lock()
	gs = s
	settingsMu.Unlock()
	return true
}

func applySettings() {
	ebiten.SetVsyncEnabled(gs.Vsync)
	ebiten.SetWindowSize(mapWidth*16*gs.Scale, mapHeight*16*gs.Scale)
}

func saveSettings() {
	settingsMu.Lock()
	data, err := json.MarshalIndent(gs, "", "  ")
	settingsDirty = false
	settingsMu.Unlock()
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.WriteFile(settingsPath(), data, 0644); err != nil {
		logError("save settings: %v", err)
	}
}

// updateSettings applies fn to gs under the settings lock and marks them
// for the next periodic save.
func updateSettings(fn func(s *Settings)) {
	settingsMu.Lock()
	fn(&gs)
	settingsDirty = true
	settingsMu.Unlock()
}

func saveSettingsIfDirty() {
	settingsMu.Lock()
	dirty := settingsDirty
	settingsMu.Unlock()
	if dirty {
		saveSettings()
	}
}

func clampScale(s int) int {
	if s < minScale {
		return minScale
	}
	if s > maxScale {
		return maxScale
	}
	return s
}
