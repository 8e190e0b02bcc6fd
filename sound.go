package main

import (
	"encoding/binary"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	maxSounds  = 16
)

type waveType int

const (
	waveSine waveType = iota
	waveSaw
	waveNoise
)

type soundID int

const (
	soundFire soundID = iota
	soundHit
	soundMiss
)

type effect struct {
	freq, sweep float64
	wave        waveType
	dur         time.Duration
	attack      time.Duration
}

var effects = map[soundID]effect{
	soundFire: {freq: 660, sweep: 880, wave: waveSine, dur: 90 * time.Millisecond, attack: 5 * time.Millisecond},
	soundHit:  {freq: 140, sweep: 60, wave: waveSaw, dur: 160 * time.Millisecond, attack: 2 * time.Millisecond},
	soundMiss: {wave: waveNoise, dur: 120 * time.Millisecond, attack: 10 * time.Millisecond},
}

var (
	soundMu      sync.Mutex
	audioContext *audio.Context
	pcmCache     = make(map[soundID][]byte)
	soundPlayers = make(map[*audio.Player]struct{})
)

func initSoundContext() {
	audioContext = audio.NewContext(sampleRate)
}

// synth renders e as 16-bit little endian stereo PCM. The frequency slides
// linearly from freq to sweep, and a linear attack and release keep the
// ends from clicking.
func synth(e effect, rng *rand.Rand) []byte {
	n := int(e.dur.Seconds() * sampleRate)
	att := int(e.attack.Seconds() * sampleRate)
	rel := n / 3
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		var v float64
		switch e.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * phase)
		case waveSaw:
			v = 2 * (phase - 0.5)
		case waveNoise:
			v = rng.Float64()*2 - 1
		}
		freq := e.freq + (e.sweep-e.freq)*float64(i)/float64(n)
		phase += freq / sampleRate
		phase -= math.Floor(phase)

		vol := 1.0
		if att > 0 && i < att {
			vol = float64(i) / float64(att)
		}
		if left := n - i - 1; left < rel {
			vol = math.Min(vol, float64(left)/float64(rel))
		}
		s := int16(v * vol * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

func loadSound(id soundID) []byte {
	soundMu.Lock()
	defer soundMu.Unlock()
	if pcm, ok := pcmCache[id]; ok {
		return pcm
	}
	e, ok := effects[id]
	if !ok {
		return nil
	}
	pcm := synth(e, rand.New(rand.NewSource(int64(id))))
	pcmCache[id] = pcm
	return pcm
}

func playSound(id soundID) {
	if !gs.Sound || audioContext == nil {
		return
	}
	pcm := loadSound(id)
	if pcm == nil {
		return
	}
	p := audioContext.NewPlayerFromBytes(pcm)
	p.SetVolume(0.2)

	soundMu.Lock()
	for sp := range soundPlayers {
		if !sp.IsPlaying() {
			sp.Close()
			delete(soundPlayers, sp)
		}
	}
	if len(soundPlayers) >= maxSounds {
		soundMu.Unlock()
		p.Close()
		return
	}
	soundPlayers[p] = struct{}{}
	soundMu.Unlock()

	p.Play()
}
