// Package audio plays the synthesized music and sound effects. Everything is
// generated at runtime; there are no asset files.
//
// Audio is best effort: when no output device is available the Player logs
// the problem once and every method becomes a no-op.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/galactix/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player reacts to session events with music and effects.
type Player struct {
	mu          sync.Mutex
	log         *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	running     bool // A run is in progress
}

// New creates a player. Call Init before use.
func New(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		log:   logger,
		mixer: &beep.Mixer{},
	}
}

// Init opens the audio device. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.log.Warn("audio unavailable", "error", err)
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether audio output is active.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.music = nil
	p.initialized = false
}

// Cue reacts to one session event. muted is the session's current mute flag.
func (p *Player) Cue(ev game.Event, muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev {
	case game.EventStarted:
		p.running = true
		if muted {
			p.pauseMusic()
		} else {
			p.restartMusic()
		}
	case game.EventCrashed:
		p.running = false
		p.pauseMusic()
		p.play(NewCrash(sampleRate))
	case game.EventVictory:
		p.running = false
		p.pauseMusic()
		p.play(NewFanfare(sampleRate))
	case game.EventLevelUp:
		p.play(NewChime(sampleRate))
	case game.EventMuted:
		p.pauseMusic()
	case game.EventUnmuted:
		if p.running {
			p.resumeMusic()
		}
	}
}

func (p *Player) play(s beep.Streamer) {
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// restartMusic starts the track from the beginning.
func (p *Player) restartMusic() {
	if !p.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if p.music != nil {
		// A paused Ctrl keeps its place in the mixer; drop it for good.
		p.music.Streamer = nil
	}
	p.music = &beep.Ctrl{Streamer: NewMusic(sampleRate)}
	p.mixer.Add(p.music)
}

func (p *Player) resumeMusic() {
	if !p.initialized {
		return
	}
	if p.music == nil {
		p.restartMusic()
		return
	}
	speaker.Lock()
	p.music.Paused = false
	speaker.Unlock()
}

func (p *Player) pauseMusic() {
	if !p.initialized || p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}
