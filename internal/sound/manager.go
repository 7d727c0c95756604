// Package sound synthesizes the duel's audio effects with beep.
// Every effect degrades to a no-op when the speaker is unavailable,
// so the game runs fine on machines without audio devices.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"tankduel/internal/core"
)

// Manager owns the speaker and mixes one-shot effects into it.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a sound manager. Call Initialize before playing.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferMs))
	if err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Enabled reports whether the speaker is live.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Cleanup silences all effects and releases the mixer.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	// beep provides no speaker Close; clearing the mixer is enough
	// to stop all audio output.
	m.mixer.Clear()
	m.initialized = false
}

// Play maps a simulation event to its sound effect.
func (m *Manager) Play(ev core.Event) {
	switch ev {
	case core.EventFire:
		m.PlayFire()
	case core.EventTankHit:
		m.PlayTankHit()
	case core.EventObstacleHit:
		m.PlayObstacleHit()
	case core.EventVictory:
		m.PlayVictory()
	}
}

// PlayFire plays the shot blip.
func (m *Manager) PlayFire() {
	m.playFor(time.Millisecond*fireDurationMs, NewFireGenerator(sampleRate))
}

// PlayTankHit plays the impact thud.
func (m *Manager) PlayTankHit() {
	m.playFor(time.Millisecond*thudDurationMs, NewThudGenerator(sampleRate))
}

// PlayObstacleHit plays the crumbling crack.
func (m *Manager) PlayObstacleHit() {
	m.playFor(time.Millisecond*crackDurationMs, NewCrackGenerator(sampleRate))
}

// PlayVictory plays the winner fanfare.
func (m *Manager) PlayVictory() {
	m.playFor(time.Millisecond*fanfareNoteMs*fanfareNoteCount, NewFanfareGenerator(sampleRate))
}

// playFor adds a truncated one-shot streamer to the mixer.
func (m *Manager) playFor(d time.Duration, streamer beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.mixer.Add(beep.Take(sampleRate.N(d), streamer))
}
