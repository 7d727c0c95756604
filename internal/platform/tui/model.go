package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tankduel/internal/core"
	"tankduel/internal/match"
	"tankduel/internal/registry"
	"tankduel/internal/sound"
	"tankduel/internal/storage"
)

// Model is the Bubble Tea model for running a duel on one keyboard.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	sound       *sound.Manager
	keymap      *KeyMapper
	recorder    *match.Recorder
	config      core.RuntimeConfig
	arenaPreset string
	inputFrame  core.MultiInputFrame
	gameState   core.GameState
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, snd *sound.Manager, cfg core.RuntimeConfig, arenaPreset string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// A typed nil store must not end up inside the Saver interface,
	// or the recorder would try to use it.
	var saver match.Saver
	if store != nil {
		saver = store
	}

	return Model{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:       store,
		sound:       snd,
		keymap:      NewKeyMapper(),
		recorder:    match.NewRecorder(saver),
		config:      cfg,
		arenaPreset: arenaPreset,
		inputFrame:  core.NewMultiInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input for both players.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// The winner banner waits for a key: r starts a rematch, anything
	// else leaves the game.
	if m.gameState.GameOver {
		if msg.String() == "r" {
			m.inputFrame.Press(core.Player1, core.ActionRestart)
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.keymap.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The arena is sized to the terminal, so a resize restarts the
	// duel on a fresh battlefield.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.recorder.Reset()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A rematch went through: arm the recorder for the new duel
	if wasOver && !m.gameState.GameOver {
		m.recorder.Reset()
	}

	if m.sound != nil {
		for _, ev := range result.Events {
			m.sound.Play(ev)
		}
	}

	if m.gameState.GameOver {
		m.recordMatch()

		// An aborted match shows no banner; leave right away
		if m.gameState.Winner == core.PlayerNone {
			m.quitting = true
			return m, tea.Quit
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordMatch persists the finished duel once. Matches that never left
// the briefing screen are not worth recording.
func (m *Model) recordMatch() {
	rep, ok := m.game.(match.Reporter)
	if !ok || rep.Ticks() == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.recorder.Record(match.FromReporter(m.game.ID(), m.arenaPreset, rep))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".tankduel", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, snd *sound.Manager, cfg core.RuntimeConfig, arenaPreset string) error {
	model := NewModel(game, store, snd, cfg, arenaPreset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse (for future use)
	)

	_, err := p.Run()
	return err
}

// IsInterrupt reports whether a Run error came from an external interrupt
// signal (SIGINT delivered to the process) rather than a player quitting.
// Callers use it to print a shutdown notice instead of an error.
func IsInterrupt(err error) bool {
	return errors.Is(err, tea.ErrInterrupted)
}
