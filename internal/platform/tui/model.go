package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/core"
	"github.com/vovakirdan/descent/internal/descent"
	"github.com/vovakirdan/descent/internal/shell"
	"github.com/vovakirdan/descent/internal/storage"
	"github.com/vovakirdan/descent/internal/viewport"
)

// Options configures a game session.
type Options struct {
	Config      config.DescentConfig    // base config, before the preset is applied
	Preset      config.DifficultyPreset // difficulty the run is played and ranked on
	Orientation viewport.Orientation    // requested orientation, Auto picks by window shape
	Logger      *log.Logger             // nil discards
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        core.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	opts        Options
	launcher    *shell.Launcher
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	orientation viewport.Orientation // resolved for the current terminal
	quitting    bool
	backToMenu  bool
	scoreSaved  bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model running Descent with opts.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Preset == "" {
		opts.Preset = config.DifficultyNormal
	}
	if err := opts.Config.Validate(); err != nil {
		opts.logger().Debug("using default game config", "err", err)
		opts.Config = config.DefaultDescentConfig()
	}

	m := Model{
		game:        descent.NewWithPreset(opts.Config, opts.Preset),
		store:       store,
		config:      cfg,
		opts:        opts,
		launcher:    shell.NewLauncher(shell.Desktop{}, opts.logger()),
		keyMapper:   NewKeyMapper(),
		inputFrame:  core.NewInputFrame(),
		// Auto counts as landscape until the first successful fit.
		orientation: opts.Orientation.Resolve(1, 1),
	}

	if fitted, o, err := fitCanvas(cfg, opts, cfg.ScreenW, cfg.ScreenH); err == nil {
		m.config = fitted
		m.orientation = o
	}
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Terminals cannot rotate; the desktop shell answers at once.
	m.launcher.Start(m.orientation, nil)

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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu from the game over or pause screen
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize refits the canvas without restarting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	fitted, o, err := fitCanvas(m.config, m.opts, msg.Width, msg.Height)
	if err != nil {
		if errors.Is(err, viewport.ErrInvalidWindow) {
			m.opts.logger().Debug("resize skipped", "width", msg.Width, "height", msg.Height)
			return m, nil
		}
		m.opts.logger().Warn("resize failed", "err", err)
		return m, nil
	}

	m.config = fitted
	m.orientation = o
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.config)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.launcher.Ready() {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Difficulty:  string(m.opts.Preset),
		Orientation: m.orientation.String(),
		Seed:        m.config.Seed,
		Score:       m.gameState.Score,
		Ticks:       m.gameState.Ticks,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.opts.logger().Warn("could not save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".descent", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and plays until the user quits or
// goes back to the menu. It reports whether the menu was requested.
func Run(store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
