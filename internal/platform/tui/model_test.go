package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/core"
	"github.com/vovakirdan/descent/internal/viewport"
)

func testOptions(o viewport.Orientation) Options {
	return Options{
		Config:      config.DefaultDescentConfig(),
		Preset:      config.DifficultyNormal,
		Orientation: o,
	}
}

func testRuntime(cols, rows int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = cols
	cfg.ScreenH = rows
	cfg.Seed = 42
	return cfg
}

func TestFitCanvas(t *testing.T) {
	tests := []struct {
		name         string
		o            viewport.Orientation
		cols, rows   int
		wantO        viewport.Orientation
		wantW, wantH float64
	}{
		// 80x24 cells is 640x384 px, narrower than 16:9.
		{"auto wide terminal", viewport.Auto, 80, 24, viewport.Landscape, 1280, 720},
		{"forced portrait", viewport.Portrait, 80, 24, viewport.Portrait, 720, 1280},
		// 200x30 cells is 1600x480 px, wider than 16:9.
		{"ultrawide landscape", viewport.Landscape, 200, 30, viewport.Landscape, 2400, 720},
		// 40x60 cells is 320x960 px, taller than 9:16.
		{"auto tall terminal", viewport.Auto, 40, 60, viewport.Portrait, 720, 2160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, o, err := fitCanvas(testRuntime(80, 24), testOptions(tt.o), tt.cols, tt.rows)
			if err != nil {
				t.Fatalf("fitCanvas: %v", err)
			}
			if o != tt.wantO {
				t.Errorf("orientation = %v, want %v", o, tt.wantO)
			}
			if cfg.ScreenW != tt.cols || cfg.ScreenH != tt.rows {
				t.Errorf("screen = %dx%d, want %dx%d", cfg.ScreenW, cfg.ScreenH, tt.cols, tt.rows)
			}
			if cfg.ViewW != tt.wantW || cfg.ViewH != tt.wantH {
				t.Errorf("view = %vx%v, want %vx%v", cfg.ViewW, cfg.ViewH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitCanvasRejectsEmptyTerminal(t *testing.T) {
	base := testRuntime(80, 24)
	cfg, _, err := fitCanvas(base, testOptions(viewport.Auto), 0, 24)
	if !errors.Is(err, viewport.ErrInvalidWindow) {
		t.Fatalf("err = %v, want ErrInvalidWindow", err)
	}
	if cfg != base {
		t.Error("config must be unchanged on error")
	}
}

func TestModelFallsBackToDefaultConfig(t *testing.T) {
	m := NewModel(nil, testRuntime(80, 24), Options{})
	if m.opts.Preset != config.DifficultyNormal {
		t.Errorf("preset = %q, want normal", m.opts.Preset)
	}
	if m.config.ViewW != 1280 || m.config.ViewH != 720 {
		t.Errorf("view = %vx%v, want 1280x720", m.config.ViewW, m.config.ViewH)
	}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelTicksAfterLaunch(t *testing.T) {
	m := NewModel(nil, testRuntime(80, 24), testOptions(viewport.Auto))
	m.Init()

	if !m.launcher.Ready() {
		t.Fatal("desktop launcher should be ready after Init")
	}

	for range 5 {
		m = step(t, m, TickMsg(time.Now()))
	}
	if m.State().Ticks != 5 {
		t.Errorf("ticks = %d, want 5", m.State().Ticks)
	}
	if !strings.Contains(m.View(), "Score") {
		t.Error("view should show the HUD")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(nil, testRuntime(80, 24), testOptions(viewport.Auto))
	m.Init()

	m = step(t, m, tea.WindowSizeMsg{Width: 0, Height: 0})
	if m.config.ScreenW != 80 || m.config.ScreenH != 24 {
		t.Errorf("empty resize changed screen to %dx%d", m.config.ScreenW, m.config.ScreenH)
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 60})
	if m.orientation != viewport.Portrait {
		t.Errorf("orientation = %v, want portrait", m.orientation)
	}
	if m.config.ViewW != 720 {
		t.Errorf("view width = %v, want 720", m.config.ViewW)
	}
}

func TestModelPauseThenBack(t *testing.T) {
	m := NewModel(nil, testRuntime(80, 24), testOptions(viewport.Auto))
	m.Init()

	m = step(t, m, keyMsg("esc"))
	if m.BackToMenu() {
		t.Fatal("back must be ignored while running")
	}
	m = step(t, m, TickMsg(time.Now()))

	m = step(t, m, keyMsg("p"))
	m = step(t, m, TickMsg(time.Now()))
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}

	m = step(t, m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("back from pause should return to menu")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(nil, testRuntime(80, 24), testOptions(viewport.Auto))
	next, cmd := m.Update(keyMsg("q"))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
}

func session(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, testRuntime(80, 24), testOptions(viewport.Auto))
	if !strings.Contains(s.View(), "D E S C E N T") {
		t.Fatal("session should open on the menu")
	}

	// Cycle the orientation toggle to landscape, then start.
	s = session(t, s, keyMsg("right"))
	s = session(t, s, keyMsg("enter"))
	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}
	if s.opts.Orientation != viewport.Landscape {
		t.Errorf("orientation = %v, want landscape", s.opts.Orientation)
	}

	s = session(t, s, keyMsg("p"))
	s = session(t, s, TickMsg(time.Now()))
	s = session(t, s, keyMsg("esc"))
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after back", s.screen)
	}
	if s.menu.Orientation() != viewport.Landscape {
		t.Error("menu should keep the last orientation")
	}
}

func TestSessionScoreboard(t *testing.T) {
	s := NewSessionModel(nil, testRuntime(100, 30), testOptions(viewport.Auto))

	s = session(t, s, keyMsg("tab"))
	if s.screen != screenScores {
		t.Fatalf("screen = %v, want scores", s.screen)
	}
	if !strings.Contains(s.View(), "DEEPEST RUNS") {
		t.Error("scoreboard title missing")
	}

	s = session(t, s, keyMsg("esc"))
	if s.screen != screenMenu {
		t.Errorf("screen = %v, want menu", s.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	s := NewSessionModel(nil, testRuntime(80, 24), testOptions(viewport.Auto))
	s = session(t, s, keyMsg("q"))
	if !s.quitting || s.View() != "" {
		t.Error("q on the menu should end the session")
	}
}
