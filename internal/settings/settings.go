// Package settings persists per-device preferences for the window and mobile
// builds. Data lives in the platform's app storage through gdata, encoded as
// YAML. A Manager without storage keeps settings in memory only.
package settings

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/descent/internal/viewport"
)

// AppName is the gdata application key.
const AppName = "descent"

const (
	settingsObject   = "settings"
	settingsProperty = "device"
)

// Settings are the persisted device preferences.
type Settings struct {
	Orientation viewport.Orientation `yaml:"orientation"`
	Difficulty  string               `yaml:"difficulty"`
	BestScore   int                  `yaml:"best_score"`
	Fullscreen  bool                 `yaml:"fullscreen"`
}

// Defaults returns settings for a fresh install.
func Defaults() Settings {
	return Settings{
		Orientation: viewport.Auto,
		Difficulty:  "normal",
	}
}

// Manager loads and saves Settings.
type Manager struct {
	store    *gdata.Manager // nil keeps settings in memory
	settings Settings
	logger   *log.Logger
}

// Open opens the app storage and loads saved settings.
// When storage cannot be opened the error is returned together with an
// in-memory manager, so callers can log and carry on.
func Open(logger *log.Logger) (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewManager(nil, logger), fmt.Errorf("settings: open storage: %w", err)
	}
	return NewManager(store, logger), nil
}

// NewManager wraps an opened gdata manager, which may be nil.
// Load failures fall back to defaults and are logged.
func NewManager(store *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{store: store, settings: Defaults(), logger: logger}
	if err := m.Load(); err != nil {
		logger.Warn("using default settings", "err", err)
	}
	return m
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Load reads saved settings. Missing data is not an error.
func (m *Manager) Load() error {
	m.settings = Defaults()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	m.settings = loaded
	m.logger.Debug("settings loaded", "orientation", loaded.Orientation, "difficulty", loaded.Difficulty)
	return nil
}

// Save writes the current settings. Without storage it does nothing.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// SetOrientation changes the preferred orientation. Call Save to persist.
func (m *Manager) SetOrientation(o viewport.Orientation) {
	m.settings.Orientation = o
}

// SetDifficulty changes the preferred preset. Call Save to persist.
func (m *Manager) SetDifficulty(preset string) {
	m.settings.Difficulty = preset
}

// SetFullscreen changes the window mode. Call Save to persist.
func (m *Manager) SetFullscreen(on bool) {
	m.settings.Fullscreen = on
}

// RecordScore raises the best score and reports whether it changed.
// Call Save to persist.
func (m *Manager) RecordScore(score int) bool {
	if score <= m.settings.BestScore {
		return false
	}
	m.settings.BestScore = score
	return true
}
