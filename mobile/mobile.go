//go:build mobile

// Package mobile is the ebitenmobile binding for Descent.
//
// Build the Android library with:
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.vovakirdan.descent -o build/android/descent.aar ./mobile
//
// The native activity polls RequestedOrientation after the game view is
// attached, locks the screen and reports back through OrientationLocked.
// The simulation starts only after that answer, successful or not.
package mobile

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/platform/gfx"
	"github.com/vovakirdan/descent/internal/settings"
	"github.com/vovakirdan/descent/internal/shell"
	"github.com/vovakirdan/descent/internal/viewport"
)

var lock *shell.Deferred

func init() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "descent"})

	prefs, err := settings.Open(logger)
	if err != nil {
		logger.Warn("settings are not persistent", "err", err)
	}
	saved := prefs.Get()

	preset, err := config.ParsePreset(saved.Difficulty)
	if err != nil {
		preset = config.DifficultyNormal
	}

	cfg, err := config.LoadDescent("")
	if err != nil {
		logger.Warn("using default game config", "err", err)
		cfg = config.DefaultDescentConfig()
	}

	lock = shell.NewDeferred(func(o viewport.Orientation) {
		logger.Info("orientation lock requested", "orientation", o)
	})

	mobile.SetGame(gfx.New(gfx.Options{
		Config:      cfg,
		Preset:      preset,
		Orientation: saved.Orientation,
		Settings:    prefs,
		Shell:       lock,
		Logger:      logger,
	}))
}

// RequestedOrientation returns "portrait" or "landscape" once the game has
// asked for a lock, and an empty string before that.
func RequestedOrientation() string {
	o, ok := lock.Requested()
	if !ok {
		return ""
	}
	return o.String()
}

// OrientationLocked reports the native lock outcome. An empty message means
// the lock succeeded. It returns false when no request was waiting.
func OrientationLocked(errMsg string) bool {
	var err error
	if errMsg != "" {
		err = errors.New(errMsg)
	}
	return lock.Complete(err)
}
