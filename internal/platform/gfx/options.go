package gfx

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/settings"
	"github.com/vovakirdan/descent/internal/shell"
	"github.com/vovakirdan/descent/internal/storage"
	"github.com/vovakirdan/descent/internal/viewport"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("gfx: built without the ebiten tag")

// Options configures the window and mobile frontends.
type Options struct {
	Config      config.DescentConfig
	Preset      config.DifficultyPreset
	Orientation viewport.Orientation
	Seed        int64 // 0 picks one from the clock
	TickRate    int   // 0 means 60

	Store    *storage.Store    // run history, optional
	Settings *settings.Manager // device settings, optional
	Shell    shell.Shell       // nil means the desktop shell
	Logger   *log.Logger       // nil discards
}

// withDefaults fills unset options. Keys and touches are polled every tick,
// so steering never needs to be held.
func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Preset == "" {
		o.Preset = config.DifficultyNormal
	}
	if err := o.Config.Validate(); err != nil {
		o.Logger.Debug("using default game config", "err", err)
		o.Config = config.DefaultDescentConfig()
	}
	o.Config.Controls.HoldTicks = 1
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Shell == nil {
		o.Shell = shell.Desktop{}
	}
	return o
}
