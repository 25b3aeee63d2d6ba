// Package viewport maps window dimensions to the logical canvas the game is
// simulated and drawn in. Each orientation has a fixed design resolution and
// the canvas grows along one axis only, so the design aspect ratio is never
// squeezed.
package viewport

import (
	"errors"
	"fmt"
	"strings"
)

// GameArea is a design-resolution preset together with its aspect ratio.
type GameArea struct {
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Factor float64 `yaml:"-"`
}

// NewGameArea builds a preset whose factor is derived from its dimensions.
func NewGameArea(w, h float64) GameArea {
	return GameArea{W: w, H: h, Factor: w / h}
}

// Design resolutions for each orientation.
var (
	PortraitArea  = GameArea{W: 720, H: 1280, Factor: 9.0 / 16.0}
	LandscapeArea = GameArea{W: 1280, H: 720, Factor: 16.0 / 9.0}
)

// Orientation selects the preset and sizing formula.
type Orientation int

const (
	Landscape Orientation = iota
	Portrait
	// Auto is resolved to Landscape or Portrait from the window shape.
	Auto
)

// ErrUnknownOrientation is returned by ParseOrientation.
var ErrUnknownOrientation = errors.New("viewport: unknown orientation")

// String returns the flag/config spelling of the orientation.
func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseOrientation parses "landscape", "portrait" or "auto".
// The empty string means auto.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "landscape", "l":
		return Landscape, nil
	case "portrait", "p":
		return Portrait, nil
	case "auto", "":
		return Auto, nil
	default:
		return Auto, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
	}
}

// Resolve turns Auto into a concrete orientation for the given window.
// Square and wider windows are landscape.
func (o Orientation) Resolve(windowW, windowH float64) Orientation {
	if o != Auto {
		return o
	}
	if windowW >= windowH {
		return Landscape
	}
	return Portrait
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
