package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in every config directory.
const ConfigFile = "descent.yaml"

// LoadDescent loads the game configuration.
// Search order: customPath -> ~/.descent/configs/descent.yaml -> ./configs/descent.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A file that exists but does not load is an error; the search
// does not move on past it.
func LoadDescent(customPath string) (DescentConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultDescentConfig(), err
		}
		return cfg, nil
	}

	for _, path := range []string{
		userConfigPath(ConfigFile),
		filepath.Join("configs", ConfigFile),
	} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return DefaultDescentConfig(), err
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDescentYAML)
	if err != nil {
		return DefaultDescentConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (DescentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultDescentConfig(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return DefaultDescentConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (DescentConfig, error) {
	cfg := DefaultDescentConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".descent", "configs", filename)
}

// UserConfigPath returns where LoadDescent looks for the user's config.
func UserConfigPath() string {
	return userConfigPath(ConfigFile)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DescentConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		cfg.Speed.Increment = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate reports values that would stall the generator or the physics.
func (c DescentConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(c.Viewport.Portrait.Width > 0 && c.Viewport.Portrait.Height > 0, "viewport.portrait must be positive")
	check(c.Viewport.Landscape.Width > 0 && c.Viewport.Landscape.Height > 0, "viewport.landscape must be positive")
	check(c.Level.RowSpacing > 0, "level.row_spacing must be positive")
	check(c.Level.Lookahead >= 0, "level.lookahead must not be negative")
	check(c.Level.EdgeMargin >= 0, "level.edge_margin must not be negative")
	check(c.Level.GapStepMin <= c.Level.GapStepMax, "level.gap_step_min must not exceed gap_step_max")
	check(c.Level.ScaleX > 0, "level.scale_x must be positive")
	check(c.Speed.Initial >= 0, "speed.initial must not be negative")
	check(c.Speed.Increment >= 0, "speed.increment must not be negative")
	check(c.Speed.ReferenceFrameMs > 0, "speed.reference_frame_ms must be positive")
	check(c.Speed.Max >= c.Speed.Initial, "speed.max must be at least speed.initial")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Platform.Width > 0 && c.Platform.Height > 0, "platform size must be positive")
	check(c.Player.Bounce >= 0 && c.Player.Bounce <= 1, "player.bounce must be within [0, 1]")

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not score, time or none", c.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
