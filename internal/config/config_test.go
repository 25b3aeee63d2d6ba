package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/descent/internal/level"
	"github.com/vovakirdan/descent/internal/viewport"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDescentConfig()) {
		t.Errorf("embedded YAML and DefaultDescentConfig differ:\n%+v\n%+v", cfg, DefaultDescentConfig())
	}
}

func TestDefaultParamsMatchGenerator(t *testing.T) {
	if got := DefaultDescentConfig().Params(); !reflect.DeepEqual(got, level.DefaultParams()) {
		t.Errorf("Params() = %+v, expected %+v", got, level.DefaultParams())
	}
}

func TestDefaultSizerMatchesPresets(t *testing.T) {
	sizer := DefaultDescentConfig().Sizer()
	tests := []struct {
		o    viewport.Orientation
		w, h float64
	}{
		{viewport.Landscape, 1920, 1080},
		{viewport.Portrait, 1080, 1920},
		{viewport.Landscape, 2560, 1080},
		{viewport.Portrait, 800, 1000},
	}
	for _, tt := range tests {
		got, err := sizer.ComputeSize(tt.o, tt.w, tt.h)
		if err != nil {
			t.Fatalf("ComputeSize: %v", err)
		}
		want, _ := viewport.ComputeSize(tt.o, tt.w, tt.h)
		if got.Width != want.Width || got.Height != want.Height {
			t.Errorf("%v %vx%v: got %vx%v, expected %vx%v", tt.o, tt.w, tt.h, got.Width, got.Height, want.Width, want.Height)
		}
	}
}

func TestLoadDescentCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descent.yaml")
	data := []byte("viewport:\n  orientation: portrait\nspeed:\n  initial: 80\n  max: 150\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDescent(path)
	if err != nil {
		t.Fatalf("LoadDescent: %v", err)
	}
	if cfg.Viewport.Orientation != viewport.Portrait {
		t.Errorf("orientation = %v, expected portrait", cfg.Viewport.Orientation)
	}
	if cfg.Speed.Initial != 80 || cfg.Speed.Max != 150 {
		t.Errorf("speed = %+v, expected initial 80 max 150", cfg.Speed)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Player.Gravity != 300 || cfg.Level.RowSpacing != 120 {
		t.Errorf("defaults lost: gravity %v row spacing %v", cfg.Player.Gravity, cfg.Level.RowSpacing)
	}
}

func TestLoadDescentErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDescent(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("level: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDescent(bad); err == nil {
		t.Error("expected a parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("level:\n  row_spacing: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDescent(invalid); err == nil {
		t.Error("expected a validation error for zero row spacing")
	}

	orient := filepath.Join(dir, "orient.yaml")
	if err := os.WriteFile(orient, []byte("viewport:\n  orientation: sideways\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDescent(orient); !errors.Is(err, viewport.ErrUnknownOrientation) {
		t.Errorf("expected ErrUnknownOrientation, got %v", err)
	}
}

func TestLoadDescentSearchPathErrors(t *testing.T) {
	write := func(t *testing.T, path, body string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		user    string // body of ~/.descent/configs/descent.yaml, empty for none
		local   string // body of ./configs/descent.yaml, empty for none
		wantErr string
	}{
		{name: "none", wantErr: ""},
		{name: "user bad yaml", user: "level: [oops", wantErr: filepath.Join(".descent", "configs", ConfigFile)},
		{name: "user invalid", user: "level:\n  row_spacing: 0\n", wantErr: "row_spacing"},
		{name: "local bad yaml", local: "speed: {", wantErr: filepath.Join("configs", ConfigFile)},
		{name: "local invalid", local: "speed:\n  initial: -5\n", wantErr: "parse"},
		{name: "user wins over bad local", user: "speed:\n  initial: 70\n", local: "speed: {", wantErr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, work := t.TempDir(), t.TempDir()
			t.Setenv("HOME", home)
			t.Chdir(work)
			if tt.user != "" {
				write(t, filepath.Join(home, ".descent", "configs", ConfigFile), tt.user)
			}
			if tt.local != "" {
				write(t, filepath.Join(work, "configs", ConfigFile), tt.local)
			}

			_, err := LoadDescent("")
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("LoadDescent: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error for a broken config file")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DescentConfig)
		ok     bool
	}{
		{"defaults", func(*DescentConfig) {}, true},
		{"inverted gap steps", func(c *DescentConfig) { c.Level.GapStepMin = 20 }, false},
		{"max below initial", func(c *DescentConfig) { c.Speed.Max = 10 }, false},
		{"bounce above one", func(c *DescentConfig) { c.Player.Bounce = 1.5 }, false},
		{"zero portrait", func(c *DescentConfig) { c.Viewport.Portrait.Width = 0 }, false},
		{"unknown progression", func(c *DescentConfig) { c.Difficulty.Progression.Type = "lunar" }, false},
		{"no progression", func(c *DescentConfig) { c.Difficulty.Progression.Type = "none" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDescentConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tt.ok)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"", DifficultyNormal, false},
		{"nightmare", DifficultyNormal, true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v", tt.in, err)
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownPreset) {
			t.Errorf("ParsePreset(%q) error should wrap ErrUnknownPreset", tt.in)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		speed     float64
		increment float64
		enabled   bool
	}{
		{DifficultyEasy, 50, 0.005, true},
		{DifficultyNormal, 65, 0.005, true},
		{DifficultyHard, 85, 0.005, true},
		{DifficultyFixed, 50, 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultDescentConfig()
			ApplyPreset(&cfg, tt.preset)

			if got := cfg.InitialSpeed(); got < tt.speed-1e-9 || got > tt.speed+1e-9 {
				t.Errorf("InitialSpeed() = %v, expected %v", got, tt.speed)
			}
			if cfg.Speed.Increment != tt.increment {
				t.Errorf("increment = %v, expected %v", cfg.Speed.Increment, tt.increment)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
		})
	}
}
