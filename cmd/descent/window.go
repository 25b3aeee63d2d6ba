//go:build ebiten

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/platform/gfx"
	"github.com/vovakirdan/descent/internal/settings"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a resizable window. The canvas keeps the design aspect ratio
and grows along the longer edge.

Without --difficulty or --orientation the last choices saved on this
device are used, and the ones given are saved for next time.

Controls:
  A/D, Left/Right  - Steer (or hold the left/right half of the window)
  Space/P          - Pause (or click the top-right button)
  R/Enter          - Restart (after game over)
  F                - Toggle fullscreen
  Q/Esc            - Quit

Examples:
  descent window
  descent window --orientation portrait --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, _ []string) {
	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prefs, err := settings.Open(logger)
	if err != nil {
		logger.Warn("settings are not persistent", "err", err)
	}

	saved := prefs.Get()
	if cmd.Flag("difficulty").Changed {
		prefs.SetDifficulty(string(opts.Preset))
	} else if preset, parseErr := config.ParsePreset(saved.Difficulty); parseErr == nil {
		opts.Preset = preset
	}
	if cmd.Flag("orientation").Changed {
		prefs.SetOrientation(opts.Orientation)
	} else {
		opts.Orientation = saved.Orientation
	}
	if err := prefs.Save(); err != nil {
		logger.Warn("could not save settings", "err", err)
	}

	store := openStore()

	runErr := gfx.Run(gfx.Options{
		Config:      opts.Config,
		Preset:      opts.Preset,
		Orientation: opts.Orientation,
		Seed:        flagSeed,
		TickRate:    flagFPS,
		Store:       store,
		Settings:    prefs,
		Logger:      logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
