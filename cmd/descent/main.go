// descent is an endless faller: drop through rising platforms while the
// ceiling chases you down.
//
// Usage:
//
//	descent play               - Play in the terminal
//	descent menu               - Pick a difficulty, play, repeat
//	descent serve              - Start SSH server for remote play
//	descent scores [preset]    - Show the deepest runs
//	descent list               - List difficulty presets
//	descent viewport <w> <h>   - Print the canvas size for a window
//	descent config             - Print the default config
//	descent window             - Play in a native window (ebiten builds)
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible runs
//	--db <path>             - Set database path (default: ~/.descent/scores.db)
//	--config <path>         - Use a custom descent.yaml
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--orientation <o>       - auto, landscape or portrait
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/core"
	"github.com/vovakirdan/descent/internal/platform/tui"
	"github.com/vovakirdan/descent/internal/storage"
	"github.com/vovakirdan/descent/internal/viewport"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagDifficulty  string
	flagOrientation string
	flagLogLevel    string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "descent"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "descent",
	Short: "Descent - fall through rising platforms in your terminal",
	Long: `Descent is an endless faller. Platforms rise up the screen, the
ceiling follows the camera, and every row you drop through adds to your
depth. Touch the ceiling or fall out of view and the run is over.

Available commands:
  play      - Play in the terminal
  menu      - Interactive difficulty picker
  serve     - Start SSH server for remote play
  scores    - View the deepest runs
  list      - List difficulty presets
  viewport  - Print the canvas size for a window
  config    - Print the default config

Examples:
  descent play
  descent play --difficulty hard --orientation portrait
  descent menu
  descent serve --ssh :2222
  descent scores normal`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.descent/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom descent.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagOrientation, "orientation", "", "Orientation: auto, landscape, portrait (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewportCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}

// gameOptions resolves the config file, difficulty and orientation flags.
func gameOptions() (tui.Options, error) {
	cfg, err := config.LoadDescent(flagConfig)
	if err != nil {
		return tui.Options{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return tui.Options{}, err
	}

	o := cfg.Viewport.Orientation
	if flagOrientation != "" {
		o, err = viewport.ParseOrientation(flagOrientation)
		if err != nil {
			return tui.Options{}, err
		}
	}

	return tui.Options{
		Config:      cfg,
		Preset:      preset,
		Orientation: o,
		Logger:      logger,
	}, nil
}

// terminalConfig builds the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
