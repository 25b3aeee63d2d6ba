package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/descent/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run right away.

Controls:
  A/D, Left/Right  - Steer
  Space/P          - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or after game over)
  Ctrl+S           - Save a screenshot to ~/.descent/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start slow, ramp up with depth
  normal - Start at 30% of the ramp
  hard   - Start at 70% of the ramp
  fixed  - Constant speed, no ramp

Examples:
  descent play
  descent play --difficulty easy
  descent play --orientation portrait
  descent play --config ./my-descent.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	// Run the game
	_, runErr := tui.Run(store, terminalConfig(), opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
