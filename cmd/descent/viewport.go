package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/viewport"
)

var viewportCmd = &cobra.Command{
	Use:   "viewport <width> <height>",
	Short: "Print the canvas size for a window",
	Long: `Print the logical canvas Descent would use for a window of the given
pixel size. Uses --orientation, or prints both orientations when it is
auto.

Examples:
  descent viewport 1920 1080
  descent viewport 1080 1920 --orientation portrait`,
	Args: cobra.ExactArgs(2),
	RunE: runViewport,
}

func runViewport(_ *cobra.Command, args []string) error {
	w, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", args[0], err)
	}
	h, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid height %q: %w", args[1], err)
	}

	cfg, err := config.LoadDescent(flagConfig)
	if err != nil {
		return err
	}
	o, err := viewport.ParseOrientation(flagOrientation)
	if err != nil {
		return err
	}

	sizer := cfg.Sizer()
	orients := []viewport.Orientation{o}
	if o == viewport.Auto {
		orients = []viewport.Orientation{viewport.Landscape, viewport.Portrait}
		fmt.Printf("auto picks %s for %gx%g\n", o.Resolve(w, h), w, h)
	}

	for _, candidate := range orients {
		size, err := sizer.ComputeSize(candidate, w, h)
		if err != nil {
			return err
		}
		fmt.Printf("%-9s  %gx%g  (design %gx%g)\n",
			candidate, size.Width, size.Height, size.Area.W, size.Area.H)
	}
	return nil
}
