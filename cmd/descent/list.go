package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/descent/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets",
	Long:  `Shows each difficulty preset with the speed a run starts at.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	base, err := config.LoadDescent(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-11s  %s\n", "Preset", "Start speed", "Ramp")
	fmt.Printf("  %-8s  %-11s  %s\n", "------", "-----------", "----")

	for _, p := range config.Presets() {
		cfg := base
		config.ApplyPreset(&cfg, p)

		ramp := fmt.Sprintf("+%g per frame, up to %g", cfg.Speed.Increment, cfg.Speed.Max)
		if config.IsFixedPreset(p) {
			ramp = "none"
		}
		fmt.Printf("  %-8s  %-11.1f  %s\n", p, cfg.InitialSpeed(), ramp)
	}

	fmt.Println()
	fmt.Println("Run 'descent play --difficulty <preset>' to play one.")
	return nil
}
