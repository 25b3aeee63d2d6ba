//go:build !ebiten

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/descent/internal/platform/gfx"
)

var windowCmd = &cobra.Command{
	Use:    "window",
	Short:  "Play in a native window (requires the ebiten build tag)",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return fmt.Errorf("%w; rebuild with `go build -tags ebiten ./cmd/descent`", gfx.ErrNoWindow)
	},
}

func init() {
	rootCmd.AddCommand(windowCmd)
}
