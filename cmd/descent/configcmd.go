package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/descent/internal/config"
)

var flagConfigPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in descent.yaml. Save it to the user config path to
tune the game; missing keys keep their defaults.

Examples:
  descent config > ~/.descent/configs/descent.yaml
  descent config --path`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Print the user config path instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigPath {
		fmt.Println(config.UserConfigPath())
		return
	}
	os.Stdout.Write(config.GetDefaultYAML()) //nolint:errcheck // stdout
}
