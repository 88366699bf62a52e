package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after file lookup and difficulty presets,
as YAML. Redirect it to a file to start a custom config.

Lookup order:
  --config path, ~/.breakout/configs/breakout.yaml, ./configs/breakout.yaml,
  then the built-in defaults.

Examples:
  breakout config > ~/.breakout/configs/breakout.yaml
  breakout config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := cfg.Marshal()
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	return err
}
