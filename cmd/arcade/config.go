package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-catcher/internal/config"
	"github.com/vovakirdan/math-catcher/internal/games/mathcatch"
	"github.com/vovakirdan/math-catcher/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the effective configuration of a game",
	Long: `Print the configuration a game would run with, as YAML.

The file is resolved in this order: --config path,
~/.arcade/configs/<game>.yaml, ./configs/<game>.yaml, built-in defaults.

Examples:
  arcade config mathcatch
  arcade config mathcatch --config ./my-mathcatch.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if gameID != mathcatch.GameID {
		return fmt.Errorf("config %s: %w", gameID, registry.ErrUnknownGame)
	}

	cfg, err := config.LoadMathCatch(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", gameID, err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
