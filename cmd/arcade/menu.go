package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-catcher/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu with your last score shown.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --config ./my-mathcatch.yaml`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	note := ""

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, note)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := newGame(menuResult.GameID, logger)
		if err != nil {
			return err
		}

		opts := tui.DefaultOptions()
		opts.Logger = logger
		state, err := tui.Run(game, cfg, opts)
		if err != nil {
			return err
		}

		reportResult(cmd, logger, game, state)
		note = tui.ScoreNote(game.Title(), state.Score)
	}
}
