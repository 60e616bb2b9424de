package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/math-catcher/internal/core"
	"github.com/vovakirdan/math-catcher/internal/games/mathcatch"
	"github.com/vovakirdan/math-catcher/internal/platform/tui"
	"github.com/vovakirdan/math-catcher/internal/platform/window"
	"github.com/vovakirdan/math-catcher/internal/registry"
)

var (
	flagConfig string
	flagWindow bool
	flagScale  float64
)

var errNoWindow = errors.New("game has no window frontend")

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/A/H   - Move catcher left
  Right/D/L  - Move catcher right
  P/Esc      - Pause
  Ctrl+S     - Screenshot (terminal only)
  Q/Ctrl+C   - Quit

The game ends when the last life is lost; the final score is printed.

Examples:
  arcade play mathcatch
  arcade play mathcatch --seed 42
  arcade play mathcatch --window --scale 1.5
  arcade play mathcatch --config ./my-mathcatch.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVarP(&flagWindow, "window", "w", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor (with --window)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(!flagWindow)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(args[0], logger)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	var state core.GameState
	if flagWindow {
		mc, ok := game.(*mathcatch.Game)
		if !ok {
			return fmt.Errorf("play %s: %w", game.ID(), errNoWindow)
		}
		opts := window.DefaultOptions()
		opts.Scale = flagScale
		opts.Logger = logger
		state, err = window.Run(mc, cfg, opts)
	} else {
		opts := tui.DefaultOptions()
		opts.Logger = logger
		state, err = tui.Run(game, cfg, opts)
	}
	if err != nil {
		return err
	}

	reportResult(cmd, logger, game, state)
	return nil
}

// newGame creates a registered game and applies the --config file and logger
// to games that accept them.
func newGame(id string, logger *log.Logger) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownGame) {
			return nil, fmt.Errorf("%w (run 'arcade list' to see available games)", err)
		}
		return nil, err
	}

	if c, ok := game.(interface{ LoadConfig(path string) error }); ok {
		if err := c.LoadConfig(flagConfig); err != nil {
			return nil, fmt.Errorf("configure %s: %w", id, err)
		}
	}
	if l, ok := game.(interface{ SetLogger(*log.Logger) }); ok {
		l.SetLogger(logger.WithPrefix(id))
	}
	return game, nil
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// reportResult logs a finished session and prints the final score line
// once the game is over.
func reportResult(cmd *cobra.Command, logger *log.Logger, game registry.Game, state core.GameState) {
	logger.Info("session ended", "game", game.ID(), "score", state.Score, "game_over", state.GameOver)
	if state.GameOver {
		fmt.Fprintln(cmd.OutOrStdout(), mathcatch.FinalMessage(state.Score))
	}
}
