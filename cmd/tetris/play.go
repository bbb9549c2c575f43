package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Down/S/J    - Soft drop
  Up/W/X/K    - Rotate
  Enter/Space - Start
  P/Esc       - Pause
  R           - Restart
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a text screenshot

Mouse: tap the board to rotate, drag sideways to move, swipe down to drop.

Difficulty options:
  easy   - Level 1, slower first drops
  normal - As configured
  hard   - Starts at level 5 with a lower speed floor

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one game and prints the final score. It returns instead of
// exiting so the deferred log file close always runs.
func play(w io.Writer) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("config failed", "error", err)
		return err
	}

	state, err := runGame(cfg, runtimeConfig(), logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if state.Started {
		fmt.Fprintf(w, "Score %d  Level %d  Lines %d\n", state.Score, state.Level, state.Lines)
	}
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

// configurable is implemented by games that accept a loaded config.
// Configure is called before the first Reset.
type configurable interface {
	Configure(cfg config.TetrisConfig) error
}

// runGame creates the game from the registry and runs it to completion.
func runGame(cfg config.TetrisConfig, rc core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	game, err := registry.Create(tetris.ID)
	if err != nil {
		return core.GameState{}, fmt.Errorf("create game: %w", err)
	}
	if c, ok := game.(configurable); ok {
		if err := c.Configure(cfg); err != nil {
			return core.GameState{}, err
		}
	}

	return tui.Run(game, tui.Options{
		Runtime:  rc,
		Gestures: tui.GestureConfigFrom(cfg.Touch),
		Logger:   logger,
	})
}
