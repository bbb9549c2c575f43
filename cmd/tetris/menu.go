package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start with a difficulty picker.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Examples:
  tetris menu
  tetris menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	base, err := resolveConfig(logger)
	if err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := runtimeConfig()
	seed := rc.Seed

	// Menu loop
	for {
		result, err := tui.RunMenu(base, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rc = result.Config
		if result.Quit {
			break
		}

		cfg := base
		config.ApplyTetrisPreset(&cfg, result.Preset)
		logger.Info("difficulty selected", "preset", result.Preset)

		// Fixed seeds replay the same pieces; otherwise each game gets a new one.
		rc.Seed = seed
		if _, err := runGame(cfg, rc, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
