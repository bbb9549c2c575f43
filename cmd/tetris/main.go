// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as 'tetris play')
//	tetris play              - Play a game
//	tetris menu              - Pick a difficulty, then play
//	tetris pieces            - Show the piece catalog
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible piece order
//	--config <path>        - Use a specific config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--log-file <path>      - Write logs to a file (default: discarded)
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game.

Available commands:
  play     - Play a game (default)
  menu     - Pick a difficulty, then play
  pieces   - Show the piece catalog
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --seed 42 --log-file ./tetris.log
  tetris config > ~/.tui-tetris/config.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger opens the log destination. The terminal belongs to the game,
// so logs only go to a file when one is requested.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closer, nil
}

// resolveConfig runs the config search and logs every file it passed over.
func resolveConfig(logger *log.Logger) (config.TetrisConfig, error) {
	res, err := config.LoadTetris(flagConfig)
	if err != nil {
		return res.Config, err
	}
	for _, sk := range res.Skipped {
		logger.Warn("config skipped", "path", sk.Path, "error", sk.Err)
	}
	logger.Info("config loaded", "source", res.Source)
	return res.Config, nil
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.TetrisConfig, error) {
	cfg, err := resolveConfig(logger)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("after %s preset: %w", preset, err)
	}
	return cfg, nil
}
