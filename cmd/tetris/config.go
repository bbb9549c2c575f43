package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration that 'play' would use, after the search path
and --difficulty preset are applied.

Search order: --config, ~/.tui-tetris/config.yaml, ./configs/tetris.yaml,
then the built-in defaults.

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config --default > ~/.tui-tetris/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if err := printConfig(cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printConfig(w io.Writer) error {
	if flagConfigDefault {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
