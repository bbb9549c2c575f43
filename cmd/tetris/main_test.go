package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func TestFormatCatalog(t *testing.T) {
	out := formatCatalog()

	for _, want := range []string{"T  color 1  rotations 4", "O  color 2  rotations 1", "I  color 5  rotations 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog missing %q", want)
		}
	}
	// Every piece has four cells in each rotation.
	if n := strings.Count(out, "[]"); n != 4*(1+6*4) {
		t.Errorf("catalog shows %d cells, want %d", n, 4*(1+6*4))
	}
}

func TestPrintDefaultConfig(t *testing.T) {
	flagConfigDefault = true
	defer func() { flagConfigDefault = false }()

	var buf bytes.Buffer
	if err := printConfig(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), config.DefaultYAML()) {
		t.Error("--default should print the embedded file verbatim")
	}
}

func TestPrintEffectiveConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagDifficulty = "hard"
	defer func() { flagDifficulty = "" }()

	var buf bytes.Buffer
	if err := printConfig(&buf); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("printed config should parse: %v", err)
	}
	if cfg.Scoring.StartLevel != 5 {
		t.Errorf("start level = %d, want 5 with the hard preset", cfg.Scoring.StartLevel)
	}
}

func TestTetrisIsConfigurable(t *testing.T) {
	g, err := registry.Create(tetris.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(configurable); !ok {
		t.Error("tetris should accept a loaded config")
	}
}

func TestPlayConfigErrorIsLogged(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	writeConfig(t, filepath.Join(home, ".tui-tetris", "config.yaml"), "board: {width: 99}\n")

	logFile := filepath.Join(t.TempDir(), "logs", "tetris.log")
	flagLogFile = logFile
	flagDifficulty = "nightmare"
	defer func() { flagLogFile, flagDifficulty = "", "" }()

	var out bytes.Buffer
	if err := play(&out); err == nil {
		t.Fatal("play should fail on an unknown preset")
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got %q", out.String())
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"config skipped", "config.yaml", "config loaded", "config failed"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q:\n%s", want, data)
		}
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
