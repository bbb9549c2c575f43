package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	tcore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long:  `Prints every piece with its color index and rotation states, followed by the controls.`,
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

func runPieces(_ *cobra.Command, _ []string) {
	fmt.Print(formatCatalog())
	fmt.Println("Controls:")
	for _, c := range tetris.Controls() {
		fmt.Printf("  %s\n", c)
	}
}

// formatCatalog renders each piece's rotations side by side.
func formatCatalog() string {
	var b strings.Builder
	for _, t := range tcore.Types() {
		rotations := tcore.RotationsOf(t)
		fmt.Fprintf(&b, "%s  color %d  rotations %d\n", t, tcore.ColorOf(t), len(rotations))

		size := rotations[0].Size()
		for y := 0; y < size; y++ {
			b.WriteString("  ")
			for i, m := range rotations {
				if i > 0 {
					b.WriteString("   ")
				}
				for _, v := range m[y] {
					if v != 0 {
						b.WriteString("[]")
					} else {
						b.WriteString(" .")
					}
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
