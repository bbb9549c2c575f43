package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
)

// Palette maps a board color index to a screen color.
// Index 0 is the empty background; 1-7 are the piece colors in catalog
// order (T, O, L, J, I, S, Z). Shared by the engine's color indices and the
// renderer.
var Palette = [8]Color{
	ColorGray,          // 0: background
	ColorPink,          // 1: T
	ColorBrightCyan,    // 2: O
	ColorBrightGreen,   // 3: L
	ColorBrightMagenta, // 4: J
	ColorOrange,        // 5: I
	ColorBrightYellow,  // 6: S
	ColorBrightBlue,    // 7: Z
}

// PaletteColor returns the screen color for a board color index.
// Out-of-range indices map to the background color.
func PaletteColor(index int) Color {
	if index < 0 || index >= len(Palette) {
		return Palette[0]
	}
	return Palette[index]
}
