// Package draw renders the game into a terminal using half-block characters.
package draw

import (
	"os"

	"golang.org/x/term"
)

// Escape sequences written by the terminal renderer.
const (
	seqClearScreen = "\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
)

// halfBlocks maps a cell's (top, bottom) pixel pair, packed as top<<1|bottom,
// to the character that shows it.
var halfBlocks = [4]rune{' ', '▄', '▀', '█'}

// TermSizeFunc reports the terminal's columns and rows.
type TermSizeFunc func() (width, height int, err error)

// StdoutSize reports the size of the terminal attached to stdout.
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
