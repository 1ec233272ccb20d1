package commands

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const barCells = 30

// pad right-fills s to width display columns.
func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// bar draws pct (0-100) as a run of block cells out of barCells.
func bar(pct float64) string {
	n := int(pct / 100 * barCells)
	if n < 1 && pct > 0 {
		n = 1
	}
	if n > barCells {
		n = barCells
	}
	return strings.Repeat("█", n) + strings.Repeat("░", barCells-n)
}
