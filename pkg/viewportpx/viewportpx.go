// Package viewportpx estimates the terminal viewport width in pixels.
//
// The responsive layout engine classifies widths against pixel breakpoints,
// but terminal programs are told their size in character cells. When the
// kernel reports real pixel geometry for the controlling terminal that value
// is used; otherwise columns are scaled by an approximate cell width.
package viewportpx

import (
	"os"

	"golang.org/x/term"
)

// DefaultCellWidthPx approximates one character cell in pixels for a typical
// monospace font. 80 columns lands at 720px and 100 columns at 900px.
const DefaultCellWidthPx = 9

// FromColumns scales a column count to pixels. Non-positive column counts
// yield 0; a non-positive cellWidth falls back to DefaultCellWidthPx.
func FromColumns(cols, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidthPx
	}
	if cols <= 0 {
		return 0
	}
	return cols * cellWidth
}

// Width returns the viewport width in pixels for a window of cols columns.
// Kernel-reported pixel geometry wins when stdout is a terminal that
// provides it; otherwise the column estimate is used.
func Width(cols, cellWidth int) int {
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if px := pixelWidth(fd); px > 0 {
			return px
		}
	}
	return FromColumns(cols, cellWidth)
}
