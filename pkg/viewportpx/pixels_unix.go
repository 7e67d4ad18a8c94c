//go:build linux || darwin

package viewportpx

import "golang.org/x/sys/unix"

// pixelWidth reads the terminal's pixel geometry via TIOCGWINSZ.
// Terminals that do not report pixels leave Xpixel at 0.
func pixelWidth(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Xpixel)
}
