//go:build !linux && !darwin

package viewportpx

// pixelWidth is unavailable on platforms without TIOCGWINSZ pixel reports.
func pixelWidth(int) int { return 0 }
