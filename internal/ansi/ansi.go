// Package ansi holds the terminal escape sequences used by the text renderer
// and the format engine.
package ansi

const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Italic = "\033[3m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"

	BrightBlack  = "\033[90m"
	BrightRed    = "\033[91m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
	BrightWhite  = "\033[97m"
)

// Wrap surrounds s with code and a reset when enabled is true.
func Wrap(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return code + s + Reset
}
