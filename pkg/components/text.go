package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// VisibleLen returns the width of s in terminal cells. Escape sequences
// count as zero; wide characters (CJK, emoji) count as two.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Truncate shortens s to at most maxWidth cells, ending in Ellipsis when
// anything was cut. Styling before the cut point is kept. s is returned
// unchanged if it already fits.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Clip cuts s to maxWidth cells with no marker.
func Clip(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// PadRight pads s with trailing spaces so that its visible width equals
// width. If s is already wider than width, it is returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// MaxWidth returns the widest visible line of lines.
func MaxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, VisibleLen(l))
	}
	return w
}
