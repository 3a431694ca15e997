// Package components holds the ANSI-aware text primitives the renderer is
// built on: visible width, truncation, padding and alignment. Width is
// measured in terminal cells with escape sequences ignored.
package components

import "strings"

// Align controls horizontal placement of a line.
type Align int

const (
	// AlignLeft leaves lines at the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers lines within the available width.
	AlignCenter
)

// ParseAlign maps "left" and "center"; anything else is left.
func ParseAlign(s string) Align {
	if strings.EqualFold(s, "center") {
		return AlignCenter
	}
	return AlignLeft
}

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

// Line places s within width. Centering prepends (width - visible)/2
// spaces and adds nothing on the right, so trailing cells stay untouched.
// Blank lines stay empty.
func (a Align) Line(s string, width int) string {
	if a != AlignCenter || s == "" {
		return s
	}
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", (width-vis)/2) + s
}

// Padding defines blank space around a block.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewPaddingHV creates a Padding with separate horizontal and vertical values.
// horiz applies to Left and Right; vert applies to Top and Bottom.
func NewPaddingHV(horiz, vert int) Padding {
	if horiz < 0 {
		horiz = 0
	}
	if vert < 0 {
		vert = 0
	}
	return Padding{Top: vert, Right: horiz, Bottom: vert, Left: horiz}
}

// Apply surrounds lines with the padding.
func (p Padding) Apply(lines []string) []string {
	out := make([]string, 0, len(lines)+p.Top+p.Bottom)
	for range p.Top {
		out = append(out, "")
	}
	left := strings.Repeat(" ", p.Left)
	right := strings.Repeat(" ", p.Right)
	for _, l := range lines {
		if l == "" {
			out = append(out, l)
			continue
		}
		out = append(out, left+l+right)
	}
	for range p.Bottom {
		out = append(out, "")
	}
	return out
}
