// Package widget holds the renderable unit of twidgets: a named widget with
// text, a symbolic color and a typed icon, kept in an ordered Table whose
// insertion order is the render order.
package widget

import "strings"

// Color is a symbolic color reference resolved by a palette at render time.
// Besides the names below, a Color may hold a literal "#rrggbb" hex value
// taken from configuration.
type Color string

// Symbolic colors every palette defines.
const (
	Red    Color = "red"
	Green  Color = "green"
	Yellow Color = "yellow"
	Sky    Color = "sky"
	Purple Color = "purple"
	Cyan   Color = "cyan"
	White  Color = "white"
	Black  Color = "black"
)

// Accents are the six palette colors users can reassign.
var Accents = []Color{Red, Green, Yellow, Sky, Purple, Cyan}

// IsSymbolic reports whether c names a palette color.
func (c Color) IsSymbolic() bool {
	switch c {
	case Red, Green, Yellow, Sky, Purple, Cyan, White, Black:
		return true
	}
	return false
}

// IsHex reports whether c is a literal "#rgb" or "#rrggbb" color.
func (c Color) IsHex() bool {
	s := string(c)
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Valid reports whether c is symbolic or a hex literal.
func (c Color) Valid() bool {
	return c.IsSymbolic() || c.IsHex()
}

// Widget is one entry of the table. An empty Text is the null text of a
// failed fact; such widgets stay in the table but are never rendered.
type Widget struct {
	Name  string
	Text  string
	Color Color
	Icon  Icon

	// Plain widgets are addons without icon or color. They render as bare
	// text with no badge framing.
	Plain bool
}

// Renderable reports whether the widget has everything a badge needs: text,
// and unless it is plain, a color and an icon that resolves to a glyph.
func (w Widget) Renderable() bool {
	if w.Text == "" {
		return false
	}
	if w.Plain {
		return true
	}
	return w.Color != "" && w.Icon.Glyph() != ""
}
