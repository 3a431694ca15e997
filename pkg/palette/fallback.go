package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Adapt replaces every hex color of p with the nearest index of the output
// profile (0-255 for ANSI256, 0-15 for ANSI) when it cannot show true
// color. Colors that fail to parse are kept as they are.
func Adapt(p Palette, profile termenv.Profile) Palette {
	if profile == termenv.TrueColor || profile == termenv.Ascii {
		return p
	}

	for _, c := range []*string{
		&p.Red, &p.Green, &p.Yellow, &p.Sky, &p.Purple, &p.Cyan,
		&p.White, &p.Black,
	} {
		*c = plIndexFor(profile, *c)
	}
	return p
}

// plIndexFor returns the index termenv picks for hex under profile, as a
// decimal string lipgloss accepts.
func plIndexFor(profile termenv.Profile, hex string) string {
	r, g, b, ok := plParseHex(hex)
	if !ok {
		return hex
	}
	switch c := profile.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)).(type) {
	case termenv.ANSI256Color:
		return strconv.Itoa(int(c))
	case termenv.ANSIColor:
		return strconv.Itoa(int(c))
	default:
		return hex
	}
}

// plColorDistance is the Euclidean distance between two RGB colors.
func plColorDistance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// plParseHex parses "#RRGGBB", "RRGGBB" or the short "#RGB" form.
func plParseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
