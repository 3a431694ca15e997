package logo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/palette"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// BarWidth is the width of one color bar block.
const BarWidth = 3

// ColorBars renders one block per palette color: black, the six accents,
// then white.
func ColorBars(r *lipgloss.Renderer, pal palette.Palette) string {
	colors := append([]widget.Color{widget.Black}, widget.Accents...)
	colors = append(colors, widget.White)

	var b strings.Builder
	block := strings.Repeat("█", BarWidth)
	for _, c := range colors {
		b.WriteString(r.NewStyle().Foreground(lipgloss.Color(pal.Resolve(c))).Render(block))
	}
	return b.String()
}
