// Package badge renders widgets as colored badges: an icon and text on the
// widget's color, framed by rounded edge glyphs.
package badge

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/components"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/palette"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// Options configures a Renderer.
type Options struct {
	Palette palette.Palette
	Profile termenv.Profile

	// NoBadge drops the background and frames; icon and text are drawn in
	// the widget color instead.
	NoBadge bool
}

// Renderer turns widgets into badge strings for one output.
type Renderer struct {
	r       *lipgloss.Renderer
	pal     palette.Palette
	noBadge bool
}

// New creates a Renderer writing styles for out at the given profile.
func New(out io.Writer, opts Options) *Renderer {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(opts.Profile)
	return &Renderer{
		r:       r,
		pal:     palette.Adapt(opts.Palette, opts.Profile),
		noBadge: opts.NoBadge,
	}
}

// Palette returns the palette colors are resolved against.
func (b *Renderer) Palette() palette.Palette { return b.pal }

// Overhead returns the cells a widget's badge uses beyond its text.
func (b *Renderer) Overhead(w widget.Widget) int {
	if w.Plain {
		return 0
	}
	n := components.VisibleLen(w.Icon.Glyph()) + 1
	if !b.noBadge {
		n += components.VisibleLen(widget.FrameLeft) + components.VisibleLen(widget.FrameRight) + 1
	}
	return n
}

// Render draws w. maxWidth bounds the whole badge; text that does not fit
// is truncated with an ellipsis. maxWidth <= 0 means no bound. Widgets that
// are not renderable give "".
func (b *Renderer) Render(w widget.Widget, maxWidth int) string {
	if !w.Renderable() {
		return ""
	}
	text := w.Text
	if maxWidth > 0 {
		text = components.Truncate(text, max(maxWidth-b.Overhead(w), 1))
	}

	if w.Plain {
		return b.r.NewStyle().Foreground(lipgloss.Color(b.pal.White)).Render(text)
	}

	color := lipgloss.Color(b.pal.Resolve(w.Color))
	body := w.Icon.Glyph() + " " + text
	if b.noBadge {
		return b.r.NewStyle().Foreground(color).Render(body)
	}

	edge := b.r.NewStyle().Foreground(color)
	fill := b.r.NewStyle().
		Background(color).
		Foreground(lipgloss.Color(b.pal.Black)).
		Bold(true)
	return edge.Render(widget.FrameLeft) + fill.Render(body+" ") + edge.Render(widget.FrameRight)
}

// Status kinds.
const (
	StatusOK      = widget.StatusOK
	StatusError   = widget.StatusError
	StatusUnknown = widget.StatusUnknown
)

// Status renders a message badge with the status icon of kind.
func (b *Renderer) Status(kind int, text string) string {
	color := widget.Green
	switch kind {
	case StatusError:
		color = widget.Red
	case StatusUnknown:
		color = widget.Yellow
	}
	return b.Render(widget.Widget{
		Name:  "status",
		Text:  text,
		Color: color,
		Icon:  widget.Indexed(widget.IconStatus, kind),
	}, 0)
}
