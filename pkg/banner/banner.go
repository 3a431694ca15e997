// Package banner lays rendered badges out in rows and places them beside
// or below the logo. In row direction on a capable terminal the logo is
// printed first and the rows are written next to it with cursor movement;
// elsewhere the two blocks are joined line by line.
package banner

import (
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/components"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// Directions.
const (
	DirectionRow    = "row"
	DirectionColumn = "column"
)

// LogoGap is the number of spaces between the logo and the widgets in row
// direction.
const LogoGap = 3

// MinRowWidth is the narrowest row kept beside the logo. A terminal too
// narrow for it gets the rows stacked below the logo instead.
const MinRowWidth = 10

// BadgeRenderer renders one widget within maxWidth cells.
type BadgeRenderer interface {
	Render(w widget.Widget, maxWidth int) string
}

// Options controls the layout.
type Options struct {
	Direction string
	Align     components.Align
	Column    int
	ColumnGap int
	RowGap    int
	Margin    int

	// Width is the terminal width in cells; zero disables truncation.
	Width int

	// Cursor allows cursor movement for the row direction.
	Cursor bool
}

// Frame is a laid out banner ready to be written.
type Frame struct {
	Logo      []string
	LogoWidth int
	Rows      []string
	Footer    []string

	opts    Options
	stacked bool
}

// Layout renders widgets into rows and pairs them with the logo lines.
// Widgets that are not renderable are skipped. logo lines are expected to
// share one width.
func Layout(logo []string, widgets []widget.Widget, br BadgeRenderer, opts Options) Frame {
	opts.Column = max(opts.Column, 1)
	opts.ColumnGap = max(opts.ColumnGap, 0)
	opts.RowGap = max(opts.RowGap, 0)

	f := Frame{Logo: logo, LogoWidth: components.MaxWidth(logo), opts: opts}
	f.stacked = opts.Direction == DirectionRow && len(logo) > 0 &&
		opts.Width > 0 && opts.Width-f.LogoWidth-LogoGap < MinRowWidth
	f.Rows = bnRows(widgets, br, f.available(), opts)
	return f
}

// WithFooter returns f with extra lines printed after the rows, such as
// color bars.
func (f Frame) WithFooter(lines ...string) Frame {
	f.Footer = append(append([]string(nil), f.Footer...), lines...)
	return f
}

// besideLogo reports whether rows sit to the right of the logo.
func (f Frame) besideLogo() bool {
	return f.opts.Direction == DirectionRow && len(f.Logo) > 0 && !f.stacked
}

// available returns the cells left for one widget row; 0 means unbounded.
func (f Frame) available() int {
	if f.opts.Width <= 0 {
		return 0
	}
	w := f.opts.Width
	if f.besideLogo() {
		w -= f.LogoWidth + LogoGap
	}
	return max(w, 1)
}
