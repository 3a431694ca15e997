package banner

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/components"
)

// Lines returns the whole banner as plain lines, without cursor movement.
// Row direction joins logo and rows side by side, top aligned; column
// direction, and row direction on a terminal narrower than the logo plus
// MinRowWidth, stacks them with a blank line between.
func (f Frame) Lines() []string {
	body := f.body()

	var lines []string
	switch {
	case len(f.Logo) == 0:
		lines = f.align(body)
	case len(body) == 0:
		lines = f.align(f.Logo)
	case f.besideLogo():
		lines = bnJoin(f.Logo, f.LogoWidth, body)
	default:
		lines = append(f.align(f.Logo), "")
		lines = append(lines, f.align(body)...)
	}
	return components.NewPaddingHV(0, f.opts.Margin).Apply(lines)
}

// Write prints the banner to w. Cursor interleaving is used when rows sit
// beside the logo and the terminal allows it.
func (f Frame) Write(w io.Writer) error {
	if f.besideLogo() && f.opts.Cursor && len(f.Rows) > 0 {
		return f.writeInterleaved(w)
	}
	return bnWriteLines(w, f.Lines())
}

// writeInterleaved prints the logo, moves back up to its first line and
// prints each row to the right of it, then moves below whichever block is
// taller.
func (f Frame) writeInterleaved(w io.Writer) error {
	body := f.body()

	var b strings.Builder
	for range f.opts.Margin {
		b.WriteString("\n")
	}
	for _, l := range f.Logo {
		b.WriteString(l)
		b.WriteString("\n")
	}

	b.WriteString(ansi.CursorUp(len(f.Logo)))
	indent := ansi.CursorForward(f.LogoWidth + LogoGap)
	for _, l := range body {
		b.WriteString("\r")
		if l != "" {
			b.WriteString(indent)
			b.WriteString(l)
		}
		b.WriteString("\n")
	}
	if rest := len(f.Logo) - len(body); rest > 0 {
		b.WriteString(ansi.CursorDown(rest))
	}
	for range f.opts.Margin {
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// body returns the rows followed by a blank line and the footer. Footer
// lines are clipped like rows.
func (f Frame) body() []string {
	if len(f.Footer) == 0 {
		return f.Rows
	}
	body := append(append([]string(nil), f.Rows...), "")
	avail := f.available()
	for _, l := range f.Footer {
		if avail > 0 && components.VisibleLen(l) > avail {
			l = components.Clip(l, avail)
		}
		body = append(body, l)
	}
	return body
}

// align places each line within the terminal width. Lines wider than the
// terminal, such as a large logo, are clipped.
func (f Frame) align(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		l = f.opts.Align.Line(l, f.opts.Width)
		if f.opts.Width > 0 && components.VisibleLen(l) > f.opts.Width {
			l = components.Clip(l, f.opts.Width)
		}
		out[i] = l
	}
	return out
}

// bnJoin places right next to left, padding left lines to leftWidth.
func bnJoin(left []string, leftWidth int, right []string) []string {
	n := max(len(left), len(right))
	pad := strings.Repeat(" ", LogoGap)
	out := make([]string, n)
	for i := range n {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		if r == "" {
			out[i] = l
			continue
		}
		out[i] = components.PadRight(l, leftWidth) + pad + r
	}
	return out
}

func bnWriteLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
