package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities is what the renderer needs to know about one output file.
type Capabilities struct {
	Term    Terminal
	Size    Size
	TTY     bool            // output is an interactive terminal
	Profile termenv.Profile // color profile to emit
	Cursor  bool            // relative cursor movement is safe
	Unicode bool            // glyph-capable (not TERM=dumb)
}

// DetectCapabilities inspects out and the environment. Output that is not a
// TTY gets the Ascii profile unless CLICOLOR_FORCE is set, matching termenv.
func DetectCapabilities(out *os.File) Capabilities {
	fd := out.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	t := Detect()

	profile := termenv.NewOutput(out).EnvColorProfile()
	if tty && profile != termenv.Ascii && profile != termenv.TrueColor && t.SupportsTrueColor() {
		profile = termenv.TrueColor
	}

	size := GetSizeFromFd(fd)
	if size.Cols <= 0 || size.Rows <= 0 {
		size = GetSize()
	}

	return Capabilities{
		Term:    t,
		Size:    size,
		TTY:     tty,
		Profile: profile,
		Cursor:  tty && t.SupportsCursorMovement(),
		Unicode: t != TermDumb,
	}
}
