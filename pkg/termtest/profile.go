// Package termtest provides terminal emulator profiles and rendering
// checks so output can be verified as it would appear on each emulator.
// It is used by tests across the module.
package termtest

import (
	"os"
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/terminal"
)

// EnvVars lists every variable terminal detection reads. Apply clears the
// ones a profile does not set.
var EnvVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"TILIX_ID", "VTE_VERSION", "LC_TERMINAL", "WT_SESSION", "TERMUX_VERSION",
	"INSIDE_EMACS", "TMUX", "STY",
}

// Profile is an emulator as seen through its environment.
type Profile struct {
	Name string
	Env  map[string]string

	// Term is what terminal.Detect reports under Env.
	Term terminal.Terminal
}

// Profiles returns all known terminal profiles.
func Profiles() []Profile {
	return []Profile{
		{"Ghostty", map[string]string{"TERM_PROGRAM": "ghostty", "TERM": "xterm-ghostty", "COLORTERM": "truecolor"}, terminal.TermGhostty},
		{"Kitty", map[string]string{"TERM": "xterm-kitty", "KITTY_WINDOW_ID": "1"}, terminal.TermKitty},
		{"iTerm2", map[string]string{"TERM_PROGRAM": "iTerm.app", "TERM": "xterm-256color", "ITERM_SESSION_ID": "w0t0p0:ABCDEF"}, terminal.TermITerm2},
		{"WezTerm", map[string]string{"TERM_PROGRAM": "WezTerm", "TERM": "xterm-256color", "WEZTERM_EXECUTABLE": "/usr/local/bin/wezterm"}, terminal.TermWezTerm},
		{"Tilix", map[string]string{"TERM": "xterm-256color", "VTE_VERSION": "7200", "TILIX_ID": "1"}, terminal.TermTilix},
		{"Alacritty", map[string]string{"TERM_PROGRAM": "alacritty", "TERM": "alacritty"}, terminal.TermAlacritty},
		{"Apple Terminal", map[string]string{"TERM_PROGRAM": "Apple_Terminal", "TERM": "xterm-256color"}, terminal.TermGeneric},
		{"tmux", map[string]string{"TERM_PROGRAM": "tmux", "TERM": "screen-256color", "TMUX": "/tmp/tmux-1000/default,1,0"}, terminal.TermTmux},
		{"Termux", map[string]string{"TERM": "xterm-256color", "TERMUX_VERSION": "0.118"}, terminal.TermTermux},
		{"Emacs vterm", map[string]string{"TERM": "xterm-256color", "INSIDE_EMACS": "29.1,vterm"}, terminal.TermEmacs},
		{"dumb", map[string]string{"TERM": "dumb"}, terminal.TermDumb},
	}
}

// ProfileByName returns the profile with the given name, or nil.
func ProfileByName(name string) *Profile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}

// Apply sets the profile's environment for the rest of tb. Every other
// detection variable is unset.
func (p Profile) Apply(tb testing.TB) {
	tb.Helper()
	for _, k := range EnvVars {
		tb.Setenv(k, "")
		os.Unsetenv(k)
	}
	for k, v := range p.Env {
		tb.Setenv(k, v)
	}
}

// Capabilities returns what an interactive session of this emulator would
// report at the given width.
func (p Profile) Capabilities(width int) terminal.Capabilities {
	profile := termenv.ANSI256
	switch {
	case p.Term == terminal.TermDumb:
		profile = termenv.Ascii
	case p.Term.SupportsTrueColor():
		profile = termenv.TrueColor
	}
	return terminal.Capabilities{
		Term:    p.Term,
		Size:    terminal.Size{Cols: width, Rows: terminal.DefaultRows},
		TTY:     true,
		Profile: profile,
		Cursor:  p.Term.SupportsCursorMovement(),
		Unicode: p.Term != terminal.TermDumb,
	}
}
