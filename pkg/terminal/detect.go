// Package terminal answers the questions the renderer asks about the
// output device: how wide it is, whether it is a TTY that honours cursor
// movement, and which color profile to emit.
//
// Emulator detection is environment inspection only (no query sequences),
// so it costs nothing on the hot path of a shell prompt.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown   Terminal = iota
	TermGhostty            // Ghostty (true color)
	TermKitty              // Kitty (true color)
	TermWezTerm            // WezTerm (true color)
	TermITerm2             // iTerm2 (true color)
	TermAlacritty          // Alacritty (true color)
	TermTilix              // Tilix (VTE-based, true color)
	TermGNOME              // GNOME Terminal (VTE-based, true color)
	TermTmux               // tmux multiplexer
	TermScreen             // GNU Screen multiplexer
	TermVSCode             // VS Code integrated terminal
	TermEmacs              // Emacs vterm/eat/term
	TermTermux             // Termux on Android
	TermWindows            // Windows Terminal
	TermDumb               // TERM=dumb
	TermGeneric            // Unknown terminal with basic capabilities
)

// terminalNames maps Terminal values to human-readable strings.
var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermTilix:     "tilix",
	TermGNOME:     "gnome-terminal",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermVSCode:    "vscode",
	TermEmacs:     "emacs",
	TermTermux:    "termux",
	TermWindows:   "windows-terminal",
	TermDumb:      "dumb",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsTrueColor reports whether the emulator renders 24-bit color even
// when COLORTERM is not exported (common over SSH and under sudo).
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2, TermAlacritty,
		TermTilix, TermGNOME, TermVSCode, TermTermux, TermWindows:
		return true
	default:
		return false
	}
}

// SupportsCursorMovement reports whether relative cursor movement (CUU, CUD,
// CUF) is reliable. Emacs term modes and dumb terminals print the escape
// sequences literally or lose track of the cursor, so badges must be joined
// beside the logo instead.
func (t Terminal) SupportsCursorMovement() bool {
	switch t {
	case TermEmacs, TermDumb:
		return false
	default:
		return true
	}
}

// Detect identifies the terminal emulator from environment variables,
// ordered by reliability:
//
//  1. TERM=dumb and INSIDE_EMACS, which override everything else
//  2. TERM_PROGRAM
//  3. TERM (xterm-ghostty, xterm-kitty, alacritty, screen)
//  4. Terminal-specific vars (KITTY_WINDOW_ID, WT_SESSION, TERMUX_VERSION, ...)
//  5. VTE_VERSION for VTE-based terminals (GNOME, Tilix)
//  6. TMUX / STY for multiplexers
//  7. Fallback to TermGeneric
func Detect() Terminal {
	if os.Getenv("TERM") == "dumb" {
		return TermDumb
	}
	if os.Getenv("INSIDE_EMACS") != "" {
		return TermEmacs
	}

	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		switch strings.ToLower(tp) {
		case "ghostty":
			return TermGhostty
		case "kitty":
			return TermKitty
		case "wezterm":
			return TermWezTerm
		case "iterm.app":
			return TermITerm2
		case "vscode":
			return TermVSCode
		case "alacritty":
			return TermAlacritty
		case "tmux":
			return TermTmux
		}
	}

	if term := os.Getenv("TERM"); term != "" {
		switch {
		case term == "xterm-ghostty":
			return TermGhostty
		case term == "xterm-kitty":
			return TermKitty
		case strings.HasPrefix(term, "alacritty"):
			return TermAlacritty
		case strings.HasPrefix(term, "screen") && os.Getenv("STY") != "":
			return TermScreen
		}
	}

	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return TermKitty
	case os.Getenv("ITERM_SESSION_ID") != "", os.Getenv("LC_TERMINAL") == "iTerm2":
		return TermITerm2
	case os.Getenv("WEZTERM_EXECUTABLE") != "":
		return TermWezTerm
	case os.Getenv("WT_SESSION") != "":
		return TermWindows
	case os.Getenv("TERMUX_VERSION") != "":
		return TermTermux
	}

	if os.Getenv("VTE_VERSION") != "" {
		if os.Getenv("TILIX_ID") != "" {
			return TermTilix
		}
		return TermGNOME
	}

	if os.Getenv("TMUX") != "" {
		return TermTmux
	}
	if os.Getenv("STY") != "" {
		return TermScreen
	}

	return TermGeneric
}
