// Package logo provides the art printed beside or above the widgets: the
// built-in ASCII logos, image logos drawn with half blocks, and palette
// color bars.
package logo

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/palette"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// Logo is a named piece of ASCII art with symbolic colors.
type Logo struct {
	Name   string
	Colors []widget.Color
	Art    []string
}

var (
	mu       sync.RWMutex
	registry = map[string]Logo{}
)

func init() {
	logoRegisterBuiltins()
}

// Get returns the named logo.
func Get(name string) (Logo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	l, ok := registry[strings.ToLower(name)]
	return l, ok
}

// Names returns the logo names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForSystem picks the logo for a system name as reported by
// sysinfo.SystemName, defaulting to linux.
func ForSystem(system string) Logo {
	switch system {
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		system = "bsd"
	}
	if l, ok := Get(system); ok {
		return l
	}
	l, _ := Get("linux")
	return l
}

func logoRegister(l Logo) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(l.Name)] = l
}

var logoMarker = regexp.MustCompile(`\$\{(\d+)\}`)

// Plain returns the art with color markers removed.
func (l Logo) Plain() []string {
	out := make([]string, len(l.Art))
	for i, line := range l.Art {
		out[i] = logoMarker.ReplaceAllString(line, "")
	}
	return out
}

// Width returns the widest art line in terminal cells.
func (l Logo) Width() int {
	w := 0
	for _, line := range l.Plain() {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

// Render styles the art with pal. Every line is padded to Width so the
// block can sit beside other text.
func (l Logo) Render(r *lipgloss.Renderer, pal palette.Palette) []string {
	width := l.Width()
	out := make([]string, len(l.Art))
	for i, line := range l.Art {
		var b strings.Builder
		color := widget.Color("")
		visible := 0
		rest := line
		for rest != "" {
			loc := logoMarker.FindStringSubmatchIndex(rest)
			seg := rest
			if loc != nil {
				seg = rest[:loc[0]]
			}
			if seg != "" {
				b.WriteString(l.style(r, pal, color).Render(seg))
				visible += runewidth.StringWidth(seg)
			}
			if loc == nil {
				break
			}
			n, _ := strconv.Atoi(rest[loc[2]:loc[3]])
			if n >= 1 && n <= len(l.Colors) {
				color = l.Colors[n-1]
			}
			rest = rest[loc[1]:]
		}
		if visible < width {
			b.WriteString(strings.Repeat(" ", width-visible))
		}
		out[i] = b.String()
	}
	return out
}

func (l Logo) style(r *lipgloss.Renderer, pal palette.Palette, c widget.Color) lipgloss.Style {
	s := r.NewStyle()
	if hex := pal.Resolve(c); hex != "" {
		s = s.Foreground(lipgloss.Color(hex)).Bold(true)
	}
	return s
}
