// Package palette resolves the symbolic widget colors to hex values. A
// palette is chosen per run by color mode: two fixed sets, a random set, or
// a custom set read from the configuration file.
package palette

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// Color modes accepted by --color.
const (
	ModeNormal = "normal"
	ModeVivid  = "vivid"
	ModeRandom = "random"
	ModeCustom = "custom"
)

// Modes lists the color modes in help order.
var Modes = []string{ModeNormal, ModeVivid, ModeRandom, ModeCustom}

// Neutral colors shared by every palette.
const (
	White = "#d6d6d6"
	Black = "#505050"
)

// Palette maps each symbolic color to a hex value.
type Palette struct {
	Name string

	// Accents
	Red    string
	Green  string
	Yellow string
	Sky    string
	Purple string
	Cyan   string

	// Neutrals
	White string
	Black string
}

var (
	mu       sync.RWMutex
	registry = map[string]Palette{}
)

func init() {
	plRegisterBuiltins()
}

// Get returns a named fixed palette, falling back to normal if not found.
func Get(name string) Palette {
	mu.RLock()
	defer mu.RUnlock()
	if p, ok := registry[strings.ToLower(name)]; ok {
		return p
	}
	return registry[ModeNormal]
}

// Names returns the registered fixed palettes sorted alphabetically.
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

// Resolve returns the hex value of c. Hex literals pass through unchanged;
// an empty or unknown color resolves to "".
func (p Palette) Resolve(c widget.Color) string {
	switch c {
	case widget.Red:
		return p.Red
	case widget.Green:
		return p.Green
	case widget.Yellow:
		return p.Yellow
	case widget.Sky:
		return p.Sky
	case widget.Purple:
		return p.Purple
	case widget.Cyan:
		return p.Cyan
	case widget.White:
		return p.White
	case widget.Black:
		return p.Black
	}
	if c.IsHex() {
		return string(c)
	}
	return ""
}

// Accents returns the six accent hex values in widget.Accents order.
func (p Palette) Accents() []string {
	out := make([]string, 0, len(widget.Accents))
	for _, c := range widget.Accents {
		out = append(out, p.Resolve(c))
	}
	return out
}

// plSet assigns hex to the accent named by c.
func (p *Palette) plSet(c widget.Color, hex string) {
	switch c {
	case widget.Red:
		p.Red = hex
	case widget.Green:
		p.Green = hex
	case widget.Yellow:
		p.Yellow = hex
	case widget.Sky:
		p.Sky = hex
	case widget.Purple:
		p.Purple = hex
	case widget.Cyan:
		p.Cyan = hex
	case widget.White:
		p.White = hex
	case widget.Black:
		p.Black = hex
	}
}

// plFromAccents builds a palette from six hex values in widget.Accents order.
func plFromAccents(name string, hexes []string) Palette {
	p := Palette{Name: name, White: White, Black: Black}
	for i, c := range widget.Accents {
		if i < len(hexes) {
			p.plSet(c, hexes[i])
		}
	}
	return p
}

// plRegister adds a palette to the registry under its lowercase name.
func plRegister(p Palette) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(p.Name)] = p
}

// ForMode picks the palette for a color mode. custom reads colors (the
// configuration's color map); random draws from src.
func ForMode(mode string, colors map[string]string, src Source) (Palette, error) {
	switch strings.ToLower(mode) {
	case ModeNormal, ModeVivid:
		return Get(mode), nil
	case ModeRandom:
		return Random(src), nil
	case ModeCustom:
		return Custom(colors)
	}
	return Palette{}, fmt.Errorf("unknown color mode %q", mode)
}
