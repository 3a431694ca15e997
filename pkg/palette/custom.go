package palette

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// MissingColorsError lists the accents a custom palette left unset.
type MissingColorsError struct {
	Names []string
}

func (e *MissingColorsError) Error() string {
	return fmt.Sprintf("color [%s] is not configured", strings.Join(e.Names, ", "))
}

// InvalidColorError reports a custom color that is not a hex value.
type InvalidColorError struct {
	Name  string
	Value string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("color %s: %q is not a hex color", e.Name, e.Value)
}

// Custom builds a palette from the configuration's colors map. All six
// accents must be present; white and black may be overridden too.
func Custom(colors map[string]string) (Palette, error) {
	p := Palette{Name: ModeCustom, White: White, Black: Black}
	var missing []string
	for _, c := range widget.Accents {
		hex := strings.TrimSpace(colors[string(c)])
		if hex == "" {
			missing = append(missing, string(c))
			continue
		}
		if !widget.Color(hex).IsHex() {
			return Palette{}, &InvalidColorError{Name: string(c), Value: hex}
		}
		p.plSet(c, hex)
	}
	if len(missing) > 0 {
		return Palette{}, &MissingColorsError{Names: missing}
	}
	for _, c := range []widget.Color{widget.White, widget.Black} {
		if hex := strings.TrimSpace(colors[string(c)]); hex != "" {
			if !widget.Color(hex).IsHex() {
				return Palette{}, &InvalidColorError{Name: string(c), Value: hex}
			}
			p.plSet(c, hex)
		}
	}
	return p, nil
}
