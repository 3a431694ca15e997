package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/config"
)

// NoConfig is printed by Configs for an empty file.
const NoConfig = "No configuration found."

// ConfigsOptions controls the configuration dump.
type ConfigsOptions struct {
	// Highlight enables syntax coloring of the file contents.
	Highlight bool

	// Dark picks the dark variant of the highlight style.
	Dark bool

	Renderer *lipgloss.Renderer
}

// Configs prints the configuration file at path followed by its location,
// or NoConfig when data is blank.
func Configs(w io.Writer, path string, data []byte, opts ConfigsOptions) error {
	src := string(bytes.TrimSpace(data))
	if src == "" {
		_, err := fmt.Fprintln(w, NoConfig)
		return err
	}

	if opts.Highlight {
		style := "catppuccin-latte"
		if opts.Dark {
			style = "catppuccin-frappe"
		}
		if err := quick.Highlight(w, src, config.FormatFor(path).String(), "terminal256", style); err != nil {
			return fmt.Errorf("highlight %s: %w", path, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(w, src); err != nil {
		return err
	}

	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	label := r.NewStyle().Bold(true).Render("file located at:")
	loc := r.NewStyle().Foreground(lipgloss.Color("3")).Underline(true).Render(path)
	_, err := fmt.Fprintf(w, "\n%s %s\n", label, loc)
	return err
}
