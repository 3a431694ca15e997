// Package progress shows a one-line spinner while the facts are collected.
// The spinner is a small bubbletea program on its own output; it never
// reads input and leaves signal handling to the caller.
package progress

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Message is the status text shown next to the spinner.
const Message = "getting information, wait"

// Options configures the spinner line.
type Options struct {
	// Enabled draws the spinner. When false Run only calls fn.
	Enabled bool

	Text  string
	Color lipgloss.TerminalColor
}

// DoneEvent ends the spinner once the wrapped work returns.
type DoneEvent struct {
	Elapsed time.Duration
}

type model struct {
	spinner spinner.Model
	text    string
	done    bool
}

func newModel(r *lipgloss.Renderer, opts Options) model {
	text := opts.Text
	if text == "" {
		text = Message
	}
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if opts.Color != nil {
		s.Style = r.NewStyle().Foreground(opts.Color)
	}
	return model{spinner: s, text: text}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DoneEvent:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View clears the line once the work is done so the fetch output starts
// on a clean row.
func (m model) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.text
}

// Run calls fn and returns its result, drawing the spinner on out for as
// long as fn runs. A spinner that fails to start never affects fn.
func Run[T any](ctx context.Context, out io.Writer, opts Options, fn func(context.Context) T) T {
	if !opts.Enabled {
		return fn(ctx)
	}

	p := tea.NewProgram(newModel(lipgloss.NewRenderer(out), opts),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_, _ = p.Run()
	}()

	start := time.Now()
	res := fn(ctx)

	select {
	case <-stopped:
	default:
		p.Send(DoneEvent{Elapsed: time.Since(start)})
		<-stopped
	}
	return res
}
