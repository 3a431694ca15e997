// Package app runs one fetch: collect facts, build the widget table, apply
// the configuration overlay and print the result in the requested mode.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/addon"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/badge"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/banner"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/cache"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/collectors"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/components"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/config"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/logo"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/output"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/overlay"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/palette"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/progress"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/sysinfo"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/terminal"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// Interrupted is the text of the badge printed on interrupt.
const Interrupted = "interrupted"

// PreconditionError is a platform companion the adapters need that is not
// installed.
type PreconditionError struct {
	Msg string
	URL string
	Err error
}

func (e *PreconditionError) Error() string { return e.Msg }

func (e *PreconditionError) Unwrap() error { return e.Err }

// Config is everything one run needs.
type Config struct {
	Options config.Options
	File    *config.File

	// Caps describes Stdout; Progress is true when Stderr can show the
	// spinner.
	Caps     terminal.Capabilities
	Progress bool

	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Collectors replaces the host adapters when non-nil.
	Collectors []collectors.Collector

	// Random is the source for the random color mode; nil uses the
	// global generator.
	Random palette.Source

	// Cache stores weather responses. Nil disables caching.
	Cache *cache.Store
}

// App is a configured run.
type App struct {
	cfg    Config
	logger *slog.Logger
	lg     *lipgloss.Renderer
	badges *badge.Renderer
}

// New prepares a run. The palette is resolved here so that a bad custom
// palette fails before any work starts.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.File == nil {
		cfg.File = config.Empty()
	}
	if cfg.Stdout == nil {
		cfg.Stdout = io.Discard
	}
	if cfg.Stderr == nil {
		cfg.Stderr = io.Discard
	}

	pal, err := palette.ForMode(cfg.Options.Color, cfg.File.Colors, cfg.Random)
	if err != nil {
		var missing *palette.MissingColorsError
		if errors.As(err, &missing) {
			return nil, &config.ValidationError{Msg: fmt.Sprintf("%s at: %s", missing, cfg.File.Path)}
		}
		return nil, &config.Error{Path: cfg.File.Path, Err: err}
	}

	lg := lipgloss.NewRenderer(cfg.Stdout)
	lg.SetColorProfile(cfg.Caps.Profile)
	return &App{
		cfg:    cfg,
		logger: logger,
		lg:     lg,
		badges: badge.New(cfg.Stdout, badge.Options{
			Palette: pal,
			Profile: cfg.Caps.Profile,
			NoBadge: cfg.Options.NoBadge,
		}),
	}, nil
}

// Run executes the pipeline and writes the result to Stdout.
func (a *App) Run(ctx context.Context) error {
	opts := a.cfg.Options

	var widgets []widget.Widget
	if opts.ShowsWidgets() {
		t, err := a.Table(ctx)
		if err != nil {
			return err
		}
		widgets = t.Widgets()
	}

	switch {
	case opts.JSON:
		return output.JSON(a.cfg.Stdout, widgets)
	case opts.Stdout:
		return output.Plain(a.cfg.Stdout, widgets)
	}

	var art []string
	if opts.ShowsLogo() {
		var err error
		if art, err = a.logo(); err != nil {
			return err
		}
	}
	return a.frame(art, widgets).Write(a.cfg.Stdout)
}

// Table collects the facts and returns the widget table with the
// configuration applied.
func (a *App) Table(ctx context.Context) (*widget.Table, error) {
	if !a.cfg.Options.BypassSystemAPI {
		if err := sysinfo.CheckPreconditions(ctx); err != nil {
			return nil, &PreconditionError{
				Msg: sysinfo.TermuxAPIMessage,
				URL: sysinfo.TermuxAPIURL,
				Err: err,
			}
		}
	}

	runner, err := a.runner()
	if err != nil {
		return nil, err
	}
	set := progress.Run(ctx, a.cfg.Stderr, progress.Options{
		Enabled: a.cfg.Progress && !a.cfg.Options.JSON && !a.cfg.Options.Stdout,
		Color:   lipgloss.Color(a.badges.Palette().Resolve(widget.Sky)),
	}, runner.Collect)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	null, timedOut := runner.Summary()
	a.logger.Debug("collection summary",
		"facts", set.Len(),
		"null", null,
		"timed_out", timedOut,
	)

	resolver := addon.NewResolver(addon.ResolverConfig{Logger: a.logger})
	t, rep, err := overlay.New(resolver, a.logger).Apply(ctx, widget.Build(set), a.cfg.File)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("applied configuration",
		"path", a.cfg.File.Path,
		"disabled", rep.Disabled,
		"moved", rep.Moved,
		"replaced", rep.Replaced,
		"rejected", rep.Rejected,
		"missing", rep.Missing,
		"added", rep.Added,
	)
	return t, nil
}

func (a *App) runner() (*collectors.Runner, error) {
	reg := collectors.NewRegistry()
	if a.cfg.Collectors != nil {
		for _, c := range a.cfg.Collectors {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	} else {
		opts := a.cfg.Options
		err := sysinfo.Register(reg, sysinfo.Options{
			Detailed:   opts.Detailed(),
			Weather:    opts.Weather,
			WeatherAPI: opts.WeatherAPI,
			Cache:      a.cfg.Cache,
			Logger:     a.logger,
		})
		if err != nil {
			return nil, err
		}
	}
	return collectors.NewRunner(reg, collectors.RunnerConfig{Logger: a.logger}), nil
}

// logo returns the rendered logo lines: an image when one is given, a
// named built-in, or the logo of the running system.
func (a *App) logo() ([]string, error) {
	opts := a.cfg.Options
	if opts.LogoImage != "" {
		cols := max(a.cfg.Caps.Size.Cols/3, 1)
		lines, err := logo.ImageFile(opts.LogoImage, cols, logo.DefaultImageRows, a.cfg.Caps.Profile)
		if err != nil {
			return nil, &config.ValidationError{Msg: fmt.Sprintf("cannot draw '%s': %v", opts.LogoImage, err)}
		}
		return lines, nil
	}

	l := logo.ForSystem(sysinfo.SystemName())
	if opts.Logo != "" {
		var ok bool
		if l, ok = logo.Get(opts.Logo); !ok {
			return nil, &config.ValidationError{Msg: fmt.Sprintf(
				"invalid value '%s' for --logo (choose from %s)", opts.Logo, strings.Join(logo.Names(), ", "))}
		}
	}
	return l.Render(a.lg, a.badges.Palette()), nil
}

func (a *App) frame(art []string, widgets []widget.Widget) banner.Frame {
	opts := a.cfg.Options
	f := banner.Layout(art, widgets, a.badges, banner.Options{
		Direction: opts.Direction,
		Align:     components.ParseAlign(opts.Align),
		Column:    opts.Column,
		ColumnGap: opts.ColumnGap,
		RowGap:    opts.RowGap,
		Margin:    opts.Margin,
		Width:     a.cfg.Caps.Size.Cols,
		Cursor:    a.cfg.Caps.Cursor,
	})
	if opts.ColorBars {
		f = f.WithFooter(logo.ColorBars(a.lg, a.badges.Palette()))
	}
	return f
}

// Fail prints err for the user. Precondition failures get an error badge
// and the install link; anything else is printed as is.
func (a *App) Fail(err error) {
	var pre *PreconditionError
	if errors.As(err, &pre) {
		fmt.Fprintf(a.cfg.Stdout, "%s\n%s\n", a.badges.Status(badge.StatusError, pre.Msg), pre.URL)
		return
	}
	fmt.Fprintln(a.cfg.Stderr, err)
}

// Interrupt prints the interrupted badge.
func (a *App) Interrupt() {
	fmt.Fprintf(a.cfg.Stdout, "\n%s\n", a.badges.Status(badge.StatusError, Interrupted))
}
