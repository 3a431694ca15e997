// twidgets prints system facts as colored badges beside an ASCII logo.
//
// Facts are collected concurrently, turned into an ordered widget table,
// reshaped by the configuration file (~/.twidgets.json by default) and laid
// out in rows next to or below the logo.
//
// Usage:
//
//	twidgets [flags]
//
// With no flags the "args" string of the configuration file is used as the
// command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/app"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/cache"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/config"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/output"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/terminal"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// stderr receives diagnostics and the log.
var stderr io.Writer = os.Stderr

// errReported is returned once the failure has already been printed.
var errReported = errors.New("reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	cmd := newRootCmd(args)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	case config.IsUserError(err):
		fmt.Fprintln(stderr, err)
		var cfgErr *config.Error
		if errors.As(err, &cfgErr) && cfgErr.Cause() != "" {
			slog.Debug("configuration error", "cause", cfgErr.Cause())
		}
		return 1
	default:
		fmt.Fprintf(stderr, "twidgets: %v\n", err)
		return 1
	}
}

func newRootCmd(cliArgs []string) *cobra.Command {
	opts := config.DefaultOptions()
	var showVersion bool

	cmd := &cobra.Command{
		Use:           "twidgets",
		Short:         "Show system information as terminal widgets",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "twidgets %s (%s) built %s\n", version, commit, date)
				return nil
			}

			logger := newLogger(opts.Verbose)
			slog.SetDefault(logger)

			path, explicit := config.ResolvePath(opts.Config)
			file, err := config.Load(path, explicit)
			if err != nil {
				return err
			}
			if len(cliArgs) == 0 && file.Args != "" {
				fields, err := config.SplitArgs(file.Args)
				if err != nil {
					return &config.Error{Path: path, Err: err}
				}
				if err := cmd.Flags().Parse(fields); err != nil {
					return &config.Error{Path: path, Err: err}
				}
				// The configured args may turn on -v.
				logger = newLogger(opts.Verbose)
				slog.SetDefault(logger)
			}

			logger.Debug("loaded configuration", "path", path, "explicit", explicit)

			opts.ApplyFile(file)
			if err := opts.Validate(path); err != nil {
				return err
			}

			if opts.Configs {
				return printConfigs(path)
			}
			return fetch(cmd.Context(), opts, file, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Config, "config", "c", "", "configuration file (default ~/"+config.FileName+")")
	f.StringVar(&opts.Color, "color", opts.Color, "color mode: "+strings.Join(config.ColorModes, ", "))
	f.StringVar(&opts.Text, "text", opts.Text, "text mode: "+strings.Join(config.TextModes, ", "))
	f.StringVar(&opts.Align, "align", "", "alignment for column direction: "+strings.Join(config.AlignModes, ", "))
	f.StringVar(&opts.Direction, "direction", opts.Direction, "widget placement: "+strings.Join(config.Directions, ", "))
	f.IntVar(&opts.Column, "column", opts.Column, "widgets per row")
	f.IntVar(&opts.ColumnGap, "column-gap", opts.ColumnGap, "spaces between widgets")
	f.IntVar(&opts.RowGap, "row-gap", opts.RowGap, "blank lines between rows")
	f.IntVar(&opts.Margin, "margin", opts.Margin, fmt.Sprintf("blank lines around the output (max %d)", config.MaxMargin))
	f.StringVar(&opts.Show, "show", "", "print only: "+strings.Join(config.ShowModes, ", "))
	f.StringVar(&opts.Logo, "logo", "", "built-in logo name")
	f.StringVar(&opts.LogoImage, "logo-image", "", "image file drawn as the logo")
	f.BoolVar(&opts.JSON, "json", false, "print widgets as JSON")
	f.BoolVar(&opts.Stdout, "stdout", false, "print widgets as plain lines")
	f.BoolVar(&opts.NoBadge, "no-badge", false, "draw widgets without badge framing")
	f.BoolVar(&opts.ColorBars, "color-bars", false, "print the palette below the widgets")
	f.BoolVar(&opts.Configs, "configs", false, "print the configuration file and exit")
	f.StringVar(&opts.Weather, "weather", "", "location for the weather widget")
	f.StringVar(&opts.WeatherAPI, "weather-api", "", "OpenWeather API key")
	f.BoolVar(&opts.BypassSystemAPI, "bypass-system-api", false, "skip the Termux:API check on Android")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	f.BoolVar(&showVersion, "version", false, "print version and exit")
	cmd.MarkFlagsMutuallyExclusive("json", "stdout")
	cmd.MarkFlagsMutuallyExclusive("logo", "logo-image")
	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return slog.New(log.NewWithOptions(stderr, log.Options{
		Level:  level,
		Prefix: "twidgets",
	}))
}

func printConfigs(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &config.Error{Path: path, Err: err}
	}
	tty := isatty.IsTerminal(os.Stdout.Fd())
	return output.Configs(os.Stdout, path, data, output.ConfigsOptions{
		Highlight: tty,
		Dark:      tty && lipgloss.HasDarkBackground(),
		Renderer:  lipgloss.NewRenderer(os.Stdout),
	})
}

func fetch(ctx context.Context, opts config.Options, file *config.File, logger *slog.Logger) error {
	var store *cache.Store
	if dir, err := cache.DefaultDir(); err == nil {
		if store, err = cache.Open(dir, cache.DefaultTTL); err != nil {
			logger.Debug("cache unavailable", "dir", dir, "error", err)
		}
	}

	a, err := app.New(app.Config{
		Options:  opts,
		File:     file,
		Caps:     terminal.DetectCapabilities(os.Stdout),
		Progress: isatty.IsTerminal(os.Stderr.Fd()),
		Stdout:   os.Stdout,
		Stderr:   stderr,
		Logger:   logger,
		Cache:    store,
	})
	if err != nil {
		return err
	}

	err = a.Run(ctx)
	if ctx.Err() != nil {
		a.Interrupt()
		return nil
	}
	if err != nil {
		a.Fail(err)
		return errReported
	}
	return nil
}
