// Package sysinfo provides the host fact adapters that are not plain
// gopsutil queries: identity (user, host, platform, shell), reachability,
// package counts, battery, weather, terminal window and clock. Every
// adapter swallows its own failures and reports facts.Null; none of them
// returns an error to the runner.
package sysinfo

import (
	"log/slog"
	"net/http"
	"time"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/cache"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/collectors"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/terminal"
)

// Options configures the adapters registered by Register.
type Options struct {
	// Detailed selects the long text forms (kernel release on platform,
	// 12-hour clock, numeric date, core count on cpu).
	Detailed bool

	// Weather is the location passed to OpenWeather. Empty disables the
	// weather fact.
	Weather    string
	WeatherAPI string

	// WeatherURL overrides the OpenWeather endpoint (tests).
	WeatherURL string

	// ProbeURL is fetched by the internet adapter. Default DefaultProbeURL.
	ProbeURL string

	// Cache, when non-nil, stores weather responses.
	Cache *cache.Store

	HTTPClient *http.Client

	// Now and Window replace the wall clock and terminal size (tests).
	Now    func() time.Time
	Window func() terminal.Size

	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient == nil {
		return http.DefaultClient
	}
	return o.HTTPClient
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// Register adds one adapter per fact to reg, in default widget order.
func Register(reg *collectors.Registry, opts Options) error {
	sm := sysmetrics.Config{Detailed: opts.Detailed, Logger: opts.Logger}

	all := []collectors.Collector{
		NewUsername(opts),
		NewHostname(opts),
		NewPlatform(opts),
		NewShell(opts),
		NewRuntime(opts),
		NewInternet(opts),
		NewPackages(opts),
		NewWindow(opts),
		NewArchitecture(opts),
		sysmetrics.NewCPU(sm),
		sysmetrics.NewMemory(sm),
		sysmetrics.NewStorage(sm),
		NewBattery(opts),
		sysmetrics.NewUptime(sm),
		NewWeather(opts),
		NewTime(opts),
		NewDate(opts),
	}
	for _, c := range all {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
