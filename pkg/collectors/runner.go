package collectors

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
)

// DefaultTimeout bounds a single collector so that a hung subprocess or
// network call degrades to a null fact instead of blocking the join.
const DefaultTimeout = 10 * time.Second

// RunnerConfig controls a Runner.
type RunnerConfig struct {
	// Timeout bounds each collector. Zero means DefaultTimeout; a negative
	// value disables the bound.
	Timeout time.Duration

	Logger *slog.Logger
}

// Runner executes every registered collector concurrently and joins the
// results. It is used once per process run.
type Runner struct {
	registry *Registry
	cfg      RunnerConfig
	logger   *slog.Logger
}

// NewRunner creates a Runner over the given registry.
func NewRunner(registry *Registry, cfg RunnerConfig) *Runner {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		registry: registry,
		cfg:      cfg,
		logger:   logger,
	}
}

// Collect runs all collectors with a worker pool sized to the number of
// collectors and waits for every one of them. The returned set contains an
// entry for every registered name, Null for those that failed, panicked, or
// timed out. Collect itself never fails.
func (r *Runner) Collect(ctx context.Context) facts.Set {
	names := r.registry.List()

	var (
		mu      sync.Mutex
		results = make(map[string]facts.Value, len(names))
	)

	g := new(errgroup.Group)
	g.SetLimit(max(len(names), 1))

	for _, name := range names {
		c, ok := r.registry.Get(name)
		if !ok {
			continue
		}
		g.Go(func() error {
			status := r.runOne(ctx, c)

			mu.Lock()
			results[status.Name] = status.value
			mu.Unlock()

			r.registry.setStatus(status.CollectorStatus)
			r.logger.Debug("collected fact",
				"fact", status.Name,
				"valid", status.Valid,
				"latency", status.Latency,
				"timed_out", status.TimedOut,
			)
			return nil
		})
	}
	_ = g.Wait()

	return facts.NewSet(results)
}

// Summary lists the facts that came back null in the last Collect, and
// the subset of those that hit the timeout, in registration order.
func (r *Runner) Summary() (null, timedOut []string) {
	for _, st := range r.registry.AllStatus() {
		if st.Valid {
			continue
		}
		null = append(null, st.Name)
		if st.TimedOut {
			timedOut = append(timedOut, st.Name)
		}
	}
	return null, timedOut
}

type runResult struct {
	CollectorStatus
	value facts.Value
}

// runOne executes a single collector, converting panics and timeouts into
// the null value. A collector that ignores its context is abandoned at the
// deadline; whatever it returns later is dropped.
func (r *Runner) runOne(parent context.Context, c Collector) (res runResult) {
	name := c.Name()
	res.Name = name
	start := time.Now()

	ctx := parent
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, r.cfg.Timeout)
		defer cancel()
	}

	done := make(chan runResult, 1)
	go func() {
		var out runResult
		defer func() {
			if p := recover(); p != nil {
				r.logger.Debug("collector panicked", "fact", name, "panic", p)
				out.value = facts.Null
				out.Panicked = true
			}
			done <- out
		}()
		out.value = c.Collect(ctx)
	}()

	select {
	case out := <-done:
		res.value = out.value
		res.Panicked = out.Panicked
		res.TimedOut = ctx.Err() != nil && !res.value.Valid()
	case <-ctx.Done():
		r.logger.Debug("collector abandoned at deadline", "fact", name)
		res.value = facts.Null
		res.TimedOut = true
	}
	res.Latency = time.Since(start)
	res.Valid = res.value.Valid()
	return res
}
