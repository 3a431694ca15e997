// Package collectors defines the adapter interface, registry, and fan-out
// runner for twidgets facts. Each fact (cpu, memory, battery, ...) is
// produced by one Collector; the Runner executes all of them concurrently
// once per run and joins the results into a facts.Set.
package collectors

import (
	"context"
	"time"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
)

// Collector is the interface all data sources implement. Implementations live
// in pkg/sysinfo and are registered with the Registry at startup.
type Collector interface {
	// Name returns the fact name this collector produces (e.g., "cpu").
	Name() string

	// Collect produces the fact. Failures are reported as facts.Null; a
	// collector never returns an error to the runner.
	Collect(ctx context.Context) facts.Value
}

// CollectorStatus records the outcome of a collector's last run.
type CollectorStatus struct {
	Name     string
	Valid    bool
	Panicked bool
	TimedOut bool
	Latency  time.Duration
}

// Func adapts a plain function to the Collector interface.
type Func struct {
	FactName string
	Fn       func(ctx context.Context) facts.Value
}

// Name returns the fact name.
func (f Func) Name() string { return f.FactName }

// Collect calls Fn.
func (f Func) Collect(ctx context.Context) facts.Value { return f.Fn(ctx) }

// Static is a collector that always returns the same value. Useful for
// facts computed before the fan-out and for tests.
type Static struct {
	FactName string
	Value    facts.Value
}

// Name returns the fact name.
func (s Static) Name() string { return s.FactName }

// Collect returns the fixed value.
func (s Static) Collect(context.Context) facts.Value { return s.Value }
