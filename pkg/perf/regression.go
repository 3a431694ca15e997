// Package perf holds benchmarks and time/allocation budgets for the
// per-run hot paths: table build, overlay, badge rendering and layout.
// Private helpers are prefixed with "pf".
package perf

import (
	"sort"
	"testing"
)

// Threshold is a performance budget for a named operation.
type Threshold struct {
	// Name identifies the operation; it matches a key of the results
	// passed to CheckRegression.
	Name string

	// MaxNs is the maximum allowed nanoseconds per operation. Zero
	// disables the check.
	MaxNs int64

	// MaxAlloc is the maximum allowed bytes allocated per operation.
	// Zero disables the check.
	MaxAlloc int64
}

// Violation records a threshold breach.
type Violation struct {
	Threshold Threshold
	Actual    int64

	// Field is "ns" or "alloc".
	Field string
}

// DefaultThresholds returns the budgets for one fetch. A full run prints
// once, so the budgets are loose; they catch accidental quadratic work
// rather than small slowdowns.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Name: "table_build", MaxNs: 200_000, MaxAlloc: 65536},
		{Name: "overlay_apply", MaxNs: 1_000_000, MaxAlloc: 262144},
		{Name: "badge_render", MaxNs: 200_000, MaxAlloc: 32768},
		{Name: "banner_layout", MaxNs: 5_000_000, MaxAlloc: 1_048_576},
		{Name: "logo_render", MaxNs: 2_000_000, MaxAlloc: 262144},
		{Name: "text_truncate", MaxNs: 50_000, MaxAlloc: 4096},
		{Name: "visible_len", MaxNs: 50_000, MaxAlloc: 2048},
	}
}

// CheckRegression compares named benchmark results against thresholds.
// Results without a threshold and thresholds without a result are
// ignored. Violations come back sorted by threshold name.
func CheckRegression(results map[string]testing.BenchmarkResult, thresholds []Threshold) []Violation {
	if len(results) == 0 || len(thresholds) == 0 {
		return nil
	}

	var violations []Violation
	for _, t := range thresholds {
		r, ok := results[t.Name]
		if !ok {
			continue
		}
		if ns := r.NsPerOp(); t.MaxNs > 0 && ns > t.MaxNs {
			violations = append(violations, Violation{Threshold: t, Actual: ns, Field: "ns"})
		}
		if alloc := r.AllocedBytesPerOp(); t.MaxAlloc > 0 && alloc > t.MaxAlloc {
			violations = append(violations, Violation{Threshold: t, Actual: alloc, Field: "alloc"})
		}
	}
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Threshold.Name < violations[j].Threshold.Name
	})
	return violations
}
