package collectors

import (
	"context"
	"sync/atomic"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
)

// MockCollector implements Collector for testing. It tracks how many times
// Collect has been called.
type MockCollector struct {
	name      string
	value     facts.Value
	callCount atomic.Int64

	// CollectFunc, if set, overrides the fixed value. This allows tests to
	// block, panic, or observe the context.
	CollectFunc func(ctx context.Context) facts.Value
}

// MockCollectorOption configures a MockCollector.
type MockCollectorOption func(*MockCollector)

// WithValue sets the value returned by Collect.
func WithValue(v facts.Value) MockCollectorOption {
	return func(m *MockCollector) { m.value = v }
}

// WithCollectFunc sets a custom function for Collect.
func WithCollectFunc(fn func(ctx context.Context) facts.Value) MockCollectorOption {
	return func(m *MockCollector) { m.CollectFunc = fn }
}

// NewMockCollector creates a mock collector with the given name and options.
func NewMockCollector(name string, opts ...MockCollectorOption) *MockCollector {
	m := &MockCollector{name: name}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the collector name.
func (m *MockCollector) Name() string { return m.name }

// Collect increments the call counter and returns the configured value, or
// delegates to CollectFunc if set.
func (m *MockCollector) Collect(ctx context.Context) facts.Value {
	m.callCount.Add(1)
	if m.CollectFunc != nil {
		return m.CollectFunc(ctx)
	}
	return m.value
}

// CallCount returns how many times Collect has been called.
func (m *MockCollector) CallCount() int64 {
	return m.callCount.Load()
}
