package collectors

import (
	"fmt"
	"sync"
)

// Registry manages a set of named collectors in registration order. It is
// safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	order      []string
	collectors map[string]Collector
	statuses   map[string]*CollectorStatus
}

// NewRegistry returns an empty registry ready for collector registration.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make(map[string]Collector),
		statuses:   make(map[string]*CollectorStatus),
	}
}

// Register adds a collector to the registry. It returns an error if a
// collector with the same name is already registered.
func (r *Registry) Register(c Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.collectors[name]; exists {
		return fmt.Errorf("collector %q already registered", name)
	}

	r.collectors[name] = c
	r.order = append(r.order, name)
	return nil
}

// MustRegister is Register for static wiring; it panics on a duplicate name.
func (r *Registry) MustRegister(cs ...Collector) {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Get returns the collector with the given name, or false if not found.
func (r *Registry) Get(name string) (Collector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collectors[name]
	return c, ok
}

// List returns the registered collector names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered collectors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// AllStatus returns a copy of all recorded statuses in registration order.
func (r *Registry) AllStatus() []CollectorStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]CollectorStatus, 0, len(r.statuses))
	for _, name := range r.order {
		if s, ok := r.statuses[name]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// setStatus records the status for a collector run.
func (r *Registry) setStatus(s CollectorStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collectors[s.Name]; ok {
		r.statuses[s.Name] = &s
	}
}
