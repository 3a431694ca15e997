// Package facts defines the value produced by a data-source adapter and the
// joined set handed to the widget builder once every adapter has returned.
package facts

import "sort"

// Value is the result of one adapter. The zero Value is the null fact: the
// adapter failed or the fact does not apply to this host.
type Value struct {
	Text    string
	Index   int  // icon variant for iconographic facts (battery level, weather)
	Indexed bool // Index is meaningful
	valid   bool
}

// Null is the failure marker returned by adapters.
var Null = Value{}

// Text returns a plain string fact. An empty string is treated as null.
func Text(s string) Value {
	if s == "" {
		return Null
	}
	return Value{Text: s, valid: true}
}

// Indexed returns an (index, string) fact such as a battery level.
func Indexed(index int, s string) Value {
	if s == "" {
		return Null
	}
	return Value{Text: s, Index: index, Indexed: true, valid: true}
}

// Valid reports whether the adapter produced a value.
func (v Value) Valid() bool {
	return v.valid
}

// Set is the joined result of a collection pass, keyed by fact name. It is
// built once by the runner and read-only afterwards.
type Set struct {
	values map[string]Value
}

// NewSet copies m into a Set.
func NewSet(m map[string]Value) Set {
	values := make(map[string]Value, len(m))
	for k, v := range m {
		values[k] = v
	}
	return Set{values: values}
}

// Get returns the value for name. Missing names read as Null.
func (s Set) Get(name string) Value {
	return s.values[name]
}

// Has reports whether name was collected at all (possibly as Null).
func (s Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Len returns the number of collected facts.
func (s Set) Len() int {
	return len(s.values)
}

// Names returns the collected fact names, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.values))
	for k := range s.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
