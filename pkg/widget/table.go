package widget

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Table is the ordered, name-keyed widget table. Names are unique at all
// times; order is render order. It is not safe for concurrent use: it is
// built and mutated on one goroutine after the collection join.
type Table struct {
	m *orderedmap.OrderedMap[string, Widget]
}

// NewTable returns a table holding ws in order. Later duplicates replace
// earlier entries in place.
func NewTable(ws ...Widget) *Table {
	t := &Table{m: orderedmap.New[string, Widget]()}
	for _, w := range ws {
		t.Set(w)
	}
	return t
}

// Len returns the number of widgets.
func (t *Table) Len() int { return t.m.Len() }

// Get returns the widget with the given name.
func (t *Table) Get(name string) (Widget, bool) {
	return t.m.Get(name)
}

// Has reports whether name is in the table.
func (t *Table) Has(name string) bool {
	_, ok := t.m.Get(name)
	return ok
}

// Set replaces the widget with the same name in place, or appends it.
func (t *Table) Set(w Widget) {
	t.m.Set(w.Name, w)
}

// InsertAt places w at index, removing any prior entry with the same name
// first. index is clamped to [0, Len()] after that removal, so the result
// always has w at min(max(index, 0), Len()-1) and no duplicate names.
func (t *Table) InsertAt(index int, w Widget) {
	t.m.Delete(w.Name)
	index = max(0, min(index, t.m.Len()))

	if index == t.m.Len() {
		t.m.Set(w.Name, w)
		return
	}
	anchor := t.keyAt(index)
	t.m.Set(w.Name, w)
	_ = t.m.MoveBefore(w.Name, anchor)
}

// MoveTo moves an existing widget to index with the same clamping as
// InsertAt. It reports false if name is not in the table.
func (t *Table) MoveTo(name string, index int) bool {
	w, ok := t.m.Get(name)
	if !ok {
		return false
	}
	t.InsertAt(index, w)
	return true
}

// Remove deletes name and reports whether it was present.
func (t *Table) Remove(name string) bool {
	_, ok := t.m.Delete(name)
	return ok
}

// Index returns the position of name, or -1.
func (t *Table) Index(name string) int {
	i := 0
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		if p.Key == name {
			return i
		}
		i++
	}
	return -1
}

// Names returns widget names in order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.m.Len())
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// Widgets returns the widgets in order.
func (t *Table) Widgets() []Widget {
	ws := make([]Widget, 0, t.m.Len())
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		ws = append(ws, p.Value)
	}
	return ws
}

// Renderable returns, in order, only the widgets that produce output.
func (t *Table) Renderable() []Widget {
	var ws []Widget
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		if p.Value.Renderable() {
			ws = append(ws, p.Value)
		}
	}
	return ws
}

// Clone returns an independent copy. Widgets are values, so mutating the
// clone never affects t.
func (t *Table) Clone() *Table {
	return NewTable(t.Widgets()...)
}

func (t *Table) keyAt(index int) string {
	i := 0
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		if i == index {
			return p.Key
		}
		i++
	}
	return ""
}
