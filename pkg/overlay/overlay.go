// Package overlay applies the configuration file's widgets and addons
// sections onto the default widget table.
package overlay

import (
	"context"
	"errors"
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/config"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

var errNoResolver = errors.New("addons configured but no addon resolver")

// AddonResolver produces the widget for an addon entry.
type AddonResolver interface {
	Resolve(ctx context.Context, name string, e config.AddonEntry) (widget.Widget, error)
}

// Report describes what an overlay pass did, for verbose logging and tests.
type Report struct {
	Disabled []string
	Moved    []string
	Replaced []string
	Rejected []string // incomplete overrides
	Missing  []string // entries naming no widget
	Added    []string
}

// Overlay applies configuration onto widget tables.
type Overlay struct {
	addons AddonResolver
	logger *slog.Logger
}

// New creates an Overlay. addons may be nil when the file has no addons.
func New(addons AddonResolver, logger *slog.Logger) *Overlay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Overlay{addons: addons, logger: logger}
}

// Apply returns a new table with f applied to t; t is never modified. Any
// failure aborts the whole pass and comes back as *config.Error naming the
// configuration path.
//
// Widget entries run first, in file order: a disabled entry removes its
// widget, an entry with an index moves it, any other entry replaces text,
// color and icon together or is rejected. Addons run after, skipping names
// that were disabled, each inserted at its index or at the end.
func (o *Overlay) Apply(ctx context.Context, t *widget.Table, f *config.File) (*widget.Table, Report, error) {
	out := t.Clone()
	var rep Report
	if f == nil {
		return out, rep, nil
	}

	disabled := map[string]bool{}
	for pair := oldestWidget(f); pair != nil; pair = pair.Next() {
		name, e := pair.Key, pair.Value
		if e.Disabled() {
			disabled[name] = true
			if out.Remove(name) {
				rep.Disabled = append(rep.Disabled, name)
			}
			continue
		}
		if !out.Has(name) {
			rep.Missing = append(rep.Missing, name)
			o.logger.Debug("config entry names no widget", "widget", name)
			continue
		}
		if e.Index != nil {
			out.MoveTo(name, *e.Index)
			rep.Moved = append(rep.Moved, name)
			continue
		}
		if applyOverride(out, name, e) {
			rep.Replaced = append(rep.Replaced, name)
		} else if e.Text != "" || e.Color != "" || e.Icon != "" {
			rep.Rejected = append(rep.Rejected, name)
			o.logger.Warn("ignoring partial widget override; text, color and icon must be set together",
				"widget", name)
		}
	}

	first := oldestAddon(f)
	if first != nil && o.addons == nil {
		return t, Report{}, &config.Error{Path: f.Path, Err: errNoResolver}
	}
	for pair := first; pair != nil; pair = pair.Next() {
		name, e := pair.Key, pair.Value
		if disabled[name] {
			continue
		}
		w, err := o.addons.Resolve(ctx, name, e)
		if err != nil {
			return t, Report{}, &config.Error{Path: f.Path, Err: err}
		}
		index := out.Len()
		if e.Index != nil {
			index = *e.Index
		}
		out.InsertAt(index, w)
		rep.Added = append(rep.Added, name)
	}

	return out, rep, nil
}

// applyOverride replaces the widget's triple when the entry is complete.
func applyOverride(t *widget.Table, name string, e config.WidgetEntry) bool {
	if !e.Complete() {
		return false
	}
	w, _ := t.Get(name)
	w.Text = e.Text
	w.Color = widget.Color(e.Color)
	w.Icon = widget.ParseIcon(e.Icon)
	w.Plain = false
	t.Set(w)
	return true
}

func oldestWidget(f *config.File) *orderedmap.Pair[string, config.WidgetEntry] {
	if f.Widgets == nil {
		return nil
	}
	return f.Widgets.Oldest()
}

func oldestAddon(f *config.File) *orderedmap.Pair[string, config.AddonEntry] {
	if f.Addons == nil {
		return nil
	}
	return f.Addons.Oldest()
}
