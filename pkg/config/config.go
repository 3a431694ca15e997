// Package config loads the twidgets configuration file and holds the
// command-line options. The file is JSON by default; TOML and YAML are
// picked by extension. Widget and addon entries keep their file order.
package config

import (
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// Widget states.
const (
	StateActive   = "active"
	StateDisabled = "disabled"
)

var (
	// ErrInvalidState is returned for a widget state other than active or disabled.
	ErrInvalidState = errors.New("invalid widget state")
	// ErrInvalidColor is returned for a color that is neither symbolic nor hex.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidIndex is returned for a negative widget or addon index.
	ErrInvalidIndex = errors.New("invalid index")
)

// File is the parsed configuration file.
type File struct {
	// Path the file was read from. Empty for in-memory configurations.
	Path string `json:"-" toml:"-" yaml:"-"`

	Colors     map[string]string `json:"colors,omitempty" toml:"colors" yaml:"colors"`
	WeatherAPI string            `json:"weather_api,omitempty" toml:"weather_api" yaml:"weather_api"`
	Args       string            `json:"args,omitempty" toml:"args" yaml:"args"`

	Widgets *orderedmap.OrderedMap[string, WidgetEntry] `json:"widgets,omitempty" toml:"-" yaml:"-"`
	Addons  *orderedmap.OrderedMap[string, AddonEntry]  `json:"addons,omitempty" toml:"-" yaml:"-"`
}

// WidgetEntry reconfigures a built-in widget.
type WidgetEntry struct {
	State string `json:"state,omitempty" toml:"state" yaml:"state"`
	Index *int   `json:"index,omitempty" toml:"index" yaml:"index"`
	Text  string `json:"text,omitempty" toml:"text" yaml:"text"`
	Color string `json:"color,omitempty" toml:"color" yaml:"color"`
	Icon  string `json:"icon,omitempty" toml:"icon" yaml:"icon"`
}

// Disabled reports whether the entry removes its widget.
func (e WidgetEntry) Disabled() bool {
	return strings.EqualFold(e.State, StateDisabled)
}

// Complete reports whether the entry overrides text, color and icon together.
func (e WidgetEntry) Complete() bool {
	return e.Text != "" && e.Color != "" && e.Icon != ""
}

// AddonEntry defines a user widget. Exactly one of Text, Exec or Script
// is expected to supply its text.
type AddonEntry struct {
	Text   string `json:"text,omitempty" toml:"text" yaml:"text"`
	Exec   string `json:"exec,omitempty" toml:"exec" yaml:"exec"`
	Script string `json:"script,omitempty" toml:"script" yaml:"script"`
	Color  string `json:"color,omitempty" toml:"color" yaml:"color"`
	Icon   string `json:"icon,omitempty" toml:"icon" yaml:"icon"`
	Index  *int   `json:"index,omitempty" toml:"index" yaml:"index"`

	// Timeout bounds exec and script addons; zero means the default.
	Timeout Duration `json:"timeout,omitempty" toml:"timeout" yaml:"timeout"`
}

// Empty returns a configuration with no entries.
func Empty() *File {
	return &File{
		Colors:  map[string]string{},
		Widgets: orderedmap.New[string, WidgetEntry](),
		Addons:  orderedmap.New[string, AddonEntry](),
	}
}

// Validate checks the entries that can be checked without running anything.
func (f *File) Validate() error {
	for pair := f.Widgets.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		switch strings.ToLower(e.State) {
		case "", StateActive, StateDisabled:
		default:
			return fmt.Errorf("widget %s: %w %q", pair.Key, ErrInvalidState, e.State)
		}
		if e.Index != nil && *e.Index < 0 {
			return fmt.Errorf("widget %s: %w %d", pair.Key, ErrInvalidIndex, *e.Index)
		}
		if e.Color != "" && !widget.Color(e.Color).Valid() {
			return fmt.Errorf("widget %s: %w %q", pair.Key, ErrInvalidColor, e.Color)
		}
	}
	for pair := f.Addons.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		if e.Index != nil && *e.Index < 0 {
			return fmt.Errorf("addon %s: %w %d", pair.Key, ErrInvalidIndex, *e.Index)
		}
		if e.Color != "" && !widget.Color(e.Color).Valid() {
			return fmt.Errorf("addon %s: %w %q", pair.Key, ErrInvalidColor, e.Color)
		}
	}
	return nil
}

// fill replaces nil maps with empty ones.
func (f *File) fill() {
	if f.Colors == nil {
		f.Colors = map[string]string{}
	}
	if f.Widgets == nil {
		f.Widgets = orderedmap.New[string, WidgetEntry]()
	}
	if f.Addons == nil {
		f.Addons = orderedmap.New[string, AddonEntry]()
	}
}
