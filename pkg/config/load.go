package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file in the home directory.
const FileName = ".twidgets.json"

// Environment variables read by ResolvePath and ApplyEnv.
const (
	EnvConfig     = "TWIDGETS_CONFIG"
	EnvWeatherAPI = "TWIDGETS_WEATHER_API"
)

// Format is a configuration file syntax.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "json"
}

// FormatFor picks the syntax from the file extension. Anything that is not
// TOML or YAML is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// DefaultPath returns ~/.twidgets.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// ResolvePath returns the configuration path to use and whether it was
// given explicitly, by flag or by $TWIDGETS_CONFIG.
func ResolvePath(flag string) (path string, explicit bool) {
	if flag != "" {
		return flag, true
	}
	if v := os.Getenv(EnvConfig); v != "" {
		return v, true
	}
	return DefaultPath(), false
}

// Load reads the configuration at path. A missing default file is created
// empty; a missing explicit file is a *NotExistError. Parse and validation
// failures come back as *Error carrying the path.
func Load(path string, explicit bool) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return nil, &NotExistError{Path: path}
		}
		if werr := os.WriteFile(path, nil, 0o644); werr != nil {
			return nil, &Error{Path: path, Err: werr}
		}
		f := Empty()
		f.Path = path
		return f, nil
	}
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	f, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	f.Path = path
	return f, nil
}

// Parse decodes and validates data. Empty or whitespace-only input is an
// empty configuration.
func Parse(data []byte, format Format) (*File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Empty(), nil
	}

	var (
		f   *File
		err error
	)
	switch format {
	case FormatTOML:
		f, err = parseTOML(data)
	case FormatYAML:
		f, err = parseYAML(data)
	default:
		f, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}
	f.fill()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// parseJSON relies on the ordered map's own JSON decoding to keep the
// file order of widgets and addons.
func parseJSON(data []byte) (*File, error) {
	f := &File{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return f, nil
}

type tomlFile struct {
	File
	Widgets map[string]WidgetEntry `toml:"widgets"`
	Addons  map[string]AddonEntry  `toml:"addons"`
}

// parseTOML decodes into plain maps and restores the order from the
// key sequence recorded in the metadata.
func parseTOML(data []byte) (*File, error) {
	var raw tomlFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	f := raw.File
	f.Widgets = orderedmap.New[string, WidgetEntry]()
	f.Addons = orderedmap.New[string, AddonEntry]()
	for _, key := range md.Keys() {
		if len(key) != 2 {
			continue
		}
		switch key[0] {
		case "widgets":
			f.Widgets.Set(key[1], raw.Widgets[key[1]])
		case "addons":
			f.Addons.Set(key[1], raw.Addons[key[1]])
		}
	}
	return &f, nil
}

// parseYAML walks the document node so mapping order survives.
func parseYAML(data []byte) (*File, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	f := &File{}
	if len(doc.Content) == 0 {
		return f, nil
	}
	root := doc.Content[0]
	if err := root.Decode(f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	f.Widgets = orderedmap.New[string, WidgetEntry]()
	f.Addons = orderedmap.New[string, AddonEntry]()
	if w := yamlLookup(root, "widgets"); w != nil {
		if err := yamlEach(w, func(name string, n *yaml.Node) error {
			var e WidgetEntry
			if err := n.Decode(&e); err != nil {
				return err
			}
			f.Widgets.Set(name, e)
			return nil
		}); err != nil {
			return nil, fmt.Errorf("decode yaml widgets: %w", err)
		}
	}
	if a := yamlLookup(root, "addons"); a != nil {
		if err := yamlEach(a, func(name string, n *yaml.Node) error {
			var e AddonEntry
			if err := n.Decode(&e); err != nil {
				return err
			}
			f.Addons.Set(name, e)
			return nil
		}); err != nil {
			return nil, fmt.Errorf("decode yaml addons: %w", err)
		}
	}
	return f, nil
}

func yamlLookup(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func yamlEach(m *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if m.Kind != yaml.MappingNode {
		if m.Tag == "!!null" {
			return nil
		}
		return fmt.Errorf("line %d: expected a mapping", m.Line)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if err := fn(m.Content[i].Value, m.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
