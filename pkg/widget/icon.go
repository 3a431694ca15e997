package widget

import (
	"fmt"
	"regexp"
	"strconv"
)

// Icon is a typed glyph reference: a category with an optional variant
// index, or a literal glyph string supplied by configuration. The zero Icon
// is "no icon".
type Icon struct {
	Category string
	Index    int
	Indexed  bool
	Literal  string
}

// Glyph categories. Indexed categories have one glyph per variant.
const (
	IconBattery      = "battery" // indexed: tenths of charge, then charging
	IconStatus       = "status"  // indexed: ok, error, unknown
	IconOS           = "os"      // indexed by facts.OS*
	IconNet          = "net"     // indexed by facts.Offline/Online
	IconUser         = "user"
	IconHost         = "host"
	IconCPU          = "cpu"
	IconRAM          = "ram"
	IconStorage      = "storage"
	IconPackage      = "package"
	IconShell        = "shell"
	IconRuntime      = "runtime"
	IconWindow       = "window"
	IconArchitecture = "architecture"
	IconUptime       = "uptime"
	IconWeather      = "weather"
	IconTime         = "time"
	IconDate         = "date"
	IconSignal       = "signal"
	IconVolume       = "volume"
	IconMute         = "mute"
)

// Status variants.
const (
	StatusOK = iota
	StatusError
	StatusUnknown
)

// Badge frame glyphs (powerline rounded separators).
const (
	FrameLeft  = "\uE0B6"
	FrameRight = "\uE0B4"
)

var indexedGlyphs = map[string][]string{
	IconBattery: {
		"\U000F007A", "\U000F007B", "\U000F007C", "\U000F007D", "\U000F007E",
		"\U000F007F", "\U000F0080", "\U000F0081", "\U000F0082", "\U000F0079",
		"\U000F0084",
	},
	IconStatus: {"\U000F05E0", "\uF057", "\uF059"},
	IconOS:     {"\uF059", "\uE62A", "\U000F0EC0", "\uF302", "\U000F0032"},
	IconNet:    {"\uF4AD", "\uEB34"},
}

var glyphs = map[string]string{
	IconUser:         "\uF007",
	IconHost:         "\uF108",
	IconCPU:          "\uF4BC",
	IconRAM:          "\uE266",
	IconStorage:      "\U000F02CA",
	IconPackage:      "\U000F03D7",
	IconShell:        "\uE795",
	IconRuntime:      "\uE627",
	IconWindow:       "\uF2D0",
	IconArchitecture: "\uF2DB",
	IconUptime:       "\uF252",
	IconWeather:      "\uE302",
	IconTime:         "\uE384",
	IconDate:         "\uF073",
	IconSignal:       "\uF09E",
	IconVolume:       "\U000F057E",
	IconMute:         "\U000F0581",
}

// Glyph returns an icon for a plain category.
func Glyph(category string) Icon {
	return Icon{Category: category}
}

// Indexed returns an icon for variant index of an indexed category.
func Indexed(category string, index int) Icon {
	return Icon{Category: category, Index: index, Indexed: true}
}

// Literal returns an icon that renders s verbatim.
func Literal(s string) Icon {
	return Icon{Literal: s}
}

var indexedIconPattern = regexp.MustCompile(`^([a-z]+)\[(-?\d+)\]$`)

// ParseIcon reads the configuration form of an icon: a category name
// ("cpu"), an indexed category ("battery[3]", negative indexes count from
// the end), or any other string, which is taken as a literal glyph.
func ParseIcon(s string) Icon {
	if s == "" {
		return Icon{}
	}
	if m := indexedIconPattern.FindStringSubmatch(s); m != nil {
		if _, ok := indexedGlyphs[m[1]]; ok {
			n, err := strconv.Atoi(m[2])
			if err == nil {
				return Indexed(m[1], n)
			}
		}
	}
	if _, ok := glyphs[s]; ok {
		return Glyph(s)
	}
	if _, ok := indexedGlyphs[s]; ok {
		return Indexed(s, 0)
	}
	return Literal(s)
}

// IsZero reports whether the icon is unset.
func (i Icon) IsZero() bool {
	return i == Icon{}
}

// Glyph resolves the icon to the string drawn in the badge. Unknown
// categories and out of range indexes resolve to "".
func (i Icon) Glyph() string {
	if i.Literal != "" {
		return i.Literal
	}
	if list, ok := indexedGlyphs[i.Category]; ok {
		idx := i.Index
		if idx < 0 {
			idx += len(list)
		}
		if idx < 0 || idx >= len(list) {
			return ""
		}
		return list[idx]
	}
	return glyphs[i.Category]
}

// String returns the configuration form of the icon.
func (i Icon) String() string {
	switch {
	case i.Literal != "":
		return i.Literal
	case i.Indexed:
		return fmt.Sprintf("%s[%d]", i.Category, i.Index)
	default:
		return i.Category
	}
}
