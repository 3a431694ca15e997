package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/palette"
)

// Option values.
const (
	TextCompact  = "compact"
	TextDetailed = "detailed"

	AlignLeft   = "left"
	AlignCenter = "center"

	DirectionRow    = "row"
	DirectionColumn = "column"

	ShowLogo    = "logo"
	ShowWidgets = "widgets"

	// MaxMargin caps --margin.
	MaxMargin = 10
)

var (
	ColorModes = palette.Modes
	TextModes  = []string{TextDetailed, TextCompact}
	AlignModes = []string{AlignLeft, AlignCenter}
	Directions = []string{DirectionRow, DirectionColumn}
	ShowModes  = []string{ShowLogo, ShowWidgets}
)

// WeatherAPIURL is where an OpenWeather key can be obtained.
const WeatherAPIURL = "https://openweathermap.org/api"

// Options holds every command-line option.
type Options struct {
	Config string

	Color     string
	Text      string
	Align     string // empty until Validate resolves it
	Direction string
	Column    int
	ColumnGap int
	RowGap    int
	Margin    int
	Show      string // empty shows both

	Logo      string
	LogoImage string

	JSON      bool
	Stdout    bool
	NoBadge   bool
	ColorBars bool
	Configs   bool

	Weather         string
	WeatherAPI      string
	BypassSystemAPI bool

	Verbose bool
}

// DefaultOptions returns the options used when no flag is given.
func DefaultOptions() Options {
	return Options{
		Color:     palette.ModeNormal,
		Text:      TextCompact,
		Direction: DirectionRow,
		Column:    5,
		ColumnGap: 2,
		RowGap:    1,
	}
}

// Detailed reports whether detailed text was requested.
func (o Options) Detailed() bool { return o.Text == TextDetailed }

// ShowsLogo reports whether the logo is printed.
func (o Options) ShowsLogo() bool { return o.Show == "" || o.Show == ShowLogo }

// ShowsWidgets reports whether the widgets are collected and printed.
func (o Options) ShowsWidgets() bool { return o.Show == "" || o.Show == ShowWidgets }

// Validate checks option values and resolves Align and Margin. configPath
// is named in the weather hint.
func (o *Options) Validate(configPath string) error {
	if err := oneOf("color", o.Color, ColorModes); err != nil {
		return err
	}
	if err := oneOf("text", o.Text, TextModes); err != nil {
		return err
	}
	if err := oneOf("direction", o.Direction, Directions); err != nil {
		return err
	}
	if o.Align != "" {
		if err := oneOf("align", o.Align, AlignModes); err != nil {
			return err
		}
	}
	if o.Show != "" {
		if err := oneOf("show", o.Show, ShowModes); err != nil {
			return err
		}
	}

	if o.Column < 1 {
		return &ValidationError{Msg: "Ensure that the length of the column is at least one."}
	}
	if o.ColumnGap < 1 {
		return &ValidationError{Msg: "Ensure that the length of the column gap is at least one."}
	}
	if o.RowGap < 0 {
		return &ValidationError{Msg: "Ensure that the length of the row gap is not negative."}
	}
	o.Margin = max(0, min(o.Margin, MaxMargin))

	switch {
	case o.Direction == DirectionRow && o.Align != "" && o.Align != AlignLeft:
		return &ValidationError{Msg: fmt.Sprintf(
			"The align: '%s' setting is only compatible with a direction: 'column'.", o.Align)}
	case o.Direction == DirectionRow:
		o.Align = AlignLeft
	case o.Align == "":
		o.Align = AlignCenter
	}

	if o.Weather != "" && o.WeatherAPI == "" {
		return &ValidationError{Msg: fmt.Sprintf(
			"Set Open Weather API_KEY through argument or config file to proceed.\n"+
				"argument: --weather-api <API_KEY>\n"+
				"config file: \"weather_api\": \"<API_KEY>\" at %s\n\n"+
				"Get API_KEY at %s", configPath, WeatherAPIURL)}
	}
	return nil
}

// ApplyFile fills options the configuration file provides and the command
// line left unset. The environment wins over the file.
func (o *Options) ApplyFile(f *File) {
	if o.WeatherAPI == "" {
		o.WeatherAPI = os.Getenv(EnvWeatherAPI)
	}
	if o.WeatherAPI == "" && f != nil {
		o.WeatherAPI = f.WeatherAPI
	}
}

// SplitArgs lexes the configuration's args string the way a POSIX shell
// would. Parameter expansions resolve to empty strings.
func SplitArgs(args string) ([]string, error) {
	if strings.TrimSpace(args) == "" {
		return nil, nil
	}
	fields, err := shell.Fields(args, func(string) string { return "" })
	if err != nil {
		return nil, fmt.Errorf("args: %w", err)
	}
	return fields, nil
}

func oneOf(flag, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return &ValidationError{Msg: fmt.Sprintf(
		"invalid value '%s' for --%s (choose from %s)", value, flag, strings.Join(allowed, ", "))}
}
