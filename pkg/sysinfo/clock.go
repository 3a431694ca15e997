package sysinfo

import (
	"context"
	"fmt"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/terminal"
)

// Time and date layouts per text mode.
const (
	TimeCompact  = "15:04"
	TimeDetailed = "03:04 PM"
	DateCompact  = "Mon, Jan 02"
	DateDetailed = "Mon, 01/02/06"
)

// Time reports the wall clock.
type Time struct{ opts Options }

// NewTime returns the clock adapter.
func NewTime(opts Options) *Time { return &Time{opts} }

func (a *Time) Name() string { return facts.Time }

func (a *Time) Collect(context.Context) facts.Value {
	layout := TimeCompact
	if a.opts.Detailed {
		layout = TimeDetailed
	}
	return facts.Text(a.opts.now().Format(layout))
}

// Date reports the calendar date.
type Date struct{ opts Options }

// NewDate returns the date adapter.
func NewDate(opts Options) *Date { return &Date{opts} }

func (a *Date) Name() string { return facts.Date }

func (a *Date) Collect(context.Context) facts.Value {
	layout := DateCompact
	if a.opts.Detailed {
		layout = DateDetailed
	}
	return facts.Text(a.opts.now().Format(layout))
}

// Window reports the terminal size as "columns×rows".
type Window struct{ opts Options }

// NewWindow returns the terminal size adapter.
func NewWindow(opts Options) *Window { return &Window{opts} }

func (a *Window) Name() string { return facts.Window }

func (a *Window) Collect(context.Context) facts.Value {
	size := terminal.GetSize
	if a.opts.Window != nil {
		size = a.opts.Window
	}
	s := size()
	if s.Cols <= 0 || s.Rows <= 0 {
		return facts.Null
	}
	return facts.Text(fmt.Sprintf("%d×%d", s.Cols, s.Rows))
}
