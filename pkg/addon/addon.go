// Package addon turns user-defined addon entries into widgets. An addon's
// text comes from a literal, a shell command, or a shell script run in an
// embedded interpreter.
package addon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/config"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

// DefaultTimeout bounds exec and script addons without their own timeout.
const DefaultTimeout = 10 * time.Second

var (
	ErrNoSource          = errors.New("addon has no text, exec or script")
	ErrEmptyScript       = errors.New("script file is empty")
	ErrMissingScript     = errors.New("script file not found")
	ErrInconsistentStyle = errors.New("addon sets only one of color and icon")
	ErrEmptyText         = errors.New("addon produced no text")
)

// Source names where an addon's text came from.
type Source int

const (
	SourceText Source = iota
	SourceExec
	SourceScript
)

func (s Source) String() string {
	switch s {
	case SourceExec:
		return "exec"
	case SourceScript:
		return "script"
	}
	return "text"
}

// Error ties a failure to the addon it came from.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("addon %s: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// SourceOf picks the text source by precedence: text, then exec, then
// script.
func SourceOf(e config.AddonEntry) (Source, error) {
	switch {
	case e.Text != "":
		return SourceText, nil
	case strings.TrimSpace(e.Exec) != "":
		return SourceExec, nil
	case strings.TrimSpace(e.Script) != "":
		return SourceScript, nil
	}
	return 0, ErrNoSource
}

// ResolverConfig configures a Resolver.
type ResolverConfig struct {
	// Timeout applies to entries without their own; zero uses DefaultTimeout.
	Timeout time.Duration
	Logger  *slog.Logger
}

// Resolver runs addon entries.
type Resolver struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Resolver{timeout: cfg.Timeout, logger: cfg.Logger}
}

// Resolve produces the widget for one addon entry. Every failure is
// returned as *Error; the caller treats it as fatal.
func (r *Resolver) Resolve(ctx context.Context, name string, e config.AddonEntry) (widget.Widget, error) {
	w, err := r.resolve(ctx, name, e)
	if err != nil {
		return widget.Widget{}, &Error{Name: name, Err: err}
	}
	return w, nil
}

func (r *Resolver) resolve(ctx context.Context, name string, e config.AddonEntry) (widget.Widget, error) {
	w := widget.Widget{Name: name}
	switch {
	case e.Color == "" && e.Icon == "":
		w.Plain = true
	case e.Color != "" && e.Icon != "":
		w.Color = widget.Color(e.Color)
		w.Icon = widget.ParseIcon(e.Icon)
	default:
		return w, ErrInconsistentStyle
	}

	text, err := r.Text(ctx, e)
	if err != nil {
		return w, err
	}
	if text == "" {
		return w, ErrEmptyText
	}
	w.Text = text
	return w, nil
}

// Text resolves the addon's text alone.
func (r *Resolver) Text(ctx context.Context, e config.AddonEntry) (string, error) {
	src, err := SourceOf(e)
	if err != nil {
		return "", err
	}
	if src == SourceText {
		return e.Text, nil
	}

	timeout := r.timeout
	if e.Timeout.Duration > 0 {
		timeout = e.Timeout.Duration
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	var text string
	if src == SourceExec {
		text, err = runExec(ctx, e.Exec)
	} else {
		text, err = runScript(ctx, e.Script)
	}
	r.logger.Debug("addon ran", "source", src, "elapsed", time.Since(start), "err", err)
	if err != nil {
		return "", err
	}
	return text, nil
}
