package addon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// loadScript returns the script source. An absolute path (or one starting
// with ~/) names a file; anything else is inline source.
func loadScript(script string) (src, name string, err error) {
	path := strings.TrimSpace(script)
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, herr := os.UserHomeDir(); herr == nil {
			path = filepath.Join(home, rest)
		}
	}
	if !filepath.IsAbs(path) {
		return script, "inline", nil
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", path, fmt.Errorf("%w: %s", ErrMissingScript, path)
	case err != nil:
		return "", path, err
	case len(bytes.TrimSpace(data)) == 0:
		return "", path, fmt.Errorf("%w: %s", ErrEmptyScript, path)
	}
	return string(data), path, nil
}

// runScript interprets the script and returns what it wrote to stdout,
// trimmed. Nothing reaches the terminal while it runs.
func runScript(ctx context.Context, script string) (string, error) {
	src, name, err := loadScript(script)
	if err != nil {
		return "", err
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(src), name)
	if err != nil {
		return "", fmt.Errorf("parse script: %w", err)
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(interp.StdIO(nil, &stdout, &stderr))
	if err != nil {
		return "", fmt.Errorf("script interpreter: %w", err)
	}
	if err := runner.Run(ctx, file); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("run script %s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("run script %s: %w", name, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
