package sysinfo

import (
	"bytes"
	"context"
	"errors"
	"strings"
)

// Remediation shown when Termux:API is missing.
const (
	TermuxAPIMessage = "Termux:API not found, install to continue."
	TermuxAPIURL     = "https://f-droid.org/en/packages/com.termux.api"
)

// ErrTermuxAPIMissing is returned by CheckPreconditions on Android when the
// Termux:API companion app does not answer.
var ErrTermuxAPIMissing = errors.New("termux api not found")

// CheckPreconditions verifies platform companions the adapters rely on.
// Only Android has one: battery and device facts come from Termux:API.
func CheckPreconditions(ctx context.Context) error {
	if !IsAndroid() {
		return nil
	}
	return siCheckTermuxAPI(ctx)
}

// siCheckTermuxAPI starts the Termux:API keep-alive service. The activity
// manager exits 0 even when the package is missing but prints an error on
// stderr, so any stderr output means the API is absent.
func siCheckTermuxAPI(ctx context.Context) error {
	var stderr bytes.Buffer
	cmd := siCommand(ctx, "am", "startservice", "-n", "com.termux.api/.KeepAliveService")
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return ErrTermuxAPIMissing
	}
	if strings.TrimSpace(stderr.String()) != "" {
		return ErrTermuxAPIMissing
	}
	return nil
}
