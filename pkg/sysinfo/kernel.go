package sysinfo

import (
	"context"
	"strings"
)

// siKernelVersion returns the kernel release. Platform-specific retrieval is
// handled by siKernelVersionPlatform.
func siKernelVersion(ctx context.Context) string {
	return siParseKernelVersion(siKernelVersionPlatform(ctx))
}

// siParseKernelVersion cleans a raw kernel version string by trimming
// whitespace and stripping common prefixes like "Linux version ".
func siParseKernelVersion(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// /proc/version on Linux returns something like:
	// "Linux version 6.1.0-27-amd64 (debian-kernel@...) (gcc ...) ..."
	if strings.HasPrefix(s, "Linux version ") {
		s = strings.TrimPrefix(s, "Linux version ")
		if idx := strings.IndexByte(s, ' '); idx >= 0 {
			s = s[:idx]
		}
	}

	return s
}
