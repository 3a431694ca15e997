//go:build linux

package sysinfo

import (
	"context"
	"os"
)

// siKernelVersionPlatform returns the kernel version on Linux by reading
// /proc/version.
func siKernelVersionPlatform(context.Context) string {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return ""
	}
	return string(data)
}
