//go:build darwin

package sysinfo

import (
	"context"

	"golang.org/x/sys/unix"
)

// siKernelVersionPlatform returns the kernel version on macOS via sysctl.
func siKernelVersionPlatform(context.Context) string {
	ver, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return ""
	}
	return ver
}
