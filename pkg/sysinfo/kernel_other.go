//go:build !linux && !darwin

package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/host"
)

// siKernelVersionPlatform asks gopsutil on platforms without a cheap file or
// sysctl source (Windows build number, BSD uname release).
func siKernelVersionPlatform(ctx context.Context) string {
	ver, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		return ""
	}
	return ver
}
