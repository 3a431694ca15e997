//go:build !windows

package sysinfo

import "context"

func siCountPackages(ctx context.Context) (int, string, error) {
	return siCountWithManagers(ctx, siManagers)
}
