//go:build windows

package sysinfo

import (
	"context"

	"golang.org/x/sys/windows/registry"
)

// siUninstallKeys hold one subkey per installed program (64 and 32 bit).
var siUninstallKeys = []string{
	`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
	`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
}

// siCountPackages counts registry uninstall entries, then falls back to
// scoop/choco/winget style managers if they are on PATH.
func siCountPackages(ctx context.Context) (int, string, error) {
	count := 0
	for _, path := range siUninstallKeys {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		subkeys, err := k.ReadSubKeyNames(-1)
		_ = k.Close()
		if err != nil {
			continue
		}
		count += len(subkeys)
	}
	if count > 0 {
		return count, "exe", nil
	}
	return siCountWithManagers(ctx, []siManager{
		{name: "scoop", bin: "scoop", args: []string{"list"}},
		{name: "choco", bin: "choco", args: []string{"list", "--limit-output"}},
	})
}
