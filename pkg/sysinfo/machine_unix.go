//go:build unix

package sysinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// siMachine returns uname's machine field ("x86_64", "aarch64", "arm64").
func siMachine() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return runtime.GOARCH
	}
	if m := unix.ByteSliceToString(u.Machine[:]); m != "" {
		return m
	}
	return runtime.GOARCH
}
