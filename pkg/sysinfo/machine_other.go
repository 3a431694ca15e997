//go:build !unix

package sysinfo

import "runtime"

// siMachine returns the Go architecture name where uname is unavailable.
func siMachine() string {
	return runtime.GOARCH
}
