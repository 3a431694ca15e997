// Package shell identifies the interactive shell twidgets was launched from.
package shell

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Detect returns the current shell name ("zsh", "bash", "powershell", ...)
// or an empty string when it cannot be determined. It checks in order:
//
//  1. $SHELL environment variable (not on Windows)
//  2. /proc/$PPID/comm on Linux
//  3. ps -p $PPID -o comm= on Darwin and the BSDs
//  4. the parent process name via gopsutil on Windows
func Detect(ctx context.Context) string {
	if runtime.GOOS != "windows" {
		if sh := shDetectFromEnv(); sh != "" {
			return sh
		}
	}
	return shDetectFromParent(ctx)
}

// shDetectFromEnv checks the $SHELL environment variable.
func shDetectFromEnv() string {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return ""
	}
	return shParseShellName(shellPath)
}

// shDetectFromParent attempts to identify the parent process's shell.
func shDetectFromParent(ctx context.Context) string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	switch runtime.GOOS {
	case "linux", "android":
		return shDetectLinuxParent(ppid)
	case "windows":
		return shDetectWindowsParent(ctx, ppid)
	default:
		return shDetectPSParent(ctx, ppid)
	}
}

// shDetectLinuxParent reads /proc/<ppid>/comm to identify the parent shell.
func shDetectLinuxParent(ppid int) string {
	data, err := os.ReadFile("/proc/" + strconv.Itoa(ppid) + "/comm")
	if err != nil {
		return ""
	}
	return shParseShellName(strings.TrimSpace(string(data)))
}

// shDetectPSParent uses ps to identify the parent shell on macOS.
func shDetectPSParent(ctx context.Context, ppid int) string {
	out, err := exec.CommandContext(ctx, "ps", "-p", strconv.Itoa(ppid), "-o", "comm=").Output()
	if err != nil {
		return ""
	}
	return shParseShellName(strings.TrimSpace(string(out)))
}

// shDetectWindowsParent walks up from the parent process until it finds a
// known Windows shell, skipping launchers like go.exe or WindowsTerminal.
func shDetectWindowsParent(ctx context.Context, ppid int) string {
	pid := int32(ppid)
	for range 4 {
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			return ""
		}
		name, err := p.NameWithContext(ctx)
		if err != nil {
			return ""
		}
		if sh := shParseWindowsName(name); sh != "" {
			return sh
		}
		parent, err := p.PpidWithContext(ctx)
		if err != nil || parent <= 0 {
			return ""
		}
		pid = parent
	}
	return ""
}

// shParseShellName maps a shell path or binary name (e.g. "/bin/zsh",
// "-bash", "fish") to a lower-case shell name. Login-shell dashes and
// directories are stripped; the name itself is not validated.
func shParseShellName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}
	name = strings.TrimPrefix(name, "-")
	return strings.ToLower(name)
}

// shParseWindowsName maps a Windows process image name to a shell name, or
// returns empty string for anything that is not a shell.
func shParseWindowsName(name string) string {
	n := strings.TrimSuffix(strings.ToLower(name), ".exe")
	switch n {
	case "cmd":
		return "cmd"
	case "powershell":
		return "powershell"
	case "pwsh":
		return "pwsh"
	case "bash", "zsh", "fish", "nu", "elvish", "xonsh":
		return n
	default:
		return ""
	}
}
