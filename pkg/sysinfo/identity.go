package sysinfo

import (
	"context"
	"os"
	"os/user"
	"runtime"
	"strings"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/shell"
)

const siGetprop = "/system/bin/getprop"

// IsAndroid reports whether the process runs on Android (including Termux),
// which Go reports as linux unless built for GOOS=android.
func IsAndroid() bool {
	return runtime.GOOS == "android" || strings.Contains(os.Getenv("ANDROID_ROOT"), "/system")
}

// SystemName returns the lower-case system name used for the platform fact
// and default logo: "android", "linux", "macos", "windows", "freebsd", ...
func SystemName() string {
	if IsAndroid() {
		return "android"
	}
	return siSystemName(runtime.GOOS)
}

func siSystemName(goos string) string {
	if goos == "darwin" {
		return "macos"
	}
	return goos
}

// siOSIndex maps a system name to its platform icon variant.
func siOSIndex(system string) int {
	switch system {
	case "windows":
		return facts.OSWindows
	case "linux":
		return facts.OSLinux
	case "macos":
		return facts.OSMacOS
	case "android":
		return facts.OSAndroid
	default:
		return facts.OSUnknown
	}
}

// --- username ---

type Username struct{ opts Options }

// NewUsername returns the adapter that reports the current login name.
func NewUsername(opts Options) *Username { return &Username{opts} }

func (a *Username) Name() string { return facts.Username }

func (a *Username) Collect(context.Context) facts.Value {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return facts.Text(siStripDomain(u.Username))
	}
	for _, env := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(env); v != "" {
			return facts.Text(v)
		}
	}
	a.opts.logger().Debug("username unavailable")
	return facts.Null
}

// siStripDomain turns a Windows "DOMAIN\user" account into "user".
func siStripDomain(name string) string {
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// --- hostname ---

type Hostname struct{ opts Options }

// NewHostname returns the adapter that reports the lower-case host name, or
// the device model on Android where the kernel host name is "localhost".
func NewHostname(opts Options) *Hostname { return &Hostname{opts} }

func (a *Hostname) Name() string { return facts.Hostname }

func (a *Hostname) Collect(ctx context.Context) facts.Value {
	if IsAndroid() {
		model, err := siRun(ctx, siGetprop, "ro.product.model")
		if err == nil && model != "" {
			return facts.Text(model)
		}
		a.opts.logger().Debug("getprop model failed", "err", err)
	}
	h, err := os.Hostname()
	if err != nil {
		a.opts.logger().Debug("hostname failed", "err", err)
		return facts.Null
	}
	return facts.Text(strings.ToLower(h))
}

// --- platform ---

type Platform struct{ opts Options }

// NewPlatform returns the adapter that reports the system name. Detailed
// mode appends the OS release and any container runtime: "linux 6.1.0 (docker)".
func NewPlatform(opts Options) *Platform { return &Platform{opts} }

func (a *Platform) Name() string { return facts.Platform }

func (a *Platform) Collect(ctx context.Context) facts.Value {
	system := SystemName()
	text := system
	if a.opts.Detailed {
		var release string
		if IsAndroid() {
			release, _ = siRun(ctx, siGetprop, "ro.build.version.release")
		} else {
			release = siKernelVersion(ctx)
		}
		text = siPlatformText(system, release, siContainerType())
	}
	return facts.Indexed(siOSIndex(system), text)
}

func siPlatformText(system, release, container string) string {
	text := system
	if release != "" {
		text += " " + release
	}
	if container != "" {
		text += " (" + container + ")"
	}
	return text
}

// --- shell ---

type Shell struct{ opts Options }

// NewShell returns the adapter that reports the interactive shell name.
func NewShell(opts Options) *Shell { return &Shell{opts} }

func (a *Shell) Name() string { return facts.Shell }

func (a *Shell) Collect(ctx context.Context) facts.Value {
	return facts.Text(shell.Detect(ctx))
}

// --- runtime ---

type Runtime struct{ opts Options }

// NewRuntime returns the adapter that reports the Go runtime version.
func NewRuntime(opts Options) *Runtime { return &Runtime{opts} }

func (a *Runtime) Name() string { return facts.Runtime }

func (a *Runtime) Collect(context.Context) facts.Value {
	return facts.Text(siRuntimeText(runtime.Version(), a.opts.Detailed))
}

// siRuntimeText renders "1.25.5" (compact) or "go1.25.5" (detailed). Devel
// builds keep the full version string in both modes.
func siRuntimeText(version string, detailed bool) string {
	if detailed || !strings.HasPrefix(version, "go") {
		return version
	}
	return strings.TrimPrefix(version, "go")
}

// --- architecture ---

type Architecture struct{ opts Options }

// NewArchitecture returns the adapter that reports the machine architecture.
func NewArchitecture(opts Options) *Architecture { return &Architecture{opts} }

func (a *Architecture) Name() string { return facts.Architecture }

func (a *Architecture) Collect(context.Context) facts.Value {
	return facts.Text(strings.ToLower(siMachine()))
}
