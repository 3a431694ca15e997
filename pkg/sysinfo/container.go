package sysinfo

import (
	"os"
	"runtime"
	"strings"
)

// siEnvRuntimes are checked first; the value of CONTAINER (set by podman
// and systemd-nspawn) names the runtime itself.
var siEnvRuntimes = []struct {
	env, name string
}{
	{"KUBERNETES_SERVICE_HOST", "kubernetes"},
	{"WSL_DISTRO_NAME", "wsl"},
	{"WSL_INTEROP", "wsl"},
}

// siSentinelFiles are dropped into the root filesystem by their runtime.
var siSentinelFiles = []struct {
	path, name string
}{
	{"/.dockerenv", "docker"},
	{"/run/.containerenv", "podman"},
}

// siCgroupMarkers map substrings of /proc/1/cgroup to a runtime, first
// match wins.
var siCgroupMarkers = []struct {
	marker, name string
}{
	{"docker", "docker"},
	{"containerd", "docker"},
	{"lxc", "lxc"},
	{"libpod", "podman"},
}

// siContainerType names the container or compatibility layer the process
// runs in ("docker", "podman", "lxc", "kubernetes", "wsl"), or "" on a
// plain host. Detailed platform text appends it.
func siContainerType() string {
	for _, r := range siEnvRuntimes {
		if os.Getenv(r.env) != "" {
			return r.name
		}
	}
	if v := os.Getenv("CONTAINER"); v != "" {
		return strings.ToLower(v)
	}
	for _, s := range siSentinelFiles {
		if info, err := os.Stat(s.path); err == nil && !info.IsDir() {
			return s.name
		}
	}
	if runtime.GOOS != "linux" {
		return ""
	}
	data, err := os.ReadFile("/proc/1/cgroup")
	if err != nil {
		return ""
	}
	return siParseCgroup(string(data))
}

// siParseCgroup matches cgroup content against siCgroupMarkers.
func siParseCgroup(content string) string {
	lower := strings.ToLower(content)
	for _, m := range siCgroupMarkers {
		if strings.Contains(lower, m.marker) {
			return m.name
		}
	}
	return ""
}
