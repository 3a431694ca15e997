package sysinfo

import (
	"context"
	"fmt"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
)

// Packages reports the installed package count of the first package
// manager found on the host, suffixed with the manager: "1432 dpkg".
type Packages struct{ opts Options }

// NewPackages returns the package count adapter.
func NewPackages(opts Options) *Packages { return &Packages{opts} }

func (a *Packages) Name() string { return facts.Packages }

func (a *Packages) Collect(ctx context.Context) facts.Value {
	n, manager, err := siCountPackages(ctx)
	if err != nil {
		a.opts.logger().Debug("package count failed", "err", err)
		return facts.Null
	}
	if n <= 0 {
		return facts.Null
	}
	return facts.Text(fmt.Sprintf("%d %s", n, manager))
}

// siManager is a package manager query whose stdout has one line per
// installed package.
type siManager struct {
	name string
	bin  string
	args []string
}

// siManagers is probed in order; distribution managers come before brew so
// Linuxbrew does not shadow the system count.
var siManagers = []siManager{
	{name: "dpkg", bin: "dpkg-query", args: []string{"-f", "${binary:Package}\n", "-W"}},
	{name: "pacman", bin: "pacman", args: []string{"-Qq"}},
	{name: "rpm", bin: "rpm", args: []string{"-qa"}},
	{name: "apk", bin: "apk", args: []string{"info"}},
	{name: "xbps", bin: "xbps-query", args: []string{"-l"}},
	{name: "pkg", bin: "pkg", args: []string{"info", "-q"}},
	{name: "brew", bin: "brew", args: []string{"list", "-1"}},
}

// siCountWithManagers returns the count from the first manager that is
// installed and lists at least one package.
func siCountWithManagers(ctx context.Context, managers []siManager) (int, string, error) {
	var lastErr error
	for _, m := range managers {
		if _, err := siLookPath(m.bin); err != nil {
			continue
		}
		out, err := siRun(ctx, m.bin, m.args...)
		if err != nil {
			lastErr = err
			continue
		}
		if n := siCountLines(out); n > 0 {
			return n, m.name, nil
		}
	}
	if lastErr != nil {
		return 0, "", lastErr
	}
	return 0, "", fmt.Errorf("no package manager found")
}
