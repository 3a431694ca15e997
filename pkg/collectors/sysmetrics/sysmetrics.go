// Package sysmetrics provides the gopsutil-backed fact adapters: cpu,
// memory, storage and uptime. They work on Darwin, Linux and Windows without
// /proc parsing and degrade to a null fact when a query fails.
package sysmetrics

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
)

// Config controls the text the adapters produce.
type Config struct {
	// Detailed selects the long text forms (core count and clock on cpu,
	// spelled out uptime).
	Detailed bool

	// StoragePath is the mount whose free space is reported. Empty means
	// the root of the current volume.
	StoragePath string

	Logger *slog.Logger
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// --- CPU ---

// CPU reports the processor model.
type CPU struct{ cfg Config }

// NewCPU creates the cpu adapter.
func NewCPU(cfg Config) *CPU { return &CPU{cfg: cfg} }

// Name returns the fact name.
func (c *CPU) Name() string { return facts.CPU }

// Collect queries the first CPU's model name and the logical core count.
func (c *CPU) Collect(ctx context.Context) facts.Value {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		c.cfg.logger().Debug("cpu info failed", "err", err)
	}
	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		c.cfg.logger().Debug("cpu count failed", "err", err)
	}

	var model string
	var mhz float64
	if len(infos) > 0 {
		model = infos[0].ModelName
		mhz = infos[0].Mhz
	}
	return facts.Text(smFormatCPU(model, cores, mhz, c.cfg.Detailed))
}

var (
	smCPUNoise = regexp.MustCompile(`(?i)\((r|tm|c)\)|\b(cpu|processor)\b|\b\d+-core\b|@.*$`)
	smSpaces   = regexp.MustCompile(`\s+`)
)

// smShortCPUName strips vendor marks, clock suffixes and filler words from a
// CPU model name: "Intel(R) Core(TM) i7-8565U CPU @ 1.80GHz" becomes
// "Intel Core i7-8565U".
func smShortCPUName(model string) string {
	s := smCPUNoise.ReplaceAllString(model, " ")
	return strings.TrimSpace(smSpaces.ReplaceAllString(s, " "))
}

// smFormatCPU renders the cpu fact text. An unknown model with a known core
// count still yields "<n> cores".
func smFormatCPU(model string, cores int, mhz float64, detailed bool) string {
	name := smShortCPUName(model)
	if name == "" {
		if cores <= 0 {
			return ""
		}
		return fmt.Sprintf("%d cores", cores)
	}
	if !detailed {
		return name
	}
	if cores > 0 {
		name = fmt.Sprintf("%s (%d)", name, cores)
	}
	if mhz > 0 {
		name = fmt.Sprintf("%s @ %.2fGHz", name, mhz/1000)
	}
	return name
}

// --- Memory ---

// Memory reports used and total physical memory.
type Memory struct{ cfg Config }

// NewMemory creates the memory adapter.
func NewMemory(cfg Config) *Memory { return &Memory{cfg: cfg} }

// Name returns the fact name.
func (m *Memory) Name() string { return facts.Memory }

// Collect queries virtual memory statistics.
func (m *Memory) Collect(ctx context.Context) facts.Value {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		m.cfg.logger().Debug("memory query failed", "err", err)
		return facts.Null
	}
	return facts.Text(smFormatMemory(vm.Used, vm.Total))
}

// smFormatMemory renders "used/total GB", or megabytes for hosts with at most
// 512 MiB of memory.
func smFormatMemory(used, total uint64) string {
	if total == 0 {
		return ""
	}
	const mib = 1024 * 1024
	totalMiB := total / mib
	usedMiB := used / mib
	if totalMiB > 512 {
		return fmt.Sprintf("%.1f/%.0f GB", float64(usedMiB)/1024, float64(totalMiB)/1024)
	}
	return fmt.Sprintf("%d/%d MB", usedMiB, totalMiB)
}

// --- Storage ---

// Storage reports free space on the configured mount.
type Storage struct{ cfg Config }

// NewStorage creates the storage adapter.
func NewStorage(cfg Config) *Storage { return &Storage{cfg: cfg} }

// Name returns the fact name.
func (s *Storage) Name() string { return facts.Storage }

// Collect queries disk usage for the configured path.
func (s *Storage) Collect(ctx context.Context) facts.Value {
	path := s.cfg.StoragePath
	if path == "" {
		path = smRootPath()
	}
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		s.cfg.logger().Debug("disk usage failed", "path", path, "err", err)
		return facts.Null
	}

	text := smFormatSize(usage.Free)
	if runtime.GOOS == "windows" {
		if vol := strings.TrimSuffix(filepath.VolumeName(path), ":"); vol != "" {
			text += " | " + vol
		}
	}
	return facts.Text(text)
}

// smRootPath returns "/" or, on Windows, the root of the current volume.
func smRootPath() string {
	if runtime.GOOS != "windows" {
		return "/"
	}
	wd, err := os.Getwd()
	if err != nil {
		return `C:\`
	}
	return filepath.VolumeName(wd) + `\`
}

// smFormatSize renders a byte count with one decimal and a single-letter
// binary unit: 1536 -> "1.5K", 128849018880 -> "120.0G".
func smFormatSize(b uint64) string {
	units := []string{"B", "K", "M", "G", "T", "P"}
	size := float64(b)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.1f%s", size, units[i])
}

// --- Uptime ---

// Uptime reports time since boot.
type Uptime struct{ cfg Config }

// NewUptime creates the uptime adapter.
func NewUptime(cfg Config) *Uptime { return &Uptime{cfg: cfg} }

// Name returns the fact name.
func (u *Uptime) Name() string { return facts.Uptime }

// Collect queries host uptime.
func (u *Uptime) Collect(ctx context.Context) facts.Value {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		u.cfg.logger().Debug("uptime query failed", "err", err)
		return facts.Null
	}
	d := time.Duration(secs) * time.Second
	if u.cfg.Detailed {
		return facts.Text(smFormatUptimeLong(d))
	}
	return facts.Text(smFormatUptime(d))
}

// smFormatUptime renders the compact form: "2d 5h 30m", "45m".
func smFormatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	return strings.Join(parts, " ")
}

// smFormatUptimeLong renders the detailed form: "2 days, 5 hours, 1 min".
func smFormatUptimeLong(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, smPlural(days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, smPlural(hours)))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d min%s", mins, smPlural(mins)))
	}
	return strings.Join(parts, ", ")
}

func smPlural(n int) string {
	if n != 1 {
		return "s"
	}
	return ""
}
