package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/cache"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/collectors"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/terminal"
)

const sampleCgroupDocker = `12:devices:/docker/abc123def456
11:memory:/docker/abc123def456
0::/docker/abc123def456`

const sampleCgroupLXC = `12:devices:/lxc/mycontainer
0::/lxc/mycontainer`

const sampleCgroupHost = `12:devices:/
0::/init.scope`

const sampleCgroupPodman = `0::/machine.slice/libpod-abc123.scope`

const sampleTermuxBattery = `{
  "health": "GOOD",
  "percentage": 45,
  "plugged": "UNPLUGGED",
  "status": "DISCHARGING",
  "temperature": 29.5
}`

const sampleWeather = `{
  "weather": [{"id": 804, "main": "Clouds", "description": "overcast clouds"}],
  "main": {"temp": 11.6, "feels_like": 10.9},
  "name": "London"
}`

// --- Subprocess fakes ---

// fakeCommand makes siCommand run this test binary, which prints the output
// configured for the requested tool name. Tools missing from outputs exit 1.
func fakeCommand(t *testing.T, outputs map[string]string) {
	t.Helper()
	origCmd, origLook := siCommand, siLookPath
	t.Cleanup(func() { siCommand, siLookPath = origCmd, origLook })

	siLookPath = func(file string) (string, error) {
		if _, ok := outputs[file]; ok {
			return "/fake/" + file, nil
		}
		return "", exec.ErrNotFound
	}
	siCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		out, ok := outputs[name]
		code := "0"
		if !ok {
			code = "1"
		}
		cmd.Env = append(os.Environ(),
			"SYSINFO_HELPER=1",
			"SYSINFO_HELPER_OUT="+out,
			"SYSINFO_HELPER_EXIT="+code,
		)
		return cmd
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("SYSINFO_HELPER") != "1" {
		return
	}
	fmt.Fprint(os.Stdout, os.Getenv("SYSINFO_HELPER_OUT"))
	if os.Getenv("SYSINFO_HELPER_EXIT") != "0" {
		fmt.Fprint(os.Stderr, "tool failed")
		os.Exit(1)
	}
	os.Exit(0)
}

// --- Registration ---

func TestRegisterUsesDefaultOrder(t *testing.T) {
	reg := collectors.NewRegistry()
	if err := Register(reg, Options{}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if diff := cmp.Diff(facts.Order, reg.List()); diff != "" {
		t.Errorf("registered names mismatch (-want +got):\n%s", diff)
	}
}

// --- Identity ---

func TestSystemName(t *testing.T) {
	tests := []struct {
		goos, want string
	}{
		{"darwin", "macos"},
		{"linux", "linux"},
		{"windows", "windows"},
		{"freebsd", "freebsd"},
	}
	for _, tt := range tests {
		if got := siSystemName(tt.goos); got != tt.want {
			t.Errorf("siSystemName(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestOSIndex(t *testing.T) {
	tests := []struct {
		system string
		want   int
	}{
		{"windows", facts.OSWindows},
		{"linux", facts.OSLinux},
		{"macos", facts.OSMacOS},
		{"android", facts.OSAndroid},
		{"plan9", facts.OSUnknown},
	}
	for _, tt := range tests {
		if got := siOSIndex(tt.system); got != tt.want {
			t.Errorf("siOSIndex(%q) = %d, want %d", tt.system, got, tt.want)
		}
	}
}

func TestIsAndroidFromEnv(t *testing.T) {
	t.Setenv("ANDROID_ROOT", "/system")
	if !IsAndroid() {
		t.Error("ANDROID_ROOT=/system should be detected as android")
	}
	if got := SystemName(); got != "android" {
		t.Errorf("SystemName() = %q, want android", got)
	}
}

func TestStripDomain(t *testing.T) {
	if got := siStripDomain(`CORP\alice`); got != "alice" {
		t.Errorf("siStripDomain = %q, want alice", got)
	}
	if got := siStripDomain("bob"); got != "bob" {
		t.Errorf("siStripDomain = %q, want bob", got)
	}
}

func TestPlatformText(t *testing.T) {
	tests := []struct {
		system, release, container, want string
	}{
		{"linux", "6.1.0-27-amd64", "", "linux 6.1.0-27-amd64"},
		{"linux", "6.1.0", "docker", "linux 6.1.0 (docker)"},
		{"macos", "", "", "macos"},
	}
	for _, tt := range tests {
		if got := siPlatformText(tt.system, tt.release, tt.container); got != tt.want {
			t.Errorf("siPlatformText = %q, want %q", got, tt.want)
		}
	}
}

func TestPlatformCompactIsIndexed(t *testing.T) {
	t.Setenv("ANDROID_ROOT", "")
	v := NewPlatform(Options{}).Collect(context.Background())
	if !v.Valid() || !v.Indexed {
		t.Fatalf("platform = %+v, want indexed value", v)
	}
	if v.Text != SystemName() {
		t.Errorf("platform text = %q, want %q", v.Text, SystemName())
	}
}

func TestRuntimeText(t *testing.T) {
	if got := siRuntimeText("go1.25.5", false); got != "1.25.5" {
		t.Errorf("compact = %q, want 1.25.5", got)
	}
	if got := siRuntimeText("go1.25.5", true); got != "go1.25.5" {
		t.Errorf("detailed = %q, want go1.25.5", got)
	}
	if got := siRuntimeText("devel +abc", false); got != "devel +abc" {
		t.Errorf("devel = %q", got)
	}
}

func TestUsernameAndHostnameOnHost(t *testing.T) {
	t.Setenv("ANDROID_ROOT", "")
	if v := NewUsername(Options{}).Collect(context.Background()); v.Valid() && v.Text == "" {
		t.Error("username valid but empty")
	}
	v := NewHostname(Options{}).Collect(context.Background())
	if v.Valid() && v.Text != strings.ToLower(v.Text) {
		t.Errorf("hostname %q is not lower case", v.Text)
	}
}

func TestArchitectureNonEmpty(t *testing.T) {
	v := NewArchitecture(Options{}).Collect(context.Background())
	if !v.Valid() {
		t.Fatal("architecture should always resolve")
	}
}

// --- Kernel ---

func TestParseKernelVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Linux version 6.1.0-27-amd64 (debian-kernel@lists.debian.org) (gcc-12 (Debian 12.2.0-14) 12.2.0) #1 SMP", "6.1.0-27-amd64"},
		{"23.1.0\n", "23.1.0"},
		{"", ""},
		{"   \n", ""},
	}
	for _, tt := range tests {
		if got := siParseKernelVersion(tt.in); got != tt.want {
			t.Errorf("siParseKernelVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// --- Container ---

func TestParseCgroup(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"docker", sampleCgroupDocker, "docker"},
		{"lxc", sampleCgroupLXC, "lxc"},
		{"host", sampleCgroupHost, ""},
		{"podman", sampleCgroupPodman, "podman"},
	}
	for _, tt := range tests {
		if got := siParseCgroup(tt.in); got != tt.want {
			t.Errorf("siParseCgroup(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDetectContainerFromEnv(t *testing.T) {
	t.Setenv("KUBERNETES_SERVICE_HOST", "")
	t.Setenv("WSL_DISTRO_NAME", "Ubuntu")
	if got := siContainerType(); got != "wsl" {
		t.Errorf("siContainerType() = %q, want %q", got, "wsl")
	}
}

// --- Network ---

func TestExtractIP(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"192.168.1.10/24", "192.168.1.10"},
		{"fe80::1/64", "fe80::1"},
		{"10.0.0.1", "10.0.0.1"},
	}
	for _, tt := range tests {
		if got := siExtractIP(tt.in); got != tt.want {
			t.Errorf("siExtractIP(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsRoutable(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"192.168.1.10", true},
		{"8.8.8.8", true},
		{"2001:db8::1", true},
		{"127.0.0.1", false},
		{"fe80::1", false},
		{"169.254.3.4", false},
		{"garbage", false},
	}
	for _, tt := range tests {
		if got := siIsRoutable(tt.ip); got != tt.want {
			t.Errorf("siIsRoutable(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}
}

// --- Internet ---

func newInternet(url string, route bool) *Internet {
	a := NewInternet(Options{ProbeURL: url})
	a.hasRoute = func() bool { return route }
	return a
}

func TestInternetOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	v := newInternet(srv.URL, true).Collect(context.Background())
	if v.Text != "online" || v.Index != facts.Online {
		t.Errorf("internet = %+v, want online", v)
	}
}

func TestInternetNon200IsOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	v := newInternet(srv.URL, true).Collect(context.Background())
	if v.Text != "offline" || v.Index != facts.Offline || !v.Valid() {
		t.Errorf("internet = %+v, want valid offline", v)
	}
}

func TestInternetNoRouteSkipsProbe(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	v := newInternet(srv.URL, false).Collect(context.Background())
	if v.Text != "offline" {
		t.Errorf("internet = %q, want offline", v.Text)
	}
	if hits.Load() != 0 {
		t.Errorf("probe was sent %d times without a route", hits.Load())
	}
}

func TestInternetCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if v := newInternet(srv.URL, true).Collect(ctx); v.Text != "offline" {
		t.Errorf("internet = %q, want offline after timeout", v.Text)
	}
}

// --- Packages ---

func TestCountWithManagersFirstMatchWins(t *testing.T) {
	fakeCommand(t, map[string]string{
		"pacman": "bash\ncoreutils\nlinux\n",
		"brew":   "git\n",
	})

	n, name, err := siCountWithManagers(context.Background(), siManagers)
	if err != nil {
		t.Fatalf("siCountWithManagers: %v", err)
	}
	if n != 3 || name != "pacman" {
		t.Errorf("got %d %s, want 3 pacman", n, name)
	}
}

func TestCountWithManagersNoneInstalled(t *testing.T) {
	fakeCommand(t, map[string]string{})
	if _, _, err := siCountWithManagers(context.Background(), siManagers); err == nil {
		t.Error("expected error when no manager is installed")
	}
}

func TestCountWithManagersSkipsFailingTool(t *testing.T) {
	fakeCommand(t, map[string]string{"rpm": "a\nb\n"})
	// dpkg-query is "installed" but fails.
	siLookPath = func(file string) (string, error) {
		if file == "dpkg-query" || file == "rpm" {
			return "/fake/" + file, nil
		}
		return "", exec.ErrNotFound
	}

	n, name, err := siCountWithManagers(context.Background(), siManagers)
	if err != nil || n != 2 || name != "rpm" {
		t.Errorf("got %d %q %v, want 2 rpm nil", n, name, err)
	}
}

func TestCountLines(t *testing.T) {
	if got := siCountLines("a\n\n b \n"); got != 2 {
		t.Errorf("siCountLines = %d, want 2", got)
	}
	if got := siCountLines(""); got != 0 {
		t.Errorf("siCountLines(empty) = %d, want 0", got)
	}
}

func TestRunReturnsAtDeadline(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := siRun(ctx, "sh", "-c", "sleep 3; true")
	if err == nil {
		t.Error("siRun should fail when the deadline passes")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("siRun took %v, want it bounded by the deadline", elapsed)
	}
}

// --- Battery ---

func TestBatteryIndex(t *testing.T) {
	tests := []struct {
		st   siBatteryState
		want int
	}{
		{siBatteryState{Percent: 45}, 3},
		{siBatteryState{Percent: 100}, 9},
		{siBatteryState{Percent: 5}, 0},
		{siBatteryState{Percent: 0}, 0},
		{siBatteryState{Percent: 10}, 0},
		{siBatteryState{Percent: 20}, 1},
		{siBatteryState{Percent: 45, Charging: true}, facts.Charging},
	}
	for _, tt := range tests {
		if got := siBatteryIndex(tt.st); got != tt.want {
			t.Errorf("siBatteryIndex(%+v) = %d, want %d", tt.st, got, tt.want)
		}
	}
}

func TestBatteryCollect(t *testing.T) {
	b := NewBattery(Options{})
	b.read = func(context.Context) (siBatteryState, error) {
		return siBatteryState{Percent: 45}, nil
	}
	v := b.Collect(context.Background())
	if v.Index != 3 || v.Text != "45%" || !v.Indexed {
		t.Errorf("battery = %+v, want (3, 45%%)", v)
	}
}

func TestBatteryErrorIsNull(t *testing.T) {
	b := NewBattery(Options{})
	b.read = func(context.Context) (siBatteryState, error) {
		return siBatteryState{}, errors.New("no battery")
	}
	if v := b.Collect(context.Background()); v.Valid() {
		t.Errorf("battery = %+v, want null", v)
	}
}

func TestParseTermuxBattery(t *testing.T) {
	st, err := siParseTermuxBattery(sampleTermuxBattery)
	if err != nil {
		t.Fatalf("siParseTermuxBattery: %v", err)
	}
	if st.Percent != 45 || st.Charging {
		t.Errorf("state = %+v, want 45%% discharging", st)
	}
	if _, err := siParseTermuxBattery("not json"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

// --- Weather ---

func weatherServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		q := r.URL.Query()
		if q.Get("q") != "London" || q.Get("appid") != "KEY" || q.Get("units") != "metric" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestWeatherCompactAndDetailed(t *testing.T) {
	srv, _ := weatherServer(t, http.StatusOK, sampleWeather)

	opts := Options{Weather: "London", WeatherAPI: "KEY", WeatherURL: srv.URL}
	if v := NewWeather(opts).Collect(context.Background()); v.Text != "12°C" {
		t.Errorf("compact weather = %q, want 12°C", v.Text)
	}
	opts.Detailed = true
	if v := NewWeather(opts).Collect(context.Background()); v.Text != "12°C, overcast clouds" {
		t.Errorf("detailed weather = %q", v.Text)
	}
}

func TestWeatherUsesCache(t *testing.T) {
	srv, hits := weatherServer(t, http.StatusOK, sampleWeather)
	store, err := cache.Open(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	opts := Options{Weather: "London", WeatherAPI: "KEY", WeatherURL: srv.URL, Cache: store}
	for i := 0; i < 3; i++ {
		if v := NewWeather(opts).Collect(context.Background()); v.Text != "12°C" {
			t.Fatalf("weather = %q, want 12°C", v.Text)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1", hits.Load())
	}
}

func TestWeatherUnauthorizedIsNull(t *testing.T) {
	srv, _ := weatherServer(t, http.StatusUnauthorized, `{"cod":401}`)
	opts := Options{Weather: "London", WeatherAPI: "KEY", WeatherURL: srv.URL}
	if v := NewWeather(opts).Collect(context.Background()); v.Valid() {
		t.Errorf("weather = %q, want null", v.Text)
	}
}

func TestWeatherWithoutLocationIsNull(t *testing.T) {
	if v := NewWeather(Options{WeatherAPI: "KEY"}).Collect(context.Background()); v.Valid() {
		t.Errorf("weather = %q, want null", v.Text)
	}
}

func TestWeatherTextNegativeZero(t *testing.T) {
	if got := siWeatherText(siWeather{Temp: -0.3}, false); got != "0°C" {
		t.Errorf("siWeatherText(-0.3) = %q, want 0°C", got)
	}
}

// --- Clock and window ---

func TestTimeAndDate(t *testing.T) {
	fixed := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	now := func() time.Time { return fixed }

	tests := []struct {
		name string
		c    collectors.Collector
		want string
	}{
		{"time compact", NewTime(Options{Now: now}), "14:07"},
		{"time detailed", NewTime(Options{Now: now, Detailed: true}), "02:07 PM"},
		{"date compact", NewDate(Options{Now: now}), "Tue, Mar 05"},
		{"date detailed", NewDate(Options{Now: now, Detailed: true}), "Tue, 03/05/24"},
	}
	for _, tt := range tests {
		if got := tt.c.Collect(context.Background()).Text; got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWindow(t *testing.T) {
	w := NewWindow(Options{Window: func() terminal.Size { return terminal.Size{Cols: 120, Rows: 40} }})
	if got := w.Collect(context.Background()).Text; got != "120×40" {
		t.Errorf("window = %q, want 120×40", got)
	}
	w = NewWindow(Options{Window: func() terminal.Size { return terminal.Size{} }})
	if v := w.Collect(context.Background()); v.Valid() {
		t.Errorf("zero size should be null, got %q", v.Text)
	}
}

// --- Preconditions ---

func TestCheckPreconditionsOffAndroid(t *testing.T) {
	if IsAndroid() {
		t.Skip("running on android")
	}
	if err := CheckPreconditions(context.Background()); err != nil {
		t.Errorf("CheckPreconditions() = %v, want nil", err)
	}
}

func TestCheckTermuxAPIMissing(t *testing.T) {
	fakeCommand(t, map[string]string{})
	if err := siCheckTermuxAPI(context.Background()); !errors.Is(err, ErrTermuxAPIMissing) {
		t.Errorf("siCheckTermuxAPI() = %v, want ErrTermuxAPIMissing", err)
	}
}

func TestCheckTermuxAPIPresent(t *testing.T) {
	fakeCommand(t, map[string]string{"am": "Starting service: Intent { cmp=com.termux.api/.KeepAliveService }"})
	if err := siCheckTermuxAPI(context.Background()); err != nil {
		t.Errorf("siCheckTermuxAPI() = %v, want nil", err)
	}
}
