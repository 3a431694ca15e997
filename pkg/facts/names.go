package facts

// Fact names, in the default widget order.
const (
	Username     = "username"
	Hostname     = "hostname"
	Platform     = "platform"
	Shell        = "shell"
	Runtime      = "runtime"
	Internet     = "internet"
	Packages     = "packages"
	Window       = "window"
	Architecture = "architecture"
	CPU          = "cpu"
	Memory       = "memory"
	Storage      = "storage"
	Battery      = "battery"
	Uptime       = "uptime"
	Weather      = "weather"
	Time         = "time"
	Date         = "date"
)

// Order lists every fact name in default render order.
var Order = []string{
	Username, Hostname, Platform, Shell, Runtime, Internet, Packages, Window,
	Architecture, CPU, Memory, Storage, Battery, Uptime, Weather, Time, Date,
}

// Operating system variants carried as the Index of the platform fact.
const (
	OSUnknown = iota
	OSWindows
	OSLinux
	OSMacOS
	OSAndroid
)

// Reachability variants carried as the Index of the internet fact.
const (
	Offline = 0
	Online  = 1
)

// Battery variants: 0-9 are tenths of charge, Charging replaces the level
// while the adapter is plugged in.
const (
	BatteryLevels = 10
	Charging      = 10
)
