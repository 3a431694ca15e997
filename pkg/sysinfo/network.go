package sysinfo

import (
	"net"
	"strings"
)

// siHasRoutableInterface reports whether any interface that is up and not a
// loopback carries a global unicast address. Without one there is no point
// waiting on an HTTP probe.
func siHasRoutableInterface() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		// Unknown; let the probe decide.
		return true
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			if siIsRoutable(siExtractIP(addr.String())) {
				return true
			}
		}
	}
	return false
}

// siIsRoutable reports whether ip parses as a global unicast address
// (private ranges count; link-local and loopback do not).
func siIsRoutable(ip string) bool {
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsGlobalUnicast()
}

// siExtractIP strips the CIDR mask from an address string like "192.168.1.1/24".
func siExtractIP(addr string) string {
	if idx := strings.IndexByte(addr, '/'); idx >= 0 {
		return addr[:idx]
	}
	return addr
}
