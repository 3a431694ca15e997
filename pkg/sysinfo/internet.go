package sysinfo

import (
	"context"
	"net/http"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/facts"
)

// DefaultProbeURL is fetched to decide whether the host is online.
const DefaultProbeURL = "https://1.1.1.1"

// Internet reports "online" when the probe URL answers 200, otherwise
// "offline". It is never null: an unreachable network is a result.
type Internet struct {
	opts Options

	// hasRoute is replaced in tests.
	hasRoute func() bool
}

// NewInternet returns the reachability adapter.
func NewInternet(opts Options) *Internet {
	return &Internet{opts: opts, hasRoute: siHasRoutableInterface}
}

func (a *Internet) Name() string { return facts.Internet }

func (a *Internet) Collect(ctx context.Context) facts.Value {
	if a.online(ctx) {
		return facts.Indexed(facts.Online, "online")
	}
	return facts.Indexed(facts.Offline, "offline")
}

func (a *Internet) online(ctx context.Context) bool {
	if a.hasRoute != nil && !a.hasRoute() {
		a.opts.logger().Debug("no routable interface, skipping probe")
		return false
	}
	url := a.opts.ProbeURL
	if url == "" {
		url = DefaultProbeURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := a.opts.httpClient().Do(req)
	if err != nil {
		a.opts.logger().Debug("internet probe failed", "url", url, "err", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
