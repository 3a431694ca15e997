package termtest

import "gitlab.com/tinyland/lab/terminal-widgets/pkg/terminal"

// Compat statuses.
const (
	StatusFull     = "full"
	StatusDegraded = "degraded"
)

// CompatResult describes how one output feature behaves on a terminal.
type CompatResult struct {
	Feature    string
	Terminal   string
	Status     string
	Workaround string // what is drawn instead when degraded
}

// Features returns the output features that vary by terminal.
func Features() []string {
	return []string{"truecolor", "cursor_interleave", "badge_frames", "halfblock_logo"}
}

// CheckCompat evaluates a profile against every feature.
func CheckCompat(p Profile) []CompatResult {
	features := Features()
	results := make([]CompatResult, 0, len(features))
	for _, f := range features {
		results = append(results, ttCheckFeature(f, p))
	}
	return results
}

func ttCheckFeature(feature string, p Profile) CompatResult {
	r := CompatResult{Feature: feature, Terminal: p.Name, Status: StatusFull}
	caps := p.Capabilities(terminal.DefaultCols)

	switch feature {
	case "truecolor":
		if !p.Term.SupportsTrueColor() {
			r.Status = StatusDegraded
			r.Workaround = "palette mapped to the nearest 256-color index"
		}
	case "cursor_interleave":
		if !caps.Cursor {
			r.Status = StatusDegraded
			r.Workaround = "logo and rows joined line by line"
		}
	case "badge_frames", "halfblock_logo":
		if !caps.Unicode {
			r.Status = StatusDegraded
			r.Workaround = "--no-badge and a built-in ASCII logo"
		}
	}
	return r
}
