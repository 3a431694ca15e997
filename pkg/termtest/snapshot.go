package termtest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Snapshot captures rendered output for comparison.
type Snapshot struct {
	Name     string
	Terminal string
	Width    int
	Content  string
}

// CaptureSnapshot renders content at the given width.
func CaptureSnapshot(name, terminal string, width int, renderFn func(width int) string) Snapshot {
	return Snapshot{
		Name:     name,
		Terminal: terminal,
		Width:    width,
		Content:  renderFn(width),
	}
}

// Lines returns the content split into lines, without the trailing empty
// line of a final newline.
func (s Snapshot) Lines() []string {
	return strings.Split(strings.TrimSuffix(s.Content, "\n"), "\n")
}

// Plain returns the content with escape sequences removed.
func (s Snapshot) Plain() string {
	return ansi.Strip(s.Content)
}

// Diff is a single line difference between two snapshots.
type Diff struct {
	Line     int // 1-based
	Expected string
	Actual   string
}

// CompareSnapshots returns the lines that differ, ignoring styling.
func CompareSnapshots(expected, actual Snapshot) []Diff {
	e := strings.Split(expected.Plain(), "\n")
	a := strings.Split(actual.Plain(), "\n")

	var diffs []Diff
	for i := range max(len(e), len(a)) {
		var eLine, aLine string
		if i < len(e) {
			eLine = e[i]
		}
		if i < len(a) {
			aLine = a[i]
		}
		if eLine != aLine {
			diffs = append(diffs, Diff{Line: i + 1, Expected: eLine, Actual: aLine})
		}
	}
	return diffs
}

// ValidateWidth reports the first line wider than the snapshot width.
func ValidateWidth(s Snapshot) error {
	for i, line := range s.Lines() {
		if w := ansi.StringWidth(line); w > s.Width {
			return fmt.Errorf("%s on %s: line %d is %d cells wide, limit %d", s.Name, s.Terminal, i+1, w, s.Width)
		}
	}
	return nil
}

// ValidateCursor fails when the content moves the cursor on a profile
// that cannot follow it.
func ValidateCursor(s Snapshot, p Profile) error {
	if p.Term.SupportsCursorMovement() {
		return nil
	}
	if ttHasCursorMove(s.Content) {
		return fmt.Errorf("%s on %s: cursor movement emitted", s.Name, p.Name)
	}
	return nil
}

// ttHasCursorMove reports whether s contains a CUU, CUD or CUF sequence.
func ttHasCursorMove(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] != '\x1b' || s[i+1] != '[' {
			continue
		}
		j := i + 2
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j < len(s) && (s[j] == 'A' || s[j] == 'B' || s[j] == 'C') {
			return true
		}
	}
	return false
}
