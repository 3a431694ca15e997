package banner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/components"
	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

var sampleLogo = []string{"/\\", "\\/", "||"}

// fakeBadges frames text in brackets: two cells of overhead.
type fakeBadges struct{}

func (fakeBadges) Render(w widget.Widget, maxWidth int) string {
	if !w.Renderable() {
		return ""
	}
	text := w.Text
	if maxWidth > 0 {
		text = components.Truncate(text, max(maxWidth-2, 1))
	}
	return "[" + text + "]"
}

func sampleWidgets(texts ...string) []widget.Widget {
	var ws []widget.Widget
	for _, t := range texts {
		ws = append(ws, widget.Widget{Name: t, Text: t, Plain: true})
	}
	return ws
}

// --- Group tests ---

func TestGroup(t *testing.T) {
	got := Group([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	want := [][]int{{1, 2, 3}, {4, 5, 6}, {7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Group mismatch (-want +got):\n%s", diff)
	}
	if got := Group([]int{1, 2}, 0); len(got) != 2 {
		t.Errorf("Group(column 0) gave %d rows, want 2", len(got))
	}
	if got := Group([]int(nil), 3); got != nil {
		t.Errorf("Group(nil) = %v, want nil", got)
	}
}

// --- Row layout tests ---

func TestLayoutRows(t *testing.T) {
	f := Layout(nil, sampleWidgets("a", "b", "c", "d", "e"), fakeBadges{}, Options{
		Direction: DirectionColumn, Column: 2, ColumnGap: 2, RowGap: 1,
	})
	want := []string{"[a]  [b]", "", "[c]  [d]", "", "[e]"}
	if diff := cmp.Diff(want, f.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutSkipsNullWidgets(t *testing.T) {
	ws := sampleWidgets("a", "b")
	ws = append(ws[:1], widget.Widget{Name: "weather", Color: widget.Yellow, Icon: widget.Glyph(widget.IconWeather)}, ws[1])
	f := Layout(nil, ws, fakeBadges{}, Options{Column: 5, ColumnGap: 1})
	if diff := cmp.Diff([]string{"[a] [b]"}, f.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTruncationFitsWidth(t *testing.T) {
	long := strings.Repeat("x", 60)
	for _, width := range []int{10, 20, 33, 80} {
		for _, logo := range [][]string{nil, sampleLogo} {
			f := Layout(logo, sampleWidgets(long, "short", long), fakeBadges{}, Options{
				Direction: DirectionRow, Column: 3, ColumnGap: 2, Width: width,
			})
			for _, line := range f.Lines() {
				if w := ansi.StringWidth(line); w > width {
					t.Errorf("width=%d logo=%v: line %q is %d cells", width, logo != nil, line, w)
				}
			}
		}
	}
}

func TestTruncationEllipsisExact(t *testing.T) {
	f := Layout(nil, sampleWidgets(strings.Repeat("y", 40)), fakeBadges{}, Options{
		Direction: DirectionColumn, Column: 1, ColumnGap: 1, Width: 20,
	})
	line := f.Rows[0]
	if ansi.StringWidth(line) != 20 {
		t.Errorf("width = %d, want 20", ansi.StringWidth(line))
	}
	if !strings.HasSuffix(line, components.Ellipsis+"]") {
		t.Errorf("line %q should end with an ellipsis", line)
	}
}

func TestAvailableSubtractsLogoInRowDirection(t *testing.T) {
	logoWidth := components.MaxWidth(sampleLogo)
	row := Layout(sampleLogo, nil, fakeBadges{}, Options{Direction: DirectionRow, Width: 40})
	if got, want := row.available(), 40-logoWidth-LogoGap; got != want {
		t.Errorf("row available = %d, want %d", got, want)
	}
	col := Layout(sampleLogo, nil, fakeBadges{}, Options{Direction: DirectionColumn, Width: 40})
	if got := col.available(); got != 40 {
		t.Errorf("column available = %d, want 40", got)
	}
}

// --- Composition tests ---

func TestLinesRowDirectionJoins(t *testing.T) {
	f := Layout(sampleLogo, sampleWidgets("a", "b"), fakeBadges{}, Options{
		Direction: DirectionRow, Column: 1, ColumnGap: 1, RowGap: 0,
	})
	want := []string{"/\\   [a]", "\\/   [b]", "||"}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesRowsTallerThanLogo(t *testing.T) {
	f := Layout([]string{"@@"}, sampleWidgets("a", "b"), fakeBadges{}, Options{
		Direction: DirectionRow, Column: 1, ColumnGap: 1,
	})
	want := []string{"@@   [a]", "     [b]"}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesColumnDirectionCentered(t *testing.T) {
	f := Layout(sampleLogo, sampleWidgets("ab"), fakeBadges{}, Options{
		Direction: DirectionColumn, Align: components.AlignCenter, Column: 1, ColumnGap: 1, Width: 10,
	})
	want := []string{"    /\\", "    \\/", "    ||", "", "   [ab]"}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesCenteredRowGapStaysBlank(t *testing.T) {
	f := Layout(nil, sampleWidgets("a", "b"), fakeBadges{}, Options{
		Direction: DirectionColumn, Align: components.AlignCenter, Column: 1, ColumnGap: 1, RowGap: 1, Width: 9,
	})
	want := []string{"   [a]", "", "   [b]"}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesMarginAndFooter(t *testing.T) {
	f := Layout(nil, sampleWidgets("a"), fakeBadges{}, Options{Column: 1, ColumnGap: 1, Margin: 2}).
		WithFooter("===")
	want := []string{"", "", "[a]", "", "===", "", ""}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesLogoOnly(t *testing.T) {
	f := Layout(sampleLogo, nil, fakeBadges{}, Options{Direction: DirectionRow})
	if diff := cmp.Diff(sampleLogo, f.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRowDirectionStacksWhenLogoLeavesNoRoom(t *testing.T) {
	wide := []string{strings.Repeat("#", 30), strings.Repeat("#", 30)}
	f := Layout(wide, sampleWidgets("abc", "de"), fakeBadges{}, Options{
		Direction: DirectionRow, Column: 2, ColumnGap: 1, Width: 20, Cursor: true,
	})
	if got := f.available(); got != 20 {
		t.Errorf("available = %d, want 20", got)
	}
	want := []string{strings.Repeat("#", 20), strings.Repeat("#", 20), "", "[abc] [de]"}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); strings.Contains(got, ansi.CursorUp(len(wide))) {
		t.Errorf("stacked frame should not move the cursor: %q", got)
	}
}

func TestColumnDirectionClipsWideLogo(t *testing.T) {
	f := Layout([]string{strings.Repeat("@", 15)}, sampleWidgets("a"), fakeBadges{}, Options{
		Direction: DirectionColumn, Column: 1, ColumnGap: 1, Width: 12,
	})
	for _, line := range f.Lines() {
		if w := ansi.StringWidth(line); w > 12 {
			t.Errorf("line %q is %d cells, want <= 12", line, w)
		}
	}
}

// --- Write tests ---

func TestWriteInterleaved(t *testing.T) {
	f := Layout(sampleLogo, sampleWidgets("a"), fakeBadges{}, Options{
		Direction: DirectionRow, Column: 1, ColumnGap: 1, Cursor: true,
	})
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "/\\\n\\/\n||\n" +
		ansi.CursorUp(3) +
		"\r" + ansi.CursorForward(2+LogoGap) + "[a]\n" +
		ansi.CursorDown(2)
	if got := buf.String(); got != want {
		t.Errorf("Write = %q, want %q", got, want)
	}
}

func TestWriteInterleavedBlankRowGap(t *testing.T) {
	f := Layout([]string{"@"}, sampleWidgets("a", "b"), fakeBadges{}, Options{
		Direction: DirectionRow, Column: 1, ColumnGap: 1, RowGap: 1, Cursor: true,
	})
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if strings.Contains(got, ansi.CursorDown(1)) {
		t.Errorf("rows taller than logo should not move down: %q", got)
	}
	if !strings.Contains(got, "\r\n") {
		t.Errorf("row gap should be a bare newline: %q", got)
	}
}

func TestWriteWithoutCursorMatchesLines(t *testing.T) {
	f := Layout(sampleLogo, sampleWidgets("a", "b"), fakeBadges{}, Options{
		Direction: DirectionRow, Column: 2, ColumnGap: 1,
	})
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if want := strings.Join(f.Lines(), "\n") + "\n"; buf.String() != want {
		t.Errorf("Write = %q, want %q", buf.String(), want)
	}
}

func TestFooterClippedToAvailable(t *testing.T) {
	f := Layout(sampleLogo, sampleWidgets("a"), fakeBadges{}, Options{
		Direction: DirectionRow, Column: 1, ColumnGap: 1, Width: 10,
	}).WithFooter(strings.Repeat("#", 20))
	for _, line := range f.Lines() {
		if w := ansi.StringWidth(line); w > 10 {
			t.Errorf("line %q is %d cells, want <= 10", line, w)
		}
	}
}
