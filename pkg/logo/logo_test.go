package logo

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/palette"
)

func newTestLipgloss(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(profile)
	return r
}

func newTestImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// --- Registry tests ---

func TestNamesIncludeSystems(t *testing.T) {
	names := strings.Join(Names(), ",")
	for _, want := range []string{"android", "linux", "macos", "windows", "pacman", "ghost"} {
		if !strings.Contains(names, want) {
			t.Errorf("Names() = %s, missing %s", names, want)
		}
	}
}

func TestForSystem(t *testing.T) {
	tests := map[string]string{
		"linux":   "linux",
		"macos":   "macos",
		"android": "android",
		"freebsd": "bsd",
		"plan9":   "linux",
	}
	for system, want := range tests {
		if got := ForSystem(system).Name; got != want {
			t.Errorf("ForSystem(%q) = %q, want %q", system, got, want)
		}
	}
}

// --- Render tests ---

func TestPlainDropsMarkers(t *testing.T) {
	for _, name := range Names() {
		l, _ := Get(name)
		for _, line := range l.Plain() {
			if strings.Contains(line, "${") {
				t.Errorf("%s: Plain line %q still has a marker", name, line)
			}
		}
	}
}

func TestRenderPadsToWidth(t *testing.T) {
	pal := palette.Get(palette.ModeNormal)
	for _, profile := range []termenv.Profile{termenv.Ascii, termenv.TrueColor} {
		for _, name := range Names() {
			l, _ := Get(name)
			lines := l.Render(newTestLipgloss(profile), pal)
			if len(lines) != len(l.Art) {
				t.Fatalf("%s: %d lines, want %d", name, len(lines), len(l.Art))
			}
			for i, line := range lines {
				if got := ansi.StringWidth(line); got != l.Width() {
					t.Errorf("%s line %d: width %d, want %d", name, i, got, l.Width())
				}
			}
		}
	}
}

func TestRenderAsciiMatchesPlain(t *testing.T) {
	l, _ := Get("linux")
	lines := l.Render(newTestLipgloss(termenv.Ascii), palette.Get(palette.ModeNormal))
	for i, plain := range l.Plain() {
		if got := strings.TrimRight(ansi.Strip(lines[i]), " "); got != strings.TrimRight(plain, " ") {
			t.Errorf("line %d = %q, want %q", i, got, plain)
		}
	}
}

func TestRenderUsesLogoColors(t *testing.T) {
	l, _ := Get("windows")
	lines := l.Render(newTestLipgloss(termenv.TrueColor), palette.Get(palette.ModeNormal))
	// sky #8AAED2
	if !strings.Contains(lines[0], "138;174;210") {
		t.Errorf("line 0 = %q, want sky foreground", lines[0])
	}
}

func TestWidth(t *testing.T) {
	l := Logo{Art: []string{"${1}ab", "abcd${2}ef", ""}}
	if got := l.Width(); got != runewidth.StringWidth("abcdef") {
		t.Errorf("Width() = %d, want 6", got)
	}
}

// --- Color bar tests ---

func TestColorBars(t *testing.T) {
	got := ColorBars(newTestLipgloss(termenv.TrueColor), palette.Get(palette.ModeNormal))
	if w := ansi.StringWidth(got); w != 8*BarWidth {
		t.Errorf("width = %d, want %d", w, 8*BarWidth)
	}
	if !strings.Contains(got, "223;107;120") {
		t.Error("color bars miss the red accent")
	}
}

// --- Image tests ---

func TestImageHalfblocks(t *testing.T) {
	lines, err := Image(newTestImage(4, 4, color.NRGBA{R: 255, A: 255}), 10, 10, termenv.TrueColor)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if ansi.StringWidth(line) != 4 {
			t.Errorf("line width = %d, want 4", ansi.StringWidth(line))
		}
		if !strings.Contains(line, "▀") {
			t.Errorf("line %q has no half block", line)
		}
	}
}

func TestImageDownscales(t *testing.T) {
	lines, err := Image(newTestImage(200, 100, color.NRGBA{G: 200, A: 255}), 20, 10, termenv.ANSI256)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if len(lines) > 10 {
		t.Errorf("got %d lines, want <= 10", len(lines))
	}
	for _, line := range lines {
		if ansi.StringWidth(line) > 20 {
			t.Errorf("line width %d exceeds 20", ansi.StringWidth(line))
		}
	}
}

func TestImageTransparent(t *testing.T) {
	lines, err := Image(newTestImage(2, 2, color.NRGBA{}), 5, 5, termenv.TrueColor)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0] != "  " {
		t.Errorf("transparent line = %q, want two spaces", lines[0])
	}
}

func TestImageEmpty(t *testing.T) {
	if _, err := Image(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 5, 5, termenv.TrueColor); err == nil {
		t.Error("empty image should fail")
	}
}

func TestImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, newTestImage(6, 6, color.NRGBA{B: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	lines, err := ImageFile(path, 10, 10, termenv.Ascii)
	if err != nil {
		t.Fatalf("ImageFile: %v", err)
	}
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3", len(lines))
	}
	if _, err := ImageFile(filepath.Join(t.TempDir(), "none.png"), 10, 10, termenv.Ascii); err == nil {
		t.Error("missing file should fail")
	}
}
