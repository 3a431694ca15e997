package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Fallback dimensions used when neither the tty nor the environment knows.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Size represents terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries, in order:
//  1. the window size of stdout
//  2. the window size of stderr (in case stdout is piped)
//  3. COLUMNS/LINES environment variables
//  4. 80x24
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s := GetSizeFromFd(f.Fd()); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return getSizeFromEnv()
}

// GetSizeFromFd returns the window size of fd, or a zero Size when fd is not
// a terminal.
func GetSizeFromFd(fd uintptr) Size {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Size{}
	}
	return Size{Cols: w, Rows: h}
}

// getSizeFromEnv reads terminal dimensions from COLUMNS/LINES environment
// variables, falling back to 80x24 defaults.
func getSizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", DefaultCols),
		Rows: envInt("LINES", DefaultRows),
	}
}

// envInt reads an integer from the named environment variable. Returns
// the fallback value if the variable is unset, empty, or not a valid
// positive integer.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
