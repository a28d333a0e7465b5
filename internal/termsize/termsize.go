// Package termsize reports the size of the terminal attached to a file
// descriptor.
package termsize

import (
	"errors"
	"os"
	"strconv"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the descriptor is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Size is a terminal size in cells.
type Size struct {
	Rows int
	Cols int
}

// DefaultRows is used when the height cannot be determined.
const DefaultRows = 24

// Rows returns the number of rows available for table output on f: the
// terminal height, else $LINES, else DefaultRows. reserve lines (header,
// footer, prompt) are subtracted; at least one row is returned.
func Rows(f *os.File, reserve int) int {
	rows := DefaultRows
	if s, err := Get(f); err == nil && s.Rows > 0 {
		rows = s.Rows
	} else if n, err := strconv.Atoi(os.Getenv("LINES")); err == nil && n > 0 {
		rows = n
	}
	return max(1, rows-reserve)
}

// Get returns the size of the terminal behind f.
func Get(f *os.File) (Size, error) {
	if f == nil {
		return Size{}, ErrNotTerminal
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Size{}, ErrNotTerminal
	}
	return get(fd)
}
