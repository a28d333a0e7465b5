//go:build !unix

package termsize

import (
	"fmt"

	"golang.org/x/term"
)

func get(fd int) (Size, error) {
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %w", ErrNotTerminal, err)
	}
	return Size{Rows: rows, Cols: cols}, nil
}
