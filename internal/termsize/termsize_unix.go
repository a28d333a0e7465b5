//go:build unix

package termsize

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func get(fd int) (Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %w", ErrNotTerminal, err)
	}
	return Size{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}
