package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidSort is returned by ParseSort.
var ErrInvalidSort = errors.New("invalid sort specification")

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "+" or "-".
func (d Direction) String() string {
	if d == Descending {
		return "-"
	}
	return "+"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// SortSpec names the active sort column. The zero value means unsorted.
type SortSpec struct {
	Column    string
	Direction Direction
}

// IsZero reports whether no sort is active.
func (s SortSpec) IsZero() bool {
	return s.Column == ""
}

// String returns the "+column" / "-column" form, or "" when unsorted.
func (s SortSpec) String() string {
	if s.IsZero() {
		return ""
	}
	return s.Direction.String() + s.Column
}

// ParseSort parses "+column", "-column" or a bare column (ascending). An
// empty string is the unsorted spec.
func ParseSort(s string) (SortSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortSpec{}, nil
	}

	dir := Ascending
	switch s[0] {
	case '-':
		dir = Descending
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" || strings.ContainsAny(s, "+- \t") {
		return SortSpec{}, fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
	return SortSpec{Column: s, Direction: dir}, nil
}

// Click returns the sort order after a click on the header of col. Clicking the
// active column flips the direction, another sortable column becomes the
// active one, ascending. Columns without a comparator are ignored.
func (s SortSpec) Click(col string, sortable bool) SortSpec {
	if !sortable {
		return s
	}
	if s.Column == col {
		return SortSpec{Column: col, Direction: s.Direction.Flip()}
	}
	return SortSpec{Column: col, Direction: Ascending}
}

// SortRoots returns the top-level rows ordered by col. Only the slice is
// reordered: children keep whatever order their provider yields. The input
// slice is not modified. A column without a comparator returns roots as is.
func SortRoots[T, S any](roots []*Row[T, S], col *Column[T, S], dir Direction) []*Row[T, S] {
	if !col.Sortable() {
		return roots
	}
	sorted := slices.Clone(roots)
	slices.SortStableFunc(sorted, func(a, b *Row[T, S]) int {
		c := col.Compare(a.Data, b.Data)
		if dir == Descending {
			return -c
		}
		return c
	})
	return sorted
}
