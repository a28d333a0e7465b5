package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortRoots_TopLevelOnly(t *testing.T) {
	roots := []*testRow{
		node(nil, "Assets", leaf("Savings", 1), leaf("Checking", 2)),
		node(nil, "Income", leaf("Salary", 3), leaf("Bonus", 4)),
	}

	sorted := SortRoots(roots, byName(), Descending)

	require.Equal(t, []Key{"Income", "Assets"}, []Key{sorted[0].Key, sorted[1].Key})
	require.Equal(t, []Key{"Assets", "Income"}, []Key{roots[0].Key, roots[1].Key}, "input must not change")

	rows := Flatten(sorted, opts{}, Expansion{}, ExpandAll[item, opts]())
	require.Equal(t, []Key{"Income", "Salary", "Bonus", "Assets", "Savings", "Checking"}, keys(rows))
}

func TestSortRoots_ChildOrderIsUntouchedForEveryDirection(t *testing.T) {
	roots := ledger(nil)
	unsorted := Flatten(roots, opts{}, Expansion{}, ExpandAll[item, opts]())

	for _, dir := range []Direction{Ascending, Descending} {
		sorted := SortRoots(roots, byName(), dir)
		rows := Flatten(sorted, opts{}, Expansion{}, ExpandAll[item, opts]())
		require.Equal(t, descendants(unsorted), descendants(rows))
	}
}

// descendants groups the non-root keys of rows by root key.
func descendants(rows []PhysicalRow[item, opts]) map[Key][]Key {
	out := map[Key][]Key{}
	var root Key
	for _, r := range rows {
		if r.Level == 0 {
			root = r.Row.Key
			continue
		}
		out[root] = append(out[root], r.Row.Key)
	}
	return out
}

func TestSortRoots_NoComparator(t *testing.T) {
	roots := ledger(nil)
	require.Equal(t, roots, SortRoots(roots, byValue(), Descending))
	require.Equal(t, roots, SortRoots(roots, nil, Ascending))
}

func TestSortRoots_Stable(t *testing.T) {
	roots := []*testRow{leaf("b", 1), leaf("a", 1), leaf("c", 1)}
	sameValue := &Column[item, opts]{
		ID:      "v",
		Compare: func(a, b item) int { return a.value - b.value },
	}

	sorted := SortRoots(roots, sameValue, Descending)
	require.Equal(t, roots, sorted)
}

func TestSortSpec_Click(t *testing.T) {
	var s SortSpec
	require.True(t, s.IsZero())

	s = s.Click("name", true)
	require.Equal(t, SortSpec{Column: "name", Direction: Ascending}, s)

	s = s.Click("name", true)
	require.Equal(t, SortSpec{Column: "name", Direction: Descending}, s)

	s = s.Click("name", true)
	require.Equal(t, SortSpec{Column: "name", Direction: Ascending}, s)

	s = s.Click("name", true).Click("balance", true)
	require.Equal(t, SortSpec{Column: "balance", Direction: Ascending}, s)

	require.Equal(t, s, s.Click("kind", false))
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in      string
		want    SortSpec
		wantErr bool
	}{
		{in: "", want: SortSpec{}},
		{in: "+name", want: SortSpec{Column: "name"}},
		{in: "name", want: SortSpec{Column: "name"}},
		{in: "-balance", want: SortSpec{Column: "balance", Direction: Descending}},
		{in: "-", wantErr: true},
		{in: "+-name", wantErr: true},
		{in: "na me", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSort(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSort)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			if !got.IsZero() {
				round, err := ParseSort(got.String())
				require.NoError(t, err)
				require.Equal(t, got, round)
			}
		})
	}
}
