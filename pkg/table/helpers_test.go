package table

import (
	"cmp"
	"fmt"
)

type item struct {
	name  string
	value int
}

type opts struct {
	hideSmall bool
}

type testRow = Row[item, opts]

// calls counts provider invocations per key.
type calls map[Key]int

func leaf(name string, value int) *testRow {
	return &testRow{Key: Key(name), Data: item{name: name, value: value}}
}

func node(c calls, name string, children ...*testRow) *testRow {
	return &testRow{
		Key:  Key(name),
		Data: item{name: name},
		Provider: ChildrenFunc[item, opts](func(_ item, s opts) []*testRow {
			if c != nil {
				c[Key(name)]++
			}
			if !s.hideSmall {
				return children
			}
			var out []*testRow
			for _, ch := range children {
				if ch.Data.value >= 10 || !ch.IsLeaf() {
					out = append(out, ch)
				}
			}
			return out
		}),
	}
}

// line is the comparable shape of a physical row.
type line struct {
	Key        Key
	Level      int
	Top        int
	Expandable bool
}

func lines(rows []PhysicalRow[item, opts]) []line {
	out := make([]line, 0, len(rows))
	for _, r := range rows {
		out = append(out, line{Key: r.Row.Key, Level: r.Level, Top: r.TopRowIndex, Expandable: r.Expandable})
	}
	return out
}

func keys(rows []PhysicalRow[item, opts]) []Key {
	out := make([]Key, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Row.Key)
	}
	return out
}

func byName() *Column[item, opts] {
	return &Column[item, opts]{
		ID:   "name",
		Head: "Name",
		Cell: func(d item, _ RowDetails[item, opts], _ opts) string { return d.name },
		CellTitle: func(d item) string {
			return "item " + d.name
		},
		Compare: func(a, b item) int {
			return cmp.Compare(a.name, b.name)
		},
	}
}

func byValue() *Column[item, opts] {
	return &Column[item, opts]{
		ID:    "value",
		Head:  "Value",
		Title: "Value of the row",
		Align: AlignRight,
		Cell: func(d item, _ RowDetails[item, opts], _ opts) string {
			return fmt.Sprint(d.value)
		},
		Foot: func(roots []*testRow, _ opts) string {
			return fmt.Sprintf("%d roots", len(roots))
		},
	}
}

// ledger is the sample forest used by most tests:
//
//	Assets
//	  Checking 100
//	  Savings 5
//	  Brokerage
//	    ACME 30
//	Income
//	  Salary 40
//	  Bonus 3
func ledger(c calls) []*testRow {
	return []*testRow{
		node(c, "Assets",
			leaf("Checking", 100),
			leaf("Savings", 5),
			node(c, "Brokerage", leaf("ACME", 30)),
		),
		node(c, "Income",
			leaf("Salary", 40),
			leaf("Bonus", 3),
		),
	}
}
