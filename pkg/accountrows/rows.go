// Package accountrows turns an account list into logical rows for the table
// engine and defines the account columns.
package accountrows

import (
	"github.com/shopspring/decimal"

	"github.com/joshuapare/ledgertree/pkg/account"
	"github.com/joshuapare/ledgertree/pkg/table"
	"github.com/joshuapare/ledgertree/pkg/tree"
)

// Data is the payload of an account row.
type Data struct {
	// Account is nil for categorical group rows.
	Account *account.Account
	Name    string

	Balance    decimal.Decimal
	HasBalance bool

	// Subtotal is the balance of the node and all of its descendants in the
	// forest. Sorting on balances compares subtotals.
	Subtotal decimal.Decimal

	// Placeholder marks rows synthesized for a parent or group that is not
	// part of the filtered view.
	Placeholder bool

	// Total is the sum of every balance of the view.
	Total decimal.Decimal
}

// Settings is threaded through every provider, cell and policy call.
type Settings struct {
	Mode          account.Mode
	ExpandTrading bool
	RoundValues   bool
}

// Row is a logical account row.
type Row = table.Row[*Data, Settings]

// Options selects the accounts of a view and how they are grouped.
type Options struct {
	Mode   account.Mode
	Filter func(*account.Account) bool
}

// Build groups the accounts of list that pass opts.Filter and returns the
// top-level logical rows.
func Build(list *account.List, opts Options) []*Row {
	return table.FromForest[*Data, Settings](Forest(list, opts), RowKey)
}

// Forest groups the accounts of list that pass opts.Filter.
func Forest(list *account.List, opts Options) []*tree.Node[*Data] {
	accounts := list.Filter(opts.Filter)

	total := decimal.Zero
	items := make([]*Data, 0, len(accounts))
	for _, a := range accounts {
		d := &Data{Account: a, Name: a.Name}
		d.Balance, d.HasBalance = list.Balance(a.ID)
		total = total.Add(d.Balance)
		items = append(items, d)
	}
	for _, d := range items {
		d.Total = total
	}

	forest := account.BuildTree(list, items, opts.Mode, account.Nodes[*Data]{
		Account: func(d *Data) *account.Account { return d.Account },
		Name:    func(d *Data) string { return d.Name },
		Placeholder: func(a *account.Account, name string) *Data {
			d := &Data{Account: a, Name: name, Placeholder: true, Total: total}
			if a != nil {
				d.Name = a.Name
			}
			return d
		},
	})
	for _, n := range forest {
		sumSubtree(n)
	}
	return forest
}

func sumSubtree(n *tree.Node[*Data]) decimal.Decimal {
	sum := n.Data.Balance
	for _, c := range n.Children {
		sum = sum.Add(sumSubtree(c))
	}
	n.Data.Subtotal = sum
	return sum
}

// RowKey is the stable key of an account forest node: the account id, or
// "~" followed by the group name for categorical groups.
func RowKey(n *tree.Node[*Data]) table.Key {
	return KeyOf(n.Data)
}

// KeyOf returns the row key of d.
func KeyOf(d *Data) table.Key {
	if d.Account != nil {
		return table.IntKey(int64(d.Account.ID))
	}
	return table.Key("~" + d.Name)
}

// DefaultExpand opens every row except trading accounts, unless the
// settings ask for trading accounts to be expanded too.
func DefaultExpand(row *Row, s Settings) bool {
	if s.ExpandTrading {
		return true
	}
	return row.Data.Account == nil || !row.Data.Account.IsTrading()
}

// Rollup returns the balance of a row including every descendant. An
// expanded row shows its own balance only since its children are visible.
func Rollup(row *Row, openness table.Openness, s Settings) decimal.Decimal {
	if openness == table.Expanded {
		return row.Data.Balance
	}
	return subtotal(row, s)
}

func subtotal(row *Row, s Settings) decimal.Decimal {
	sum := row.Data.Balance
	for _, child := range row.Children(s) {
		sum = sum.Add(subtotal(child, s))
	}
	return sum
}

// Total sums the full rollup of every row.
func Total(roots []*Row, s Settings) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range roots {
		sum = sum.Add(subtotal(r, s))
	}
	return sum
}

// NewTable returns a table over the account rows with the given columns.
func NewTable(columns []*Column, s Settings, sort table.SortSpec) *table.Table[*Data, Settings] {
	return table.New(table.Config[*Data, Settings]{
		Columns:  columns,
		Policy:   DefaultExpand,
		Settings: s,
		Sort:     sort,
	})
}
