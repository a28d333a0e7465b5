package accountrows

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joshuapare/ledgertree/pkg/account"
	"github.com/joshuapare/ledgertree/pkg/table"
)

// Column is an account table column.
type Column = table.Column[*Data, Settings]

// Column ids.
const (
	ColName        = "name"
	ColKind        = "kind"
	ColInstitution = "institution"
	ColBalance     = "balance"
	ColPercent     = "percent"
)

// DefaultColumns lists the column ids shown when none are configured.
var DefaultColumns = []string{ColName, ColKind, ColInstitution, ColBalance}

var hundred = decimal.NewFromInt(100)

// Columns returns the columns with the given ids, in order. Unknown ids are
// reported as an error.
func Columns(ids []string) ([]*Column, error) {
	if len(ids) == 0 {
		ids = DefaultColumns
	}
	out := make([]*Column, 0, len(ids))
	for _, id := range ids {
		c, ok := columnByID(strings.ToLower(strings.TrimSpace(id)))
		if !ok {
			return nil, fmt.Errorf("unknown column %q", id)
		}
		out = append(out, c)
	}
	return out, nil
}

func columnByID(id string) (*Column, bool) {
	switch id {
	case ColName:
		return NameColumn(), true
	case ColKind:
		return KindColumn(), true
	case ColInstitution:
		return InstitutionColumn(), true
	case ColBalance:
		return BalanceColumn(), true
	case ColPercent:
		return PercentColumn(), true
	}
	return nil, false
}

// NameColumn shows the account or group name.
func NameColumn() *Column {
	return &Column{
		ID:    ColName,
		Head:  "Account",
		Title: "Account or group name",
		Width: 28,
		HeadFunc: func(s Settings) string {
			if s.Mode == account.ModeFlat {
				return "Account"
			}
			return "Account (by " + s.Mode.String() + ")"
		},
		Cell: func(d *Data, _ table.RowDetails[*Data, Settings], _ Settings) string {
			return d.Name
		},
		CellTitle: func(d *Data) string {
			if d.Account == nil {
				return d.Name
			}
			return d.Account.FullName()
		},
		Compare: func(a, b *Data) int {
			if a.Account == nil && b.Account == nil {
				return account.CompareNames(a.Name, b.Name)
			}
			return account.Compare(a.Account, b.Account)
		},
	}
}

// KindColumn shows the account kind.
func KindColumn() *Column {
	return &Column{
		ID:    ColKind,
		Head:  "Type",
		Title: "Account type",
		Width: 12,
		Cell: func(d *Data, _ table.RowDetails[*Data, Settings], _ Settings) string {
			if d.Account == nil || d.Account.Kind == nil {
				return ""
			}
			return d.Account.Kind.Name
		},
	}
}

// InstitutionColumn shows the (possibly inherited) institution.
func InstitutionColumn() *Column {
	name := func(d *Data) string {
		if d.Account == nil {
			return ""
		}
		if inst := d.Account.Institution(); inst != nil {
			return inst.Name
		}
		return ""
	}
	return &Column{
		ID:    ColInstitution,
		Head:  "Institution",
		Title: "Institution, inherited from the parent account",
		Width: 14,
		Cell: func(d *Data, _ table.RowDetails[*Data, Settings], _ Settings) string {
			return name(d)
		},
		Compare: func(a, b *Data) int {
			return account.CompareNames(name(a), name(b))
		},
	}
}

// BalanceColumn shows the balance. Collapsed rows display the rollup of
// their whole subtree.
func BalanceColumn() *Column {
	return &Column{
		ID:    ColBalance,
		Head:  "Balance",
		Title: "Balance, including sub-accounts on collapsed rows",
		Align: table.AlignRight,
		Width: 14,
		Cell: func(d *Data, details table.RowDetails[*Data, Settings], s Settings) string {
			if !d.HasBalance && details.Openness != table.Collapsed {
				return ""
			}
			return FormatAmount(Rollup(details.Row, details.Openness, s), commodityOf(d), s.RoundValues)
		},
		Foot: func(roots []*Row, s Settings) string {
			return FormatAmount(Total(roots, s), nil, s.RoundValues)
		},
		Compare: func(a, b *Data) int {
			return a.Subtotal.Cmp(b.Subtotal)
		},
	}
}

// PercentColumn shows the share of the view total.
func PercentColumn() *Column {
	return &Column{
		ID:    ColPercent,
		Head:  "% total",
		Title: "Share of the total of all displayed accounts",
		Align: table.AlignRight,
		Width: 8,
		Cell: func(d *Data, details table.RowDetails[*Data, Settings], s Settings) string {
			if d.Total.IsZero() {
				return ""
			}
			share := Rollup(details.Row, details.Openness, s).Mul(hundred).Div(d.Total.Abs())
			return share.StringFixed(1) + "%"
		},
	}
}

func commodityOf(d *Data) *account.Commodity {
	if d.Account == nil {
		return nil
	}
	return d.Account.Commodity
}

// FormatAmount formats a balance with the commodity symbols. Rounded values
// have no decimals.
func FormatAmount(v decimal.Decimal, c *account.Commodity, round bool) string {
	places := int32(2)
	if round {
		places = 0
	}
	s := v.StringFixed(places)
	if c == nil {
		return s
	}
	if c.SymbolBefore != "" {
		s = c.SymbolBefore + s
	}
	if c.SymbolAfter != "" {
		s += " " + c.SymbolAfter
	}
	return s
}
