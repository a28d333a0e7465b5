// Package account holds the financial account model consumed by the table
// engine: accounts, their kinds, institutions and commodities, the balances
// attached to them, and the grouping modes used to arrange them in a forest.
//
// A List is immutable once built. Data refreshes build a new List.
package account

import (
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ID identifies an account. Zero means "no account".
type ID int64

// String returns the decimal form of the id.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Category is the accounting category of a kind.
type Category int

const (
	CategoryExpense   Category = 0
	CategoryIncome    Category = 1
	CategoryEquity    Category = 2
	CategoryAsset     Category = 3
	CategoryLiability Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryExpense:
		return "expense"
	case CategoryIncome:
		return "income"
	case CategoryEquity:
		return "equity"
	case CategoryAsset:
		return "asset"
	case CategoryLiability:
		return "liability"
	default:
		return "unknown"
	}
}

// Kind describes the type of an account.
type Kind struct {
	ID        string
	Name      string
	Category  Category
	IsTrading bool
	IsStock   bool
}

// IsNetworth reports whether accounts of this kind count toward net worth.
func (k *Kind) IsNetworth() bool {
	if k == nil {
		return false
	}
	switch k.Category {
	case CategoryAsset, CategoryLiability, CategoryEquity:
		return true
	}
	return false
}

// IsExpense reports whether the kind is an expense kind.
func (k *Kind) IsExpense() bool {
	return k != nil && k.Category == CategoryExpense
}

// IsIncome reports whether the kind is an income kind.
func (k *Kind) IsIncome() bool {
	return k != nil && k.Category == CategoryIncome
}

// IsExpenseIncome reports whether the kind is an expense or income kind.
func (k *Kind) IsExpenseIncome() bool {
	return k.IsExpense() || k.IsIncome()
}

// Institution owns accounts (a bank, a broker).
type Institution struct {
	ID   int64
	Name string
}

// Commodity is the unit an account is kept in.
type Commodity struct {
	ID           int64
	Name         string
	SymbolBefore string
	SymbolAfter  string
	IsCurrency   bool
}

// Account is a single ledger account.
type Account struct {
	ID          ID
	Name        string
	Description string
	Number      string
	Favorite    bool
	Closed      bool
	ParentID    ID
	Kind        *Kind
	Commodity   *Commodity

	institution *Institution
	parent      *Account
}

// Parent returns the parent account, or nil for top-level accounts and for
// accounts whose parent is unknown.
func (a *Account) Parent() *Account {
	return a.parent
}

// Institution returns the account's own institution, or the closest one
// found on its parent chain.
func (a *Account) Institution() *Institution {
	seen := 0
	for cur := a; cur != nil && seen <= maxParentChain; cur = cur.parent {
		if cur.institution != nil {
			return cur.institution
		}
		seen++
	}
	return nil
}

// FullName returns the colon-separated path of the account. The top-level
// ancestor (Assets, Income, ...) is omitted.
func (a *Account) FullName() string {
	var parts []string
	for cur := a; cur != nil && len(parts) <= maxParentChain; cur = cur.parent {
		if cur != a && cur.parent == nil {
			break
		}
		parts = append(parts, cur.Name)
	}
	slices.Reverse(parts)
	return strings.Join(parts, ":")
}

// IsTrading reports whether the account holds trading sub-accounts.
func (a *Account) IsTrading() bool {
	return a.Kind != nil && a.Kind.IsTrading
}

// maxParentChain bounds walks up the parent chain. Snapshots may contain
// parent cycles; the tree builder breaks them, but the raw links remain.
const maxParentChain = 64

// List is the universe of accounts known to the application.
type List struct {
	accounts     map[ID]*Account
	ordered      []*Account
	balances     map[ID]decimal.Decimal
	kinds        map[string]*Kind
	institutions map[int64]*Institution
	commodities  map[int64]*Commodity
}

// Get returns the account with the given id.
func (l *List) Get(id ID) (*Account, bool) {
	if l == nil {
		return nil, false
	}
	a, ok := l.accounts[id]
	return a, ok
}

// All returns every account, ordered by id. The slice must not be modified.
func (l *List) All() []*Account {
	if l == nil {
		return nil
	}
	return l.ordered
}

// Len returns the number of accounts.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.ordered)
}

// Balance returns the balance attached to an account, and whether one was
// provided.
func (l *List) Balance(id ID) (decimal.Decimal, bool) {
	if l == nil {
		return decimal.Zero, false
	}
	b, ok := l.balances[id]
	return b, ok
}

// Name returns the full name of the account, or its numeric id when the
// account is unknown.
func (l *List) Name(id ID) string {
	if a, ok := l.Get(id); ok {
		return a.FullName()
	}
	return id.String()
}

// Kind returns a kind by id.
func (l *List) Kind(id string) (*Kind, bool) {
	if l == nil {
		return nil, false
	}
	k, ok := l.kinds[id]
	return k, ok
}

// Filter returns the accounts for which keep returns true, in id order.
// A nil keep returns every account.
func (l *List) Filter(keep func(*Account) bool) []*Account {
	all := l.All()
	if keep == nil {
		return slices.Clone(all)
	}
	out := make([]*Account, 0, len(all))
	for _, a := range all {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
