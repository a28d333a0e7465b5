package accountrows

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/shopspring/decimal"

	"github.com/joshuapare/ledgertree/pkg/account"
)

// ThresholdFilter keeps accounts that have a balance whose absolute value is
// at least threshold. A zero threshold keeps every account.
func ThresholdFilter(list *account.List, threshold decimal.Decimal) func(*account.Account) bool {
	if threshold.IsZero() {
		return nil
	}
	threshold = threshold.Abs()
	return func(a *account.Account) bool {
		b, ok := list.Balance(a.ID)
		return ok && b.Abs().GreaterThanOrEqual(threshold)
	}
}

// fullNames adapts accounts to fuzzy.Source.
type fullNames []*account.Account

func (f fullNames) String(i int) string { return f[i].FullName() }
func (f fullNames) Len() int            { return len(f) }

// FuzzyFilter keeps accounts whose full name fuzzy-matches query. An empty
// query keeps every account.
func FuzzyFilter(list *account.List, query string) func(*account.Account) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	all := fullNames(list.All())
	matches := fuzzy.FindFrom(query, all)

	keep := make(map[account.ID]bool, len(matches))
	for _, m := range matches {
		keep[all[m.Index].ID] = true
	}
	return func(a *account.Account) bool {
		return keep[a.ID]
	}
}

// And combines filters. Nil filters are skipped; with no filter left the
// result is nil, which keeps every account.
func And(filters ...func(*account.Account) bool) func(*account.Account) bool {
	var active []func(*account.Account) bool
	for _, f := range filters {
		if f != nil {
			active = append(active, f)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(a *account.Account) bool {
		for _, f := range active {
			if !f(a) {
				return false
			}
		}
		return true
	}
}

// ErrUnknownSet is returned for a name that is not in Sets.
var ErrUnknownSet = errors.New("unknown account set")

// Set is a named, predefined selection of accounts.
type Set struct {
	Name  string
	Title string
	kind  func(*account.Kind) bool
}

// Sets lists the predefined account sets. The first one keeps every account.
var Sets = []Set{
	{Name: "all", Title: "all accounts"},
	{Name: "expenses", Title: "expenses", kind: (*account.Kind).IsExpense},
	{Name: "income", Title: "income", kind: (*account.Kind).IsIncome},
	{Name: "expense_income", Title: "expenses and income", kind: (*account.Kind).IsExpenseIncome},
	{Name: "networth", Title: "net worth", kind: (*account.Kind).IsNetworth},
}

// FindSet returns the set called name. An empty name is the "all" set.
func FindSet(name string) (Set, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Sets[0], nil
	}
	for _, s := range Sets {
		if s.Name == name {
			return s, nil
		}
	}
	return Set{}, fmt.Errorf("%w: %q", ErrUnknownSet, name)
}

// Filter keeps the accounts whose kind belongs to the set. It is nil for
// the "all" set.
func (s Set) Filter() func(*account.Account) bool {
	if s.kind == nil {
		return nil
	}
	kind := s.kind
	return func(a *account.Account) bool {
		return kind(a.Kind)
	}
}

// Next returns the set after s in Sets, wrapping around.
func (s Set) Next() Set {
	for i, candidate := range Sets {
		if candidate.Name == s.Name {
			return Sets[(i+1)%len(Sets)]
		}
	}
	return Sets[0]
}

// SetFilter returns the filter of the set called name.
func SetFilter(name string) (func(*account.Account) bool, error) {
	s, err := FindSet(name)
	if err != nil {
		return nil, err
	}
	return s.Filter(), nil
}
