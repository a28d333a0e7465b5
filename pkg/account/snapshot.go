package account

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/shopspring/decimal"
)

// ErrInvalidSnapshot is returned when a snapshot references unknown data or
// contains duplicate accounts.
var ErrInvalidSnapshot = errors.New("invalid account snapshot")

// Snapshot is the document delivered by the entity source.
type Snapshot struct {
	Accounts     []AccountJSON     `json:"accounts"`
	Kinds        []KindJSON        `json:"kinds"`
	Institutions []InstitutionJSON `json:"institutions"`
	Commodities  []CommodityJSON   `json:"commodities"`
	Balances     []BalanceJSON     `json:"balances,omitempty"`
}

// AccountJSON is the wire form of an account.
type AccountJSON struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Number        string `json:"account_num,omitempty"`
	Favorite      bool   `json:"favorite,omitempty"`
	Closed        bool   `json:"closed,omitempty"`
	KindID        string `json:"kind_id"`
	CommodityID   *int64 `json:"commodity_id,omitempty"`
	ParentID      *ID    `json:"parent_id"`
	InstitutionID *int64 `json:"institution_id,omitempty"`
}

// KindJSON is the wire form of a kind.
type KindJSON struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	IsTrading bool     `json:"is_trading,omitempty"`
	IsStock   bool     `json:"is_stock,omitempty"`
}

// InstitutionJSON is the wire form of an institution.
type InstitutionJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CommodityJSON is the wire form of a commodity.
type CommodityJSON struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SymbolBefore string `json:"symbol_before,omitempty"`
	SymbolAfter  string `json:"symbol_after,omitempty"`
	IsCurrency   bool   `json:"is_currency,omitempty"`
}

// BalanceJSON attaches a balance to an account.
type BalanceJSON struct {
	AccountID ID              `json:"account_id"`
	Value     decimal.Decimal `json:"value"`
}

// Load decodes a snapshot from r and builds the account list.
func Load(r io.Reader) (*List, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return New(snap)
}

// LoadFile reads a snapshot from disk.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// New builds a List from a decoded snapshot.
//
// Unknown kind, commodity or institution references are errors. Parent ids
// that do not resolve are kept: the account simply has no parent account.
func New(snap Snapshot) (*List, error) {
	l := &List{
		accounts:     make(map[ID]*Account, len(snap.Accounts)),
		ordered:      make([]*Account, 0, len(snap.Accounts)),
		balances:     make(map[ID]decimal.Decimal, len(snap.Balances)),
		kinds:        make(map[string]*Kind, len(snap.Kinds)),
		institutions: make(map[int64]*Institution, len(snap.Institutions)),
		commodities:  make(map[int64]*Commodity, len(snap.Commodities)),
	}

	for _, k := range snap.Kinds {
		l.kinds[k.ID] = &Kind{
			ID:        k.ID,
			Name:      k.Name,
			Category:  k.Category,
			IsTrading: k.IsTrading,
			IsStock:   k.IsStock,
		}
	}
	for _, inst := range snap.Institutions {
		l.institutions[inst.ID] = &Institution{ID: inst.ID, Name: inst.Name}
	}
	for _, c := range snap.Commodities {
		l.commodities[c.ID] = &Commodity{
			ID:           c.ID,
			Name:         c.Name,
			SymbolBefore: c.SymbolBefore,
			SymbolAfter:  c.SymbolAfter,
			IsCurrency:   c.IsCurrency,
		}
	}

	for _, aj := range snap.Accounts {
		if aj.ID == 0 {
			return nil, fmt.Errorf("%w: account %q has no id", ErrInvalidSnapshot, aj.Name)
		}
		if _, dup := l.accounts[aj.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate account id %d", ErrInvalidSnapshot, aj.ID)
		}

		a := &Account{
			ID:          aj.ID,
			Name:        aj.Name,
			Description: aj.Description,
			Number:      aj.Number,
			Favorite:    aj.Favorite,
			Closed:      aj.Closed,
		}
		if aj.ParentID != nil {
			a.ParentID = *aj.ParentID
		}

		kind, ok := l.kinds[aj.KindID]
		if !ok && aj.KindID != "" {
			return nil, fmt.Errorf("%w: account %d: unknown kind %q", ErrInvalidSnapshot, aj.ID, aj.KindID)
		}
		a.Kind = kind

		if aj.CommodityID != nil {
			c, ok := l.commodities[*aj.CommodityID]
			if !ok {
				return nil, fmt.Errorf("%w: account %d: unknown commodity %d",
					ErrInvalidSnapshot, aj.ID, *aj.CommodityID)
			}
			a.Commodity = c
		}
		if aj.InstitutionID != nil {
			inst, ok := l.institutions[*aj.InstitutionID]
			if !ok {
				return nil, fmt.Errorf("%w: account %d: unknown institution %d",
					ErrInvalidSnapshot, aj.ID, *aj.InstitutionID)
			}
			a.institution = inst
		}

		l.accounts[a.ID] = a
		l.ordered = append(l.ordered, a)
	}

	for _, a := range l.ordered {
		if a.ParentID != 0 && a.ParentID != a.ID {
			a.parent = l.accounts[a.ParentID]
		}
	}
	slices.SortFunc(l.ordered, func(x, y *Account) int {
		return cmp.Compare(x.ID, y.ID)
	})

	for _, b := range snap.Balances {
		if _, ok := l.accounts[b.AccountID]; !ok {
			return nil, fmt.Errorf("%w: balance for unknown account %d", ErrInvalidSnapshot, b.AccountID)
		}
		l.balances[b.AccountID] = l.balances[b.AccountID].Add(b.Value)
	}

	return l, nil
}
