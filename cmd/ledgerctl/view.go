package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joshuapare/ledgertree/pkg/account"
	"github.com/joshuapare/ledgertree/pkg/accountrows"
)

// viewFlags are the flags shared by tree and rows.
type viewFlags struct {
	mode      string
	accounts  string
	filter    string
	threshold string
}

var accountsUsage = "Account set: " + strings.Join(setNames(), ", ")

func setNames() []string {
	out := make([]string, 0, len(accountrows.Sets))
	for _, s := range accountrows.Sets {
		out = append(out, s.Name)
	}
	return out
}

// resolve combines the flags with the configuration.
func (f viewFlags) resolve() (account.Mode, decimal.Decimal, error) {
	mode := cfg.Mode
	if f.mode != "" {
		m, err := account.ParseMode(f.mode)
		if err != nil {
			return mode, decimal.Zero, err
		}
		mode = m
	}

	threshold := cfg.Threshold
	if f.threshold != "" {
		t, err := decimal.NewFromString(f.threshold)
		if err != nil {
			return mode, decimal.Zero, fmt.Errorf("invalid threshold %q: %w", f.threshold, err)
		}
		threshold = t
	}
	return mode, threshold, nil
}

// loadView reads the snapshot and returns it with the row options of the
// view.
func loadView(path string, f viewFlags) (*account.List, accountrows.Options, error) {
	mode, threshold, err := f.resolve()
	if err != nil {
		return nil, accountrows.Options{}, err
	}
	setName := cfg.Accounts
	if f.accounts != "" {
		setName = f.accounts
	}
	set, err := accountrows.FindSet(setName)
	if err != nil {
		return nil, accountrows.Options{}, err
	}

	printVerbose("Loading snapshot: %s\n", path)
	list, err := account.LoadFile(path)
	if err != nil {
		return nil, accountrows.Options{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	printVerbose("Loaded %d accounts, showing %s grouped by %s\n", list.Len(), set.Title, mode)

	return list, accountrows.Options{
		Mode: mode,
		Filter: accountrows.And(
			set.Filter(),
			accountrows.ThresholdFilter(list, threshold),
			accountrows.FuzzyFilter(list, f.filter),
		),
	}, nil
}
