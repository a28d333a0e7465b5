package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ledgertree/internal/testutil"
)

func TestTreeCommand(t *testing.T) {
	tests := []struct {
		name           string
		mode           string
		accounts       string
		filter         string
		depth          int
		balances       bool
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "by parent",
			wantContain: []string{"Assets\n  Brokerage\n    ACME\n  Checking\n", "Liabilities\n  Credit card\n"},
		},
		{
			name:           "by institution depth 1",
			mode:           "institution",
			depth:          1,
			wantContain:    []string{"Bank A\n", "Broker B\n", "Unknown\n"},
			wantNotContain: []string{"Checking"},
		},
		{
			name:           "filtered keeps ancestors",
			filter:         "acme",
			wantContain:    []string{"Assets\n  Brokerage\n    ACME\n"},
			wantNotContain: []string{"Checking", "Income"},
		},
		{
			name:           "net worth accounts",
			accounts:       "networth",
			wantContain:    []string{"Assets\n", "Liabilities\n  Credit card\n"},
			wantNotContain: []string{"Income", "Salary"},
		},
		{
			name:     "unknown account set",
			accounts: "taxes",
			wantErr:  true,
		},
		{
			name:        "with balances",
			balances:    true,
			wantContain: []string{"Checking  1250.40 EUR", "Credit card  -320.50 EUR"},
		},
		{
			name:        "as JSON",
			wantJSON:    true,
			wantContain: []string{`"name": "Assets"`, `"children"`},
		},
		{
			name:    "unknown mode",
			mode:    "tags",
			wantErr: true,
		},
	}

	path := testutil.WriteSnapshot(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			treeView.mode = tt.mode
			treeView.accounts = tt.accounts
			treeView.filter = tt.filter
			treeDepth = tt.depth
			treeBalances = tt.balances
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, func() error {
				return runTree([]string{path})
			})

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestTreeCommand_MissingSnapshot(t *testing.T) {
	resetFlags()

	_, err := captureOutput(t, func() error {
		return runTree([]string{"/nonexistent/accounts.json"})
	})
	require.ErrorContains(t, err, "failed to load snapshot")
}
