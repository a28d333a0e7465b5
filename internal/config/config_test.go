package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ledgertree/internal/testutil"
	"github.com/joshuapare/ledgertree/pkg/account"
	"github.com/joshuapare/ledgertree/pkg/accountrows"
	"github.com/joshuapare/ledgertree/pkg/table"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(`
mode: institution
accounts: NetWorth
sort: -balance
row_colors: row
expand_trading: true
threshold: 12.5
indent_nested: false
bottom: true
round_values: true
columns: [name, balance, percent]
`))
	require.NoError(t, err)

	require.Equal(t, account.ModeInstitution, c.Mode)
	require.Equal(t, "networth", c.Accounts)
	require.Equal(t, table.SortSpec{Column: "balance", Direction: table.Descending}, c.Sort)
	require.Equal(t, table.ColorsRow, c.RowColors)
	require.True(t, c.ExpandTrading)
	require.True(t, decimal.RequireFromString("12.5").Equal(c.Threshold))
	require.False(t, c.IndentNested)
	require.True(t, c.Bottom)
	require.True(t, c.RoundValues)
	require.Equal(t, []string{"name", "balance", "percent"}, c.Columns)

	require.Equal(t, accountrows.Settings{Mode: account.ModeInstitution, ExpandTrading: true, RoundValues: true}, c.Settings())
	require.Equal(t, table.WindowOptions{RowColors: table.ColorsRow, ScrollToBottom: true}, c.WindowOptions())
}

func TestLoad_EmptyIsDefault(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestLoad_Invalid(t *testing.T) {
	docs := map[string]string{
		"unknown key":    "colour: red\n",
		"bad mode":       "mode: tags\n",
		"bad accounts":   "accounts: taxes\n",
		"bad sort":       "sort: '+-x'\n",
		"bad row colors": "row_colors: rainbow\n",
		"bad threshold":  "threshold: lots\n",
		"bad column":     "columns: [name, color]\n",
		"not yaml":       "mode: [\n",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := testutil.WriteFile(t, "config.yaml", "mode: flat\n")

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, account.ModeFlat, c.Mode)

	_, err = LoadFile(path + ".missing")
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	path := testutil.WriteFile(t, "config.yaml", "mode: flat\nsort: name\n")

	c, err := Resolve("", env(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), c)

	c, err = Resolve("", env(map[string]string{EnvConfig: path}))
	require.NoError(t, err)
	require.Equal(t, account.ModeFlat, c.Mode)

	c, err = Resolve(path, env(map[string]string{
		EnvMode:      "type",
		EnvSort:      "-name",
		EnvRowColors: "none",
	}))
	require.NoError(t, err)
	require.Equal(t, account.ModeType, c.Mode)
	require.Equal(t, table.SortSpec{Column: "name", Direction: table.Descending}, c.Sort)
	require.Equal(t, table.ColorsNone, c.RowColors)

	_, err = Resolve("", env(map[string]string{EnvMode: "nope"}))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, account.ErrUnknownMode)
}
