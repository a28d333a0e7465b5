package accountrows

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ledgertree/internal/testutil"
	"github.com/joshuapare/ledgertree/pkg/account"
	"github.com/joshuapare/ledgertree/pkg/table"
)

type line struct {
	Name       string
	Level      int
	Top        int
	Expandable bool
}

func lines(tbl *table.Table[*Data, Settings]) []line {
	var out []line
	for _, pr := range tbl.Rows() {
		out = append(out, line{
			Name:       pr.Row.Data.Name,
			Level:      pr.Level,
			Top:        pr.TopRowIndex,
			Expandable: pr.Expandable,
		})
	}
	return out
}

func names(tbl *table.Table[*Data, Settings]) []string {
	var out []string
	for _, pr := range tbl.Rows() {
		out = append(out, pr.Row.Data.Name)
	}
	return out
}

func newTable(t *testing.T, list *account.List, opts Options, s Settings) *table.Table[*Data, Settings] {
	t.Helper()
	cols, err := Columns(nil)
	require.NoError(t, err)

	tbl := NewTable(cols, s, table.SortSpec{})
	tbl.SetRows(Build(list, opts))
	return tbl
}

const threeAccounts = `{"accounts": [
	{"id": 1, "name": "Assets"},
	{"id": 2, "name": "Checking", "parent_id": 1},
	{"id": 3, "name": "Savings", "parent_id": 1}
]}`

func TestScenario_AllExpanded(t *testing.T) {
	tbl := newTable(t, testutil.ListFrom(t, threeAccounts), Options{Mode: account.ModeParent}, Settings{})

	require.Equal(t, []line{
		{Name: "Assets", Level: 0, Top: 0, Expandable: true},
		{Name: "Checking", Level: 1, Top: 0},
		{Name: "Savings", Level: 1, Top: 0},
	}, lines(tbl))
}

func TestScenario_AssetsCollapsed(t *testing.T) {
	tbl := newTable(t, testutil.ListFrom(t, threeAccounts), Options{Mode: account.ModeParent}, Settings{})

	require.True(t, tbl.Toggle(0))
	require.Equal(t, []line{{Name: "Assets", Expandable: true}}, lines(tbl))
	require.Equal(t, table.Collapsed, tbl.Openness(0))
}

func TestScenario_SortByNameDescending(t *testing.T) {
	list := testutil.ListFrom(t, `{"accounts": [
		{"id": 1, "name": "Assets"},
		{"id": 2, "name": "Savings", "parent_id": 1},
		{"id": 3, "name": "Checking", "parent_id": 1},
		{"id": 4, "name": "Income"},
		{"id": 5, "name": "Salary", "parent_id": 4}
	]}`)
	tbl := newTable(t, list, Options{Mode: account.ModeParent}, Settings{})
	before := map[string][]string{"Assets": names(tbl)[1:3]}

	require.True(t, tbl.SetSort(table.SortSpec{Column: ColName, Direction: table.Descending}))

	require.Equal(t, []string{"Income", "Salary", "Assets", "Checking", "Savings"}, names(tbl))
	require.Equal(t, before["Assets"], names(tbl)[3:5])
}

func TestSortByBalance_UsesSubtreeTotals(t *testing.T) {
	list := testutil.SampleList(t)

	tbl := newTable(t, list, Options{Mode: account.ModeParent}, Settings{})
	tbl.CollapseAll()
	require.True(t, tbl.SetSort(table.SortSpec{Column: ColBalance, Direction: table.Descending}))
	require.Equal(t, []string{"Assets", "Liabilities", "Income"}, names(tbl))

	require.True(t, tbl.SetSort(table.SortSpec{Column: ColBalance}))
	require.Equal(t, []string{"Income", "Liabilities", "Assets"}, names(tbl))

	tbl = newTable(t, list, Options{Mode: account.ModeInstitution}, Settings{})
	tbl.CollapseAll()
	require.True(t, tbl.SetSort(table.SortSpec{Column: ColBalance}))
	require.Equal(t, []string{"Unknown", "Broker B", "Bank A"}, names(tbl))
}

func TestForest_Subtotals(t *testing.T) {
	forest := Forest(testutil.SampleList(t), Options{Mode: account.ModeParent})

	got := map[string]string{}
	for _, n := range forest {
		got[n.Data.Name] = n.Data.Subtotal.StringFixed(2)
	}
	require.Equal(t, map[string]string{
		"Assets":      "9450.50",
		"Income":      "-4500.00",
		"Liabilities": "-320.50",
	}, got)
}

func TestBuild_TradingAccountsStartCollapsed(t *testing.T) {
	list := testutil.SampleList(t)

	tbl := newTable(t, list, Options{Mode: account.ModeParent}, Settings{})
	require.Equal(t, []string{
		"Assets", "Brokerage", "Checking", "Savings",
		"Income", "bonus", "Salary",
		"Liabilities", "Credit card",
	}, names(tbl))
	require.Equal(t, table.Collapsed, tbl.Openness(1))

	tbl.SetSettings(Settings{ExpandTrading: true})
	require.Contains(t, names(tbl), "ACME")
}

func TestBuild_Keys(t *testing.T) {
	list := testutil.SampleList(t)

	byParent := Build(list, Options{Mode: account.ModeParent})
	require.Equal(t, table.Key("1"), byParent[0].Key)

	first := Build(list, Options{Mode: account.ModeInstitution})
	second := Build(list, Options{Mode: account.ModeInstitution})
	require.Equal(t, table.Key("~Bank A"), first[0].Key)
	for i := range first {
		require.Equal(t, first[i].Key, second[i].Key, "group keys are stable across rebuilds")
	}
	require.True(t, first[0].Data.Placeholder)
	require.Nil(t, first[0].Data.Account)
}

func TestBuild_Flat(t *testing.T) {
	rows := Build(testutil.SampleList(t), Options{})
	require.Len(t, rows, 10)
	for _, r := range rows {
		require.True(t, r.IsLeaf())
	}
}

func TestBalanceColumn_Rollup(t *testing.T) {
	list := testutil.SampleList(t)
	tbl := newTable(t, list, Options{Mode: account.ModeParent}, Settings{})
	w := table.NewWindow(tbl, table.WindowOptions{})
	balance := 3 // column index

	cell := func(name string) string {
		for i := range w.ItemCount() {
			v, _ := w.RenderRow(i)
			if tbl.Rows()[i].Row.Data.Name == name {
				return v.Cells[balance]
			}
		}
		t.Fatalf("row %s not visible", name)
		return ""
	}

	require.Equal(t, "1250.40 EUR", cell("Checking"))
	require.Equal(t, "3200.10 EUR", cell("Brokerage"), "collapsed trading account rolls up ACME")
	require.Equal(t, "", cell("Assets"), "expanded row without own balance")

	tbl.Toggle(0)
	require.Equal(t, "9450.50", cell("Assets"))

	require.Equal(t, "4630.00", w.Footer()[balance])

	tbl.SetSettings(Settings{RoundValues: true})
	require.Equal(t, "9451", cell("Assets"))
}

func TestPercentColumn(t *testing.T) {
	list := testutil.SampleList(t)
	cols, err := Columns([]string{ColName, ColPercent})
	require.NoError(t, err)

	tbl := NewTable(cols, Settings{}, table.SortSpec{})
	tbl.SetRows(Build(list, Options{Mode: account.ModeParent}))
	w := table.NewWindow(tbl, table.WindowOptions{})

	idx := tbl.IndexOf(table.IntKey(testutil.Checking))
	v, ok := w.RenderRow(idx)
	require.True(t, ok)
	require.Equal(t, "27.0%", v.Cells[1])
}

func TestBuild_ThresholdKeepsNesting(t *testing.T) {
	list := testutil.SampleList(t)
	filter := ThresholdFilter(list, decimal.NewFromInt(1000))

	tbl := newTable(t, list, Options{Mode: account.ModeParent, Filter: filter}, Settings{ExpandTrading: true})
	require.Equal(t, []line{
		{Name: "Assets", Level: 0, Top: 0, Expandable: true},
		{Name: "Brokerage", Level: 1, Top: 0, Expandable: true},
		{Name: "ACME", Level: 2, Top: 0},
		{Name: "Checking", Level: 1, Top: 0},
		{Name: "Savings", Level: 1, Top: 0},
		{Name: "Income", Level: 0, Top: 1, Expandable: true},
		{Name: "Salary", Level: 1, Top: 1},
	}, lines(tbl))
	require.True(t, tbl.Rows()[0].Row.Data.Placeholder)
	require.NotNil(t, tbl.Rows()[0].Row.Data.Account)

	require.Nil(t, ThresholdFilter(list, decimal.Zero))
}

const mixedKinds = `{
	"kinds": [
		{"id": "asset", "name": "Asset", "category": 3},
		{"id": "misc", "name": "Misc", "category": 0}
	],
	"accounts": [
		{"id": 1, "name": "Holdings", "kind_id": "misc"},
		{"id": 2, "name": "Cash", "kind_id": "asset", "parent_id": 1},
		{"id": 3, "name": "Food", "kind_id": "misc", "parent_id": 1},
		{"id": 4, "name": "Groceries", "kind_id": "misc"}
	]
}`

func TestSetFilter_NetworthKeepsNesting(t *testing.T) {
	list := testutil.ListFrom(t, mixedKinds)
	networth, err := SetFilter("networth")
	require.NoError(t, err)

	tbl := newTable(t, list, Options{Mode: account.ModeParent, Filter: networth}, Settings{})
	require.Equal(t, []line{
		{Name: "Holdings", Level: 0, Top: 0, Expandable: true},
		{Name: "Cash", Level: 1, Top: 0},
	}, lines(tbl))
	require.True(t, tbl.Rows()[0].Row.Data.Placeholder)
	require.Equal(t, account.ID(1), tbl.Rows()[0].Row.Data.Account.ID)

	expenses, err := SetFilter("Expenses")
	require.NoError(t, err)
	tbl = newTable(t, list, Options{Mode: account.ModeParent, Filter: expenses}, Settings{})
	require.Equal(t, []string{"Groceries", "Holdings", "Food"}, names(tbl))
	require.False(t, tbl.Rows()[1].Row.Data.Placeholder)
}

func TestSets(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		count   int
		wantErr bool
	}{
		{name: "", title: "all accounts", count: 10},
		{name: "all", title: "all accounts", count: 10},
		{name: "networth", title: "net worth", count: 7},
		{name: "income", title: "income", count: 3},
		{name: "expenses", title: "expenses", count: 0},
		{name: "expense_income", title: "expenses and income", count: 3},
		{name: "taxes", wantErr: true},
	}

	list := testutil.SampleList(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FindSet(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSet)
				_, err = SetFilter(tt.name)
				require.ErrorIs(t, err, ErrUnknownSet)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.title, s.Title)
			require.Len(t, list.Filter(s.Filter()), tt.count)
		})
	}
}

func TestSet_Next(t *testing.T) {
	s := Sets[0]
	var seen []string
	for range Sets {
		seen = append(seen, s.Name)
		s = s.Next()
	}
	require.Equal(t, []string{"all", "expenses", "income", "expense_income", "networth"}, seen)
	require.Equal(t, "all", s.Name)
}

func TestFuzzyFilter(t *testing.T) {
	list := testutil.SampleList(t)

	keep := FuzzyFilter(list, "acme")
	require.NotNil(t, keep)
	require.True(t, keep(testutil.MustGet(t, list, testutil.ACME)))
	require.False(t, keep(testutil.MustGet(t, list, testutil.Checking)))

	require.Nil(t, FuzzyFilter(list, "  "))
}

func TestAnd(t *testing.T) {
	a := &account.Account{ID: 1, Name: "x"}
	yes := func(*account.Account) bool { return true }
	no := func(*account.Account) bool { return false }

	require.Nil(t, And(nil, nil))
	require.True(t, And(nil, yes)(a))
	require.False(t, And(yes, no)(a))
}

func TestColumns(t *testing.T) {
	cols, err := Columns(nil)
	require.NoError(t, err)
	require.Len(t, cols, len(DefaultColumns))

	cols, err = Columns([]string{"Balance", " name "})
	require.NoError(t, err)
	require.Equal(t, ColBalance, cols[0].ID)
	require.Equal(t, ColName, cols[1].ID)

	_, err = Columns([]string{"name", "color"})
	require.Error(t, err)
}

func TestNameColumn_Header(t *testing.T) {
	c := NameColumn()
	require.Equal(t, "Account", c.Header(Settings{}))
	require.Equal(t, "Account (by institution)", c.Header(Settings{Mode: account.ModeInstitution}))
}

func TestFormatAmount(t *testing.T) {
	v := decimal.RequireFromString("-1234.567")
	require.Equal(t, "-1234.57", FormatAmount(v, nil, false))
	require.Equal(t, "-1235", FormatAmount(v, nil, true))
	require.Equal(t, "$-1234.57", FormatAmount(v, &account.Commodity{SymbolBefore: "$"}, false))
	require.Equal(t, "-1234.57 EUR", FormatAmount(v, &account.Commodity{SymbolAfter: "EUR"}, false))
}
