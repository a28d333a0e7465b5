package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ledgertree/internal/testutil"
)

func runRowsOutput(t *testing.T, path string) string {
	t.Helper()
	output, err := captureOutput(t, func() error {
		return runRows([]string{path})
	})
	require.NoError(t, err)
	return output
}

func firstCells(output string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "▼", "▶", "•":
			out = append(out, fields[1])
		}
	}
	return out
}

func TestRowsCommand_Default(t *testing.T) {
	resetFlags()
	output := runRowsOutput(t, testutil.WriteSnapshot(t))

	require.Equal(t, []string{
		"Assets", "Brokerage", "Checking", "Savings",
		"Income", "bonus", "Salary",
		"Liabilities", "Credit",
	}, firstCells(output))
	assertContains(t, output, []string{"Account (by parent)", "▼ Assets", "  ▶ Brokerage", "4630.00"})
	assertNotContains(t, output, []string{"ACME"})
}

func TestRowsCommand_DefaultLimitWhenNotATerminal(t *testing.T) {
	resetFlags()
	require.Equal(t, -1, rowsLimit)

	var limit int
	_, err := captureOutput(t, func() error {
		limit = pageSize()
		return nil
	})
	require.NoError(t, err)
	require.Zero(t, limit, "piped output prints every row")

	output := runRowsOutput(t, testutil.WriteSnapshot(t))
	require.Len(t, firstCells(output), 9)

	rowsLimit = 3
	require.Equal(t, 3, pageSize())
}

func TestRowsCommand_AccountSet(t *testing.T) {
	path := testutil.WriteSnapshot(t)

	resetFlags()
	rowsView.accounts = "networth"
	output := runRowsOutput(t, path)
	require.Equal(t, []string{"Assets", "Brokerage", "Checking", "Savings", "Liabilities", "Credit"}, firstCells(output))

	resetFlags()
	cfg.Accounts = "income"
	output = runRowsOutput(t, path)
	require.Equal(t, []string{"Income", "bonus", "Salary"}, firstCells(output))

	resetFlags()
	rowsView.accounts = "taxes"
	_, err := captureOutput(t, func() error {
		return runRows([]string{path})
	})
	require.ErrorContains(t, err, "unknown account set")
}

func TestRowsCommand_Toggle(t *testing.T) {
	path := testutil.WriteSnapshot(t)

	resetFlags()
	rowsToggle = []string{"4", "1"}
	output := runRowsOutput(t, path)
	require.Equal(t, []string{"Assets", "Income", "bonus", "Salary", "Liabilities", "Credit"}, firstCells(output))

	resetFlags()
	rowsToggle = []string{"4"}
	output = runRowsOutput(t, path)
	assertContains(t, output, []string{"    • ACME"})

	for key, msg := range map[string]string{"2": "has no children", "5": "not visible", "99": "not visible"} {
		resetFlags()
		rowsToggle = []string{key}
		_, err := captureOutput(t, func() error { return runRows([]string{path}) })
		require.ErrorContains(t, err, msg, key)
	}
}

func TestRowsCommand_CollapseAllAndSort(t *testing.T) {
	resetFlags()
	rowsCollapseAll = true
	rowsSort = "-name"

	output := runRowsOutput(t, testutil.WriteSnapshot(t))
	require.Equal(t, []string{"Liabilities", "Income", "Assets"}, firstCells(output))
	assertContains(t, output, []string{"Account (by parent) ↓"})
}

func TestRowsCommand_ExpandAllInstitution(t *testing.T) {
	path := testutil.WriteSnapshot(t)

	resetFlags()
	rowsView.mode = "institution"
	rowsExpandAll = true
	output := runRowsOutput(t, path)
	require.Equal(t, []string{
		"Bank", "Checking", "Credit", "Savings",
		"Broker", "ACME", "Brokerage",
		"Unknown", "Assets", "bonus", "Income", "Liabilities", "Salary",
	}, firstCells(output))

	resetFlags()
	rowsView.mode = "institution"
	rowsToggle = []string{"~Bank A"}
	output = runRowsOutput(t, path)
	assertContains(t, output, []string{"▶ Bank A"})
	assertNotContains(t, output, []string{"Checking"})
}

func TestRowsCommand_SortErrors(t *testing.T) {
	path := testutil.WriteSnapshot(t)

	resetFlags()
	rowsSort = "+kind"
	_, err := captureOutput(t, func() error { return runRows([]string{path}) })
	require.ErrorContains(t, err, "not sortable")

	resetFlags()
	rowsSort = "+-"
	_, err = captureOutput(t, func() error { return runRows([]string{path}) })
	require.Error(t, err)

	resetFlags()
	rowsColumns = []string{"name", "colour"}
	_, err = captureOutput(t, func() error { return runRows([]string{path}) })
	require.ErrorContains(t, err, "unknown column")
}

func TestRowsCommand_Bottom(t *testing.T) {
	resetFlags()
	rowsBottom = true
	rowsLimit = 2

	output := runRowsOutput(t, testutil.WriteSnapshot(t))
	require.Equal(t, []string{"Liabilities", "Credit"}, firstCells(output))
}

func TestRowsCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	rowsOffset = 1
	rowsLimit = 3
	rowsColumns = []string{"name", "balance"}
	rowsView.threshold = "1000"

	output := runRowsOutput(t, testutil.WriteSnapshot(t))
	assertJSON(t, output)

	var doc struct {
		Total  int `json:"total"`
		Offset int `json:"offset"`
		Rows   []struct {
			Key   string   `json:"key"`
			Level int      `json:"level"`
			Open  string   `json:"open"`
			Cells []string `json:"cells"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &doc))

	// Assets, Brokerage (collapsed), Checking, Savings, Income, Salary
	require.Equal(t, 6, doc.Total)
	require.Equal(t, 1, doc.Offset)
	require.Len(t, doc.Rows, 3)
	require.Equal(t, "4", doc.Rows[0].Key)
	require.Equal(t, "collapsed", doc.Rows[0].Open)
	require.Equal(t, []string{"Brokerage", "3200.10 EUR"}, doc.Rows[0].Cells)
	require.Equal(t, []string{"Checking", "1250.40 EUR"}, doc.Rows[1].Cells)
}

func TestRowsCommand_ConfigFile(t *testing.T) {
	resetFlags()
	configPath = testutil.WriteFile(t, "view.yaml", "mode: flat\nsort: -balance\ncolumns: [name, balance]\n")
	require.NoError(t, setup(rootCmd, nil))

	output := runRowsOutput(t, testutil.WriteSnapshot(t))
	cells := firstCells(output)
	require.Len(t, cells, 10)
	require.Equal(t, "Savings", cells[0])
	require.Equal(t, "Salary", cells[9])
}
