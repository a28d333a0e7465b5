package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ledgertree/internal/logger"
	"github.com/joshuapare/ledgertree/internal/termsize"
	"github.com/joshuapare/ledgertree/pkg/accountrows"
	"github.com/joshuapare/ledgertree/pkg/printer"
	"github.com/joshuapare/ledgertree/pkg/table"
)

// headerLines is what the text output adds around the rows: header,
// separator, footer and the shell prompt.
const headerLines = 4

var (
	rowsView        viewFlags
	rowsSort        string
	rowsColors      string
	rowsColumns     []string
	rowsToggle      []string
	rowsExpandAll   bool
	rowsCollapseAll bool
	rowsTrading     bool
	rowsRound       bool
	rowsBottom      bool
	rowsOffset      int
	rowsLimit       int
)

func init() {
	cmd := newRowsCmd()
	cmd.Flags().StringVar(&rowsView.mode, "mode", "", "Grouping: flat, parent, type, institution")
	cmd.Flags().StringVar(&rowsView.accounts, "accounts", "", accountsUsage)
	cmd.Flags().StringVar(&rowsView.filter, "filter", "", "Fuzzy filter on full account names")
	cmd.Flags().StringVar(&rowsView.threshold, "threshold", "", "Hide accounts whose absolute balance is below this")
	cmd.Flags().StringVar(&rowsSort, "sort", "", "Sort top-level rows: +column or -column")
	cmd.Flags().StringVar(&rowsColors, "colors", "", "Row banding: none, row, parent (JSON output reports the top index)")
	cmd.Flags().StringSliceVar(&rowsColumns, "columns", nil, "Columns: name, kind, institution, balance, percent")
	cmd.Flags().StringSliceVar(&rowsToggle, "toggle", nil, "Toggle the rows with these keys, in order")
	cmd.Flags().BoolVar(&rowsExpandAll, "expand-all", false, "Expand every row")
	cmd.Flags().BoolVar(&rowsCollapseAll, "collapse-all", false, "Collapse every row")
	cmd.Flags().BoolVar(&rowsTrading, "expand-trading", false, "Expand trading accounts by default")
	cmd.Flags().BoolVar(&rowsRound, "round", false, "Hide cents")
	cmd.Flags().BoolVar(&rowsBottom, "bottom", false, "Show the last page")
	cmd.Flags().IntVar(&rowsOffset, "offset", 0, "First row to print")
	cmd.Flags().IntVar(&rowsLimit, "limit", -1, "Rows to print (default: terminal height, all when not a terminal)")
	cmd.MarkFlagsMutuallyExclusive("expand-all", "collapse-all")
	rootCmd.AddCommand(cmd)
}

func newRowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows <snapshot.json>",
		Short: "Print a page of the flattened account table",
		Long: `The rows command flattens the account forest into table rows, applying
the default expansion (trading accounts collapsed), any --toggle keys and
the sort, then prints one window of rows.

Row keys are account ids, or ~<group> for institution and type groups.

Example:
  ledgerctl rows accounts.json
  ledgerctl rows accounts.json --sort -balance --collapse-all --toggle 1
  ledgerctl rows accounts.json --mode institution --offset 20 --limit 20 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRows(args)
		},
	}
	return cmd
}

func runRows(args []string) error {
	list, opts, err := loadView(args[0], rowsView)
	if err != nil {
		return err
	}

	columnIDs := cfg.Columns
	if len(rowsColumns) > 0 {
		columnIDs = rowsColumns
	}
	columns, err := accountrows.Columns(columnIDs)
	if err != nil {
		return err
	}

	sort := cfg.Sort
	if rowsSort != "" {
		if sort, err = table.ParseSort(rowsSort); err != nil {
			return err
		}
	}

	settings := cfg.Settings()
	settings.Mode = opts.Mode
	settings.ExpandTrading = settings.ExpandTrading || rowsTrading
	settings.RoundValues = settings.RoundValues || rowsRound

	tbl := accountrows.NewTable(columns, settings, table.SortSpec{})
	tbl.SetRows(accountrows.Build(list, opts))
	if !tbl.SetSort(sort) {
		return fmt.Errorf("column %q is not sortable or not shown", sort.Column)
	}

	switch {
	case rowsExpandAll:
		tbl.ExpandAll()
	case rowsCollapseAll:
		tbl.CollapseAll()
	}
	for _, key := range rowsToggle {
		idx := tbl.IndexOf(table.Key(key))
		if idx < 0 {
			return fmt.Errorf("row %q is not visible", key)
		}
		if !tbl.Toggle(idx) {
			return fmt.Errorf("row %q has no children", key)
		}
	}

	wopts := cfg.WindowOptions()
	wopts.ScrollToBottom = wopts.ScrollToBottom || rowsBottom
	if rowsColors != "" {
		if wopts.RowColors, err = table.ParseRowColors(rowsColors); err != nil {
			return err
		}
	}
	window := table.NewWindow(tbl, wopts)

	popts := printer.DefaultOptions()
	if jsonOut {
		popts.Format = printer.FormatJSON
	}
	popts.Limit = pageSize()
	popts.Offset = rowsOffset
	if window.Sync() && popts.Limit > 0 {
		popts.Offset = max(0, window.ItemCount()-popts.Limit)
	}

	logger.Debug("rows page", "rows", window.ItemCount(), "offset", popts.Offset, "limit", popts.Limit,
		"sort", tbl.Sort().String(), "expanded", tbl.Expansion().Len())
	printVerbose("%d rows, showing from %d\n", window.ItemCount(), popts.Offset)

	return printer.New(os.Stdout, popts).PrintWindow(window)
}

// pageSize returns the --limit value, or the terminal height when stdout is
// a terminal. Zero prints every row.
func pageSize() int {
	if rowsLimit >= 0 {
		return rowsLimit
	}
	if jsonOut {
		return 0
	}
	if _, err := termsize.Get(os.Stdout); err != nil {
		return 0
	}
	return termsize.Rows(os.Stdout, headerLines)
}
