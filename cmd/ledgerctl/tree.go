package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ledgertree/pkg/accountrows"
	"github.com/joshuapare/ledgertree/pkg/printer"
)

var (
	treeView     viewFlags
	treeDepth    int
	treeBalances bool
	treeCompact  bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().StringVar(&treeView.mode, "mode", "", "Grouping: flat, parent, type, institution")
	cmd.Flags().StringVar(&treeView.accounts, "accounts", "", accountsUsage)
	cmd.Flags().StringVar(&treeView.filter, "filter", "", "Fuzzy filter on full account names")
	cmd.Flags().StringVar(&treeView.threshold, "threshold", "", "Hide accounts whose absolute balance is below this")
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeBalances, "balances", false, "Show balances next to names")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <snapshot.json>",
		Short: "Display the account forest",
		Long: `The tree command displays the accounts of a snapshot grouped into a forest.

Example:
  ledgerctl tree accounts.json
  ledgerctl tree accounts.json --mode institution --depth 2
  ledgerctl tree accounts.json --filter checking --balances`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	list, opts, err := loadView(args[0], treeView)
	if err != nil {
		return err
	}
	forest := accountrows.Forest(list, opts)

	popts := printer.DefaultOptions()
	popts.MaxDepth = treeDepth
	if jsonOut {
		popts.Format = printer.FormatJSON
	}
	if treeCompact {
		popts.IndentSize = 1
	}

	settings := cfg.Settings()
	label := func(d *accountrows.Data) string {
		if !treeBalances || !d.HasBalance {
			return d.Name
		}
		return d.Name + "  " + accountrows.FormatAmount(d.Balance, d.Account.Commodity, settings.RoundValues)
	}

	return printer.PrintForest(printer.New(os.Stdout, popts), forest, label)
}
