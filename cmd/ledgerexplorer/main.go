package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/ledgertree/internal/config"
	"github.com/joshuapare/ledgertree/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options are the command line flags.
type options struct {
	debug      bool
	bottom     bool
	watch      bool
	help       bool
	version    bool
	configPath string
	path       string
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--debug", "-d":
			opts.debug = true
		case "--bottom", "-b":
			opts.bottom = true
		case "--watch", "-w":
			opts.watch = true
		case "--help", "-h":
			opts.help = true
		case "--version", "-v":
			opts.version = true
		case "--config", "-c":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a file argument", arg)
			}
			i++
			opts.configPath = args[i]
		default:
			if len(arg) > 1 && arg[0] == '-' {
				return opts, fmt.Errorf("unknown option %s", arg)
			}
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument %s", arg)
			}
			opts.path = arg
		}
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if opts.help {
		printHelp()
		os.Exit(0)
	}
	if opts.version {
		fmt.Printf("ledgerexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}
	if opts.path == "" {
		printUsage()
		os.Exit(1)
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: opts.debug,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	defer logger.Close()

	cfg, err := config.Resolve(opts.configPath, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Bottom = cfg.Bottom || opts.bottom

	logger.Info("starting ledgerexplorer", "path", opts.path, "mode", cfg.Mode.String(), "debug", opts.debug)

	if _, err := os.Stat(opts.path); err != nil {
		logger.Error("snapshot not found", "path", opts.path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: snapshot not found: %s\n", opts.path)
		os.Exit(1)
	}

	m := NewModel(opts.path, cfg)
	if opts.watch {
		w, err := newSnapshotWatcher(opts.path)
		if err != nil {
			logger.Warn("snapshot watch disabled", "path", opts.path, "error", err)
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			defer w.Close()
			m = m.WithWatcher(w)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		logger.Close()
		os.Exit(1)
	}

	logger.Info("ledgerexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: ledgerexplorer [options] <snapshot.json>\n")
	fmt.Fprintf(os.Stderr, "Try 'ledgerexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("ledgerexplorer - Interactive account table for ledger snapshots")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  ledgerexplorer [options] <snapshot.json>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Shows the accounts of a snapshot as an expandable tree table with")
	fmt.Println("  balances rolled up into collapsed rows.")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Move up/down")
	fmt.Println("    →/l, ←/h    Expand / collapse or go to parent")
	fmt.Println("    Enter       Expand/collapse")
	fmt.Println("    1-4         Group: flat, parent, type, institution")
	fmt.Println("    a           Next account set (all, expenses, income, net worth)")
	fmt.Println("    s, r        Next sort column, reverse sort")
	fmt.Println("    /           Fuzzy filter")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -b, --bottom         Start on the last row")
	fmt.Println("  -c, --config <file>  View configuration (default $" + config.EnvConfig + ")")
	fmt.Println("  -d, --debug          Enable debug logging to ~/.ledgertree/logs/")
	fmt.Println("  -h, --help           Show this help message")
	fmt.Println("  -w, --watch          Reload when the snapshot file changes")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println()
	fmt.Println("For non-interactive output, use the 'ledgerctl' command instead.")
}
