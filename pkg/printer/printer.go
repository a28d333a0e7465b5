// Package printer writes account forests and windows of physical rows as
// text or JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/ledgertree/pkg/table"
	"github.com/joshuapare/ledgertree/pkg/tree"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per forest level (text format only).
	// Window rows use the indent computed by the window.
	// Default: 2
	IndentSize int

	// MaxDepth limits forest depth (0 = unlimited).
	MaxDepth int

	// Offset is the first physical row printed by PrintWindow.
	Offset int

	// Limit is the number of physical rows printed (0 = all).
	Limit int

	// ShowHeader prints the column headers (text format only).
	// Default: true
	ShowHeader bool

	// ShowFooter prints the column footers when any column has one.
	// Default: true
	ShowFooter bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
		ShowHeader: true,
		ShowFooter: true,
	}
}

// Source is the render surface contract of a table window.
type Source interface {
	ItemCount() int
	RenderRow(index int) (table.RowView, bool)
	Header() []table.HeaderCell
	Footer() []string
}

// Printer handles formatted output of forests and table windows.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintWindow(table.NewWindow(tbl, table.WindowOptions{}))
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// PrintWindow renders the rows [Offset, Offset+Limit) of src. Only those
// rows are materialized.
func (p *Printer) PrintWindow(src Source) error {
	start, end := p.bounds(src.ItemCount())

	switch p.opts.Format {
	case FormatJSON:
		return p.printWindowJSON(src, start, end)
	case FormatText:
		return p.printWindowText(src, start, end)
	default:
		return fmt.Errorf("unsupported format %q", p.opts.Format)
	}
}

func (p *Printer) bounds(count int) (start, end int) {
	start = min(max(p.opts.Offset, 0), count)
	end = count
	if p.opts.Limit > 0 {
		end = min(count, start+p.opts.Limit)
	}
	return start, end
}

// PrintForest prints a forest, one node per line, using label for the node
// text.
//
// Example:
//
//	printer.PrintForest(p, forest, func(d *accountrows.Data) string { return d.Name })
func PrintForest[T any](p *Printer, forest []*tree.Node[T], label func(T) string) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.encodeJSON(forestJSON(forest, label, p.opts.MaxDepth, 0))
	case FormatText:
		return printForestText(p, forest, label, 0)
	default:
		return fmt.Errorf("unsupported format %q", p.opts.Format)
	}
}
