package printer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/ledgertree/pkg/table"
	"github.com/joshuapare/ledgertree/pkg/tree"
)

// Expander markers.
const (
	MarkExpanded  = "▼"
	MarkCollapsed = "▶"
	MarkLeaf      = "•"
)

// Marker returns the expander marker of a row state.
func Marker(o table.Openness) string {
	switch o {
	case table.Expanded:
		return MarkExpanded
	case table.Collapsed:
		return MarkCollapsed
	default:
		return MarkLeaf
	}
}

// SortArrow returns the header suffix of a sorted column.
func SortArrow(h table.HeaderCell) string {
	if !h.Sorted {
		return ""
	}
	if h.Dir == table.Descending {
		return " ↓"
	}
	return " ↑"
}

func printForestText[T any](p *Printer, forest []*tree.Node[T], label func(T) string, depth int) error {
	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		return nil
	}

	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	for _, n := range forest {
		if _, err := fmt.Fprintf(p.writer, "%s%s\n", indent, label(n.Data)); err != nil {
			return err
		}
		if err := printForestText(p, n.Children, label, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// printWindowText prints rows as aligned columns. The first column carries
// the nesting indent and the expander marker.
func (p *Printer) printWindowText(src Source, start, end int) error {
	header := src.Header()
	var footer []string
	if p.opts.ShowFooter {
		footer = src.Footer()
	}

	lines := make([][]string, 0, end-start)
	var aligns []table.Align
	for i := start; i < end; i++ {
		view, ok := src.RenderRow(i)
		if !ok {
			continue
		}
		cells := append([]string(nil), view.Cells...)
		if len(cells) == 0 {
			cells = []string{""}
		}
		cells[0] = strings.Repeat(" ", view.Indent) + Marker(view.Openness) + " " + cells[0]
		lines = append(lines, cells)
		if len(view.Aligns) > len(aligns) {
			aligns = view.Aligns
		}
	}

	headCells := make([]string, len(header))
	for i, h := range header {
		headCells[i] = h.Text + SortArrow(h)
		if i == 0 {
			headCells[i] = "  " + headCells[i]
		}
		if i >= len(aligns) {
			aligns = append(aligns, h.Align)
		}
	}
	if len(footer) > 0 {
		footer = append([]string(nil), footer...)
		footer[0] = "  " + footer[0]
	}

	widths := columnWidths(lines, headCells, footer)

	if p.opts.ShowHeader && len(headCells) > 0 {
		if err := p.writeLine(headCells, widths, aligns); err != nil {
			return err
		}
	}
	for _, cells := range lines {
		if err := p.writeLine(cells, widths, aligns); err != nil {
			return err
		}
	}
	if len(footer) > 0 {
		total := 0
		for _, w := range widths {
			total += w
		}
		total += 2 * (len(widths) - 1)
		if _, err := fmt.Fprintln(p.writer, strings.Repeat("─", total)); err != nil {
			return err
		}
		if err := p.writeLine(footer, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func columnWidths(lines [][]string, extra ...[]string) []int {
	var widths []int
	grow := func(cells []string) {
		for i, c := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	for _, cells := range lines {
		grow(cells)
	}
	for _, cells := range extra {
		grow(cells)
	}
	return widths
}

func (p *Printer) writeLine(cells []string, widths []int, aligns []table.Align) error {
	out := make([]string, len(cells))
	for i, c := range cells {
		align := table.AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		out[i] = pad(c, widths[i], align)
	}
	_, err := fmt.Fprintln(p.writer, strings.TrimRight(strings.Join(out, "  "), " "))
	return err
}

func pad(s string, width int, align table.Align) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case table.AlignRight:
		return strings.Repeat(" ", gap) + s
	case table.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
