package main

import (
	"strings"

	"github.com/joshuapare/ledgertree/pkg/printer"
	"github.com/joshuapare/ledgertree/pkg/table"
)

const (
	cellGap       = "  "
	minNameWidth  = 12
	defaultColumn = 12
)

// rowList draws the physical rows of the account window for the
// virtual list renderer.
type rowList struct {
	window *accountWindow
}

func (l *rowList) ItemCount() int {
	return l.window.ItemCount()
}

func (l *rowList) ItemKey(index int) string {
	return string(l.window.ItemKey(index))
}

func (l *rowList) Range(offset, height int) (int, int) {
	return l.window.Range(offset, height)
}

func (l *rowList) RenderItem(index int, isCursor bool, width int) string {
	view, ok := l.window.RenderRow(index)
	if !ok {
		return ""
	}

	cells := make([]string, len(view.Cells))
	copy(cells, view.Cells)
	if len(cells) > 0 {
		cells[0] = strings.Repeat(" ", view.Indent) + printer.Marker(view.Openness) + " " + cells[0]
	}
	line := l.join(cells, view.Aligns, width)

	style := tableRowStyle
	switch {
	case isCursor:
		return tableSelectedStyle.Render(line)
	case view.Band:
		style = tableRowAltStyle
	}
	if pr, ok := l.window.Table().Row(index); ok && pr.Row.Data.Placeholder {
		style = style.Inherit(placeholderStyle)
	}
	return style.Render(line)
}

// header renders the column headers with the sort arrow.
func (l *rowList) header(width int) string {
	head := l.window.Header()
	cells := make([]string, len(head))
	aligns := make([]table.Align, len(head))
	for i, h := range head {
		cells[i] = h.Text + printer.SortArrow(h)
		if i == 0 {
			cells[i] = "  " + cells[i]
		}
		aligns[i] = h.Align
	}
	return tableHeaderStyle.Render(l.join(cells, aligns, width))
}

// footer renders the column footers, or "" when no column has one.
func (l *rowList) footer(width int) string {
	foot := l.window.Footer()
	if foot == nil {
		return ""
	}
	cells := make([]string, len(foot))
	copy(cells, foot)
	cells[0] = "  " + cells[0]

	aligns := make([]table.Align, len(foot))
	for i, c := range l.window.Table().Columns() {
		if i < len(aligns) {
			aligns[i] = c.Align
		}
	}
	return tableFooterStyle.Render(l.join(cells, aligns, width))
}

// widths gives every column but the first its configured width; the first
// column takes the rest of the line.
func (l *rowList) widths(width int) []int {
	columns := l.window.Table().Columns()
	out := make([]int, len(columns))
	rest := width
	for i, c := range columns {
		if i == 0 {
			continue
		}
		w := c.Width
		if w <= 0 {
			w = defaultColumn
		}
		out[i] = w
		rest -= w + len(cellGap)
	}
	if len(out) > 0 {
		out[0] = max(rest, minNameWidth)
	}
	return out
}

func (l *rowList) join(cells []string, aligns []table.Align, width int) string {
	widths := l.widths(width)
	out := make([]string, 0, len(cells))
	for i, c := range cells {
		if i >= len(widths) {
			break
		}
		align := table.AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		out = append(out, fit(c, widths[i], align))
	}
	return strings.Join(out, cellGap)
}
