package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRowColors is returned by ParseRowColors.
var ErrInvalidRowColors = errors.New("invalid row colors")

// RowColors selects the alternate-background banding of rows.
type RowColors int

const (
	// ColorsNone draws every row the same.
	ColorsNone RowColors = iota
	// ColorsRow alternates on every physical row.
	ColorsRow
	// ColorsParent alternates per top-level group.
	ColorsParent
)

// String returns the name accepted by ParseRowColors.
func (c RowColors) String() string {
	switch c {
	case ColorsRow:
		return "row"
	case ColorsParent:
		return "parent"
	default:
		return "none"
	}
}

// ParseRowColors parses "none", "row" or "parent".
func ParseRowColors(s string) (RowColors, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ColorsNone, nil
	case "row":
		return ColorsRow, nil
	case "parent":
		return ColorsParent, nil
	}
	return ColorsNone, fmt.Errorf("%w: %q", ErrInvalidRowColors, s)
}

// DefaultOverscan is the number of rows materialized beyond each edge of the
// visible area.
const DefaultOverscan = 10

// WindowOptions configures a Window.
type WindowOptions struct {
	RowColors    RowColors
	IndentNested bool
	Indent       int // cells per level, default 2
	Overscan     int // default DefaultOverscan, negative disables

	// ScrollToBottom makes Sync report true once, when the table first
	// gets rows.
	ScrollToBottom bool
}

// RowView is a materialized physical row.
type RowView struct {
	Key      Key
	Index    int
	Level    int
	Top      int
	Openness Openness
	Band     bool

	// Indent is the number of cells the surface draws before the first
	// cell when nested rows are indented.
	Indent int

	Cells  []string
	Aligns []Align
	// Titles holds the CellTitle of each column, "" when a column has none.
	Titles []string
}

// HeaderCell describes one column header.
type HeaderCell struct {
	ID       string
	Text     string
	Title    string
	Align    Align
	Sortable bool
	Sorted   bool
	Dir      Direction
}

// Window adapts a Table to a fixed-row-height render surface: the surface
// asks for the item count and materializes only the rows of Range.
type Window[T, S any] struct {
	table *Table[T, S]
	opts  WindowOptions

	prevCount int
	scrolled  bool
}

// NewWindow wraps t.
func NewWindow[T, S any](t *Table[T, S], opts WindowOptions) *Window[T, S] {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}
	if opts.Overscan == 0 {
		opts.Overscan = DefaultOverscan
	}
	if opts.Overscan < 0 {
		opts.Overscan = 0
	}
	return &Window[T, S]{table: t, opts: opts}
}

// Table returns the wrapped table.
func (w *Window[T, S]) Table() *Table[T, S] { return w.table }

// Options returns the window options.
func (w *Window[T, S]) Options() WindowOptions { return w.opts }

// SetRowColors changes the banding mode.
func (w *Window[T, S]) SetRowColors(c RowColors) { w.opts.RowColors = c }

// ItemCount is the number of physical rows.
func (w *Window[T, S]) ItemCount() int { return w.table.Len() }

// ItemKey returns the logical key of the row at index, or "" when out of
// range.
func (w *Window[T, S]) ItemKey(index int) Key {
	pr, ok := w.table.Row(index)
	if !ok {
		return ""
	}
	return pr.Row.Key
}

// RenderRow materializes the row at index. Only that row and the current
// settings are consulted.
func (w *Window[T, S]) RenderRow(index int) (RowView, bool) {
	pr, ok := w.table.Row(index)
	if !ok {
		return RowView{}, false
	}
	settings := w.table.Settings()
	openness := w.table.Openness(index)

	cols := pr.Row.Columns
	if cols == nil {
		cols = w.table.Columns()
	}

	details := RowDetails[T, S]{Openness: openness, Level: pr.Level, Row: pr.Row}
	view := RowView{
		Key:      pr.Row.Key,
		Index:    index,
		Level:    pr.Level,
		Top:      pr.TopRowIndex,
		Openness: openness,
		Band:     w.band(index, pr.TopRowIndex),
		Cells:    make([]string, len(cols)),
		Aligns:   make([]Align, len(cols)),
		Titles:   make([]string, len(cols)),
	}
	for i, c := range cols {
		view.Cells[i] = c.Render(pr.Row.Data, details, settings)
		view.Aligns[i] = c.Align
		if c.CellTitle != nil {
			view.Titles[i] = c.CellTitle(pr.Row.Data)
		}
	}
	if w.opts.IndentNested {
		view.Indent = pr.Level * w.opts.Indent
	}
	return view, true
}

func (w *Window[T, S]) band(index, top int) bool {
	switch w.opts.RowColors {
	case ColorsRow:
		return index%2 == 0
	case ColorsParent:
		return top%2 == 0
	default:
		return false
	}
}

// Header returns the header cells of the table columns.
func (w *Window[T, S]) Header() []HeaderCell {
	settings := w.table.Settings()
	spec := w.table.Sort()

	cells := make([]HeaderCell, 0, len(w.table.Columns()))
	for _, c := range w.table.Columns() {
		cells = append(cells, HeaderCell{
			ID:       c.ID,
			Text:     c.Header(settings),
			Title:    c.Title,
			Align:    c.Align,
			Sortable: c.Sortable(),
			Sorted:   spec.Column == c.ID,
			Dir:      spec.Direction,
		})
	}
	return cells
}

// Footer returns the footer cells, or nil when no column has a footer.
func (w *Window[T, S]) Footer() []string {
	settings := w.table.Settings()
	roots := w.table.Roots()

	var cells []string
	hasFoot := false
	for _, c := range w.table.Columns() {
		if c.Foot != nil {
			hasFoot = true
		}
		cells = append(cells, c.Footer(roots, settings))
	}
	if !hasFoot {
		return nil
	}
	return cells
}

// Range returns the half-open index range to materialize for a viewport
// that shows height rows starting at offset, including the overscan.
func (w *Window[T, S]) Range(offset, height int) (start, end int) {
	count := w.ItemCount()
	if count == 0 || height <= 0 {
		return 0, 0
	}
	offset = max(0, min(offset, count-1))

	start = max(0, offset-w.opts.Overscan)
	end = min(count, offset+height+w.opts.Overscan)
	return start, end
}

// Sync must be called after every table update. It reports true exactly
// once: the first time the row count goes from zero to non-zero while
// ScrollToBottom is set.
func (w *Window[T, S]) Sync() bool {
	count := w.ItemCount()
	fire := w.opts.ScrollToBottom && !w.scrolled && w.prevCount == 0 && count > 0
	if fire {
		w.scrolled = true
	}
	w.prevCount = count
	return fire
}
