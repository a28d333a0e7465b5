package table

import (
	"github.com/joshuapare/ledgertree/internal/logger"
)

// Config is the initial state of a Table.
type Config[T, S any] struct {
	Columns  []*Column[T, S]
	Policy   ExpandPolicy[T, S]
	Settings S
	Sort     SortSpec
}

// Table owns the expansion state of one table view and keeps the physical
// rows in sync with it. Every mutation recomputes the rows before returning.
//
// A Table is not safe for concurrent use; it is meant to be driven by a
// single update loop.
type Table[T, S any] struct {
	columns  []*Column[T, S]
	policy   ExpandPolicy[T, S]
	settings S
	sort     SortSpec

	roots     []*Row[T, S]
	sorted    []*Row[T, S]
	expansion Expansion
	rows      []PhysicalRow[T, S]
}

// New returns an empty table.
func New[T, S any](cfg Config[T, S]) *Table[T, S] {
	t := &Table[T, S]{
		columns:  cfg.Columns,
		policy:   cfg.Policy,
		settings: cfg.Settings,
	}
	if col := FindColumn(t.columns, cfg.Sort.Column); col.Sortable() {
		t.sort = cfg.Sort
	}
	return t
}

// SetRows replaces the top-level rows. When they differ from the current
// ones (element-wise identity) the expansion state is reset. It reports
// whether a reset happened.
func (t *Table[T, S]) SetRows(roots []*Row[T, S]) bool {
	reset := !sameRows(t.roots, roots)
	t.roots = roots
	if reset {
		logger.With("table").Debug("rows replaced, expansion reset",
			"roots", len(roots), "dropped", t.expansion.Len())
		t.expansion = Expansion{}
	}
	t.resort()
	return reset
}

func sameRows[T, S any](a, b []*Row[T, S]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SetSettings replaces the settings passed to providers, cells and the
// policy. Expansion state is kept.
func (t *Table[T, S]) SetSettings(settings S) {
	t.settings = settings
	t.refresh()
}

// SetPolicy replaces the default-expand policy. Explicit entries made under
// the old policy are dropped.
func (t *Table[T, S]) SetPolicy(policy ExpandPolicy[T, S]) {
	t.policy = policy
	t.expansion = Expansion{}
	t.refresh()
}

// SetSort activates a sort. Unknown or unsortable columns clear the sort and
// report false.
func (t *Table[T, S]) SetSort(spec SortSpec) bool {
	ok := spec.IsZero() || FindColumn(t.columns, spec.Column).Sortable()
	if !ok {
		spec = SortSpec{}
	}
	t.sort = spec
	t.resort()
	return ok
}

// ClickHeader applies a header click on the column with the given id.
func (t *Table[T, S]) ClickHeader(id string) SortSpec {
	col := FindColumn(t.columns, id)
	next := t.sort.Click(id, col.Sortable())
	if next != t.sort {
		t.sort = next
		t.resort()
	}
	return t.sort
}

// Toggle flips the row at index. It reports false when the row is out of
// range or not expandable.
func (t *Table[T, S]) Toggle(index int) bool {
	next, ok := Toggle(t.rows, index, t.settings, t.expansion, t.policy)
	if !ok {
		return false
	}
	logger.With("table").Debug("toggle", "index", index, "key", string(t.rows[index].Row.Key))
	t.expansion = next
	t.refresh()
	return true
}

// SetOpen sets the state of the row with the given key explicitly.
func (t *Table[T, S]) SetOpen(key Key, open bool) {
	t.expansion = t.expansion.With(key, open)
	t.refresh()
}

// ExpandAll opens every expandable row of the whole tree.
func (t *Table[T, S]) ExpandAll() {
	t.setAll(true)
}

// CollapseAll closes every expandable row of the whole tree.
func (t *Table[T, S]) CollapseAll() {
	t.setAll(false)
}

func (t *Table[T, S]) setAll(open bool) {
	var keys []Key
	var walk func(rows []*Row[T, S], depth int)
	walk = func(rows []*Row[T, S], depth int) {
		if depth > maxDepth {
			return
		}
		for _, r := range rows {
			children := r.Children(t.settings)
			if len(children) == 0 {
				continue
			}
			keys = append(keys, r.Key)
			walk(children, depth+1)
		}
	}
	walk(t.sorted, 0)

	t.expansion = t.expansion.WithAll(keys, open)
	t.refresh()
}

func (t *Table[T, S]) resort() {
	t.sorted = t.roots
	if !t.sort.IsZero() {
		t.sorted = SortRoots(t.roots, FindColumn(t.columns, t.sort.Column), t.sort.Direction)
	}
	t.refresh()
}

func (t *Table[T, S]) refresh() {
	t.rows = Flatten(t.sorted, t.settings, t.expansion, t.policy)
}

// Rows returns the physical rows. The slice must not be modified.
func (t *Table[T, S]) Rows() []PhysicalRow[T, S] { return t.rows }

// Len returns the number of physical rows.
func (t *Table[T, S]) Len() int { return len(t.rows) }

// Row returns the physical row at index.
func (t *Table[T, S]) Row(index int) (PhysicalRow[T, S], bool) {
	if index < 0 || index >= len(t.rows) {
		return PhysicalRow[T, S]{}, false
	}
	return t.rows[index], true
}

// Openness returns the tri-state of the row at index. Out of range rows are
// NotExpandable.
func (t *Table[T, S]) Openness(index int) Openness {
	pr, ok := t.Row(index)
	if !ok {
		return NotExpandable
	}
	return OpennessOf(pr, t.settings, t.expansion, t.policy)
}

// HasExpandableRows reports whether any visible row has children.
func (t *Table[T, S]) HasExpandableRows() bool {
	for _, pr := range t.rows {
		if pr.Expandable {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the visible row with the given key, or -1.
func (t *Table[T, S]) IndexOf(key Key) int {
	for i, pr := range t.rows {
		if pr.Row.Key == key {
			return i
		}
	}
	return -1
}

// Roots returns the top-level rows in display order.
func (t *Table[T, S]) Roots() []*Row[T, S] { return t.sorted }

// Columns returns the table columns.
func (t *Table[T, S]) Columns() []*Column[T, S] { return t.columns }

// Sort returns the active sort.
func (t *Table[T, S]) Sort() SortSpec { return t.sort }

// Expansion returns the current expansion state.
func (t *Table[T, S]) Expansion() Expansion { return t.expansion }

// Settings returns the current settings.
func (t *Table[T, S]) Settings() S { return t.settings }

// Policy returns the default-expand policy.
func (t *Table[T, S]) Policy() ExpandPolicy[T, S] { return t.policy }
