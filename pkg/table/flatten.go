package table

// PhysicalRow is one line of the flattened table.
type PhysicalRow[T, S any] struct {
	Row *Row[T, S]

	// TopRowIndex is the index of the row's top-level ancestor among the
	// roots. Used for banding by parent group.
	TopRowIndex int

	// Expandable is true when the row reported at least one child.
	Expandable bool

	// Level is the nesting depth, 0 for roots.
	Level int
}

// Openness is the tri-state expand status of a physical row.
type Openness int

const (
	// NotExpandable rows have no children.
	NotExpandable Openness = iota
	// Collapsed rows have children that are hidden.
	Collapsed
	// Expanded rows show their children.
	Expanded
)

// String returns a short name for the state.
func (o Openness) String() string {
	switch o {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "leaf"
	}
}

// Flatten walks roots depth-first and returns the visible rows.
//
// Children are computed through the row's provider only, and only the
// children of open rows are visited, so the cost is bounded by what is
// visible (plus one level below every visible collapsed row). Rows at
// maxDepth are emitted as leaves and their provider is never called.
func Flatten[T, S any](roots []*Row[T, S], settings S, exp Expansion, policy ExpandPolicy[T, S]) []PhysicalRow[T, S] {
	out := make([]PhysicalRow[T, S], 0, len(roots))

	var visit func(row *Row[T, S], top, level int)
	visit = func(row *Row[T, S], top, level int) {
		var children []*Row[T, S]
		if level < maxDepth {
			children = row.Children(settings)
		}
		expandable := len(children) > 0

		out = append(out, PhysicalRow[T, S]{
			Row:         row,
			TopRowIndex: top,
			Expandable:  expandable,
			Level:       level,
		})

		if !expandable || !isOpen(row, settings, exp, policy) {
			return
		}
		for _, child := range children {
			visit(child, top, level+1)
		}
	}

	for i, root := range roots {
		visit(root, i, 0)
	}
	return out
}

// maxDepth stops runaway providers that generate children forever.
const maxDepth = 256

// OpennessOf returns the tri-state of a physical row.
func OpennessOf[T, S any](pr PhysicalRow[T, S], settings S, exp Expansion, policy ExpandPolicy[T, S]) Openness {
	if !pr.Expandable {
		return NotExpandable
	}
	if isOpen(pr.Row, settings, exp, policy) {
		return Expanded
	}
	return Collapsed
}

// Toggle flips the row at index and returns the new Expansion. The input is
// not modified. An index out of range or a row that is not expandable leaves
// the expansion unchanged and reports false.
func Toggle[T, S any](rows []PhysicalRow[T, S], index int, settings S, exp Expansion, policy ExpandPolicy[T, S]) (Expansion, bool) {
	if index < 0 || index >= len(rows) || !rows[index].Expandable {
		return exp, false
	}
	row := rows[index].Row
	return exp.With(row.Key, !isOpen(row, settings, exp, policy)), true
}
