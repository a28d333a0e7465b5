// Package table is a hierarchical table engine for fixed-height, windowed
// rendering.
//
// Logical rows form a lazily expandable tree: a row either is a leaf or has a
// ChildProvider that computes its children on demand from the row data and
// the caller's settings. Flatten turns that tree plus an Expansion into the
// ordered list of physical rows that a render surface draws, and Table keeps
// the three together behind explicit update calls.
package table

import (
	"strconv"
)

// Key identifies a logical row. It must be unique within its sibling and
// descendant scope and stable across rebuilds for the same conceptual row.
type Key string

// IntKey formats an integer id as a Key.
func IntKey(id int64) Key {
	return Key(strconv.FormatInt(id, 10))
}

// ChildProvider computes the children of an expandable row.
type ChildProvider[T, S any] interface {
	Children(data T, settings S) []*Row[T, S]
}

// ChildrenFunc adapts a function to a ChildProvider.
type ChildrenFunc[T, S any] func(data T, settings S) []*Row[T, S]

// Children calls f.
func (f ChildrenFunc[T, S]) Children(data T, settings S) []*Row[T, S] {
	return f(data, settings)
}

// Row is a logical row. A nil Provider makes the row a leaf.
type Row[T, S any] struct {
	Key      Key
	Data     T
	Provider ChildProvider[T, S]

	// Columns overrides the table columns for the cells of this row.
	Columns []*Column[T, S]
}

// Children evaluates the row's provider. Leaves return nil.
func (r *Row[T, S]) Children(settings S) []*Row[T, S] {
	if r == nil || r.Provider == nil {
		return nil
	}
	return r.Provider.Children(r.Data, settings)
}

// IsLeaf reports whether the row can never have children.
func (r *Row[T, S]) IsLeaf() bool {
	return r.Provider == nil
}
