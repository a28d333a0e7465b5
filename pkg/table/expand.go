package table

import "maps"

// Expansion maps row keys to an explicit open/closed state. Keys without an
// entry follow the table's ExpandPolicy.
//
// An Expansion is never modified in place: With and WithAll return a copy.
// The zero value is empty and ready to use.
type Expansion struct {
	open map[Key]bool
}

// Lookup returns the explicit state stored for key.
func (e Expansion) Lookup(key Key) (open, ok bool) {
	open, ok = e.open[key]
	return open, ok
}

// With returns a copy of e with key set to open.
func (e Expansion) With(key Key, open bool) Expansion {
	next := make(map[Key]bool, len(e.open)+1)
	maps.Copy(next, e.open)
	next[key] = open
	return Expansion{open: next}
}

// WithAll returns a copy of e with every key set to open.
func (e Expansion) WithAll(keys []Key, open bool) Expansion {
	next := make(map[Key]bool, len(e.open)+len(keys))
	maps.Copy(next, e.open)
	for _, k := range keys {
		next[k] = open
	}
	return Expansion{open: next}
}

// Len returns the number of explicit entries.
func (e Expansion) Len() int {
	return len(e.open)
}

// ExpandPolicy decides whether a row without an explicit Expansion entry is
// open. A nil policy keeps every row closed.
type ExpandPolicy[T, S any] func(row *Row[T, S], settings S) bool

// ExpandAll opens every row by default.
func ExpandAll[T, S any]() ExpandPolicy[T, S] {
	return func(*Row[T, S], S) bool { return true }
}

// ExpandNone keeps every row closed by default.
func ExpandNone[T, S any]() ExpandPolicy[T, S] {
	return func(*Row[T, S], S) bool { return false }
}

// isOpen resolves the open state of a row: the explicit entry if present,
// else the policy.
func isOpen[T, S any](row *Row[T, S], settings S, exp Expansion, policy ExpandPolicy[T, S]) bool {
	if open, ok := exp.Lookup(row.Key); ok {
		return open
	}
	return policy != nil && policy(row, settings)
}
