// Package tree builds forests out of flat entity lists.
//
// A Builder links every entity to its parent key. Parents that are missing
// from the input may be synthesized as placeholder nodes, so a partial view
// of a hierarchy still nests correctly. The resulting forest is never mutated
// after Build returns; a new forest replaces the old one when the input
// changes.
package tree

import (
	"slices"
)

// Node is one entry of a forest. A node is owned by its parent (or by the
// forest slice when it is a root) and never appears twice.
type Node[T any] struct {
	Data     T
	Children []*Node[T]
	Parent   *Node[T]
}

// IsRoot reports whether the node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.Parent == nil
}

// Depth returns the number of ancestors of the node.
func (n *Node[T]) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// Builder describes how entities of type T relate to each other through
// keys of type K.
type Builder[T any, K comparable] struct {
	// Key returns the identity of an entity. Entities without a key are
	// skipped.
	Key func(T) (K, bool)

	// ParentKey returns the key of the entity's parent, if any. It is also
	// called on synthesized placeholders.
	ParentKey func(T) (K, bool)

	// Placeholder synthesizes the data for a parent that is not part of the
	// input. Returning false leaves the child as a root. A nil Placeholder
	// never synthesizes anything.
	Placeholder func(K) (T, bool)

	// Compare orders siblings. A nil Compare keeps input order.
	Compare func(a, b T) int
}

// Build turns items into a forest.
//
// Missing parents are synthesized at most once per key. A node whose parent
// cannot be resolved, or whose parent chain leads back to itself, stays a
// root. Each sibling group and the root list are sorted independently.
func (b Builder[T, K]) Build(items []T) []*Node[T] {
	nodes := make(map[K]*Node[T], len(items))
	order := make([]*Node[T], 0, len(items))

	for _, item := range items {
		k, ok := b.Key(item)
		if !ok {
			continue
		}
		if _, dup := nodes[k]; dup {
			continue
		}
		n := &Node[T]{Data: item}
		nodes[k] = n
		order = append(order, n)
	}

	// order grows while placeholders get appended, so placeholders are
	// linked to their own parents too.
	for i := 0; b.ParentKey != nil && i < len(order); i++ {
		n := order[i]
		pk, ok := b.ParentKey(n.Data)
		if !ok {
			continue
		}

		parent, exists := nodes[pk]
		if !exists {
			if b.Placeholder == nil {
				continue
			}
			data, ok := b.Placeholder(pk)
			if !ok {
				continue
			}
			parent = &Node[T]{Data: data}
			nodes[pk] = parent
			order = append(order, parent)
		}

		if createsCycle(n, parent) {
			continue
		}
		parent.Children = append(parent.Children, n)
		n.Parent = parent
	}

	roots := make([]*Node[T], 0)
	for _, n := range order {
		if b.Compare != nil && len(n.Children) > 1 {
			sortNodes(n.Children, b.Compare)
		}
		if n.Parent == nil {
			roots = append(roots, n)
		}
	}
	if b.Compare != nil {
		sortNodes(roots, b.Compare)
	}
	return roots
}

// createsCycle reports whether attaching child under parent would make child
// one of its own ancestors.
func createsCycle[T any](child, parent *Node[T]) bool {
	for p := parent; p != nil; p = p.Parent {
		if p == child {
			return true
		}
	}
	return false
}

func sortNodes[T any](nodes []*Node[T], cmp func(a, b T) int) {
	slices.SortStableFunc(nodes, func(a, b *Node[T]) int {
		return cmp(a.Data, b.Data)
	})
}

// Walk visits every node of the forest in depth-first pre-order. Returning
// false from fn skips the node's children.
func Walk[T any](forest []*Node[T], fn func(n *Node[T], depth int) bool) {
	var visit func(nodes []*Node[T], depth int)
	visit = func(nodes []*Node[T], depth int) {
		for _, n := range nodes {
			if fn(n, depth) {
				visit(n.Children, depth+1)
			}
		}
	}
	visit(forest, 0)
}

// Count returns the number of nodes in the forest.
func Count[T any](forest []*Node[T]) int {
	total := 0
	Walk(forest, func(*Node[T], int) bool {
		total++
		return true
	})
	return total
}
