package table

import "github.com/joshuapare/ledgertree/pkg/tree"

// FromForest exposes a forest as logical rows. Nodes with children get a
// provider returning their converted children; other nodes are leaves.
// Children ignore settings: the forest is already built for them.
func FromForest[T, S any](forest []*tree.Node[T], key func(n *tree.Node[T]) Key) []*Row[T, S] {
	rows := make([]*Row[T, S], 0, len(forest))
	for _, n := range forest {
		row := &Row[T, S]{Key: key(n), Data: n.Data}
		if len(n.Children) > 0 {
			children := FromForest[T, S](n.Children, key)
			row.Provider = ChildrenFunc[T, S](func(T, S) []*Row[T, S] {
				return children
			})
		}
		rows = append(rows, row)
	}
	return rows
}
