package bplus

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Teardown releases every node and leaves the tree empty. Nodes are released
// through parent to child edges only; sibling links are cleared, never
// followed. It returns the number of nodes released.
func (t *BPlusTree) Teardown() int {
	released := releaseSubtree(t.root)
	t.root = nil
	t.height = 0
	t.size = 0
	t.logger.Debug("tree torn down", zap.Int("nodes", released))
	return released
}

func releaseSubtree(node Node) int {
	switch n := node.(type) {
	case nil:
		return 0
	case *InternalNode:
		released := 0
		for _, child := range n.children {
			released += releaseSubtree(child)
		}
		clear(n.children)
		n.children = nil
		n.keys = nil
		return released + 1
	case *LeafNode:
		n.prev = nil
		n.next = nil
		n.keys = nil
		n.values = nil
		return 1
	default:
		panic(errors.AssertionFailedf("releaseSubtree: unexpected node type %T", node))
	}
}
