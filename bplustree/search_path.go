package bplus

import "github.com/cockroachdb/errors"

// SearchPath returns the nodes visited going from node down to the leaf
// responsible for key. The leaf is the last element. A nil node yields an
// empty path.
func (t *BPlusTree) SearchPath(node Node, key string) []Node {
	path := make([]Node, 0, max(t.height, 1))
	for node != nil {
		path = append(path, node)
		switch n := node.(type) {
		case *LeafNode:
			return path
		case *InternalNode:
			node = n.children[childIndex(n.keys, key)]
		default:
			panic(errors.AssertionFailedf("SearchPath: unexpected node type %T", node))
		}
	}
	return path
}

// FindLeaf returns the leaf that holds or would hold key, or nil for an
// empty tree.
func (t *BPlusTree) FindLeaf(key string) *LeafNode {
	path := t.SearchPath(t.root, key)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1].(*LeafNode)
}
