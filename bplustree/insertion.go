package bplus

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Insert adds value under key. A key that is already present keeps its slot
// and gains value at the end of its value list.
func (t *BPlusTree) Insert(key, value string) {
	// If tree is empty
	if t.root == nil {
		root := newLeafNode()
		root.Insert(key, value)
		t.root = root
		t.height = 1
		t.size = 1
		return
	}

	path := t.SearchPath(t.root, key)
	leaf := path[len(path)-1].(*LeafNode)
	if leaf.Insert(key, value) {
		t.size++
	}

	// Split the tip of the path and push the separator into its parent for as
	// long as the tip is full. Running out of path means the root split.
	for len(path) > 0 && path[len(path)-1].KeyCount() == t.order {
		left := path[len(path)-1]
		promoteKey, right := splitNode(left)
		t.logger.Debug("node split",
			zap.Stringer("type", left.Type()),
			zap.String("promoted", promoteKey),
			zap.Int("left_keys", left.KeyCount()),
			zap.Int("right_keys", right.KeyCount()))

		path = path[:len(path)-1]
		if len(path) == 0 {
			t.createNewRoot(left, promoteKey, right)
			return
		}
		path[len(path)-1].(*InternalNode).Insert(promoteKey, right)
	}
}

// createNewRoot grows the tree by one level on top of the two halves of the
// old root.
func (t *BPlusTree) createNewRoot(left Node, promoteKey string, right Node) {
	root := newInternalNode()
	root.InsertRoot(promoteKey, left, right)
	t.root = root
	t.height++
	t.logger.Debug("new root", zap.String("key", promoteKey), zap.Int("height", t.height))
}

func splitNode(node Node) (string, Node) {
	switch n := node.(type) {
	case *LeafNode:
		return n.Split()
	case *InternalNode:
		return n.Split()
	default:
		panic(errors.AssertionFailedf("splitNode: unexpected node type %T", node))
	}
}
