package bplus

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Option configures a BPlusTree.
type Option func(*BPlusTree)

// WithLogger routes split and teardown events to l at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(t *BPlusTree) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewBPlusTree creates an empty tree whose nodes split once they hold order
// keys. order must be at least 2.
func NewBPlusTree(order int, opts ...Option) (*BPlusTree, error) {
	if order < 2 {
		return nil, errors.Wrapf(ErrInvalidOrder, "NewBPlusTree: order %d, must be at least 2", order)
	}
	t := &BPlusTree{
		order:  order,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *BPlusTree) Order() int { return t.order }

// Height is the number of levels from the root to the leaves.
func (t *BPlusTree) Height() int { return t.height }

// Len is the number of distinct keys.
func (t *BPlusTree) Len() int { return t.size }

func (t *BPlusTree) Empty() bool { return t.root == nil }

// Root returns the root node, or nil for an empty tree.
func (t *BPlusTree) Root() Node { return t.root }

// FirstLeaf returns the leftmost leaf, or nil for an empty tree.
func (t *BPlusTree) FirstLeaf() *LeafNode {
	node := t.root
	for node != nil {
		switch n := node.(type) {
		case *LeafNode:
			return n
		case *InternalNode:
			node = n.children[0]
		default:
			panic(errors.AssertionFailedf("FirstLeaf: unexpected node type %T", node))
		}
	}
	return nil
}
