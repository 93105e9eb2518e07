package bplus

import (
	"github.com/cockroachdb/errors"
)

// Validate checks the structural invariants of the tree: equal leaf depth,
// node capacity, children == keys+1 in internal nodes, sorted keys that
// respect their separators, and a leaf chain that visits every leaf once in
// ascending key order. The first violation found is returned wrapped in
// ErrCorrupted.
func (t *BPlusTree) Validate() error {
	if t.root == nil {
		if t.height != 0 || t.size != 0 {
			return errors.Wrapf(ErrCorrupted, "empty tree reports height %d and %d keys", t.height, t.size)
		}
		return nil
	}

	v := &validator{order: t.order, leafDepth: -1}
	if err := v.walk(t.root, 1, nil, nil); err != nil {
		return err
	}
	if v.leafDepth != t.height {
		return errors.Wrapf(ErrCorrupted, "leaves at depth %d, tree reports height %d", v.leafDepth, t.height)
	}
	if v.keys != t.size {
		return errors.Wrapf(ErrCorrupted, "leaves hold %d keys, tree reports %d", v.keys, t.size)
	}
	return v.checkChain(t.FirstLeaf())
}

type validator struct {
	order     int
	leafDepth int
	leaves    []*LeafNode // in tree order
	keys      int
}

// walk checks node and its subtree. Every key k in the subtree must satisfy
// lower <= k < upper; a nil bound is open.
func (v *validator) walk(node Node, depth int, lower, upper *string) error {
	var keys []string
	switch n := node.(type) {
	case *LeafNode:
		keys = n.keys
	case *InternalNode:
		keys = n.keys
	default:
		return errors.Wrapf(ErrCorrupted, "unexpected node type %T at depth %d", node, depth)
	}

	for i, k := range keys {
		if i > 0 && keys[i-1] >= k {
			return errors.Wrapf(ErrCorrupted, "%s at depth %d: keys %q, %q out of order", node.Type(), depth, keys[i-1], k)
		}
		if lower != nil && k < *lower {
			return errors.Wrapf(ErrCorrupted, "%s at depth %d: key %q below separator %q", node.Type(), depth, k, *lower)
		}
		if upper != nil && k >= *upper {
			return errors.Wrapf(ErrCorrupted, "%s at depth %d: key %q not below separator %q", node.Type(), depth, k, *upper)
		}
	}

	switch n := node.(type) {
	case *LeafNode:
		if len(n.keys) < 1 || len(n.keys) > v.order-1 {
			return errors.Wrapf(ErrCorrupted, "leaf at depth %d holds %d keys, want [1, %d]", depth, len(n.keys), v.order-1)
		}
		if len(n.values) != len(n.keys) {
			return errors.Wrapf(ErrCorrupted, "leaf at depth %d has %d keys and %d value lists", depth, len(n.keys), len(n.values))
		}
		for i, vals := range n.values {
			if len(vals) == 0 {
				return errors.Wrapf(ErrCorrupted, "leaf key %q has no values", n.keys[i])
			}
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return errors.Wrapf(ErrCorrupted, "leaf at depth %d, other leaves at depth %d", depth, v.leafDepth)
		}
		v.leaves = append(v.leaves, n)
		v.keys += len(n.keys)

	case *InternalNode:
		// With order 2 an internal split leaves the right half with no
		// separator, only a single child.
		minKeys := 1
		if v.order == 2 && depth > 1 {
			minKeys = 0
		}
		if len(n.keys) < minKeys || len(n.keys) > v.order-1 {
			return errors.Wrapf(ErrCorrupted, "internal node at depth %d holds %d keys, want [%d, %d]", depth, len(n.keys), minKeys, v.order-1)
		}
		if len(n.children) != len(n.keys)+1 {
			return errors.Wrapf(ErrCorrupted, "internal node at depth %d has %d keys and %d children", depth, len(n.keys), len(n.children))
		}
		for i, child := range n.children {
			lo, hi := lower, upper
			if i > 0 {
				lo = &n.keys[i-1]
			}
			if i < len(n.keys) {
				hi = &n.keys[i]
			}
			if err := v.walk(child, depth+1, lo, hi); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkChain follows next pointers from first and expects to meet exactly
// the leaves collected by walk, in the same order, with matching prev links.
func (v *validator) checkChain(first *LeafNode) error {
	var (
		prev    *LeafNode
		lastKey string
		seen    bool
	)
	i := 0
	for leaf := first; leaf != nil; leaf = leaf.next {
		if i >= len(v.leaves) {
			return errors.Wrapf(ErrCorrupted, "leaf chain is longer than the %d leaves in the tree", len(v.leaves))
		}
		if leaf != v.leaves[i] {
			return errors.Wrapf(ErrCorrupted, "leaf chain position %d does not match tree order", i)
		}
		if leaf.prev != prev {
			return errors.Wrapf(ErrCorrupted, "leaf chain position %d has a stale prev link", i)
		}
		for _, k := range leaf.keys {
			if seen && k <= lastKey {
				return errors.Wrapf(ErrCorrupted, "leaf chain key %q follows %q", k, lastKey)
			}
			lastKey, seen = k, true
		}
		prev = leaf
		i++
	}
	if i != len(v.leaves) {
		return errors.Wrapf(ErrCorrupted, "leaf chain visits %d of %d leaves", i, len(v.leaves))
	}
	return nil
}
