package bplus

import "slices"

func newLeafNode() *LeafNode {
	return &LeafNode{
		keys:   make([]string, 0),
		values: make([][]string, 0),
	}
}

func (*LeafNode) node() {}

func (n *LeafNode) Type() NodeType { return NodeLeaf }

func (n *LeafNode) IsLeaf() bool { return true }

// Keys returns a copy of the leaf's keys.
func (n *LeafNode) Keys() []string { return slices.Clone(n.keys) }

func (n *LeafNode) KeyCount() int { return len(n.keys) }

// Values returns a copy of the value lists, aligned with Keys.
func (n *LeafNode) Values() [][]string {
	out := make([][]string, len(n.values))
	for i, v := range n.values {
		out[i] = slices.Clone(v)
	}
	return out
}

// Next returns the right sibling, or nil for the last leaf.
func (n *LeafNode) Next() *LeafNode { return n.next }

// Prev returns the left sibling, or nil for the first leaf.
func (n *LeafNode) Prev() *LeafNode { return n.prev }

// Insert places key in sorted position with value as its first value. If the
// key is already present the value is appended to its list instead and
// Insert reports false.
func (n *LeafNode) Insert(key, value string) bool {
	i, found := binarySearch(n.keys, key)
	if found {
		n.values[i] = append(n.values[i], value)
		return false
	}
	n.keys = insert(n.keys, i, key)
	n.values = insert(n.values, i, []string{value})
	return true
}

// Split moves the upper half of the leaf into a new right sibling and links
// it into the chain directly after n. The returned separator is a copy of the
// right leaf's first key; that key stays in the leaf.
func (n *LeafNode) Split() (string, *LeafNode) {
	mid := leafSplitIndex(len(n.keys))

	right := &LeafNode{
		keys:   cloneTail(n.keys, mid),
		values: cloneTail(n.values, mid),
	}

	clear(n.keys[mid:])
	clear(n.values[mid:])
	n.keys = n.keys[:mid]
	n.values = n.values[:mid]

	right.prev = n
	right.next = n.next
	if n.next != nil {
		n.next.prev = right
	}
	n.next = right

	return right.keys[0], right
}

// leafSplitIndex is the first index moved to the right leaf. An odd count
// leaves the extra key on the left.
func leafSplitIndex(count int) int {
	return (count + 1) / 2
}
