package bplus

import "slices"

func newInternalNode() *InternalNode {
	return &InternalNode{
		keys:     make([]string, 0),
		children: make([]Node, 0),
	}
}

func (*InternalNode) node() {}

func (n *InternalNode) Type() NodeType { return NodeInternal }

func (n *InternalNode) IsLeaf() bool { return false }

// Keys returns a copy of the separator keys.
func (n *InternalNode) Keys() []string { return slices.Clone(n.keys) }

func (n *InternalNode) KeyCount() int { return len(n.keys) }

// Children returns a copy of the child list.
func (n *InternalNode) Children() []Node { return slices.Clone(n.children) }

// Insert adds a separator promoted by a child split. rightChild is placed
// immediately after the separator, next to the child that split.
func (n *InternalNode) Insert(key string, rightChild Node) {
	i := lowerBound(n.keys, key)
	n.keys = insert(n.keys, i, key)
	n.children = insert(n.children, i+1, rightChild)
}

// InsertRoot fills a fresh node with a single separator and its two
// children. It is used when the old root has split.
func (n *InternalNode) InsertRoot(key string, leftChild, rightChild Node) {
	n.keys = append(n.keys[:0], key)
	n.children = append(n.children[:0], leftChild, rightChild)
}

// Split promotes the middle separator and moves everything to its right
// into a new node. The promoted key is kept in neither half.
func (n *InternalNode) Split() (string, *InternalNode) {
	// mid is the index of the key to promote
	mid := len(n.keys) / 2
	promoteKey := n.keys[mid]

	// keys: left keeps [0:mid), promote key[mid], right gets (mid, end]
	// children: left keeps [0:mid], right gets [mid+1:]
	right := &InternalNode{
		keys:     cloneTail(n.keys, mid+1),
		children: cloneTail(n.children, mid+1),
	}

	clear(n.keys[mid:])
	clear(n.children[mid+1:])
	n.keys = n.keys[:mid]
	n.children = n.children[:mid+1]

	return promoteKey, right
}
