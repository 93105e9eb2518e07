// Structure of B+ Tree
/*
Tree
 ├── InternalNode (separator keys + owned children)
 │      └── InternalNode ...
 │             └── LeafNode (keys + value lists + prev/next)


- keys: sorted ascending order, distinct within a node
- internal nodes: children length == len(keys)+1
- leaf nodes: values length == len(keys), one value list per key
- leaf nodes linked with prev/next for range scans, nil terminates the chain
- all leaf nodes at same depth

*/
package bplus

import (
	"go.uber.org/zap"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

func (nt NodeType) String() string {
	switch nt {
	case NodeInternal:
		return "INTERNAL"
	case NodeLeaf:
		return "LEAF"
	default:
		return "UNKNOWN"
	}
}

// Node is one of *LeafNode or *InternalNode. Code that needs variant
// behaviour switches on the concrete type.
type Node interface {
	Type() NodeType
	IsLeaf() bool
	Keys() []string
	KeyCount() int

	node()
}

type InternalNode struct {
	keys     []string
	children []Node // owned
}

type LeafNode struct {
	keys   []string
	values [][]string // values[i] belongs to keys[i], in insertion order
	prev   *LeafNode  // not owned
	next   *LeafNode  // not owned
}

type BPlusTree struct {
	order  int  // a node splits once it holds this many keys
	root   Node // nil for an empty tree
	height int  // number of levels, 0 when empty
	size   int  // distinct keys
	logger *zap.Logger
}

// Entry is one key of a range scan together with its values.
type Entry struct {
	Key    string
	Values []string
}
