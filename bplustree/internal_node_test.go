package bplus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func leafWith(keys ...string) *LeafNode {
	leaf := newLeafNode()
	for _, k := range keys {
		leaf.Insert(k, k)
	}
	return leaf
}

func TestInternalInsertRoot(t *testing.T) {
	left, right := leafWith("a"), leafWith("m")
	n := newInternalNode()
	n.InsertRoot("m", left, right)

	require.Equal(t, []string{"m"}, n.Keys())
	children := n.Children()
	require.Len(t, children, 2)
	require.Same(t, left, children[0])
	require.Same(t, right, children[1])
}

func TestInternalInsertPlacesRightChild(t *testing.T) {
	c0, c1, c2 := leafWith("a"), leafWith("g"), leafWith("p")
	n := newInternalNode()
	n.InsertRoot("g", c0, c1)
	n.Insert("p", c2)

	// a split of c0 promotes "c" between "a" and "g"
	c0b := leafWith("c")
	n.Insert("c", c0b)

	require.Equal(t, []string{"c", "g", "p"}, n.Keys())
	children := n.Children()
	require.Len(t, children, 4)
	require.Same(t, c0, children[0])
	require.Same(t, c0b, children[1])
	require.Same(t, c1, children[2])
	require.Same(t, c2, children[3])
}

func TestInternalSplit(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		promoted string
		left     []string
		right    []string
	}{
		{"two keys", []string{"b", "d"}, "d", []string{"b"}, []string{}},
		{"three keys", []string{"b", "d", "f"}, "d", []string{"b"}, []string{"f"}},
		{"four keys", []string{"b", "d", "f", "h"}, "f", []string{"b", "d"}, []string{"h"}},
		{"five keys", []string{"b", "d", "f", "h", "j"}, "f", []string{"b", "d"}, []string{"h", "j"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children := []Node{leafWith("a")}
			for _, k := range tt.keys {
				children = append(children, leafWith(k))
			}
			n := &InternalNode{keys: append([]string{}, tt.keys...), children: children}

			promoted, right := n.Split()
			require.Equal(t, tt.promoted, promoted)
			require.Equal(t, tt.left, n.Keys())
			require.Equal(t, tt.right, right.Keys())
			require.NotContains(t, n.Keys(), promoted)
			require.NotContains(t, right.Keys(), promoted)

			require.Len(t, n.Children(), len(tt.left)+1)
			require.Len(t, right.Children(), len(tt.right)+1)
			// the promoted key's own leaf leads the right half
			require.Equal(t, []string{promoted}, right.Children()[0].Keys())
		})
	}
}
