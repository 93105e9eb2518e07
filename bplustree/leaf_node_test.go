package bplus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafInsertKeepsOrder(t *testing.T) {
	leaf := newLeafNode()
	for _, k := range []string{"m", "c", "x", "a", "p"} {
		require.True(t, leaf.Insert(k, "v"+k))
	}
	require.Equal(t, []string{"a", "c", "m", "p", "x"}, leaf.Keys())
	require.Equal(t, [][]string{{"va"}, {"vc"}, {"vm"}, {"vp"}, {"vx"}}, leaf.Values())
}

func TestLeafInsertDuplicateAppends(t *testing.T) {
	leaf := newLeafNode()
	require.True(t, leaf.Insert("k", "v1"))
	require.False(t, leaf.Insert("k", "v2"))
	require.False(t, leaf.Insert("k", "v1"))

	require.Equal(t, 1, leaf.KeyCount())
	require.Equal(t, [][]string{{"v1", "v2", "v1"}}, leaf.Values())
}

func TestLeafValuesAreCopies(t *testing.T) {
	leaf := newLeafNode()
	leaf.Insert("k", "v1")

	vals := leaf.Values()
	vals[0][0] = "mutated"
	keys := leaf.Keys()
	keys[0] = "mutated"

	require.Equal(t, [][]string{{"v1"}}, leaf.Values())
	require.Equal(t, []string{"k"}, leaf.Keys())
}

func TestLeafSplit(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		left      []string
		right     []string
		separator string
	}{
		{"two keys", []string{"a", "b"}, []string{"a"}, []string{"b"}, "b"},
		{"three keys", []string{"a", "b", "c"}, []string{"a", "b"}, []string{"c"}, "c"},
		{"four keys", []string{"a", "b", "c", "d"}, []string{"a", "b"}, []string{"c", "d"}, "c"},
		{"five keys", []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c"}, []string{"d", "e"}, "d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := newLeafNode()
			for _, k := range tt.keys {
				leaf.Insert(k, "v"+k)
			}

			sep, right := leaf.Split()
			require.Equal(t, tt.separator, sep)
			require.Equal(t, tt.left, leaf.Keys())
			require.Equal(t, tt.right, right.Keys())
			// the separator is copied up, not moved
			require.Equal(t, sep, right.Keys()[0])
			require.Len(t, right.Values(), len(tt.right))
			require.Equal(t, "v"+tt.right[0], right.Values()[0][0])

			require.Same(t, right, leaf.Next())
			require.Same(t, leaf, right.Prev())
			require.Nil(t, right.Next())
			require.Nil(t, leaf.Prev())
		})
	}
}

func TestLeafSplitSplicesIntoChain(t *testing.T) {
	left := newLeafNode()
	for _, k := range []string{"a", "b", "c", "d"} {
		left.Insert(k, k)
	}
	tail := newLeafNode()
	tail.Insert("z", "z")
	left.next = tail
	tail.prev = left

	_, mid := left.Split()

	require.Same(t, mid, left.Next())
	require.Same(t, tail, mid.Next())
	require.Same(t, mid, tail.Prev())
	require.Same(t, left, mid.Prev())
	require.Nil(t, tail.Next())
}

func TestLeafSplitRightDoesNotShareStorage(t *testing.T) {
	leaf := newLeafNode()
	for _, k := range []string{"a", "b", "c", "d"} {
		leaf.Insert(k, k)
	}
	_, right := leaf.Split()

	// growing the left half must not overwrite the right half
	leaf.Insert("b1", "b1")
	leaf.Insert("b2", "b2")
	require.Equal(t, []string{"c", "d"}, right.Keys())
	require.Equal(t, []string{"a", "b", "b1", "b2"}, leaf.Keys())
}
