package bplus

import "slices"

// Search returns the values stored under key in insertion order. The second
// result is false when the tree is empty or the key is absent.
func (t *BPlusTree) Search(key string) ([]string, bool) {
	leaf := t.FindLeaf(key)
	if leaf == nil {
		return nil, false
	}

	idx, found := binarySearch(leaf.keys, key)
	if !found {
		return nil, false
	}
	return slices.Clone(leaf.values[idx]), true
}
