package bplus

import "slices"

// Iterator provides a forward-only scan over the leaf chain.
type Iterator struct {
	leaf  *LeafNode
	index int
}

// SeekGE positions the iterator at the first key >= target.
func (t *BPlusTree) SeekGE(target string) *Iterator {
	it := &Iterator{leaf: t.FindLeaf(target)}
	if it.leaf != nil {
		it.index = lowerBound(it.leaf.keys, target)
		it.skipExhausted()
	}
	return it
}

// First positions the iterator at the smallest key.
func (t *BPlusTree) First() *Iterator {
	it := &Iterator{leaf: t.FirstLeaf()}
	it.skipExhausted()
	return it
}

// skipExhausted moves to the next leaf while the current one has no key at
// index. A nil next ends the scan.
func (it *Iterator) skipExhausted() {
	for it.leaf != nil && it.index >= len(it.leaf.keys) {
		it.leaf = it.leaf.next
		it.index = 0
	}
}

// Valid reports whether the iterator is positioned on a key.
func (it *Iterator) Valid() bool { return it.leaf != nil }

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator) Next() bool {
	if it.leaf == nil {
		return false
	}
	it.index++
	it.skipExhausted()
	return it.leaf != nil
}

// Key returns the current key.
func (it *Iterator) Key() string {
	if it.leaf == nil {
		return ""
	}
	return it.leaf.keys[it.index]
}

// Values returns a copy of the current key's values.
func (it *Iterator) Values() []string {
	if it.leaf == nil {
		return nil
	}
	return slices.Clone(it.leaf.values[it.index])
}
