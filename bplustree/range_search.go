package bplus

// RangeSearch returns every key k with key1 <= k <= key2 in ascending order,
// each with its values. An empty tree or key1 > key2 gives an empty result.
func (t *BPlusTree) RangeSearch(key1, key2 string) []Entry {
	entries := []Entry{}
	if t.root == nil || key1 > key2 {
		return entries
	}

	for it := t.SeekGE(key1); it.Valid(); it.Next() {
		if it.Key() > key2 {
			break
		}
		entries = append(entries, Entry{Key: it.Key(), Values: it.Values()})
	}
	return entries
}
