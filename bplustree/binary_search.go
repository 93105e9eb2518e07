package bplus

// binarySearch returns the position of target in keys and whether it was
// found. When not found the position is where target would be inserted.
func binarySearch(keys []string, target string) (int, bool) {
	i := lowerBound(keys, target)
	return i, i < len(keys) && keys[i] == target
}

// lowerBound returns the first index whose key is >= target.
func lowerBound(keys []string, target string) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if keys[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// childIndex picks the child of an internal node to descend into. A key equal
// to a separator belongs to the right subtree. Insert, Search and the range
// scans all route through here so they agree on where a key lives.
func childIndex(keys []string, key string) int {
	i, found := binarySearch(keys, key)
	if found {
		return i + 1
	}
	return i
}

// insert inserts elem at index i in slice.
func insert[T any](slice []T, i int, elem T) []T {
	var zero T
	slice = append(slice, zero) // grow by 1
	copy(slice[i+1:], slice[i:])
	slice[i] = elem
	return slice
}

// cloneTail copies slice[from:] into a new backing array.
func cloneTail[T any](slice []T, from int) []T {
	out := make([]T, len(slice)-from)
	copy(out, slice[from:])
	return out
}
