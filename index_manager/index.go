package indexmanager

import (
	"io"

	bplus "StrIndex/bplustree"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-uuid"
	"go.uber.org/zap"
)

func newIndex(name string, order int, cacheSize int64, logger *zap.Logger) (*Index, error) {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return nil, errors.Wrap(err, "newIndex: failed to generate id")
	}
	logger = logger.With(zap.String("index", name), zap.String("id", id))

	tree, err := bplus.NewBPlusTree(order, bplus.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	idx := &Index{
		id:     id,
		name:   name,
		tree:   tree,
		logger: logger,
	}
	if cacheSize > 0 {
		idx.cache, err = newLookupCache(cacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "newIndex: failed to create lookup cache")
		}
	}
	return idx, nil
}

// ID is unique per index instance; a replaced index gets a new one.
func (idx *Index) ID() string { return idx.id }

func (idx *Index) Name() string { return idx.name }

func (idx *Index) Order() int { return idx.tree.Order() }

// Insert adds value under key.
func (idx *Index) Insert(key, value string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.closed {
		return errors.Wrapf(ErrIndexClosed, "Insert: index '%s'", idx.name)
	}
	idx.tree.Insert(key, value)
	if idx.cache != nil {
		idx.cache.invalidate(key)
	}
	return nil
}

// Search returns the values under key. Results may come from the lookup
// cache.
func (idx *Index) Search(key string) ([]string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.cache != nil {
		if vals, ok := idx.cache.get(key); ok {
			return vals, true
		}
	}
	vals, ok := idx.tree.Search(key)
	if ok && idx.cache != nil {
		idx.cache.put(key, vals)
	}
	return vals, ok
}

// RangeSearch returns the entries with key1 <= key <= key2.
func (idx *Index) RangeSearch(key1, key2 string) []bplus.Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.RangeSearch(key1, key2)
}

func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Len()
}

func (idx *Index) Stats() IndexStats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	s := IndexStats{Stats: idx.tree.Stats()}
	if idx.cache != nil {
		s.CacheHits, s.CacheMisses = idx.cache.metrics()
	}
	return s
}

func (idx *Index) Validate() error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Validate()
}

func (idx *Index) Inspect(w io.Writer) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Inspect(w)
}

func (idx *Index) Digest() uint64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Digest()
}

// close tears the tree down and returns the number of nodes released.
func (idx *Index) close() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.closed {
		return 0
	}
	idx.closed = true
	if idx.cache != nil {
		idx.cache.close()
		idx.cache = nil
	}
	return idx.tree.Teardown()
}
