package indexmanager

import (
	"sort"

	bplus "StrIndex/bplustree"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

/*
The index manager hands out named B+ trees. Each tree lives behind its own
Index lock since the tree does no synchronisation of its own; the manager's
lock only guards the name → index map.
*/

func NewIndexManager(opts Options) (*IndexManager, error) {
	if opts.DefaultOrder < 2 {
		return nil, errors.Wrapf(bplus.ErrInvalidOrder, "NewIndexManager: default order %d", opts.DefaultOrder)
	}
	if opts.CacheSize < 0 {
		return nil, errors.Newf("NewIndexManager: cache size %d is negative", opts.CacheSize)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &IndexManager{
		opts:    opts,
		logger:  logger,
		indexes: make(map[string]*Index),
	}, nil
}

// CreateIndex creates an empty index with the given order. An existing index
// with the same name is torn down and replaced.
func (im *IndexManager) CreateIndex(name string, order int) (*Index, error) {
	if name == "" {
		return nil, ErrEmptyIndexName
	}
	idx, err := newIndex(name, order, im.opts.CacheSize, im.logger)
	if err != nil {
		return nil, errors.Wrapf(err, "CreateIndex: index '%s'", name)
	}

	im.mu.Lock()
	old := im.indexes[name]
	im.indexes[name] = idx
	im.mu.Unlock()

	if old != nil {
		old.close()
	}
	im.logger.Info("index created",
		zap.String("index", name),
		zap.String("id", idx.id),
		zap.Int("order", order),
		zap.Bool("replaced", old != nil))
	return idx, nil
}

// GetIndex returns the named index or ErrUnknownIndex.
func (im *IndexManager) GetIndex(name string) (*Index, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	idx, exists := im.indexes[name]
	if !exists {
		return nil, errors.Wrapf(ErrUnknownIndex, "GetIndex: '%s'", name)
	}
	return idx, nil
}

// GetOrCreateIndex returns the named index, creating it with the default
// order when it does not exist yet.
func (im *IndexManager) GetOrCreateIndex(name string) (*Index, error) {
	if name == "" {
		return nil, ErrEmptyIndexName
	}

	im.mu.RLock()
	idx, exists := im.indexes[name]
	im.mu.RUnlock()

	if exists {
		return idx, nil
	}

	// Slow path: create the index.
	im.mu.Lock()
	defer im.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine may have
	// created it while we were waiting for the lock).
	if idx, exists := im.indexes[name]; exists {
		return idx, nil
	}

	idx, err := newIndex(name, im.opts.DefaultOrder, im.opts.CacheSize, im.logger)
	if err != nil {
		return nil, errors.Wrapf(err, "GetOrCreateIndex: index '%s'", name)
	}
	im.indexes[name] = idx
	im.logger.Info("index created",
		zap.String("index", name),
		zap.String("id", idx.id),
		zap.Int("order", im.opts.DefaultOrder))
	return idx, nil
}

// CloseIndex tears down the named index and forgets it.
func (im *IndexManager) CloseIndex(name string) error {
	im.mu.Lock()
	idx, exists := im.indexes[name]
	delete(im.indexes, name)
	im.mu.Unlock()

	if !exists {
		return errors.Wrapf(ErrUnknownIndex, "CloseIndex: '%s'", name)
	}
	released := idx.close()
	im.logger.Info("index closed",
		zap.String("index", name),
		zap.String("id", idx.id),
		zap.Int("nodes_released", released))
	return nil
}

// CloseAll tears down every index.
// Called when the session ends.
func (im *IndexManager) CloseAll() {
	im.mu.Lock()
	indexes := im.indexes
	im.indexes = make(map[string]*Index)
	im.mu.Unlock()

	for name, idx := range indexes {
		released := idx.close()
		im.logger.Debug("index closed", zap.String("index", name), zap.Int("nodes_released", released))
	}
}

// Names lists the open indexes in sorted order.
func (im *IndexManager) Names() []string {
	im.mu.RLock()
	defer im.mu.RUnlock()

	names := make([]string, 0, len(im.indexes))
	for name := range im.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultOrder is the order used by GetOrCreateIndex.
func (im *IndexManager) DefaultOrder() int {
	return im.opts.DefaultOrder
}
