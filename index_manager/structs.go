package indexmanager

import (
	"sync"

	bplus "StrIndex/bplustree"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var (
	ErrUnknownIndex   = errors.New("unknown index")
	ErrEmptyIndexName = errors.New("index name is empty")
	ErrIndexClosed    = errors.New("index is closed")
)

// Options configures an IndexManager.
type Options struct {
	// DefaultOrder is used by GetOrCreateIndex.
	DefaultOrder int
	// CacheSize is the number of point lookups each index keeps cached.
	// Zero disables the cache.
	CacheSize int64
	Logger    *zap.Logger
}

// IndexManager owns a set of named trees.
type IndexManager struct {
	opts    Options
	logger  *zap.Logger
	indexes map[string]*Index
	mu      sync.RWMutex
}

// Index is a tree plus the lock that serialises access to it. The tree itself
// is single threaded; every call goes through mu.
type Index struct {
	id     string
	name   string
	tree   *bplus.BPlusTree
	cache  *lookupCache // nil when caching is disabled
	logger *zap.Logger
	closed bool
	mu     sync.RWMutex
}

// IndexStats is the tree shape plus lookup cache counters.
type IndexStats struct {
	bplus.Stats
	CacheHits   uint64
	CacheMisses uint64
}
