package indexmanager

import (
	"slices"

	"github.com/dgraph-io/ristretto/v2"
)

// lookupCache remembers the value lists of recent point lookups. Entries are
// dropped when their key is inserted into.
type lookupCache struct {
	cache *ristretto.Cache[string, []string]
}

func newLookupCache(maxEntries int64) (*lookupCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []string]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &lookupCache{cache: c}, nil
}

func (lc *lookupCache) get(key string) ([]string, bool) {
	vals, ok := lc.cache.Get(key)
	if !ok {
		return nil, false
	}
	return slices.Clone(vals), true
}

// put is asynchronous; the entry may be dropped under contention.
func (lc *lookupCache) put(key string, vals []string) {
	lc.cache.Set(key, slices.Clone(vals), 1)
}

func (lc *lookupCache) invalidate(key string) {
	lc.cache.Del(key)
}

func (lc *lookupCache) metrics() (hits, misses uint64) {
	return lc.cache.Metrics.Hits(), lc.cache.Metrics.Misses()
}

// wait blocks until buffered puts have been applied.
func (lc *lookupCache) wait() {
	lc.cache.Wait()
}

func (lc *lookupCache) close() {
	lc.cache.Close()
}
