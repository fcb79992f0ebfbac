package suggest

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/patrickmn/go-cache"
)

// CorrectionCache memoizes correction lists per query. Any mutation of the
// dictionary must Flush it. A nil *CorrectionCache is a disabled cache.
type CorrectionCache struct {
	store  *cache.Cache
	ttl    time.Duration
	hits   int
	misses int
}

func NewCorrectionCache(ttl, cleanup time.Duration) *CorrectionCache {
	return &CorrectionCache{
		store: cache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

// Get returns a copy of the cached corrections for query.
func (cc *CorrectionCache) Get(query string) ([]string, bool) {
	if cc == nil {
		return nil, false
	}
	val, ok := cc.store.Get(query)
	if !ok {
		cc.misses++
		return nil, false
	}
	cc.hits++
	words := val.([]string)
	out := make([]string, len(words))
	copy(out, words)
	return out, true
}

func (cc *CorrectionCache) Put(query string, words []string) {
	if cc == nil {
		return
	}
	stored := make([]string, len(words))
	copy(stored, words)
	cc.store.Set(query, stored, cc.ttl)
}

// Flush drops every cached entry.
func (cc *CorrectionCache) Flush() {
	if cc == nil {
		return
	}
	if n := cc.store.ItemCount(); n > 0 {
		log.Debugf("Flushing %d cached correction lists", n)
	}
	cc.store.Flush()
}

func (cc *CorrectionCache) Stats() map[string]int {
	if cc == nil {
		return map[string]int{}
	}
	return map[string]int{
		"cacheItems":  cc.store.ItemCount(),
		"cacheHits":   cc.hits,
		"cacheMisses": cc.misses,
	}
}
