package blockcoding

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

type cacheKey struct {
	fingerprint  uint64
	length       int
	maxBlockSize int
}

// A Cache memoises analyses of identical sequences.
// Sequences are identified by their length and 64-bit Fingerprint, so two different sequences of
// equal length whose fingerprints collide share an entry.
// A Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	analyses *lru.Cache[cacheKey, *Analysis]
}

// NewCache returns a Cache holding at most size analyses.
func NewCache(size int) (*Cache, error) {
	analyses, err := lru.New[cacheKey, *Analysis](size)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return &Cache{analyses: analyses}, nil
}

// Analyze returns the cached analysis of seq if there is one, and calls Analyze otherwise.
// Callers must not modify the returned Analysis. Failed analyses are not cached.
func (c *Cache) Analyze(seq []rune, maxBlockSize int, opts ...Option) (*Analysis, error) {
	key := cacheKey{fingerprint: Fingerprint(seq), length: len(seq), maxBlockSize: maxBlockSize}
	if a, ok := c.analyses.Get(key); ok {
		return a, nil
	}
	a, err := Analyze(seq, maxBlockSize, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	c.analyses.Add(key, a)
	return a, nil
}

// Len returns the number of cached analyses.
func (c *Cache) Len() int {
	return c.analyses.Len()
}
