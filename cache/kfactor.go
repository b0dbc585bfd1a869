package cache

import (
	"sync"
	"time"
)

// LookupFunc resolves the K-factor for a rating, typically backed by the
// rank catalog.
type LookupFunc func(rating int) int

type entry struct {
	k       int
	expires time.Time
}

// KFactor memoizes K-factor lookups per 100-point rating bucket. Ratings
// are floored to their bucket before lookup, so 1650 and 1699 share an
// entry; tier bounds fall on multiples of 100 so a bucket never straddles
// two tiers. Entries expire after the configured TTL.
type KFactor struct {
	mu      sync.RWMutex
	ttl     time.Duration
	lookup  LookupFunc
	entries map[int]entry
}

func NewKFactor(ttl time.Duration, lookup LookupFunc) *KFactor {
	return &KFactor{
		ttl:     ttl,
		lookup:  lookup,
		entries: make(map[int]entry),
	}
}

func bucket(rating int) int {
	if rating < 0 {
		rating = 0
	}
	return rating / 100 * 100
}

// Get returns the cached K-factor for the rating's bucket, consulting the
// lookup on a miss or an expired entry.
func (c *KFactor) Get(rating int) int {
	b := bucket(rating)

	c.mu.RLock()
	e, ok := c.entries[b]
	c.mu.RUnlock()
	if ok && time.Now().Before(e.expires) {
		return e.k
	}

	k := c.lookup(b)

	c.mu.Lock()
	c.entries[b] = entry{k: k, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return k
}

// Invalidate drops every cached entry, forcing fresh lookups.
func (c *KFactor) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[int]entry)
}

// Len reports the number of cached buckets, expired entries included.
func (c *KFactor) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
