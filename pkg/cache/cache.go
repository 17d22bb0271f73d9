// Package cache is the in-process store recent quote results live in.
// Entries are bounded by capacity (LRU eviction) and by a TTL, since a
// carrier price is only trustworthy for a short window.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type quoteEntry struct {
	key     string
	payload []byte
	staleAt time.Time
}

// LRUCache maps digest keys to serialized rate lists. Safe for
// concurrent use.
type LRUCache struct {
	capacity int
	ttl      time.Duration

	mu    sync.Mutex
	order *list.List
	index map[string]*list.Element
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get returns the cached payload for key, treating expired entries as
// absent and dropping them on the spot.
func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.index[key]
	if !ok {
		return nil, false
	}
	ent := ele.Value.(*quoteEntry)
	if time.Now().After(ent.staleAt) {
		c.remove(ele)
		return nil, false
	}
	c.order.MoveToFront(ele)
	return ent.payload, true
}

// Set stores payload under key with a fresh TTL, evicting the least
// recently used entry when the cache is full.
func (c *LRUCache) Set(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.index[key]; ok {
		c.order.MoveToFront(ele)
		ent := ele.Value.(*quoteEntry)
		ent.payload = payload
		ent.staleAt = time.Now().Add(c.ttl)
		return
	}

	ele := c.order.PushFront(&quoteEntry{
		key:     key,
		payload: payload,
		staleAt: time.Now().Add(c.ttl),
	})
	c.index[key] = ele

	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.remove(oldest)
		}
	}
}

func (c *LRUCache) remove(ele *list.Element) {
	c.order.Remove(ele)
	delete(c.index, ele.Value.(*quoteEntry).key)
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// StartJanitor sweeps expired quotes in the background until ctx is
// cancelled. Without it expired entries only fall out on access or
// eviction.
func (c *LRUCache) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for ele := c.order.Back(); ele != nil; {
		prev := ele.Prev()
		if now.After(ele.Value.(*quoteEntry).staleAt) {
			c.remove(ele)
		}
		ele = prev
	}
}
