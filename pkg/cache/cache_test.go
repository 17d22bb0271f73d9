package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache)
	}{
		{
			name:     "hit within ttl",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("quote-a", []byte(`[{"amount":"13.40"}]`))
				got, ok := c.Get("quote-a")
				assert.True(t, ok)
				assert.Equal(t, `[{"amount":"13.40"}]`, string(got))
			},
		},
		{
			name:     "expired entry reads as a miss",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("quote-a", []byte("stale"))
				time.Sleep(60 * time.Millisecond)
				_, ok := c.Get("quote-a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "oldest quote evicted at capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("quote-a", []byte("1"))
				c.Set("quote-b", []byte("2"))
				c.Set("quote-c", []byte("3"))

				_, ok := c.Get("quote-a")
				assert.False(t, ok)
				for _, key := range []string{"quote-b", "quote-c"} {
					_, ok := c.Get(key)
					assert.True(t, ok)
				}
			},
		},
		{
			name:     "recently read quote survives eviction",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("quote-a", []byte("1"))
				c.Set("quote-b", []byte("2"))
				c.Get("quote-a")
				c.Set("quote-c", []byte("3"))

				_, ok := c.Get("quote-a")
				assert.True(t, ok)
				_, ok = c.Get("quote-b")
				assert.False(t, ok)
			},
		},
		{
			name:     "rewriting a quote resets its ttl",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("quote-a", []byte("old"))
				time.Sleep(30 * time.Millisecond)
				c.Set("quote-a", []byte("new"))
				time.Sleep(30 * time.Millisecond)

				got, ok := c.Get("quote-a")
				assert.True(t, ok)
				assert.Equal(t, "new", string(got))
			},
		},
		{
			name:     "janitor sweeps expired quotes",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				c.StartJanitor(ctx)

				c.Set("quote-a", []byte("1"))
				time.Sleep(60 * time.Millisecond)
				c.cleanup()

				assert.Equal(t, 0, c.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.actions(t, NewLRUCache(tt.capacity, tt.ttl))
		})
	}
}
