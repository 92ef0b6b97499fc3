package grass

import "sync"

// TopologyCache memoizes blade index buffers by segment count.
// Get hands out copies so the cached buffer can never be mutated.
type TopologyCache struct {
	mu      sync.RWMutex
	buffers map[int][]uint32

	hits   int
	misses int
}

// NewTopologyCache creates an empty cache.
func NewTopologyCache() *TopologyCache {
	return &TopologyCache{
		buffers: make(map[int][]uint32),
	}
}

// Get returns the index buffer for segments, building it on first use.
func (c *TopologyCache) Get(segments int) ([]uint32, error) {
	c.mu.RLock()
	buf, ok := c.buffers[segments]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return clone(buf), nil
	}

	buf, err := BuildBladeIndices(segments)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.misses++
	c.buffers[segments] = buf
	c.mu.Unlock()

	return clone(buf), nil
}

// Stats returns cache hit and miss counts.
func (c *TopologyCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func clone(src []uint32) []uint32 {
	dst := make([]uint32, len(src))
	copy(dst, src)
	return dst
}

var defaultCache = NewTopologyCache()
