package reduce

import (
	"sync"

	"golang.org/x/sync/singleflight"
	"k8s.io/klog/v2"
)

// Cache holds generated Programs by cache key. Concurrent requests for the same key
// generate the program once. It is safe for concurrent use.
type Cache struct {
	programs map[string]*Program
	mu       sync.RWMutex
	group    singleflight.Group
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		programs: make(map[string]*Program),
	}
}

// Load returns the Program cached under loader.CacheKey, generating and caching it on a miss.
func (c *Cache) Load(loader *ProgramLoader) (*Program, error) {
	c.mu.RLock()
	if p, exists := c.programs[loader.CacheKey]; exists {
		c.mu.RUnlock()
		return p, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(loader.CacheKey, func() (any, error) {
		c.mu.RLock()
		p, exists := c.programs[loader.CacheKey]
		c.mu.RUnlock()
		if exists {
			return p, nil
		}

		klog.V(1).Infof("reduce: cache miss for %s", loader.CacheKey)
		p, err := loader.Get()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.programs[loader.CacheKey] = p
		c.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Program), nil
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.programs)
}
