// Package cache holds the process-wide towns cache. It exists so residence
// aggregation does not re-fetch the town list on every unfiltered call; all
// other extraction state is per-request.
package cache

import "sync"

// Towns is a write-once-per-refresh, read-many town list. It is safe for
// concurrent use. A zero value is cold: Get reports no value until the
// first Set.
type Towns struct {
	mu    sync.RWMutex
	towns []string
	warm  bool
}

// NewTowns returns a cold cache.
func NewTowns() *Towns {
	return &Towns{}
}

// Get returns a copy of the cached list and whether the cache has been
// warmed. An empty warmed list is a valid value, distinct from cold.
func (c *Towns) Get() ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.warm {
		return nil, false
	}
	out := make([]string, len(c.towns))
	copy(out, c.towns)
	return out, true
}

// Set replaces the cached list.
func (c *Towns) Set(towns []string) {
	cp := make([]string, len(towns))
	copy(cp, towns)
	c.mu.Lock()
	c.towns = cp
	c.warm = true
	c.mu.Unlock()
}
