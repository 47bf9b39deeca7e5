package graph

import (
	"sync"

	"github.com/natevvv/campus-navigation/pkg/campus"
)

// Cache holds the adjacency of the most recent snapshot, keyed by the snapshot fingerprint.
// A snapshot with different content replaces the cached graph.
// Cached graphs are frozen and shared between callers.
type Cache struct {
	mu          sync.Mutex
	fingerprint uint64
	graph       *AdjacencyArrayGraph
	hits        int
	misses      int
}

func NewCache() *Cache {
	return &Cache{}
}

// Return the adjacency for the snapshot, building it if the snapshot changed
func (c *Cache) Get(s *campus.Snapshot) *AdjacencyArrayGraph {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.graph != nil && c.fingerprint == s.Fingerprint() {
		c.hits++
		return c.graph
	}
	c.misses++
	c.graph = NewAdjacencyArrayFromGraph(Build(s.Points()))
	c.fingerprint = s.Fingerprint()
	return c.graph
}

// Drop the cached graph
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.graph = nil
}

// Returns the number of cache hits and misses
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
