package adjlist

import "github.com/nodegraph/nodegraph/container"

// CacheInOutEdges wraps a base EdgeStore with an additional per-destination
// index, upgrading in-edge iteration from O(E) (scan everything) to
// O(in-degree(v)) and making the wrapped AdjacencyList satisfy
// BidirectionalGraph, per spec §4.2's "EdgeStore... wrapper
// CacheInOutEdges". All edge mutations update both indexes atomically (the
// two maps are updated together within each method below, so an observer
// of the wrapper never sees one index without the other).
type CacheInOutEdges struct {
	base     *EdgeStore
	incoming map[VertexDescriptor]*container.OrderedSet[EdgeDescriptor]
}

// NewCacheInOutEdges wraps base, adding the destination index.
func NewCacheInOutEdges(base *EdgeStore) *CacheInOutEdges {
	return &CacheInOutEdges{
		base:     base,
		incoming: make(map[VertexDescriptor]*container.OrderedSet[EdgeDescriptor]),
	}
}

func (c *CacheInOutEdges) inSet(v VertexDescriptor) *container.OrderedSet[EdgeDescriptor] {
	set, ok := c.incoming[v]
	if !ok {
		set = container.NewOrderedSet[EdgeDescriptor]()
		c.incoming[v] = set
	}
	return set
}

// Add delegates to the base store and records the edge in the destination
// index too (idempotent if the base store returned an existing edge).
func (c *CacheInOutEdges) Add(from, to VertexDescriptor) EdgeDescriptor {
	eid := c.base.Add(from, to)
	c.inSet(to).Add(eid)
	return eid
}

// Endpoints delegates to the base store.
func (c *CacheInOutEdges) Endpoints(e EdgeDescriptor) (VertexDescriptor, VertexDescriptor, bool) {
	return c.base.Endpoints(e)
}

// OutgoingEdges delegates to the base store.
func (c *CacheInOutEdges) OutgoingEdges(v VertexDescriptor) []EdgeDescriptor {
	return c.base.OutgoingEdges(v)
}

// IncomingEdges returns edges targeting v in insertion order. O(in-degree(v)).
func (c *CacheInOutEdges) IncomingEdges(v VertexDescriptor) []EdgeDescriptor {
	set, ok := c.incoming[v]
	if !ok {
		return nil
	}
	return set.Items()
}

// Remove deletes e from both the outgoing and incoming indexes.
func (c *CacheInOutEdges) Remove(e EdgeDescriptor) {
	_, to, ok := c.base.Endpoints(e)
	if !ok {
		return
	}
	c.base.Remove(e)
	if set, ok := c.incoming[to]; ok {
		set.Remove(e)
	}
}

// All delegates to the base store.
func (c *CacheInOutEdges) All() []EdgeDescriptor { return c.base.All() }

// Count delegates to the base store.
func (c *CacheInOutEdges) Count() int { return c.base.Count() }

// RemoveVertexEdges removes every edge where v is the source (via the
// base store) and every edge where v is the destination (via the
// destination index), keeping both indexes consistent.
func (c *CacheInOutEdges) RemoveVertexEdges(v VertexDescriptor) {
	c.removeIncoming(v)
	for _, eid := range append([]EdgeDescriptor(nil), c.base.OutgoingEdges(v)...) {
		c.Remove(eid)
	}
	c.base.RemoveVertexEdges(v)
	delete(c.incoming, v)
}

// removeIncoming deletes every edge targeting v; RemoveVertexEdges is its
// only caller.
func (c *CacheInOutEdges) removeIncoming(v VertexDescriptor) {
	set, ok := c.incoming[v]
	if !ok {
		return
	}
	for _, eid := range append([]EdgeDescriptor(nil), set.Items()...) {
		c.base.Remove(eid)
	}
	delete(c.incoming, v)
}
