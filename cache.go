package assets

// resourceCache maps Guids to loaded resources. An entry's presence implies
// the resource is fully uploaded; entries appear only when worker results are
// drained and disappear only on explicit Delete.
//
// Not safe for concurrent use; the Manager guards it with its own mutex.
type resourceCache struct {
	entries map[Guid]Resource
}

func newResourceCache() *resourceCache {
	return &resourceCache{entries: make(map[Guid]Resource)}
}

func (c *resourceCache) contains(g Guid) bool {
	_, ok := c.entries[g]
	return ok
}

// insert stores a resource, overwriting any prior entry for the Guid.
// Overwrite is deliberate: a reload replaces content under the same identity.
func (c *resourceCache) insert(g Guid, r Resource) {
	c.entries[g] = r
}

func (c *resourceCache) get(g Guid) (Resource, bool) {
	r, ok := c.entries[g]
	return r, ok
}

func (c *resourceCache) remove(g Guid) {
	delete(c.entries, g)
}

func (c *resourceCache) len() int { return len(c.entries) }

// narrow attempts to view a cache entry as the caller's expected kind.
// It returns false both when the entry is absent and when it exists with a
// different kind. The wrong-kind case should be unreachable through typed
// handles, but the retrieval path still handles it without panicking.
func narrow[T Resource](r Resource, ok bool) (T, bool) {
	var zero T
	if !ok {
		return zero, false
	}
	v, ok := r.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
