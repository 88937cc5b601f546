package preprocess

// sourceKey identifies a decoded source buffer: same path with a changed
// mtime or size is a different source.
type sourceKey struct {
	path    string
	modTime int64
	size    int64
}

// sourceCache is a small bounded cache of decoded source buffers, kept to
// avoid redundant decoding across repeated calls within one session.
// Eviction is FIFO; access is single-threaded, so there is no locking.
type sourceCache struct {
	limit   int
	order   []sourceKey
	entries map[sourceKey]PCM
}

func newSourceCache(limit int) *sourceCache {
	return &sourceCache{
		limit:   limit,
		entries: make(map[sourceKey]PCM, limit),
	}
}

func (c *sourceCache) get(key sourceKey) (PCM, bool) {
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *sourceCache) put(key sourceKey, entry PCM) {
	if c.limit <= 0 {
		return
	}
	if _, ok := c.entries[key]; ok {
		return
	}
	for len(c.entries) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.order = append(c.order, key)
	c.entries[key] = entry
}

func (c *sourceCache) len() int {
	return len(c.entries)
}
