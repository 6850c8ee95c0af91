package sdlview

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 16

// Destroyer is anything holding a native resource released by Destroy.
type Destroyer interface {
	Destroy() error
}

// Cache is a small LRU of native resources keyed by string. Evicted and
// replaced values are destroyed.
type Cache[V Destroyer] struct {
	values  map[string]V
	order   []string // tracks insertion order for LRU eviction
	maxSize int
}

// TextureCache holds rendered text and icon textures between frames.
type TextureCache = Cache[*sdl.Texture]

func NewTextureCache() *TextureCache {
	return NewCache[*sdl.Texture](defaultMaxCacheSize)
}

func NewCache[V Destroyer](maxSize int) *Cache[V] {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &Cache[V]{
		values:  make(map[string]V),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	v, exists := c.values[key]
	if exists {
		c.moveToEnd(key)
	}
	return v, exists
}

func (c *Cache[V]) Set(key string, value V) {
	if old, exists := c.values[key]; exists {
		if Destroyer(old) != Destroyer(value) {
			old.Destroy()
		}
		c.values[key] = value
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = value
	c.order = append(c.order, key)
}

func (c *Cache[V]) Len() int {
	return len(c.order)
}

func (c *Cache[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *Cache[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if v, exists := c.values[oldest]; exists {
		v.Destroy()
		delete(c.values, oldest)
	}
}

func (c *Cache[V]) Destroy() {
	for _, v := range c.values {
		v.Destroy()
	}
	c.values = make(map[string]V)
	c.order = c.order[:0]
}
