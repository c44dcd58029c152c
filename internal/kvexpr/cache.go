package kvexpr

import "sync"

// compiledExpr is a parsed expression, cached under its canonical
// (post-translation, still shielded) text combined with its placeholder
// contents (spec.md §4.3.4: "compiled-expression cache keyed by
// canonical text").
type compiledExpr struct {
	root Node
}

// Cache memoizes parses of canonical expression text. It is safe for
// concurrent use because the only concurrent caller is the background
// animation worker (spec.md §5), which never evaluates expressions
// itself.
type Cache struct {
	mu    sync.Mutex
	cache map[string]*compiledExpr
}

// NewCache builds an empty expression cache.
func NewCache() *Cache {
	return &Cache{cache: make(map[string]*compiledExpr)}
}

// Parse returns the cached AST for canonical, still-shielded text if
// present; otherwise it parses, caches, and returns the result. Caching
// is keyed on the shielded text together with its placeholder slice
// content, since the same canonical skeleton with different string
// literals must not share a cache entry.
func (c *Cache) Parse(canonical string, placeholders []string) (Node, error) {
	key := cacheKey(canonical, placeholders)

	c.mu.Lock()
	if entry, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return entry.root, nil
	}
	c.mu.Unlock()

	p := NewParser(canonical, placeholders)
	root, err := p.Parse()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = &compiledExpr{root: root}
	c.mu.Unlock()
	return root, nil
}

func cacheKey(canonical string, placeholders []string) string {
	key := canonical
	for _, s := range placeholders {
		key += "\x00" + s
	}
	return key
}
