// Package cache provides a content-hash keyed parse cache for
// callers that repeatedly re-parse the same TOML bytes, e.g. a CLI
// watching a directory of config files.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	toml2 "github.com/conduit-lang/toml2"
	"github.com/conduit-lang/toml2/compiler/tree"
)

// Cache memoizes Parse results by the SHA-256 of the input bytes.
// Concurrent misses for the same key are coalesced through a
// singleflight.Group so only one parse of a given document ever runs
// at a time, regardless of how many goroutines request it.
type Cache struct {
	lru    *lru.Cache
	flight singleflight.Group
}

// entry is what's actually stored in the LRU: either a parsed
// document or the error that parsing it produced, so a cache hit on
// a document known to be invalid doesn't cost a re-parse either.
type entry struct {
	node *tree.Node
	err  error
}

// New creates a Cache holding up to size distinct documents.
func New(size int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Parse returns the parsed document for b, reusing a cached result
// when b's content hash has been seen before.
func (c *Cache) Parse(b []byte) (*tree.Node, error) {
	key := contentKey(b)

	if v, ok := c.lru.Get(key); ok {
		e := v.(entry)
		return e.node, e.err
	}

	v, err, _ := c.flight.Do(key, func() (interface{}, error) {
		node, perr := toml2.ParseBytes(b)
		e := entry{node: node, err: perr}
		c.lru.Add(key, e)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	e := v.(entry)
	return e.node, e.err
}

// Len reports how many distinct documents are currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge discards every cached entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}

func contentKey(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
