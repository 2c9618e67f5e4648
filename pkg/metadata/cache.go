package metadata

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/twmb/murmur3"
)

// Cache memoizes ParseRaw by a non-cryptographic hash of the raw blob, so
// parsing the same blob again through one Cache returns the already
// decoded *Version instead of re-running the SCALE decode.
type Cache struct {
	lru *lru.Cache
}

// NewCache returns a Cache holding at most size decoded blobs.
func NewCache(size int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("metadata: create cache: %w", err)
	}
	return &Cache{lru: l}, nil
}

// ParseRaw behaves like the package-level ParseRaw, but returns a cached
// *Version for a raw blob it has already decoded.
func (c *Cache) ParseRaw(raw []byte) (*Version, error) {
	key := murmur3.Sum64(raw)
	if v, ok := c.lru.Get(key); ok {
		return v.(*Version), nil
	}
	v, err := ParseRaw(raw)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, v)
	return v, nil
}
