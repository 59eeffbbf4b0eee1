package simplex

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// Cache hands out shared generators for seeds, keeping the most recently
// used size of them. Seeds with the same Key share one entry.
type Cache struct {
	lru *lru.Cache
}

func NewCache(size int) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "simplex: new cache")
	}
	return &Cache{lru: c}, nil
}

func (c *Cache) Get(seed float64) (*Generator, error) {
	key, err := Key(seed)
	if err != nil {
		return nil, err
	}
	if g, ok := c.lru.Get(key); ok {
		return g.(*Generator), nil
	}
	g := newFromKey(key)
	c.lru.Add(key, g)
	return g, nil
}

func (c *Cache) Len() int {
	return c.lru.Len()
}
