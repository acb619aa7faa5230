// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ternary

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

type result[V any] struct {
	value V
	ok    bool
}

// LookupCache memoizes lookups against a finished tree, including misses,
// for hot read paths that keep presenting the same inputs. The tree must
// not be mutated while the cache is in use; the cache itself is safe for
// concurrent readers.
type LookupCache[V any] struct {
	tree  *TernaryTree[V]
	exact *lru.Cache[string, result[V]]
	best  *lru.Cache[string, result[V]]
}

// NewLookupCache wraps tree with an LRU of the given size per lookup kind.
func NewLookupCache[V any](tree *TernaryTree[V], size int) (*LookupCache[V], error) {
	exact, err := lru.New[string, result[V]](size)
	if err != nil {
		return nil, err
	}
	best, err := lru.New[string, result[V]](size)
	if err != nil {
		return nil, err
	}
	return &LookupCache[V]{tree: tree, exact: exact, best: best}, nil
}

// Get is TernaryTree.Get with memoization.
func (c *LookupCache[V]) Get(key string) (V, bool) {
	if res, ok := c.exact.Get(key); ok {
		return res.value, res.ok
	}
	v, ok := c.tree.Get(key)
	c.exact.Add(key, result[V]{value: v, ok: ok})
	return v, ok
}

// GetBest is TernaryTree.GetBest with memoization.
func (c *LookupCache[V]) GetBest(s string) (V, bool) {
	if res, ok := c.best.Get(s); ok {
		return res.value, res.ok
	}
	v, ok := c.tree.GetBest(s)
	c.best.Add(s, result[V]{value: v, ok: ok})
	return v, ok
}

// Purge drops every memoized result. Call it before reusing a cache after
// the underlying tree was rebuilt.
func (c *LookupCache[V]) Purge() {
	c.exact.Purge()
	c.best.Purge()
}
