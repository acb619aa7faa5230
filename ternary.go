// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package ternary implements a fixed-capacity, array-backed ternary search
// trie mapping ISO-8859-1 keys to values of any type.
//
// Rows are laid out in fixed-size tables for locality of reference.
// Branch targets are 16-bit row indices, so a single table addresses at
// most 65535 rows; when a table fills up, insertion chains additional
// tables of the same capacity and records absolute links across them.
// Memory is therefore proportional to the keys inserted, never to the
// queries made, which makes the trie safe to expose to untrusted inputs
// as a lookup cache.
//
// A tree is built by a single writer and then read concurrently without
// locking: Put and Clear must not race with each other or with any reader,
// and the caller must publish the finished tree safely. Lookups allocate
// nothing.
package ternary

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MaxCapacity is the largest per-table capacity. Beyond it the 16-bit row
// indexes would overflow and the trie could not find its own entries.
const MaxCapacity = math.MaxUint16

var (
	// ErrCapacity is returned by New and Build for a capacity outside
	// [1, MaxCapacity] or a negative maxCapacity.
	ErrCapacity = errors.New("ternary: capacity out of range")

	// ErrNotLatin1 is returned by Put for a key containing a code point
	// above 0xFF.
	ErrNotLatin1 = errors.New("ternary: key is not ISO-8859-1")
)

// TernaryTree is a ternary search trie over keys restricted to code
// points 0-255. Values are generic; presence is always explicit, so the
// zero value of V is storable like any other.
type TernaryTree[V any] struct {
	tables   []*table[V]
	caseless bool
	capacity int
	size     int
}

// WalkFn is used when walking the tree. Takes a key and value, returning
// if iteration should be terminated.
type WalkFn[V any] func(key string, value V) bool

// New creates an empty tree. capacity is the worst-case number of rows a
// single table holds, which is at most the total number of characters of
// all keys stored; shared prefixes share rows, so storing "bar" and "bat"
// needs 4 rows where "foo" and "bar" need 6. Insertion past the capacity
// transparently chains additional tables of the same size.
func New[V any](caseInsensitive bool, capacity int) (*TernaryTree[V], error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}
	return &TernaryTree[V]{
		tables:   []*table[V]{newTable[V](capacity)},
		caseless: caseInsensitive,
		capacity: capacity,
	}, nil
}

// Build constructs a tree sized max(capacity, maxCapacity) and loads
// contents into it. It returns an error, and no tree, if the sizing is
// invalid or any single insertion is rejected; a partially populated tree
// is never handed out. alphabet is a sizing hint accepted for
// compatibility and currently unused.
func Build[V any](capacity, maxCapacity int, caseInsensitive bool, alphabet []rune, contents map[string]V) (*TernaryTree[V], error) {
	if capacity > MaxCapacity || maxCapacity < 0 {
		return nil, fmt.Errorf("%w: %d/%d", ErrCapacity, capacity, maxCapacity)
	}

	t, err := New[V](caseInsensitive, max(capacity, maxCapacity))
	if err != nil {
		return nil, err
	}
	for k, v := range contents {
		if err := t.Put(k, v); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Put stores value under key, overwriting any previous value. It fails
// only when key contains a code point above 0xFF. Put is the only
// operation that grows the chain and must not run concurrently with any
// other operation.
func (t *TernaryTree[V]) Put(key string, value V) error {
	ti, ri := 0, 0
	for _, r := range key {
		if r > 0xff {
			return fmt.Errorf("%w: %q", ErrNotLatin1, key)
		}
		c := byte(r)
		if t.caseless && c < 0x80 {
			c = lowercase[c]
		}
		ti, ri = t.extend(ti, ri, c)
	}

	tb := t.tables[ti]
	if ri == tb.used {
		// Only the empty key can terminate on an unclaimed row.
		tb.used++
	}
	e := &tb.entries[ri]
	if !e.ok {
		t.size++
	}
	e.key, e.value, e.ok = key, value, true
	return nil
}

// Len returns the number of keys stored.
func (t *TernaryTree[V]) Len() int {
	return t.size
}

func (t *TernaryTree[V]) IsEmpty() bool {
	return t.size == 0
}

// Clear resets the tree to a single empty root table, discarding every
// chained table and entry. Same writer-exclusivity rules as Put.
func (t *TernaryTree[V]) Clear() {
	root := t.tables[0]
	root.reset()
	t.tables = []*table[V]{root}
	t.size = 0
}

// Walk calls fn for every stored key/value pair, in table order, until fn
// returns true.
func (t *TernaryTree[V]) Walk(fn WalkFn[V]) {
	for _, tb := range t.tables {
		for i := range tb.entries {
			if e := &tb.entries[i]; e.ok && fn(e.key, e.value) {
				return
			}
		}
	}
}

// Entries returns a snapshot of all stored pairs.
func (t *TernaryTree[V]) Entries() map[string]V {
	m := make(map[string]V, t.size)
	t.Walk(func(k string, v V) bool {
		m[k] = v
		return false
	})
	return m
}

// Keys returns all stored keys, sorted. Keys are unique by construction.
func (t *TernaryTree[V]) Keys() []string {
	keys := maps.Keys(t.Entries())
	slices.Sort(keys)
	return keys
}

func (t *TernaryTree[V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TernaryTree{ci=%t", t.caseless)
	t.Walk(func(k string, v V) bool {
		fmt.Fprintf(&sb, ",%q=%v", k, v)
		return false
	})
	sb.WriteByte('}')
	return sb.String()
}
