// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ternary

import "strconv"

// link addresses a row in the table chain: the high 16 bits hold the table
// ordinal plus one, the low 16 bits the row index. The zero value means
// "no branch", so a valid link can point at row 0 of any table without
// ambiguity.
type link uint32

func makeLink(table, row int) link {
	return link(uint32(table+1)<<16 | uint32(row))
}

func (l link) table() int { return int(l>>16) - 1 }
func (l link) row() int   { return int(l & 0xffff) }

func (l link) String() string {
	if l == 0 {
		return "-"
	}
	return strconv.Itoa(l.table()) + "." + strconv.Itoa(l.row())
}

// row is one trie node: a discriminator character and the three branch
// links of a ternary search tree. set distinguishes a never-visited row
// from one whose discriminator happens to be byte 0.
type row struct {
	ch   byte
	set  bool
	next [3]link
}

// entry marks the row at the same index as a complete stored key. ok is
// the presence flag; key and value are only meaningful when it is true.
type entry[V any] struct {
	key   string
	value V
	ok    bool
}

// table is one fixed-capacity segment of the chain: a block of rows, a
// parallel block of terminal entries, and the count of rows handed out.
type table[V any] struct {
	rows    []row
	entries []entry[V]
	used    int
}

func newTable[V any](capacity int) *table[V] {
	return &table[V]{
		rows:    make([]row, capacity),
		entries: make([]entry[V], capacity),
	}
}

func (tb *table[V]) reset() {
	clear(tb.rows)
	clear(tb.entries)
	tb.used = 0
}

// extend walks one character from the cursor (ti, ri), assigning
// discriminators and allocating rows or tables as needed, and returns the
// cursor after the equal branch. This is the only place the chain grows.
func (t *TernaryTree[V]) extend(ti, ri int, c byte) (int, int) {
	for {
		tb := t.tables[ti]
		r := &tb.rows[ri]
		if !r.set {
			r.ch, r.set = c, true
			if ri == tb.used {
				tb.used++
			}
		}

		diff := int(c) - int(r.ch)
		b := branchFor(diff)

		if next := r.next[b]; next != 0 {
			ti, ri = next.table(), next.row()
		} else if tb.used < t.capacity {
			// Point at the next free row in this table. The row is
			// claimed on the next pass, when its discriminator is set.
			r.next[b] = makeLink(ti, tb.used)
			ri = tb.used
		} else if tail, tailIdx := t.tail(); tb != tail && tail.used < t.capacity {
			// This table is full; spill into the tail's spare rows
			// before growing the chain.
			r.next[b] = makeLink(tailIdx, tail.used)
			ti, ri = tailIdx, tail.used
		} else {
			t.tables = append(t.tables, newTable[V](t.capacity))
			ti, ri = len(t.tables)-1, 0
			r.next[b] = makeLink(ti, 0)
		}

		if diff == 0 {
			return ti, ri
		}
	}
}

// step advances the read cursor by one character. It never mutates the
// chain; a missing branch returns ok=false.
func (t *TernaryTree[V]) step(ti, ri int, c byte) (int, int, bool) {
	for {
		r := &t.tables[ti].rows[ri]
		if !r.set {
			return ti, ri, false
		}

		diff := int(c) - int(r.ch)
		next := r.next[branchFor(diff)]
		if next == 0 {
			return ti, ri, false
		}
		ti, ri = next.table(), next.row()

		if diff == 0 {
			return ti, ri, true
		}
	}
}

func (t *TernaryTree[V]) tail() (*table[V], int) {
	i := len(t.tables) - 1
	return t.tables[i], i
}
