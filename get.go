// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ternary

import "bytes"

// Get returns the value stored under key, if any. Lookups never error: a
// code point above 0xFF, a missing path, or a non-terminal terminus are
// all plain misses.
func (t *TernaryTree[V]) Get(key string) (V, bool) {
	return t.GetString(key, 0, len(key))
}

// GetString matches s[offset:offset+length], walked by rune.
func (t *TernaryTree[V]) GetString(s string, offset, length int) (V, bool) {
	var zero V
	if t.tables[0].used == 0 {
		return zero, false
	}
	ti, ri := 0, 0
	for _, r := range s[offset : offset+length] {
		if r > 0xff {
			return zero, false
		}
		c := byte(r)
		if t.caseless && c < 0x80 {
			c = lowercase[c]
		}
		var ok bool
		if ti, ri, ok = t.step(ti, ri, c); !ok {
			return zero, false
		}
	}
	if e := &t.tables[ti].entries[ri]; e.ok {
		return e.value, true
	}
	return zero, false
}

// GetBytes matches b[offset:offset+length] as raw Latin-1 bytes.
func (t *TernaryTree[V]) GetBytes(b []byte, offset, length int) (V, bool) {
	var zero V
	if t.tables[0].used == 0 {
		return zero, false
	}
	ti, ri := 0, 0
	for _, c := range b[offset : offset+length] {
		if t.caseless && c < 0x80 {
			c = lowercase[c]
		}
		var ok bool
		if ti, ri, ok = t.step(ti, ri, c); !ok {
			return zero, false
		}
	}
	if e := &t.tables[ti].entries[ri]; e.ok {
		return e.value, true
	}
	return zero, false
}

// GetBuffer matches length bytes starting offset past rd's current
// position. The position is never advanced.
func (t *TernaryTree[V]) GetBuffer(rd *bytes.Reader, offset, length int) (V, bool) {
	var zero V
	if t.tables[0].used == 0 {
		return zero, false
	}
	base := rd.Size() - int64(rd.Len())
	ti, ri := 0, 0
	var buf [1]byte
	for i := 0; i < length; i++ {
		if _, err := rd.ReadAt(buf[:], base+int64(offset+i)); err != nil {
			return zero, false
		}
		c := buf[0]
		if t.caseless && c < 0x80 {
			c = lowercase[c]
		}
		var ok bool
		if ti, ri, ok = t.step(ti, ri, c); !ok {
			return zero, false
		}
	}
	if e := &t.tables[ti].entries[ri]; e.ok {
		return e.value, true
	}
	return zero, false
}
