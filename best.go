// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ternary

import "bytes"

// GetBest returns the value of the longest stored key that is a prefix of
// s. If the empty key was stored it acts as the fallback match.
func (t *TernaryTree[V]) GetBest(s string) (V, bool) {
	return t.GetBestString(s, 0, len(s))
}

// GetBestString is GetBest over s[offset:offset+length]. A code point
// above 0xFF ends the scan rather than failing it: the best match found
// so far still wins.
//
// The scan is a single greedy pass. Whenever a character lands on a
// terminal row via the equal branch, that entry supersedes the previous
// candidate; a longer match can only be found further along the same
// cursor path, so the deepest candidate recorded when the scan stops is
// the longest-prefix match.
func (t *TernaryTree[V]) GetBestString(s string, offset, length int) (V, bool) {
	ti, ri := 0, 0
	best := t.fallback()
	for _, r := range s[offset : offset+length] {
		if r > 0xff {
			break
		}
		c := byte(r)
		if t.caseless && c < 0x80 {
			c = lowercase[c]
		}
		var ok bool
		if ti, ri, ok = t.step(ti, ri, c); !ok {
			break
		}
		if e := &t.tables[ti].entries[ri]; e.ok {
			best = e
		}
	}
	return found(best)
}

// GetBestBytes is GetBest over b[offset:offset+length] as raw Latin-1
// bytes.
func (t *TernaryTree[V]) GetBestBytes(b []byte, offset, length int) (V, bool) {
	ti, ri := 0, 0
	best := t.fallback()
	for _, c := range b[offset : offset+length] {
		if t.caseless && c < 0x80 {
			c = lowercase[c]
		}
		var ok bool
		if ti, ri, ok = t.step(ti, ri, c); !ok {
			break
		}
		if e := &t.tables[ti].entries[ri]; e.ok {
			best = e
		}
	}
	return found(best)
}

// GetBestBuffer is GetBest over length bytes starting offset past rd's
// current position. The position is never advanced.
func (t *TernaryTree[V]) GetBestBuffer(rd *bytes.Reader, offset, length int) (V, bool) {
	base := rd.Size() - int64(rd.Len())
	ti, ri := 0, 0
	best := t.fallback()
	var buf [1]byte
	for i := 0; i < length; i++ {
		if _, err := rd.ReadAt(buf[:], base+int64(offset+i)); err != nil {
			break
		}
		c := buf[0]
		if t.caseless && c < 0x80 {
			c = lowercase[c]
		}
		var ok bool
		if ti, ri, ok = t.step(ti, ri, c); !ok {
			break
		}
		if e := &t.tables[ti].entries[ri]; e.ok {
			best = e
		}
	}
	return found(best)
}

// fallback seeds the best-match candidate with the empty-key entry at
// root row 0, when one was stored.
func (t *TernaryTree[V]) fallback() *entry[V] {
	if e := &t.tables[0].entries[0]; e.ok {
		return e
	}
	return nil
}

func found[V any](e *entry[V]) (V, bool) {
	if e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}
