// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ternary

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// newReaderAt returns a bytes.Reader over b seeked to pos, so buffer-view
// lookups resolve offsets relative to that position.
func newReaderAt(b []byte, pos int) *bytes.Reader {
	rd := bytes.NewReader(b)
	_, _ = rd.Seek(int64(pos), io.SeekStart)
	return rd
}

func newBestTree(t *testing.T) *TernaryTree[string] {
	t.Helper()
	tree, err := New[string](false, 64)
	require.NoError(t, err)
	for _, k := range []string{"hi", "hip", "hell", "foo", "foobar", "fop", "hit", "zip"} {
		require.NoError(t, tree.Put(k, k))
	}
	return tree
}

func TestGetBestLongestPrefix(t *testing.T) {
	t.Parallel()

	tree := newBestTree(t)

	for _, k := range []string{"hi", "hip", "hell", "foo", "foobar", "fop", "hit", "zip"} {
		v, ok := tree.Get(k)
		require.True(t, ok, k)
		require.Equal(t, k, v)
	}

	cases := []struct {
		input string
		want  string
	}{
		{"hi", "hi"},
		{"hixxx", "hi"},
		{"foobar", "foobar"},
		{"foobarxxx", "foobar"},
		{"foobor", "foo"},
		{"hipster", "hip"},
	}
	for _, tc := range cases {
		v, ok := tree.GetBest(tc.input)
		require.True(t, ok, tc.input)
		require.Equal(t, tc.want, v, tc.input)
	}

	_, ok := tree.GetBest("xyz")
	require.False(t, ok)
}

func TestGetBestWithOffset(t *testing.T) {
	t.Parallel()

	tree := newBestTree(t)

	v, ok := tree.GetBestString("xxxfoobarxxx", 3, 9)
	require.True(t, ok)
	require.Equal(t, "foobar", v)

	b := []byte("xxxfoobarxxx")
	v, ok = tree.GetBestBytes(b, 3, 9)
	require.True(t, ok)
	require.Equal(t, "foobar", v)

	rd := newReaderAt(b, 1)
	v, ok = tree.GetBestBuffer(rd, 2, 9)
	require.True(t, ok)
	require.Equal(t, "foobar", v)
}

func TestGetBestEmptyKeyFallback(t *testing.T) {
	t.Parallel()

	tree := newBestTree(t)
	require.NoError(t, tree.Put("", "empty"))

	v, ok := tree.GetBest("whatever")
	require.True(t, ok)
	require.Equal(t, "empty", v)

	// A real prefix match still beats the fallback.
	v, ok = tree.GetBest("hixxx")
	require.True(t, ok)
	require.Equal(t, "hi", v)

	v, ok = tree.Get("")
	require.True(t, ok)
	require.Equal(t, "empty", v)
}

func TestGetBestStopsAtNonLatin1(t *testing.T) {
	t.Parallel()

	tree := newBestTree(t)

	// The scan ends at the first code point above 0xFF; the match found
	// up to there still wins.
	v, ok := tree.GetBest("hiĀxxx")
	require.True(t, ok)
	require.Equal(t, "hi", v)

	_, ok = tree.GetBest("Āhi")
	require.False(t, ok)
}

func TestGetBestCaseInsensitive(t *testing.T) {
	t.Parallel()

	tree, err := New[string](true, 64)
	require.NoError(t, err)
	require.NoError(t, tree.Put("Content-Type", "ct"))
	require.NoError(t, tree.Put("Content", "c"))

	v, ok := tree.GetBest("CONTENT-TYPE: text/html")
	require.True(t, ok)
	require.Equal(t, "ct", v)

	v, ok = tree.GetBestBytes([]byte("content-len"), 0, 11)
	require.True(t, ok)
	require.Equal(t, "c", v)
}

func TestBufferLookupsKeepPosition(t *testing.T) {
	t.Parallel()

	tree := newBestTree(t)

	rd := newReaderAt([]byte("foobarxxx"), 0)
	before := rd.Len()

	v, ok := tree.GetBuffer(rd, 0, 6)
	require.True(t, ok)
	require.Equal(t, "foobar", v)

	v, ok = tree.GetBestBuffer(rd, 0, 9)
	require.True(t, ok)
	require.Equal(t, "foobar", v)

	require.Equal(t, before, rd.Len())
}

func TestGetBestShortRead(t *testing.T) {
	t.Parallel()

	tree := newBestTree(t)

	// length past the end of the buffer ends the scan, it does not fail.
	rd := newReaderAt([]byte("foo"), 0)
	v, ok := tree.GetBestBuffer(rd, 0, 10)
	require.True(t, ok)
	require.Equal(t, "foo", v)
}
