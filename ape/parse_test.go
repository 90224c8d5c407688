// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sixItemTag(t *testing.T) *Tag {
	t.Helper()

	tag := New(newMemFile(nil))
	items := []Item{
		{Key: "track", Value: []byte("1"), Kind: ItemUTF8},
		{Key: "comment", Value: []byte("XXXX-0000"), Kind: ItemUTF8},
		{Key: "album", Value: []byte("Test Album\x00Other Album"), Kind: ItemUTF8},
		{Key: "title", Value: []byte("Love Cheese"), Kind: ItemUTF8},
		{Key: "artist", Value: []byte("Test Artist"), Kind: ItemUTF8},
		{Key: "date", Value: []byte("2007"), Kind: ItemUTF8},
	}
	for _, it := range items {
		require.NoError(t, tag.Insert(it))
	}
	require.NoError(t, tag.Update())
	return tag
}

func TestParse_SixItems(t *testing.T) {
	written := sixItemTag(t)
	raw, err := written.Raw()
	require.NoError(t, err)

	f := newMemFile(raw)
	tag := New(f)

	exists, err := tag.Exists()
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, tag.Parse())
	require.EqualValues(t, 6, tag.FileItemCount())

	it, ok, err := tag.Get("Album")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("Test Album\x00Other Album"), it.Value)
	require.Len(t, it.Value, 22)
}

func TestParse_CorruptItemOverrun(t *testing.T) {
	tag := New(newMemFile(nil), WithSuppressID3())
	require.NoError(t, tag.Insert(Item{Key: "ab", Value: []byte("cd"), Kind: ItemUTF8}))

	header, body, footer, _, err := tag.serialize()
	require.NoError(t, err)

	// Corrupt the declared value size of the single item record so it
	// claims far more data than the block actually holds.
	putLE32(body[0:4], 0xfffffff0)

	buf := append(append(append([]byte{}, header...), body...), footer...)

	bad := New(newMemFile(buf), WithSuppressID3())
	err = bad.Parse()
	require.Error(t, err)
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, KindCorruptTag, aerr.Kind)
}

func TestParse_CorruptItemOverrunWraparound(t *testing.T) {
	tag := New(newMemFile(nil), WithSuppressID3())
	require.NoError(t, tag.Insert(Item{Key: "ab", Value: []byte("cd"), Kind: ItemUTF8}))

	header, body, footer, _, err := tag.serialize()
	require.NoError(t, err)

	// A value size of 0xffffffff would wrap uint32 bounds arithmetic
	// back into range; the parser must reject it without panicking.
	putLE32(body[0:4], 0xffffffff)

	buf := append(append(append([]byte{}, header...), body...), footer...)

	bad := New(newMemFile(buf), WithSuppressID3())
	err = bad.Parse()
	require.Error(t, err)
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, KindCorruptTag, aerr.Kind)
}
