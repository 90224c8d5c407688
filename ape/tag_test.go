// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdate_SixItemRoundTripSize(t *testing.T) {
	tag := sixItemTag(t)
	require.EqualValues(t, 336, int(tag.Size())+int(tag.id3Len()))
}

func TestUpdate_RemoveAndAddMatchesSize(t *testing.T) {
	tag := sixItemTag(t)

	existed, err := tag.Remove("title")
	require.NoError(t, err)
	require.True(t, existed)

	existed, err = tag.Remove("track")
	require.NoError(t, err)
	require.True(t, existed)

	require.NoError(t, tag.Insert(Item{Key: "blah", Value: []byte("Blah"), Kind: ItemUTF8}))
	require.NoError(t, tag.Update())

	require.EqualValues(t, 313, int(tag.Size())+int(tag.id3Len()))
}

func TestUpdate_ItemCountLimit(t *testing.T) {
	tag := New(newMemFile(nil))
	for i := 0; i < 64; i++ {
		require.NoError(t, tag.Insert(Item{Key: fmt.Sprintf("Key%02d", i), Value: []byte(fmt.Sprint(i)), Kind: ItemUTF8}))
	}

	err := tag.Insert(Item{Key: "Key64", Value: []byte("64"), Kind: ItemUTF8})
	require.Error(t, err)
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, KindLimitExceeded, aerr.Kind)
	require.Equal(t, "maximum item count exceeded", aerr.Msg)
}

func TestUpdate_MaxSizeBoundary(t *testing.T) {
	big := New(newMemFile(nil), WithSuppressID3())
	require.NoError(t, big.Insert(Item{Key: "Too Big!", Value: make([]byte, 8112), Kind: ItemBinary}))
	err := big.Update()
	require.Error(t, err)
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, KindLimitExceeded, aerr.Kind)
	require.Equal(t, "tag larger than maximum possible size", aerr.Msg)

	fits := New(newMemFile(nil), WithSuppressID3())
	require.NoError(t, fits.Insert(Item{Key: "Too Big!", Value: make([]byte, 8111), Kind: ItemBinary}))
	require.NoError(t, fits.Update())
	require.EqualValues(t, 8192, fits.Size())
}

func TestUpdate_SuppressID3(t *testing.T) {
	f := newMemFile(nil)
	tag := New(f, WithSuppressID3())
	require.NoError(t, tag.Insert(Item{Key: "title", Value: []byte("x"), Kind: ItemUTF8}))
	require.NoError(t, tag.Update())

	size, err := fileSize(f)
	require.NoError(t, err)
	require.EqualValues(t, tag.offset+int64(tag.Size()), size)
	require.Zero(t, tag.id3Len())

	apeBlock, err := tag.Raw()
	require.NoError(t, err)
	require.EqualValues(t, tag.Size(), len(apeBlock))

	hasID3, err := tag.ExistsID3()
	require.NoError(t, err)
	require.False(t, hasID3)
}

func TestExists_NoTag(t *testing.T) {
	tag := New(newMemFile(nil))
	exists, err := tag.Exists()
	require.NoError(t, err)
	require.False(t, exists)
}

func TestRemoveTag(t *testing.T) {
	tag := sixItemTag(t)
	raw, err := tag.Raw()
	require.NoError(t, err)

	f := newMemFile(raw)
	reopened := New(f)
	removed, err := reopened.RemoveTag()
	require.NoError(t, err)
	require.True(t, removed)

	exists, err := reopened.Exists()
	require.NoError(t, err)
	require.False(t, exists)
}
