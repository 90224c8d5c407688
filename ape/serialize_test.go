// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize_SortOrder(t *testing.T) {
	tag := New(newMemFile(nil), WithSuppressID3())
	require.NoError(t, tag.Insert(Item{Key: "zzshort", Value: []byte("a"), Kind: ItemUTF8}))
	require.NoError(t, tag.Insert(Item{Key: "aalonger", Value: []byte("bbbbbbbbbb"), Kind: ItemUTF8}))
	require.NoError(t, tag.Insert(Item{Key: "bb", Value: []byte(""), Kind: ItemUTF8}))
	require.NoError(t, tag.Insert(Item{Key: "aa", Value: []byte(""), Kind: ItemUTF8}))

	_, body, _, _, err := tag.serialize()
	require.NoError(t, err)

	var keys []string
	var weights []int
	offset := 0
	for offset < len(body) {
		valueSize := le32(body[offset : offset+4])
		offset += 8
		keyStart := offset
		for body[offset] != 0x00 {
			offset++
		}
		key := string(body[keyStart:offset])
		offset++ // NUL
		offset += int(valueSize)
		keys = append(keys, key)
		weights = append(weights, len(key)+int(valueSize))
	}

	require.Equal(t, []string{"aa", "bb", "zzshort", "aalonger"}, keys)
	for i := 1; i < len(weights); i++ {
		require.LessOrEqual(t, weights[i-1], weights[i])
	}
}

func TestSerialize_RoundTripByteIdentical(t *testing.T) {
	tag := sixItemTag(t)
	raw, err := tag.Raw()
	require.NoError(t, err)

	reopened := New(newMemFile(raw))
	require.NoError(t, reopened.Parse())

	header, body, footer, tagSize, err := reopened.serialize()
	require.NoError(t, err)
	require.Equal(t, tag.header, header)
	require.Equal(t, tag.body, body)
	require.Equal(t, tag.footer, footer)
	require.Equal(t, tag.tagSize, tagSize)
}
