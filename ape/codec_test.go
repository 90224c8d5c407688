// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLE32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	for _, v := range []uint32{0, 1, 255, 256, 65535, 0xdeadbeef, 0xffffffff} {
		putLE32(buf, v)
		require.Equal(t, v, le32(buf))
	}
}

func TestLE32ByteOrder(t *testing.T) {
	buf := []byte{0xd0, 0x07, 0x00, 0x00}
	require.Equal(t, uint32(2000), le32(buf))
}
