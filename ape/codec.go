// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import "encoding/binary"

// Fixed byte-exact constants from the APEv2 specification.
var (
	apePreamble     = []byte("APETAGEX\xd0\x07\x00\x00")
	apeHeaderFlags  = []byte{0x00, 0x00, 0xa0}
	apeFooterFlags  = []byte{0x00, 0x00, 0x80}
	id3Preamble     = []byte("TAG")
	genreUnknownRaw = byte(0xff)
)

const (
	preambleLen = 12
	headerLen   = 32
	footerLen   = 32
	id3Len      = 128

	minItemRecordLen = 11 // 4 size + 4 flags + >=2 key + 1 NUL + 0 value
	minTagSize       = 64 // header + footer, no items

	defaultMaxTagSize   = 8192
	defaultMaxItemCount = 64
	minMaxTagSize       = 64
)

// le32 reads a little-endian uint32 from a 4-byte-aligned window. Callers
// slice out the aligned window themselves; there are no partial reads.
func le32(b []byte) uint32 {
	_ = b[3]
	return binary.LittleEndian.Uint32(b)
}

// putLE32 stores v as a little-endian uint32 into a 4-byte-aligned window.
func putLE32(b []byte, v uint32) {
	_ = b[3]
	binary.LittleEndian.PutUint32(b, v)
}
