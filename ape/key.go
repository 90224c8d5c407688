// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import "github.com/cespare/xxhash/v2"

// foldASCII lower-cases the ASCII range A-Z only; there is no locale and
// no Unicode case folding involved in APEv2 key comparison.
func foldASCII(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

// equalFoldASCII reports whether a and b are equal under ASCII
// case-insensitive comparison.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// keyHash computes the 64-bit bucket hash used by the item store's hashed
// key index (see ape/store.go). Hashing the folded key lets lookups and
// duplicate checks short-circuit on a single uint64 compare before
// falling back to the exact string compare.
func keyHash(foldedKey string) uint64 {
	return xxhash.Sum64String(foldedKey)
}
