// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

// validUTF8 reports whether b is well-formed UTF-8 under the relaxed
// subset the reference APEv2 implementation checks: lead bytes outside
// [0xc2, 0xf5] or truncated continuation sequences are rejected, but
// overlong encodings and encoded surrogate halves are not separately
// flagged. This intentionally does not use unicode/utf8.Valid, which
// enforces the full RFC 3629 grammar (including overlong/surrogate
// rejection) and would reject byte sequences the reference accepts.
func validUTF8(b []byte) bool {
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c&0x80 == 0 {
			continue
		}

		if c < 0xc2 || c > 0xf5 {
			return false
		}

		var n int
		switch {
		case c&0xe0 == 0xc0:
			n = 1
		case c&0xf0 == 0xe0:
			n = 2
		case c&0xf8 == 0xf0:
			n = 3
		default:
			return false
		}

		if i+n >= len(b) {
			return false
		}

		for j := 1; j <= n; j++ {
			if b[i+j]&0xc0 != 0x80 {
				return false
			}
		}

		i += n
	}

	return true
}
