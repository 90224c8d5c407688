// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

//go:generate go run gen_genres.go

// id3Field describes where one APE item maps into the fixed-offset
// 128-byte ID3v1.1 buffer (http://id3.org/ID3v1, the "1.1" extension
// that repurposes the last two comment bytes for a track number).
type id3Field struct {
	apeKey string
	offset int
	length int
}

var id3TextFields = []id3Field{
	{"title", 3, 30},
	{"artist", 33, 30},
	{"album", 63, 30},
	{"year", 93, 4},
	{"comment", 97, 28},
}

// buildID3 derives a 128-byte ID3v1.1 buffer from the current item
// store. Text and track fields with no matching APE item are left
// zeroed, and the genre byte is left at the unknown sentinel (0xff); a
// pre-existing ID3v1 tag on disk, if any, is always overwritten wholesale
// rather than merged field-by-field.
func (t *Tag) buildID3() []byte {
	buf := make([]byte, id3Len)
	copy(buf, id3Preamble)
	buf[id3Len-1] = genreUnknownRaw

	for _, f := range id3TextFields {
		it, ok := t.store.get(f.apeKey)
		if !ok {
			continue
		}

		n := len(it.Value)
		if n > f.length {
			n = f.length
		}
		copy(buf[f.offset:f.offset+n], it.Value[:n])
		for i := 0; i < n; i++ {
			if buf[f.offset+i] == 0x00 {
				buf[f.offset+i] = ','
			}
		}
	}

	if it, ok := t.store.get("track"); ok {
		buf[126] = parseTrack(it.Value)
	}

	if it, ok := t.store.get("genre"); ok {
		buf[127] = lookupGenre(string(it.Value))
	}

	return buf
}

// parseTrack is a strict ASCII-decimal atoi accepting lengths 1, 2, or 3
// that fit in a byte; anything else (including a 3-digit value over 255)
// returns 0, matching the reference implementation's
// ApeItem__parse_track.
func parseTrack(value []byte) byte {
	n := len(value)
	if n == 0 || n > 3 {
		return 0
	}

	for _, c := range value {
		if c < '0' || c > '9' {
			return 0
		}
	}

	switch n {
	case 1:
		return value[0] - '0'
	case 2:
		return (value[0]-'0')*10 + (value[1] - '0')
	case 3:
		v := int(value[0]-'0')*100 + int(value[1]-'0')*10 + int(value[2]-'0')
		if v > 255 {
			return 0
		}
		return byte(v)
	default:
		return 0
	}
}

// lookupGenre returns the ID3v1 genre byte for name, or the unknown-genre
// sentinel (0xff) if name is not one of the 148 canonical genres.
func lookupGenre(name string) byte {
	if b, ok := genres()[name]; ok {
		return b
	}
	return genreUnknownRaw
}
