// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import "sort"

// serialize builds a fresh header, sorted item block, and footer from
// the current item store. It does not mutate t; the caller installs the
// result only once it knows the whole operation succeeded, so a failed
// serialize (e.g. the tag would exceed the configured maximum size)
// never leaves the item store partially updated.
func (t *Tag) serialize() (header, body, footer []byte, tagSize uint32, err error) {
	items := t.store.snapshot()

	sort.Slice(items, func(i, j int) bool {
		wi, wj := items[i].sortWeight(), items[j].sortWeight()
		if wi != wj {
			return wi < wj
		}
		return items[i].Key < items[j].Key
	})

	size := uint32(minTagSize)
	for _, it := range items {
		size += 8 + uint32(it.recordBodyLen())
	}

	if size > t.opts.maxTagSize {
		return nil, nil, nil, 0, newErr(KindLimitExceeded, "tag larger than maximum possible size")
	}

	body = make([]byte, size-minTagSize)
	pos := 0
	for _, it := range items {
		putLE32(body[pos:pos+4], uint32(len(it.Value)))
		putLE32(body[pos+4:pos+8], it.flags())
		pos += 8
		copy(body[pos:], it.Key)
		pos += len(it.Key)
		body[pos] = 0x00
		pos++
		copy(body[pos:], it.Value)
		pos += len(it.Value)
	}

	header = make([]byte, headerLen)
	footer = make([]byte, footerLen)
	buildHeaderFooter(header, footer, size, uint32(len(items)))

	return header, body, footer, size, nil
}

func buildHeaderFooter(header, footer []byte, tagSize, itemCount uint32) {
	copy(header, apePreamble)
	copy(footer, apePreamble)
	putLE32(header[12:16], tagSize-headerLen)
	putLE32(footer[12:16], tagSize-headerLen)
	putLE32(header[16:20], itemCount)
	putLE32(footer[16:20], itemCount)
	header[20] = 0
	footer[20] = 0
	copy(header[21:24], apeHeaderFlags)
	copy(footer[21:24], apeFooterFlags)
	// bytes 24..32 are already zero from make([]byte, ...)
}
