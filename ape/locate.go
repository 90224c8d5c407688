// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

// ensureLocated runs the locator exactly once per Tag; subsequent calls
// return the cached result, including a cached failure, so repeated
// accessor calls on the same Tag always report the same tag layout.
func (t *Tag) ensureLocated() error {
	if t.checkedLocation {
		return t.lastErr
	}

	err := t.locate()
	t.checkedLocation = true
	t.lastErr = err
	return err
}

func (t *Tag) locate() error {
	size, err := fileSize(t.f)
	if err != nil {
		return wrapIOErr("seek", err)
	}

	if size < minTagSize {
		t.offset = size
		t.hasAPE, t.hasID3 = false, false
		return nil
	}

	var id3Length int64
	if !t.opts.suppressID3 {
		if size >= id3Len {
			id3, err := t.readAt(size-id3Len, id3Len)
			if err != nil {
				return err
			}
			if id3[0] == 'T' && id3[1] == 'A' && id3[2] == 'G' && id3[125] == 0x00 {
				t.id3 = id3
				t.hasID3 = true
				id3Length = id3Len
			}
		}
	}

	if size < minTagSize+id3Length {
		t.hasAPE = false
		t.offset = size - id3Length
		return nil
	}

	footer, err := t.readAt(size-footerLen-id3Length, footerLen)
	if err != nil {
		return err
	}

	if !bytesEqual(footer[:preambleLen], apePreamble) {
		t.hasAPE = false
		t.offset = size - id3Length
		return nil
	}

	if !bytesEqual(footer[21:24], apeFooterFlags) || (footer[20] != 0 && footer[20] != 1) {
		return newErr(KindCorruptTag, "bad tag footer flags")
	}

	tagSize := le32(footer[12:16]) + headerLen
	itemCount := le32(footer[16:20])

	if tagSize < minTagSize {
		return newErr(KindCorruptTag, "tag smaller than minimum possible size")
	}
	if tagSize > t.opts.maxTagSize {
		return newErr(KindLimitExceeded, "tag larger than maximum possible size")
	}
	if int64(tagSize)+id3Length > size {
		return newErr(KindCorruptTag, "tag larger than possible size")
	}
	if int(itemCount) > t.opts.maxItemCount {
		return newErr(KindLimitExceeded, "tag item count larger than allowed")
	}
	if itemCount > (tagSize-minTagSize)/minItemRecordLen {
		return newErr(KindCorruptTag, "tag item count larger than possible")
	}

	t.offset = size - int64(tagSize) - id3Length
	t.tagSize = tagSize
	t.fileItemCount = itemCount
	t.hasAPE = true

	header, err := t.readAt(t.offset, headerLen)
	if err != nil {
		return err
	}
	body, err := t.readAt(t.offset+headerLen, int64(tagSize-minTagSize))
	if err != nil {
		return err
	}

	if !bytesEqual(header[:preambleLen], apePreamble) ||
		!bytesEqual(header[21:24], apeHeaderFlags) ||
		(header[20] != 0 && header[20] != 1) {
		return newErr(KindCorruptTag, "missing APE header")
	}
	if le32(header[12:16])+headerLen != tagSize {
		return newErr(KindCorruptTag, "header and footer size does not match")
	}
	if le32(header[16:20]) != itemCount {
		return newErr(KindCorruptTag, "header and footer item count does not match")
	}

	t.header = header
	t.body = body
	t.footer = footer
	return nil
}

func (t *Tag) readAt(off, n int64) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := t.f.ReadAt(buf, off); err != nil {
		return nil, wrapIOErr("read", err)
	}
	return buf, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Exists reports whether an APE tag is present, running the locator if
// it has not already run.
func (t *Tag) Exists() (bool, error) {
	if err := t.ensureLocated(); err != nil {
		return false, err
	}
	return t.hasAPE, nil
}

// ExistsID3 reports whether an ID3v1.1 companion tag is present.
func (t *Tag) ExistsID3() (bool, error) {
	if err := t.ensureLocated(); err != nil {
		return false, err
	}
	return t.hasID3, nil
}
