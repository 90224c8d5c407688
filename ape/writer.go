// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

// Update writes the current item store back to the file: it derives a
// fresh ID3v1.1 companion (when applicable) and a fresh APE
// header/item-block/footer, writes them at t.offset, and truncates the
// file to exactly offset+tagSize+id3Length. A serializer failure (e.g.
// the tag would exceed the maximum size) leaves both the item store and
// the file untouched.
func (t *Tag) Update() error {
	if err := t.ensureLocated(); err != nil {
		return err
	}

	writeID3 := !t.opts.suppressID3 && (!t.hasAPE || t.hasID3)

	var id3 []byte
	if writeID3 {
		id3 = t.buildID3()
	}

	header, body, footer, tagSize, err := t.serialize()
	if err != nil {
		return err
	}

	if err := t.writeAt(t.offset, header); err != nil {
		return err
	}
	if err := t.writeAt(t.offset+headerLen, body); err != nil {
		return err
	}
	if err := t.writeAt(t.offset+int64(tagSize)-footerLen, footer); err != nil {
		return err
	}

	var id3Length int64
	if writeID3 {
		if err := t.writeAt(t.offset+int64(tagSize), id3); err != nil {
			return err
		}
		id3Length = id3Len
	}

	if err := t.f.Truncate(t.offset + int64(tagSize) + id3Length); err != nil {
		return wrapIOErr("truncate", err)
	}

	t.header, t.body, t.footer = header, body, footer
	t.tagSize = tagSize
	t.fileItemCount = uint32(t.store.count())
	t.hasAPE = true
	t.checkedFields = true
	if writeID3 {
		t.id3 = id3
		t.hasID3 = true
	}

	return nil
}

func (t *Tag) writeAt(off int64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if _, err := t.f.WriteAt(data, off); err != nil {
		return wrapIOErr("write", err)
	}
	return nil
}

// RemoveTag strips the APE tag (and any ID3v1.1 companion) from the
// file by truncating to t.offset. It reports false, nil if no APE tag
// was present — that is a no-op, not an error.
func (t *Tag) RemoveTag() (removed bool, err error) {
	if err := t.ensureLocated(); err != nil {
		return false, err
	}
	if !t.hasAPE {
		return false, nil
	}

	if err := t.f.Truncate(t.offset); err != nil {
		return false, wrapIOErr("truncate", err)
	}

	t.hasAPE = false
	t.hasID3 = false
	t.header, t.body, t.footer, t.id3 = nil, nil, nil, nil
	t.tagSize = 0
	t.fileItemCount = 0

	return true, nil
}

// Raw returns the header, item block, footer, and optional ID3v1.1
// suffix as last read from the file by the locator or last written by
// Update, without touching the file. It does not serialize the current
// item store: items inserted, replaced or removed since the last Update
// are not reflected, and a file with no APE tag yields no APE bytes.
func (t *Tag) Raw() ([]byte, error) {
	if err := t.ensureLocated(); err != nil {
		return nil, err
	}

	size := int64(t.tagSize) + t.id3Len()
	buf := make([]byte, size)

	if t.hasAPE {
		copy(buf, t.header)
		copy(buf[headerLen:], t.body)
		copy(buf[t.tagSize-footerLen:], t.footer)
	}
	if t.hasID3 && !t.opts.suppressID3 {
		copy(buf[t.tagSize:], t.id3)
	}

	return buf, nil
}
