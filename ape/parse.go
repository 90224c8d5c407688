// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

// Parse materializes the on-disk items into the in-memory item store.
// It is a no-op if the tag has already been parsed, or if no APE tag is
// present. A parse failure (malformed item records) is cached, so
// repeated calls return the same error deterministically.
func (t *Tag) Parse() error {
	if err := t.ensureLocated(); err != nil {
		return err
	}

	if !t.hasAPE || t.checkedFields {
		return nil
	}

	err := t.parseFields()
	t.checkedFields = true
	if err != nil {
		t.lastErr = err
	}
	return err
}

func (t *Tag) parseFields() error {
	t.store.clear()

	data := t.body
	dataSize := uint32(len(data))
	var offset uint32

	for i := uint32(0); i < t.fileItemCount; i++ {
		if dataSize-offset < minItemRecordLen {
			return newErr(KindCorruptTag, "end of tag reached but more items specified")
		}

		it, next, err := parseOneField(data, offset, dataSize)
		if err != nil {
			return err
		}

		if err := t.store.insertParsed(it); err != nil {
			return err
		}

		offset = next
	}

	if offset != dataSize {
		return newErr(KindCorruptTag, "data remaining after specified number of items parsed")
	}

	return nil
}

// parseOneField decodes a single item record starting at offset within
// data, returning the item and the offset of the next record.
func parseOneField(data []byte, offset, dataSize uint32) (Item, uint32, error) {
	valueSize := le32(data[offset : offset+4])
	flags := le32(data[offset+4 : offset+8])

	// Widen to uint64 before adding: valueSize is an attacker-controlled
	// 32-bit field, and offset+minItemRecordLen+valueSize would wrap
	// around in uint32 arithmetic for a value size near 0xffffffff,
	// defeating this very overrun check.
	if uint64(valueSize)+uint64(offset)+minItemRecordLen > uint64(dataSize) {
		return Item{}, 0, newErr(KindCorruptTag, "impossible item length (greater than remaining space)")
	}

	keyStart := offset + 8
	keyEnd := keyStart
	limit := keyStart + 256
	if limit > dataSize {
		limit = dataSize
	}
	found := false
	for keyEnd < limit {
		if data[keyEnd] == 0x00 {
			found = true
			break
		}
		keyEnd++
	}
	if !found {
		return Item{}, 0, newErr(KindCorruptTag, "invalid item key length (too long or no end)")
	}

	keyLen := keyEnd - keyStart + 1 // including NUL
	next64 := uint64(offset) + 8 + uint64(keyLen) + uint64(valueSize)
	if next64 > uint64(dataSize) {
		return Item{}, 0, newErr(KindCorruptTag, "invalid item length (longer than remaining data)")
	}
	next := uint32(next64)

	kind, access, ok := itemKindAccessFromFlags(flags)
	if !ok {
		return Item{}, 0, newErr(KindInvalidItem, "invalid item flags")
	}

	key := string(data[keyStart:keyEnd])
	value := make([]byte, valueSize)
	copy(value, data[keyEnd+1:keyEnd+1+valueSize])

	return Item{Key: key, Value: value, Kind: kind, Access: access}, next, nil
}
