// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import "fmt"

// ItemKind is the type flag carried in bits 1-2 of an item's flags field.
type ItemKind byte

// The four item kinds an APEv2 value can carry.
const (
	ItemUTF8 ItemKind = iota
	ItemBinary
	ItemExternal
	ItemReserved
)

func (k ItemKind) String() string {
	switch k {
	case ItemUTF8:
		return "utf8"
	case ItemBinary:
		return "binary"
	case ItemExternal:
		return "external"
	case ItemReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// ItemAccess is the access flag carried in bit 0 of an item's flags field.
type ItemAccess byte

// The two access modes an item can have.
const (
	AccessReadWrite ItemAccess = iota
	AccessReadOnly
)

const (
	itemFlagAccessMask = 0x1
	itemFlagKindMask   = 0x6
	itemFlagKindShift  = 1
	itemFlagsMax       = 0x7
)

// Item is a single APEv2 key/value record.
type Item struct {
	Key    string
	Value  []byte
	Kind   ItemKind
	Access ItemAccess
}

// flags packs Kind and Access into the on-disk 3-bit flags field.
func (it Item) flags() uint32 {
	return uint32(it.Access)&itemFlagAccessMask | (uint32(it.Kind)<<itemFlagKindShift)&itemFlagKindMask
}

// itemKindAccessFromFlags unpacks a raw on-disk flags field into Kind/Access,
// validating that only the low 3 bits are set.
func itemKindAccessFromFlags(flags uint32) (ItemKind, ItemAccess, bool) {
	if flags > itemFlagsMax {
		return 0, 0, false
	}
	return ItemKind((flags & itemFlagKindMask) >> itemFlagKindShift), ItemAccess(flags & itemFlagAccessMask), true
}

func (it Item) String() string {
	val := it.Value
	terminus := ""
	if len(val) > 128 {
		val, terminus = val[:128], "..."
	}

	return fmt.Sprintf("&Item{Key: %q, Kind: %s, Access: %v, Value: %d:%q%s}",
		it.Key, it.Kind, it.Access, len(it.Value), val, terminus)
}

var reservedKeys = [...]string{"id3", "tag", "mp+"}

// validateItem applies the §4.5 item validity rules: flags range, key
// length/charset/reserved-name, and (for UTF8/EXTERNAL items) value
// well-formedness.
func validateItem(it Item) error {
	if it.Kind > ItemReserved || it.Access > AccessReadOnly {
		return newErr(KindInvalidItem, "invalid item flags")
	}

	key := it.Key
	switch {
	case len(key) < 2:
		return newErr(KindInvalidItem, "invalid item key (too short)")
	case len(key) > 255:
		return newErr(KindInvalidItem, "invalid item key (too long)")
	}

	switch len(key) {
	case 3:
		for _, r := range reservedKeys {
			if equalFoldASCII(key, r) {
				return newErr(KindInvalidItem, "invalid item key (id3|tag|mp+|oggs)")
			}
		}
	case 4:
		if equalFoldASCII(key, "oggs") {
			return newErr(KindInvalidItem, "invalid item key (id3|tag|mp+|oggs)")
		}
	}

	for i := 0; i < len(key); i++ {
		if key[i] < 0x20 || key[i] > 0x7e {
			return newErr(KindInvalidItem, "invalid item key character")
		}
	}

	if (it.Kind == ItemUTF8 || it.Kind == ItemExternal) && !validUTF8(it.Value) {
		return newErr(KindInvalidItem, "invalid utf8 value")
	}

	return nil
}

// recordBodyLen is the size of this item's on-disk record, excluding the
// 8 leading size/flags bytes: key bytes, NUL terminator, value bytes.
func (it Item) recordBodyLen() int {
	return len(it.Key) + 1 + len(it.Value)
}

// sortWeight is the (value size + key length) used to order the
// serialized item block; see ape/serialize.go.
func (it Item) sortWeight() int {
	return len(it.Value) + len(it.Key)
}
