// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

// entry is one slot in the item store's insertion-ordered backing slice.
// tombstoned entries (removed items) are skipped by iteration and
// snapshot but keep their slice slot to avoid shifting live indices.
type entry struct {
	item       Item
	folded     string
	tombstoned bool
}

// store is an ordered, case-insensitive-keyed collection of Items,
// bounded by maxItems. A hashed bucket index (keyed by xxhash64 of the
// folded key, see ape/key.go) narrows "does this key exist" to the
// handful of entries sharing a 64-bit bucket before falling back to the
// exact string compare, while a parallel ordered slice preserves
// insertion order for iter/snapshot.
type store struct {
	entries  []entry
	byHash   map[uint64][]int // hash -> indices into entries, for collisions
	live     int
	maxItems int
}

func newStore(maxItems int) *store {
	return &store{
		byHash:   make(map[uint64][]int),
		maxItems: maxItems,
	}
}

// find returns the live entry index for key, or -1.
func (s *store) find(key string) int {
	folded := foldASCII(key)
	h := keyHash(folded)
	for _, idx := range s.byHash[h] {
		e := &s.entries[idx]
		if !e.tombstoned && e.folded == folded {
			return idx
		}
	}
	return -1
}

func (s *store) get(key string) (Item, bool) {
	if len(key) > 255 {
		return Item{}, false
	}
	idx := s.find(key)
	if idx < 0 {
		return Item{}, false
	}
	return s.entries[idx].item, true
}

// insert fails with KindDuplicateItem if key already exists (case
// insensitively), KindLimitExceeded if the store is full, or whatever
// validateItem reports.
func (s *store) insert(it Item) error {
	if err := validateItem(it); err != nil {
		return err
	}
	if s.find(it.Key) >= 0 {
		return newErr(KindDuplicateItem, "duplicate item in tag")
	}
	if s.live >= s.maxItems {
		return newErrf(KindLimitExceeded, "maximum item count exceeded")
	}

	folded := foldASCII(it.Key)
	h := keyHash(folded)
	idx := len(s.entries)
	s.entries = append(s.entries, entry{item: it, folded: folded})
	s.byHash[h] = append(s.byHash[h], idx)
	s.live++
	return nil
}

// insertParsed is like insert but reports duplicates as KindCorruptTag
// rather than KindDuplicateItem: a duplicate key found while parsing
// means the tag on disk is malformed, not that the caller misused the
// live API.
func (s *store) insertParsed(it Item) error {
	if err := validateItem(it); err != nil {
		return err
	}
	if s.find(it.Key) >= 0 {
		return newErr(KindCorruptTag, "duplicate item in tag")
	}
	if s.live >= s.maxItems {
		return newErrf(KindLimitExceeded, "maximum item count exceeded")
	}

	folded := foldASCII(it.Key)
	h := keyHash(folded)
	idx := len(s.entries)
	s.entries = append(s.entries, entry{item: it, folded: folded})
	s.byHash[h] = append(s.byHash[h], idx)
	s.live++
	return nil
}

// replace removes any existing case-insensitive match then inserts,
// reporting whether a prior entry existed.
func (s *store) replace(it Item) (existed bool, err error) {
	if err := validateItem(it); err != nil {
		return false, err
	}

	idx := s.find(it.Key)
	if idx >= 0 {
		s.removeIndex(idx)
		existed = true
	}

	if s.live >= s.maxItems {
		return existed, newErrf(KindLimitExceeded, "maximum item count exceeded")
	}

	folded := foldASCII(it.Key)
	h := keyHash(folded)
	newIdx := len(s.entries)
	s.entries = append(s.entries, entry{item: it, folded: folded})
	s.byHash[h] = append(s.byHash[h], newIdx)
	s.live++
	return existed, nil
}

func (s *store) removeIndex(idx int) {
	e := &s.entries[idx]
	e.tombstoned = true
	s.live--
}

// remove reports whether key existed; absence is not an error.
func (s *store) remove(key string) (existed bool) {
	idx := s.find(key)
	if idx < 0 {
		return false
	}
	s.removeIndex(idx)
	return true
}

// iter visits each live item once in insertion order; cb returning false
// stops iteration early.
func (s *store) iter(cb func(Item) bool) {
	for i := range s.entries {
		if s.entries[i].tombstoned {
			continue
		}
		if !cb(s.entries[i].item) {
			return
		}
	}
}

// snapshot returns a caller-owned slice of all live items, in insertion
// order.
func (s *store) snapshot() []Item {
	out := make([]Item, 0, s.live)
	s.iter(func(it Item) bool {
		out = append(out, it)
		return true
	})
	return out
}

// clear empties the store without resetting maxItems.
func (s *store) clear() {
	s.entries = nil
	s.byHash = make(map[uint64][]int)
	s.live = 0
}

func (s *store) count() int {
	return s.live
}
