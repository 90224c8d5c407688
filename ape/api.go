// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

// Get looks up an item by key (ASCII case-insensitive), parsing the tag
// first if that has not already happened. The returned bool is false if
// no such item exists; that is not an error.
func (t *Tag) Get(key string) (Item, bool, error) {
	if err := t.Parse(); err != nil {
		return Item{}, false, err
	}
	it, ok := t.store.get(key)
	return it, ok, nil
}

// Items returns a caller-owned snapshot of every item currently held,
// parsing the tag first if necessary. Order is unspecified.
func (t *Tag) Items() ([]Item, error) {
	if err := t.Parse(); err != nil {
		return nil, err
	}
	return t.store.snapshot(), nil
}

// Iter visits each item once, in unspecified order; cb returning false
// stops iteration early.
func (t *Tag) Iter(cb func(Item) bool) error {
	if err := t.Parse(); err != nil {
		return err
	}
	t.store.iter(cb)
	return nil
}

// Insert adds a new item, failing if an item with the same
// case-insensitive key already exists, the store is full, or the item
// fails key/value validation.
func (t *Tag) Insert(it Item) error {
	if err := t.Parse(); err != nil {
		return err
	}
	return t.store.insert(it)
}

// Replace removes any existing case-insensitive match for it.Key, then
// inserts it, reporting whether a prior entry existed.
func (t *Tag) Replace(it Item) (existed bool, err error) {
	if err := t.Parse(); err != nil {
		return false, err
	}
	return t.store.replace(it)
}

// Remove deletes the item with the given case-insensitive key, if any.
// Absence is reported via the bool, not an error.
func (t *Tag) Remove(key string) (existed bool, err error) {
	if err := t.Parse(); err != nil {
		return false, err
	}
	existed = t.store.remove(key)
	return existed, nil
}

// Clear empties the in-memory item store.
func (t *Tag) Clear() error {
	if err := t.Parse(); err != nil {
		return err
	}
	t.store.clear()
	return nil
}
