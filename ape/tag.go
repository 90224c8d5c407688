// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import "sync"

// options holds the per-Tag configuration built from the Option
// functions passed to New. Each Tag captures its own copy of the
// size/count limits at construction time rather than sharing
// process-wide globals, so concurrent Tags over different files never
// race on a shared limit.
type options struct {
	suppressID3  bool
	maxTagSize   uint32
	maxItemCount int
}

// Option configures a Tag at construction time.
type Option func(*options)

// WithSuppressID3 tells the Tag to neither read nor write an ID3v1.1
// suffix, corresponding to the APE_NO_ID3 flag (bit 5) of the reference
// implementation.
func WithSuppressID3() Option {
	return func(o *options) { o.suppressID3 = true }
}

// WithMaxSize overrides the maximum total APE tag size in bytes
// (header + items + footer). The hard floor is 64 bytes.
func WithMaxSize(size uint32) Option {
	return func(o *options) {
		if size < minMaxTagSize {
			size = minMaxTagSize
		}
		o.maxTagSize = size
	}
}

// WithMaxItemCount overrides the maximum number of items a Tag may hold.
func WithMaxItemCount(count int) Option {
	return func(o *options) { o.maxItemCount = count }
}

var defaultLimitsMu sync.Mutex
var defaultMaxSize uint32 = defaultMaxTagSize
var defaultMaxCount = defaultMaxItemCount

// SetDefaultLimits overrides the process-wide default limits that New
// uses when no WithMaxSize/WithMaxItemCount option is supplied. It
// mirrors the reference implementation's ApeTag_set_max_size and
// ApeTag_set_max_item_count. The new values apply only to Tags created
// afterwards: each Tag copies the defaults in New, so Tags that already
// exist keep the limits they were constructed with.
func SetDefaultLimits(maxSize uint32, maxItemCount int) {
	defaultLimitsMu.Lock()
	defer defaultLimitsMu.Unlock()
	if maxSize < minMaxTagSize {
		maxSize = minMaxTagSize
	}
	defaultMaxSize = maxSize
	defaultMaxCount = maxItemCount
}

// DefaultLimits returns the current process-wide default limits.
func DefaultLimits() (maxSize uint32, maxItemCount int) {
	defaultLimitsMu.Lock()
	defer defaultLimitsMu.Unlock()
	return defaultMaxSize, defaultMaxCount
}

// Tag is the per-file processing handle: cached raw buffers, the parsed
// item store, and the boolean state machine tracking what has been
// checked so far. A Tag is not safe for concurrent use by multiple
// goroutines; it performs only synchronous, blocking I/O against the
// file it was given.
type Tag struct {
	f    RandomAccessFile
	opts options

	header []byte
	body   []byte
	footer []byte
	id3    []byte

	offset        int64
	fileItemCount uint32
	tagSize       uint32

	hasAPE          bool
	hasID3          bool
	checkedLocation bool
	checkedFields   bool

	store *store

	lastErr error
}

// New binds a Tag to f. The file is not read until the first accessor
// that requires it (Exists, Parse, Get, ...); the caller retains
// ownership of f and is responsible for closing it.
func New(f RandomAccessFile, opts ...Option) *Tag {
	maxSize, maxCount := DefaultLimits()
	o := options{maxTagSize: maxSize, maxItemCount: maxCount}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tag{
		f:     f,
		opts:  o,
		store: newStore(o.maxItemCount),
	}
}

// Close releases the Tag's owned buffers and item store. The underlying
// file is not closed; it is owned by the caller.
func (t *Tag) Close() error {
	t.header, t.body, t.footer, t.id3 = nil, nil, nil, nil
	t.store = nil
	return nil
}

// Err returns the last error recorded by a locate/parse failure, or nil.
func (t *Tag) Err() error {
	return t.lastErr
}

// Size returns the total on-disk APE tag size in bytes (header + items +
// footer), or 0 if no tag has been located or none is present.
func (t *Tag) Size() uint32 {
	return t.tagSize
}

// ItemCount returns the number of items currently held in memory.
func (t *Tag) ItemCount() int {
	if t.store == nil {
		return 0
	}
	return t.store.count()
}

// FileItemCount returns the item count as read from the on-disk footer
// (0 if no tag has been located, or none is present).
func (t *Tag) FileItemCount() uint32 {
	return t.fileItemCount
}

func (t *Tag) id3Len() int64 {
	if t.hasID3 && !t.opts.suppressID3 {
		return id3Len
	}
	return 0
}

