// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import (
	"bytes"
	"io"
)

// memFile is a minimal in-memory RandomAccessFile, used so tests never
// touch the filesystem.
type memFile struct {
	buf []byte
	pos int64
}

func newMemFile(data []byte) *memFile {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &memFile{buf: buf}
}

func (f *memFile) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(f.buf)) {
		return 0, io.EOF
	}
	n := copy(p, f.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (f *memFile) WriteAt(p []byte, off int64) (int, error) {
	end := off + int64(len(p))
	if end > int64(len(f.buf)) {
		grown := make([]byte, end)
		copy(grown, f.buf)
		f.buf = grown
	}
	return copy(f.buf[off:], p), nil
}

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = f.pos
	case io.SeekEnd:
		base = int64(len(f.buf))
	}
	f.pos = base + offset
	return f.pos, nil
}

func (f *memFile) Truncate(size int64) error {
	if size <= int64(len(f.buf)) {
		f.buf = f.buf[:size]
		return nil
	}
	grown := make([]byte, size)
	copy(grown, f.buf)
	f.buf = grown
	return nil
}

func (f *memFile) Bytes() []byte {
	return bytes.Clone(f.buf)
}
