// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import "io"

// RandomAccessFile is the minimal seek/read/write/truncate surface the
// tag engine requires of its backing file. *os.File satisfies this
// directly; callers may substitute any type that does (an in-memory
// fixture in tests, for instance). The engine never assumes anything
// about the file beyond this interface — format-specific detection of
// where a tag should start is the caller's responsibility.
type RandomAccessFile interface {
	io.ReaderAt
	io.WriterAt
	io.Seeker
	Truncate(size int64) error
}

// fileSize returns the current size of f by seeking to its end.
func fileSize(f RandomAccessFile) (int64, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	return size, nil
}
