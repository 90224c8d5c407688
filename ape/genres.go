// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import "sync"

// genreOnce guards the publishing of genreTableData into genres, so
// that a concurrent first lookup from multiple goroutines never
// observes a half-populated table.
var (
	genreOnce  sync.Once
	genreTable map[string]byte
)

func genres() map[string]byte {
	genreOnce.Do(func() { genreTable = genreTableData })
	return genreTable
}

// InitializeGenres pre-populates the shared ID3v1 genre lookup table.
// Calling it is never required — lookupGenre initializes the table on
// first use — but a multi-threaded caller that wants deterministic,
// contention-free startup can call it once before spawning workers.
func InitializeGenres() {
	genres()
}
