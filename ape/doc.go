// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

// Package ape implements reading, modifying, and writing APEv2 tags, with
// an optional ID3v1.1 companion tag, appended to the tail of a seekable
// file.
package ape
