// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package ape

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the cause of an Error.
type Kind int

// The error kinds a Tag operation can report.
const (
	KindNone Kind = iota
	KindFileIO
	KindMemory
	KindInternal
	KindLimitExceeded
	KindDuplicateItem
	KindCorruptTag
	KindInvalidItem
	KindArgument
	KindNotPresent
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFileIO:
		return "file i/o"
	case KindMemory:
		return "memory"
	case KindInternal:
		return "internal"
	case KindLimitExceeded:
		return "limit exceeded"
	case KindDuplicateItem:
		return "duplicate item"
	case KindCorruptTag:
		return "corrupt tag"
	case KindInvalidItem:
		return "invalid item"
	case KindArgument:
		return "argument"
	case KindNotPresent:
		return "not present"
	default:
		return "unknown"
	}
}

// Error is the tagged error type returned by every fallible Tag operation.
// Err, when non-nil, is the wrapped cause (typically an I/O failure);
// callers that only care about the kind of failure should match on Kind
// rather than parsing Msg, which is for diagnostics only.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ape: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}

	return fmt.Sprintf("ape: %s: %s", e.Kind, e.Msg)
}

// Unwrap allows errors.Is/errors.As to reach the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func newErr(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func newErrf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// wrapIOErr wraps a failure from the underlying RandomAccessFile with a
// stack-trace-capable cause, while still exposing KindFileIO for
// structural matching via errors.As.
func wrapIOErr(op string, err error) *Error {
	return &Error{
		Kind: KindFileIO,
		Msg:  op,
		Err:  errors.Wrapf(err, "ape: %s", op),
	}
}
