// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import "fmt"

// CorruptError is returned when the input violates the NRBF wire format:
// premature EOF, an unresolvable ClassWithId reference, a BinaryLibrary not
// followed by a class or array record, a malformed length varint, or an
// impossible array dimension. Decoding does not attempt recovery; the error
// bubbles all the way up to Deserialize's caller.
type CorruptError struct {
	Msg string
}

func (e *CorruptError) Error() string {
	return "corrupt NRBF stream: " + e.Msg
}

// Corrupt builds a CorruptError the way helper.go builds its package-level
// sentinel errors, but as a constructor since the message carries context
// (an offset, a record type, an ObjectId) that a fixed sentinel can't.
func Corrupt(format string, args ...interface{}) error {
	return &CorruptError{Msg: fmt.Sprintf(format, args...)}
}

// NotImplementedError is returned when the input is valid NRBF but uses a
// record or binary type this decoder does not yet handle.
type NotImplementedError struct {
	Msg string
}

func (e *NotImplementedError) Error() string {
	return "not implemented: " + e.Msg
}

// NotImplemented builds a NotImplementedError.
func NotImplemented(format string, args ...interface{}) error {
	return &NotImplementedError{Msg: fmt.Sprintf(format, args...)}
}

// ErrPrematureEOF is the sentinel boundary-check error for every fixed-width
// ByteSource read, named the way helper.go names ErrOutsideBoundary.
var ErrPrematureEOF = Corrupt("premature end of file")
