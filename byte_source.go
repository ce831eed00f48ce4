// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import (
	"encoding/binary"
	"math"
)

// ByteSource is a sequential, bounds-checked reader over an immutable byte
// buffer. It generalizes helper.go's random-access ReadUint8/16/32/64
// (which take an explicit offset into a memory-mapped PE image) into a
// cursor-based reader, the way original_source's BinaryReader pairs a
// pointer/end pair with a templated read<T>.
//
// Invariant: cursor is always within [0, len(data)]; EOF iff cursor ==
// len(data); every read either advances the cursor by exactly the
// requested width or fails without moving it at all.
type ByteSource struct {
	data   []byte
	cursor uint32
}

// NewByteSource wraps data for sequential reading starting at offset 0.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

// EOF reports whether the cursor has reached the end of the buffer.
func (b *ByteSource) EOF() bool {
	return int(b.cursor) >= len(b.data)
}

// Offset returns the current cursor position, useful for diagnostics.
func (b *ByteSource) Offset() uint32 {
	return b.cursor
}

func (b *ByteSource) require(n uint32) ([]byte, error) {
	if uint64(b.cursor)+uint64(n) > uint64(len(b.data)) {
		return nil, ErrPrematureEOF
	}
	return b.data[b.cursor : b.cursor+n], nil
}

// Skip advances the cursor by n bytes, failing with the same boundary
// condition as a fixed-width read, without a partial advance.
func (b *ByteSource) Skip(n uint32) error {
	if _, err := b.require(n); err != nil {
		return err
	}
	b.cursor += n
	return nil
}

// ReadBytes returns the next n bytes and advances the cursor. The returned
// slice aliases the underlying buffer; callers must not retain it past the
// lifetime of the input they were given.
func (b *ByteSource) ReadBytes(n uint32) ([]byte, error) {
	buf, err := b.require(n)
	if err != nil {
		return nil, err
	}
	b.cursor += n
	return buf, nil
}

// ReadU8 reads one unsigned byte.
func (b *ByteSource) ReadU8() (uint8, error) {
	buf, err := b.require(1)
	if err != nil {
		return 0, err
	}
	b.cursor++
	return buf[0], nil
}

// ReadI8 reads one signed byte.
func (b *ByteSource) ReadI8() (int8, error) {
	v, err := b.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian unsigned 16-bit integer.
func (b *ByteSource) ReadU16() (uint16, error) {
	buf, err := b.require(2)
	if err != nil {
		return 0, err
	}
	b.cursor += 2
	return binary.LittleEndian.Uint16(buf), nil
}

// ReadI16 reads a little-endian signed 16-bit integer.
func (b *ByteSource) ReadI16() (int16, error) {
	v, err := b.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian unsigned 32-bit integer.
func (b *ByteSource) ReadU32() (uint32, error) {
	buf, err := b.require(4)
	if err != nil {
		return 0, err
	}
	b.cursor += 4
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadI32 reads a little-endian signed 32-bit integer.
func (b *ByteSource) ReadI32() (int32, error) {
	v, err := b.ReadU32()
	return int32(v), err
}

// ReadU64 reads a little-endian unsigned 64-bit integer.
func (b *ByteSource) ReadU64() (uint64, error) {
	buf, err := b.require(8)
	if err != nil {
		return 0, err
	}
	b.cursor += 8
	return binary.LittleEndian.Uint64(buf), nil
}

// ReadI64 reads a little-endian signed 64-bit integer.
func (b *ByteSource) ReadI64() (int64, error) {
	v, err := b.ReadU64()
	return int64(v), err
}

// ReadF32 reads an IEEE-754 binary32 little-endian float.
func (b *ByteSource) ReadF32() (float32, error) {
	v, err := b.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64 reads an IEEE-754 binary64 little-endian float.
func (b *ByteSource) ReadF64() (float64, error) {
	v, err := b.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBool reads one byte: false if 0, true otherwise.
func (b *ByteSource) ReadBool() (bool, error) {
	v, err := b.ReadU8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
