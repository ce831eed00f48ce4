// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import "strconv"

// decodeBinaryObjectString reads ObjectId and the string Value (spec.md
// §4.6).
func decodeBinaryObjectString(ctx *Context) (Node, error) {
	objectID, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	value, err := readString(ctx.reader)
	if err != nil {
		return nil, err
	}
	agg := NewAggregate("BinaryObjectString")
	agg.Add(NewLeaf("ObjectId", strconv.FormatInt(int64(objectID), 10)))
	agg.Add(NewLeaf("Value", value))
	return agg, nil
}

// decodeMemberPrimitiveTyped reads one PrimitiveType byte then one
// primitive value of that type (spec.md §4.6).
func decodeMemberPrimitiveTyped(ctx *Context) (Node, error) {
	leaf, err := decodePrimitive(ctx.reader, "MemberPrimitiveTyped", nil)
	if err != nil {
		return nil, err
	}
	return leaf, nil
}

// decodeMemberReference reads an i32 IdRef and emits it as a Leaf holding
// the target id as text. The reference is never resolved and no pointer
// into the tree is created, which is how MemberReference cycles are
// avoided by construction (spec.md §3/§9); NRBF specifies this field as
// one byte in at least one source variant, but [MS-NRBF] fixes it at i32,
// which this decoder follows (DESIGN NOTE 3 in spec.md §9).
func decodeMemberReference(ctx *Context) (Node, error) {
	idRef, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	return NewLeaf("MemberReference", strconv.FormatInt(int64(idRef), 10)), nil
}

// decodeObjectNull has no payload; emits a Leaf named NullObject with an
// empty value (spec.md §4.6).
func decodeObjectNull(ctx *Context) (Node, error) {
	return NewLeaf("NullObject", ""), nil
}

// decodeMessageEnd has no payload; emits a Leaf named MessageEnd (spec.md
// §4.6).
func decodeMessageEnd(ctx *Context) (Node, error) {
	return NewLeaf("MessageEnd", ""), nil
}

// decodeBinaryLibrary reads LibraryId and LibraryName, then immediately
// reads and decodes the record that follows (which must be a class or
// array record), composing Class{BinaryLibrary{...}, <that record>}.
// Per spec.md §9's design note, BinaryLibrary is a prefix rather than a
// standalone entry in the wire format; modeling it as a look-ahead here
// keeps the top-level loop uniform.
func decodeBinaryLibrary(ctx *Context) (Node, error) {
	libraryID, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	libraryName, err := readString(ctx.reader)
	if err != nil {
		return nil, err
	}

	libAgg := NewAggregate("BinaryLibrary")
	libAgg.Add(NewLeaf("LibraryId", strconv.FormatInt(int64(libraryID), 10)))
	libAgg.Add(NewLeaf("LibraryName", libraryName))

	if err := ctx.enterRecord(); err != nil {
		return nil, err
	}
	raw, err := ctx.reader.ReadU8()
	if err != nil {
		ctx.leaveRecord()
		return nil, err
	}
	rt := RecordType(raw)
	if !isClassOrArrayRecord(rt) {
		ctx.leaveRecord()
		return nil, Corrupt("binary library not followed by class or array")
	}
	payload, err := decodeRecordBody(ctx, rt)
	ctx.leaveRecord()
	if err != nil {
		return nil, err
	}

	composite := NewAggregate("Class")
	composite.Add(libAgg)
	composite.Add(payload)
	return composite, nil
}

func isClassOrArrayRecord(rt RecordType) bool {
	switch rt {
	case RecordClassWithId,
		RecordSystemClassWithMembers,
		RecordClassWithMembers,
		RecordSystemClassWithMembersAndTypes,
		RecordClassWithMembersAndTypes,
		RecordBinaryArray,
		RecordArraySinglePrimitive,
		RecordArraySingleObject,
		RecordArraySingleString:
		return true
	default:
		return false
	}
}

// decodeObjectNullMultiple256 reads one u8 count. Per spec.md §4.6 the
// representation is implementation-defined as long as wire consumption is
// fixed; this decoder emits a single Aggregate carrying the count rather
// than materializing Count empty placeholder leaves, per the Open
// Question decision in DESIGN.md.
func decodeObjectNullMultiple256(ctx *Context) (Node, error) {
	count, err := ctx.reader.ReadU8()
	if err != nil {
		return nil, err
	}
	agg := NewAggregate("ObjectNullMultiple256")
	agg.Add(NewLeaf("Count", strconv.FormatUint(uint64(count), 10)))
	return agg, nil
}

// decodeObjectNullMultiple reads one i32 count; same treatment as
// ObjectNullMultiple256 with a wider count (spec.md §4.6).
func decodeObjectNullMultiple(ctx *Context) (Node, error) {
	count, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, Corrupt("ObjectNullMultiple count must be >= 0, got %d", count)
	}
	agg := NewAggregate("ObjectNullMultiple")
	agg.Add(NewLeaf("Count", strconv.FormatInt(int64(count), 10)))
	return agg, nil
}
