// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import "strconv"

// maxArrayElements bounds how many elements a single array record may
// claim, protecting against a crafted dimensions product that would try
// to allocate far more memory than the input could possibly back. The
// teacher applies the same kind of sanity ceiling to COFF symbol/
// relocation counts via Options.MaxCOFFSymbolsCount/MaxRelocEntriesCount;
// here the bound is a fixed constant rather than a configurable one
// because spec.md gives no knob for it.
const maxArrayElements = 1 << 24

// decodeBinaryArray reads a BinaryArray record: ObjectId, BinaryArrayType,
// Rank, that many Dimensions, optionally that many LowerBounds, one
// BinaryType descriptor plus its conditional extras, then Element values
// (spec.md §4.6).
func decodeBinaryArray(ctx *Context) (Node, error) {
	objectID, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	rawArrType, err := ctx.reader.ReadU8()
	if err != nil {
		return nil, err
	}
	arrType := BinaryArrayType(rawArrType)

	rank, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	if rank < 0 {
		return nil, Corrupt("BinaryArray rank must be >= 0, got %d", rank)
	}

	dimensions := make([]int32, rank)
	dimsAgg := NewAggregate("Dimensions")
	elementCount := int64(1)
	for i := int32(0); i < rank; i++ {
		d, err := ctx.reader.ReadI32()
		if err != nil {
			return nil, err
		}
		if d < 0 {
			return nil, Corrupt("BinaryArray dimension must be >= 0, got %d", d)
		}
		dimensions[i] = d
		dimsAgg.Add(NewLeaf("Dimension", strconv.FormatInt(int64(d), 10)))
		elementCount *= int64(d)
		if elementCount > maxArrayElements {
			return nil, Corrupt("BinaryArray element count exceeds %d", maxArrayElements)
		}
	}

	var lowerBoundsAgg *Aggregate
	if arrType.hasLowerBounds() {
		lowerBoundsAgg = NewAggregate("LowerBounds")
		for i := int32(0); i < rank; i++ {
			lb, err := ctx.reader.ReadI32()
			if err != nil {
				return nil, err
			}
			lowerBoundsAgg.Add(NewLeaf("LowerBound", strconv.FormatInt(int64(lb), 10)))
		}
	}

	rawBT, err := ctx.reader.ReadU8()
	if err != nil {
		return nil, err
	}
	bt := BinaryType(rawBT)
	var pt PrimitiveType
	switch {
	case bt.hasPrimitiveType():
		raw, err := ctx.reader.ReadU8()
		if err != nil {
			return nil, err
		}
		pt = PrimitiveType(raw)
	case bt == BinaryTypeSystemClass:
		if _, err := readString(ctx.reader); err != nil {
			return nil, err
		}
	case bt == BinaryTypeClass:
		if _, err := readString(ctx.reader); err != nil {
			return nil, err
		}
		if _, err := ctx.reader.ReadI32(); err != nil {
			return nil, err
		}
	}

	elementsAgg := NewAggregate("Elements")
	for i := int64(0); i < elementCount; i++ {
		v, err := decodeMemberValue(ctx, "Element", bt, pt)
		if err != nil {
			return nil, err
		}
		elementsAgg.Add(v)
	}

	agg := NewAggregate("BinaryArray")
	agg.Add(NewLeaf("ObjectId", strconv.FormatInt(int64(objectID), 10)))
	agg.Add(NewLeaf("BinaryArrayType", strconv.FormatUint(uint64(rawArrType), 10)))
	agg.Add(NewLeaf("Rank", strconv.FormatInt(int64(rank), 10)))
	agg.Add(dimsAgg)
	if lowerBoundsAgg != nil {
		agg.Add(lowerBoundsAgg)
	}
	agg.Add(elementsAgg)
	return agg, nil
}

// decodeArraySinglePrimitive reads ObjectId, Length, one PrimitiveType
// byte, then Length primitive values of that type (spec.md §4.6).
func decodeArraySinglePrimitive(ctx *Context) (Node, error) {
	objectID, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	length, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	if length < 0 || int64(length) > maxArrayElements {
		return nil, Corrupt("ArraySinglePrimitive length out of range: %d", length)
	}
	rawPT, err := ctx.reader.ReadU8()
	if err != nil {
		return nil, err
	}
	pt := PrimitiveType(rawPT)

	elementsAgg := NewAggregate("Elements")
	for i := int32(0); i < length; i++ {
		v, err := decodePrimitive(ctx.reader, "Element", &pt)
		if err != nil {
			return nil, err
		}
		elementsAgg.Add(v)
	}

	agg := NewAggregate("ArraySinglePrimitive")
	agg.Add(NewLeaf("ObjectId", strconv.FormatInt(int64(objectID), 10)))
	agg.Add(NewLeaf("Length", strconv.FormatInt(int64(length), 10)))
	agg.Add(elementsAgg)
	return agg, nil
}

// decodeArraySingleObject reads ObjectId, Length, then Length nested
// records (spec.md §4.6).
func decodeArraySingleObject(ctx *Context) (Node, error) {
	objectID, length, elementsAgg, err := decodeHomogeneousArray(ctx, "ArraySingleObject", nil)
	if err != nil {
		return nil, err
	}
	agg := NewAggregate("ArraySingleObject")
	agg.Add(NewLeaf("ObjectId", strconv.FormatInt(int64(objectID), 10)))
	agg.Add(NewLeaf("Length", strconv.FormatInt(int64(length), 10)))
	agg.Add(elementsAgg)
	return agg, nil
}

// decodeArraySingleString reads ObjectId, Length, then Length records,
// each of which must be BinaryObjectString, MemberReference, or an
// ObjectNull* variant (spec.md §4.6).
func decodeArraySingleString(ctx *Context) (Node, error) {
	allowed := map[RecordType]bool{
		RecordBinaryObjectString:    true,
		RecordMemberReference:       true,
		RecordObjectNull:            true,
		RecordObjectNullMultiple256: true,
		RecordObjectNullMultiple:    true,
	}
	objectID, length, elementsAgg, err := decodeHomogeneousArray(ctx, "ArraySingleString", allowed)
	if err != nil {
		return nil, err
	}
	agg := NewAggregate("ArraySingleString")
	agg.Add(NewLeaf("ObjectId", strconv.FormatInt(int64(objectID), 10)))
	agg.Add(NewLeaf("Length", strconv.FormatInt(int64(length), 10)))
	agg.Add(elementsAgg)
	return agg, nil
}

// decodeHomogeneousArray reads the common ObjectId/Length/Length-records
// shape shared by ArraySingleObject and ArraySingleString. When allowed is
// non-nil, each nested record's tag is checked against it before decoding
// (ArraySingleString's constraint in spec.md §4.6); ArraySingleObject
// imposes no such constraint.
func decodeHomogeneousArray(ctx *Context, recordName string, allowed map[RecordType]bool) (int32, int32, *Aggregate, error) {
	objectID, err := ctx.reader.ReadI32()
	if err != nil {
		return 0, 0, nil, err
	}
	length, err := ctx.reader.ReadI32()
	if err != nil {
		return 0, 0, nil, err
	}
	if length < 0 || int64(length) > maxArrayElements {
		return 0, 0, nil, Corrupt("%s length out of range: %d", recordName, length)
	}

	elementsAgg := NewAggregate("Elements")
	for i := int32(0); i < length; i++ {
		if allowed != nil {
			if err := ctx.enterRecord(); err != nil {
				return 0, 0, nil, err
			}
			raw, err := ctx.reader.ReadU8()
			if err != nil {
				ctx.leaveRecord()
				return 0, 0, nil, err
			}
			rt := RecordType(raw)
			if !allowed[rt] {
				ctx.leaveRecord()
				return 0, 0, nil, Corrupt("%s element must be BinaryObjectString, MemberReference, or ObjectNull*, got %s", recordName, rt)
			}
			node, err := decodeRecordBody(ctx, rt)
			ctx.leaveRecord()
			if err != nil {
				return 0, 0, nil, err
			}
			elementsAgg.Add(node)
			continue
		}

		node, err := decodeRecord(ctx)
		if err != nil {
			return 0, 0, nil, err
		}
		elementsAgg.Add(node)
	}

	return objectID, length, elementsAgg, nil
}
