// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

// decodeRecord reads one RecordType tag byte and routes to its decoder.
// Per spec.md §9, dispatch is an exhaustive switch rather than a function
// table keyed by enum: the compiler can then be checked against every
// known tag, leaving only genuinely unseen values to fall through to the
// explicit "unknown record type" path.
func decodeRecord(ctx *Context) (Node, error) {
	if err := ctx.enterRecord(); err != nil {
		return nil, err
	}
	defer ctx.leaveRecord()

	raw, err := ctx.reader.ReadU8()
	if err != nil {
		return nil, err
	}
	rt := RecordType(raw)
	if !rt.known() {
		return nil, NotImplemented("unknown record type: %d", raw)
	}
	return decodeRecordBody(ctx, rt)
}

// decodeRecordBody dispatches on an already-read, already-validated
// RecordType tag, without touching the recursion guard. It exists so
// callers that must inspect the tag before committing to a decode (e.g.
// ArraySingleString's element-kind constraint, spec.md §4.6) can read the
// tag once and still reach the same decoders decodeRecord uses.
func decodeRecordBody(ctx *Context, rt RecordType) (Node, error) {
	switch rt {
	case RecordSerializedStreamHeader:
		return decodeSerializedStreamHeader(ctx)
	case RecordClassWithId:
		return decodeClassWithId(ctx)
	case RecordSystemClassWithMembers:
		return decodeSystemClassWithMembers(ctx)
	case RecordClassWithMembers:
		return decodeClassWithMembers(ctx)
	case RecordSystemClassWithMembersAndTypes:
		return decodeSystemClassWithMembersAndTypes(ctx)
	case RecordClassWithMembersAndTypes:
		return decodeClassWithMembersAndTypes(ctx)
	case RecordBinaryObjectString:
		return decodeBinaryObjectString(ctx)
	case RecordBinaryArray:
		return decodeBinaryArray(ctx)
	case RecordMemberPrimitiveTyped:
		return decodeMemberPrimitiveTyped(ctx)
	case RecordMemberReference:
		return decodeMemberReference(ctx)
	case RecordObjectNull:
		return decodeObjectNull(ctx)
	case RecordMessageEnd:
		return decodeMessageEnd(ctx)
	case RecordBinaryLibrary:
		return decodeBinaryLibrary(ctx)
	case RecordObjectNullMultiple256:
		return decodeObjectNullMultiple256(ctx)
	case RecordObjectNullMultiple:
		return decodeObjectNullMultiple(ctx)
	case RecordArraySinglePrimitive:
		return decodeArraySinglePrimitive(ctx)
	case RecordArraySingleObject:
		return decodeArraySingleObject(ctx)
	case RecordArraySingleString:
		return decodeArraySingleString(ctx)
	case RecordMethodCall:
		return decodeMethodCall(ctx)
	case RecordMethodReturn:
		return decodeMethodReturn(ctx)
	}

	// Unreachable: every rt.known() tag is handled above.
	return nil, NotImplemented("unhandled known record type: %d", uint8(rt))
}
