// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import "strconv"

// decodeMethodCall reads the Flags word, required MethodName and
// TypeName, then the flag-gated CallContext and Args, per spec.md §4.6.
// Grounded on original_source's read_binary_method_call, extended to the
// full flag table.
func decodeMethodCall(ctx *Context) (Node, error) {
	return decodeMethodMessage(ctx, "MethodCall", true)
}

// decodeMethodReturn is structurally parallel to MethodCall but gated on
// the return-value flags instead of the arg flags (spec.md §4.6).
func decodeMethodReturn(ctx *Context) (Node, error) {
	return decodeMethodMessage(ctx, "MethodReturn", false)
}

func decodeMethodMessage(ctx *Context, recordName string, isCall bool) (Node, error) {
	rawFlags, err := ctx.reader.ReadU32()
	if err != nil {
		return nil, err
	}
	flags := MessageFlags(rawFlags)

	methodName, err := readString(ctx.reader)
	if err != nil {
		return nil, err
	}
	typeName, err := readString(ctx.reader)
	if err != nil {
		return nil, err
	}

	agg := NewAggregate(recordName)
	agg.Add(NewLeaf("MessageEnum", strconv.FormatUint(uint64(rawFlags), 10)))
	agg.Add(NewLeaf("MethodName", methodName))
	agg.Add(NewLeaf("TypeName", typeName))

	if flags.has(FlagContextInline) {
		ctxLeaf, err := decodePrimitive(ctx.reader, "CallContext", ptrTo(PrimitiveString))
		if err != nil {
			return nil, err
		}
		agg.Add(ctxLeaf)
	} else {
		agg.Add(NewLeaf("CallContext", ""))
	}

	if isCall {
		if flags.has(FlagArgsInline) {
			argsNode, err := readValueWithCodeArray(ctx, "Args")
			if err != nil {
				return nil, err
			}
			agg.Add(argsNode)
		} else if !flags.has(FlagNoArgs) {
			child, err := decodeRecord(ctx)
			if err != nil {
				return nil, err
			}
			agg.Add(renamed(child, "Args"))
		} else {
			agg.Add(NewAggregate("Args"))
		}
		return agg, nil
	}

	switch {
	case flags.has(FlagNoReturnValue), flags.has(FlagReturnValueVoid):
		agg.Add(NewAggregate("ReturnValue"))
	case flags.has(FlagReturnValueInline):
		v, err := decodePrimitive(ctx.reader, "ReturnValue", nil)
		if err != nil {
			return nil, err
		}
		agg.Add(v)
	case !flags.has(FlagReturnValueInArray):
		child, err := decodeRecord(ctx)
		if err != nil {
			return nil, err
		}
		agg.Add(renamed(child, "ReturnValue"))
	default:
		agg.Add(NewAggregate("ReturnValue"))
	}

	if flags.has(FlagExceptionInArray) {
		child, err := decodeRecord(ctx)
		if err != nil {
			return nil, err
		}
		agg.Add(renamed(child, "Exception"))
	}

	return agg, nil
}

// readValueWithCodeArray decodes a length-prefixed sequence of
// (PrimitiveType, value) pairs — the "array of value with code" shape
// MethodCall uses for inline Args (spec.md §4.6).
func readValueWithCodeArray(ctx *Context, name string) (Node, error) {
	count, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	if count < 0 || int64(count) > maxArrayElements {
		return nil, Corrupt("%s value-with-code array length out of range: %d", name, count)
	}
	agg := NewAggregate(name)
	for i := int32(0); i < count; i++ {
		v, err := decodePrimitive(ctx.reader, "Value", nil)
		if err != nil {
			return nil, err
		}
		agg.Add(v)
	}
	return agg, nil
}

func ptrTo(pt PrimitiveType) *PrimitiveType {
	return &pt
}
