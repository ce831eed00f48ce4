// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import "strconv"

// decodeSerializedStreamHeader reads the four little-endian i32 header
// fields and emits them as an Aggregate. No side effects, per spec.md
// §4.6. Grounded on original_source's read_serialized_stream_header, the
// one record that source actually implements.
func decodeSerializedStreamHeader(ctx *Context) (Node, error) {
	agg := NewAggregate("SerializedStreamHeader")
	for _, name := range []string{"RootId", "HeaderId", "MajorVersion", "MinorVersion"} {
		v, err := ctx.reader.ReadI32()
		if err != nil {
			return nil, err
		}
		agg.Add(NewLeaf(name, strconv.FormatInt(int64(v), 10)))
	}
	return agg, nil
}

// readClassMetadataBlock decodes the shared class-metadata shape used by
// both SystemClassWithMembersAndTypes and ClassWithMembersAndTypes:
// count, then that many member names, then that many BinaryType bytes,
// then per member the conditional extra bytes the descriptor rules in
// spec.md §3 require (a PrimitiveType byte for Primitive/PrimitiveArray,
// a class name string for SystemClass, a class name plus library id for
// Class).
func readClassMetadataBlock(ctx *Context, className string) (*ClassLayout, error) {
	count, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, Corrupt("class metadata member count must be >= 0, got %d", count)
	}

	layout := &ClassLayout{
		ClassName:      className,
		Count:          count,
		Names:          make([]string, count),
		BinaryTypes:    make([]BinaryType, count),
		PrimitiveTypes: make([]PrimitiveType, count),
	}

	for i := int32(0); i < count; i++ {
		name, err := readString(ctx.reader)
		if err != nil {
			return nil, err
		}
		layout.Names[i] = name
	}

	for i := int32(0); i < count; i++ {
		raw, err := ctx.reader.ReadU8()
		if err != nil {
			return nil, err
		}
		layout.BinaryTypes[i] = BinaryType(raw)
	}

	for i := int32(0); i < count; i++ {
		bt := layout.BinaryTypes[i]
		switch {
		case bt.hasPrimitiveType():
			raw, err := ctx.reader.ReadU8()
			if err != nil {
				return nil, err
			}
			layout.PrimitiveTypes[i] = PrimitiveType(raw)

		case bt == BinaryTypeSystemClass:
			if _, err := readString(ctx.reader); err != nil {
				return nil, err
			}

		case bt == BinaryTypeClass:
			if _, err := readString(ctx.reader); err != nil {
				return nil, err
			}
			if _, err := ctx.reader.ReadI32(); err != nil { // LibraryId
				return nil, err
			}
		}
	}

	return layout, nil
}

// decodeMemberValue decodes one class member's value given the BinaryType/
// PrimitiveType recorded for it, per spec.md §4.6's member decoding rule.
func decodeMemberValue(ctx *Context, name string, bt BinaryType, pt PrimitiveType) (Node, error) {
	switch bt {
	case BinaryTypePrimitive:
		return decodePrimitive(ctx.reader, name, &pt)

	case BinaryTypeString, BinaryTypeObject, BinaryTypeSystemClass, BinaryTypeClass, BinaryTypePrimitiveArray:
		child, err := decodeRecord(ctx)
		if err != nil {
			return nil, err
		}
		return renamed(child, name), nil

	default:
		return nil, NotImplemented("member binary type %s is not implemented", bt)
	}
}

// decodeMembers decodes layout.Count member values in wire order.
func decodeMembers(ctx *Context, layout *ClassLayout) ([]Node, error) {
	members := make([]Node, layout.Count)
	for i := int32(0); i < layout.Count; i++ {
		v, err := decodeMemberValue(ctx, layout.Names[i], layout.BinaryTypes[i], layout.PrimitiveTypes[i])
		if err != nil {
			return nil, err
		}
		members[i] = v
	}
	return members, nil
}

// renamed returns a shallow copy of n with its name replaced, so a
// recursively-decoded record (which names itself after its own record
// type, e.g. "BinaryObjectString") can be re-labeled with the member name
// it fills (e.g. a field called "Description").
func renamed(n Node, name string) Node {
	switch v := n.(type) {
	case *Leaf:
		return &Leaf{Name: name, Value: v.Value}
	case *Aggregate:
		return &Aggregate{Name: name, Children: v.Children}
	default:
		return n
	}
}

// decodeClassWithId reads ObjectId and MetadataId, decodes members against
// the layout cached for MetadataId, then aliases ObjectId to that same
// layout (spec.md §4.6).
func decodeClassWithId(ctx *Context) (Node, error) {
	objectID, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	metadataID, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}

	layout, err := ctx.metadata.Get(metadataID)
	if err != nil {
		return nil, err
	}

	members, err := decodeMembers(ctx, layout)
	if err != nil {
		return nil, err
	}

	if err := ctx.metadata.Alias(objectID, metadataID); err != nil {
		return nil, err
	}

	agg := NewAggregate("ClassWithId")
	agg.Add(NewLeaf("ObjectId", strconv.FormatInt(int64(objectID), 10)))
	agg.Add(NewLeaf("MetadataId", strconv.FormatInt(int64(metadataID), 10)))
	membersAgg := NewAggregate("Members")
	membersAgg.Children = members
	agg.Add(membersAgg)
	return agg, nil
}

// decodeSystemClassWithMembersAndTypes reads ObjectId, ObjectName, the
// class metadata block, caches the resulting layout under ObjectId, then
// decodes the member values (spec.md §4.6).
func decodeSystemClassWithMembersAndTypes(ctx *Context) (Node, error) {
	objectID, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	className, err := readString(ctx.reader)
	if err != nil {
		return nil, err
	}
	layout, err := readClassMetadataBlock(ctx, className)
	if err != nil {
		return nil, err
	}
	ctx.metadata.Put(objectID, layout)

	members, err := decodeMembers(ctx, layout)
	if err != nil {
		return nil, err
	}

	return buildClassNode("SystemClassWithMembersAndTypes", objectID, className, members), nil
}

// decodeClassWithMembersAndTypes is as decodeSystemClassWithMembersAndTypes
// but reads an additional i32 LibraryId between the metadata block and the
// member values (spec.md §4.6).
func decodeClassWithMembersAndTypes(ctx *Context) (Node, error) {
	objectID, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}
	className, err := readString(ctx.reader)
	if err != nil {
		return nil, err
	}
	layout, err := readClassMetadataBlock(ctx, className)
	if err != nil {
		return nil, err
	}
	ctx.metadata.Put(objectID, layout)

	libraryID, err := ctx.reader.ReadI32()
	if err != nil {
		return nil, err
	}

	members, err := decodeMembers(ctx, layout)
	if err != nil {
		return nil, err
	}

	node := buildClassNode("ClassWithMembersAndTypes", objectID, className, members)
	node.Children = append([]Node{NewLeaf("LibraryId", strconv.FormatInt(int64(libraryID), 10))}, node.Children...)
	return node, nil
}

func buildClassNode(recordName string, objectID int32, className string, members []Node) *Aggregate {
	agg := NewAggregate(recordName)
	agg.Add(NewLeaf("ObjectId", strconv.FormatInt(int64(objectID), 10)))
	agg.Add(NewLeaf("ClassName", className))
	membersAgg := NewAggregate("Members")
	membersAgg.Children = members
	agg.Add(membersAgg)
	return agg
}

// decodeSystemClassWithMembers and decodeClassWithMembers are the
// type-descriptor-less class variants. original_source stubs every
// record except SerializedStreamHeader and MethodCall; spec.md §4.6
// explicitly licenses declining these two "until a corpus with real
// examples is available."
func decodeSystemClassWithMembers(ctx *Context) (Node, error) {
	return nil, NotImplemented("SystemClassWithMembers (2) is not implemented")
}

func decodeClassWithMembers(ctx *Context) (Node, error) {
	return nil, NotImplemented("ClassWithMembers (3) is not implemented")
}
