// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import "testing"

// TestDeserializeClassWithIdReplaysMetadata exercises the class metadata
// cache end to end: a SystemClassWithMembersAndTypes record establishes a
// layout under its ObjectId, then a ClassWithId record replays that layout
// for a different ObjectId (spec.md §4.4).
func TestDeserializeClassWithIdReplaysMetadata(t *testing.T) {
	data := []byte{
		0x04,                   // RecordSystemClassWithMembersAndTypes
		0x01, 0x00, 0x00, 0x00, // ObjectId = 1
		0x06, 'W', 'i', 'd', 'g', 'e', 't', // ClassName = "Widget"
		0x01, 0x00, 0x00, 0x00, // member count = 1
		0x05, 'C', 'o', 'u', 'n', 't', // member name = "Count"
		byte(BinaryTypePrimitive),
		byte(PrimitiveInt32),
		0x2A, 0x00, 0x00, 0x00, // Count value = 42

		0x01,                   // RecordClassWithId
		0x02, 0x00, 0x00, 0x00, // ObjectId = 2
		0x01, 0x00, 0x00, 0x00, // MetadataId = 1
		0x64, 0x00, 0x00, 0x00, // Count value = 100
	}

	root, err := Deserialize(data, nil)
	if err != nil {
		t.Fatalf("Deserialize() error: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(root.Children))
	}

	first, ok := root.Children[0].(*Aggregate)
	if !ok || first.Name != "SystemClassWithMembersAndTypes" {
		t.Fatalf("Children[0] = %#v, want Aggregate SystemClassWithMembersAndTypes", root.Children[0])
	}

	second, ok := root.Children[1].(*Aggregate)
	if !ok || second.Name != "ClassWithId" {
		t.Fatalf("Children[1] = %#v, want Aggregate ClassWithId", root.Children[1])
	}
	members, ok := second.Children[2].(*Aggregate)
	if !ok || members.Name != "Members" {
		t.Fatalf("ClassWithId.Children[2] = %#v, want Aggregate Members", second.Children[2])
	}
	if len(members.Children) != 1 {
		t.Fatalf("len(Members.Children) = %d, want 1", len(members.Children))
	}
	count, ok := members.Children[0].(*Leaf)
	if !ok || count.Name != "Count" || count.Value != "100" {
		t.Errorf("Members.Children[0] = %#v, want Leaf{Count, 100}", members.Children[0])
	}
}

// TestDeserializeClassWithIdUnknownMetadata exercises the cache miss path:
// a ClassWithId that references a MetadataId never recorded must fail
// closed with a CorruptError (spec.md §4.4).
func TestDeserializeClassWithIdUnknownMetadata(t *testing.T) {
	data := []byte{
		0x01,                   // RecordClassWithId
		0x02, 0x00, 0x00, 0x00, // ObjectId = 2
		0x63, 0x00, 0x00, 0x00, // MetadataId = 99, never recorded
	}

	_, err := Deserialize(data, nil)
	if err == nil {
		t.Fatalf("Deserialize() want error for an unrecorded MetadataId, got nil")
	}
	if _, ok := err.(*CorruptError); !ok {
		t.Errorf("error type = %T, want *CorruptError", err)
	}
}

// TestDeserializeSystemClassWithMembersNotImplemented documents the
// explicitly licensed stub for the type-descriptor-less class variants
// (spec.md §4.6).
func TestDeserializeSystemClassWithMembersNotImplemented(t *testing.T) {
	data := []byte{0x02} // RecordSystemClassWithMembers
	_, err := Deserialize(data, nil)
	if err == nil {
		t.Fatalf("Deserialize() want error, got nil")
	}
	if _, ok := err.(*NotImplementedError); !ok {
		t.Errorf("error type = %T, want *NotImplementedError", err)
	}
}
