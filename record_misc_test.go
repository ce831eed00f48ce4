// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import "testing"

// TestDeserializeBinaryLibraryComposesWithFollowingRecord exercises the
// look-ahead/compose shape documented in spec.md §9: BinaryLibrary is a
// prefix of the class or array record that follows it.
func TestDeserializeBinaryLibraryComposesWithFollowingRecord(t *testing.T) {
	data := []byte{
		0x0C,                   // RecordBinaryLibrary
		0x05, 0x00, 0x00, 0x00, // LibraryId = 5
		0x04, 'm', 'l', 'i', 'b', // LibraryName = "mlib"

		0x0F,                   // RecordArraySinglePrimitive
		0x02, 0x00, 0x00, 0x00, // ObjectId = 2
		0x01, 0x00, 0x00, 0x00, // Length = 1
		byte(PrimitiveInt32),
		0x07, 0x00, 0x00, 0x00, // 7
	}

	root, err := Deserialize(data, nil)
	if err != nil {
		t.Fatalf("Deserialize() error: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(root.Children))
	}
	class, ok := root.Children[0].(*Aggregate)
	if !ok || class.Name != "Class" {
		t.Fatalf("Children[0] = %#v, want Aggregate Class", root.Children[0])
	}
	if len(class.Children) != 2 {
		t.Fatalf("len(Class.Children) = %d, want 2", len(class.Children))
	}
	lib, ok := class.Children[0].(*Aggregate)
	if !ok || lib.Name != "BinaryLibrary" {
		t.Fatalf("Class.Children[0] = %#v, want Aggregate BinaryLibrary", class.Children[0])
	}
	payload, ok := class.Children[1].(*Aggregate)
	if !ok || payload.Name != "ArraySinglePrimitive" {
		t.Fatalf("Class.Children[1] = %#v, want Aggregate ArraySinglePrimitive", class.Children[1])
	}
}

// TestDeserializeBinaryLibraryRejectsNonClassFollower exercises the
// guard against a BinaryLibrary not followed by a class or array record.
func TestDeserializeBinaryLibraryRejectsNonClassFollower(t *testing.T) {
	data := []byte{
		0x0C,
		0x05, 0x00, 0x00, 0x00,
		0x04, 'm', 'l', 'i', 'b',
		0x0B, // RecordMessageEnd: not a class or array record
	}

	_, err := Deserialize(data, nil)
	if err == nil {
		t.Fatalf("Deserialize() want error, got nil")
	}
	if _, ok := err.(*CorruptError); !ok {
		t.Errorf("error type = %T, want *CorruptError", err)
	}
}

func TestDeserializeObjectNullMultiple256(t *testing.T) {
	data := []byte{0x0D, 0x03} // RecordObjectNullMultiple256, count = 3
	root, err := Deserialize(data, nil)
	if err != nil {
		t.Fatalf("Deserialize() error: %v", err)
	}
	agg, ok := root.Children[0].(*Aggregate)
	if !ok || agg.Name != "ObjectNullMultiple256" {
		t.Fatalf("Children[0] = %#v, want Aggregate ObjectNullMultiple256", root.Children[0])
	}
	count, ok := agg.Children[0].(*Leaf)
	if !ok || count.Value != "3" {
		t.Errorf("Count = %#v, want Leaf value %q", agg.Children[0], "3")
	}
}

func TestDeserializeObjectNullMultipleRejectsNegativeCount(t *testing.T) {
	data := []byte{0x0E, 0xFF, 0xFF, 0xFF, 0xFF} // count = -1
	_, err := Deserialize(data, nil)
	if err == nil {
		t.Fatalf("Deserialize() want error for a negative count, got nil")
	}
}
