// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import "testing"

// TestDeserializeArraySinglePrimitive decodes a 3-element Int32 array.
func TestDeserializeArraySinglePrimitive(t *testing.T) {
	data := []byte{
		0x0F,                   // RecordArraySinglePrimitive
		0x01, 0x00, 0x00, 0x00, // ObjectId = 1
		0x03, 0x00, 0x00, 0x00, // Length = 3
		byte(PrimitiveInt32),
		0x0A, 0x00, 0x00, 0x00, // 10
		0x14, 0x00, 0x00, 0x00, // 20
		0x1E, 0x00, 0x00, 0x00, // 30
	}

	root, err := Deserialize(data, nil)
	if err != nil {
		t.Fatalf("Deserialize() error: %v", err)
	}
	arr, ok := root.Children[0].(*Aggregate)
	if !ok || arr.Name != "ArraySinglePrimitive" {
		t.Fatalf("Children[0] = %#v, want Aggregate ArraySinglePrimitive", root.Children[0])
	}
	elements, ok := arr.Children[2].(*Aggregate)
	if !ok || elements.Name != "Elements" {
		t.Fatalf("Children[2] = %#v, want Aggregate Elements", arr.Children[2])
	}
	want := []string{"10", "20", "30"}
	if len(elements.Children) != len(want) {
		t.Fatalf("len(Elements.Children) = %d, want %d", len(elements.Children), len(want))
	}
	for i, w := range want {
		leaf, ok := elements.Children[i].(*Leaf)
		if !ok || leaf.Value != w {
			t.Errorf("Elements.Children[%d] = %#v, want value %q", i, elements.Children[i], w)
		}
	}
}

// TestDeserializeArraySingleStringRejectsDisallowedElement exercises the
// ArraySingleString element-kind constraint (spec.md §4.6): an element
// record that isn't BinaryObjectString/MemberReference/ObjectNull* must
// fail closed rather than silently decode.
func TestDeserializeArraySingleStringRejectsDisallowedElement(t *testing.T) {
	data := []byte{
		0x11,                   // RecordArraySingleString
		0x01, 0x00, 0x00, 0x00, // ObjectId = 1
		0x01, 0x00, 0x00, 0x00, // Length = 1
		0x00, // RecordSerializedStreamHeader: not an allowed element kind
	}

	_, err := Deserialize(data, nil)
	if err == nil {
		t.Fatalf("Deserialize() want error for a disallowed element kind, got nil")
	}
	if _, ok := err.(*CorruptError); !ok {
		t.Errorf("error type = %T, want *CorruptError", err)
	}
}

// TestDeserializeArraySingleStringAcceptsBinaryObjectString is the
// well-formed counterpart to the rejection test above.
func TestDeserializeArraySingleStringAcceptsBinaryObjectString(t *testing.T) {
	data := []byte{
		0x11,                   // RecordArraySingleString
		0x01, 0x00, 0x00, 0x00, // ObjectId = 1
		0x01, 0x00, 0x00, 0x00, // Length = 1
		0x06,                   // RecordBinaryObjectString
		0x02, 0x00, 0x00, 0x00, // ObjectId = 2
		0x02, 'h', 'i', // "hi"
	}

	root, err := Deserialize(data, nil)
	if err != nil {
		t.Fatalf("Deserialize() error: %v", err)
	}
	arr := root.Children[0].(*Aggregate)
	elements := arr.Children[2].(*Aggregate)
	if len(elements.Children) != 1 {
		t.Fatalf("len(Elements.Children) = %d, want 1", len(elements.Children))
	}
	str, ok := elements.Children[0].(*Aggregate)
	if !ok || str.Name != "BinaryObjectString" {
		t.Errorf("Elements.Children[0] = %#v, want Aggregate BinaryObjectString", elements.Children[0])
	}
}
