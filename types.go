// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

// RecordType tags every NRBF record. Values outside this set are reserved
// by the format; the dispatcher refuses to guess at them (spec.md §4.5).
type RecordType uint8

// Record type tags, per [MS-NRBF] 2.1.2.1.
const (
	RecordSerializedStreamHeader         RecordType = 0
	RecordClassWithId                    RecordType = 1
	RecordSystemClassWithMembers         RecordType = 2
	RecordClassWithMembers               RecordType = 3
	RecordSystemClassWithMembersAndTypes RecordType = 4
	RecordClassWithMembersAndTypes       RecordType = 5
	RecordBinaryObjectString             RecordType = 6
	RecordBinaryArray                    RecordType = 7
	RecordMemberPrimitiveTyped           RecordType = 8
	RecordMemberReference                RecordType = 9
	RecordObjectNull                     RecordType = 10
	RecordMessageEnd                     RecordType = 11
	RecordBinaryLibrary                  RecordType = 12
	RecordObjectNullMultiple256          RecordType = 13
	RecordObjectNullMultiple             RecordType = 14
	RecordArraySinglePrimitive           RecordType = 15
	RecordArraySingleObject              RecordType = 16
	RecordArraySingleString              RecordType = 17
	RecordMethodCall                     RecordType = 21
	RecordMethodReturn                   RecordType = 22
)

var recordTypeNames = map[RecordType]string{
	RecordSerializedStreamHeader:         "SerializedStreamHeader",
	RecordClassWithId:                    "ClassWithId",
	RecordSystemClassWithMembers:         "SystemClassWithMembers",
	RecordClassWithMembers:               "ClassWithMembers",
	RecordSystemClassWithMembersAndTypes: "SystemClassWithMembersAndTypes",
	RecordClassWithMembersAndTypes:       "ClassWithMembersAndTypes",
	RecordBinaryObjectString:             "BinaryObjectString",
	RecordBinaryArray:                    "BinaryArray",
	RecordMemberPrimitiveTyped:           "MemberPrimitiveTyped",
	RecordMemberReference:                "MemberReference",
	RecordObjectNull:                     "ObjectNull",
	RecordMessageEnd:                     "MessageEnd",
	RecordBinaryLibrary:                  "BinaryLibrary",
	RecordObjectNullMultiple256:          "ObjectNullMultiple256",
	RecordObjectNullMultiple:             "ObjectNullMultiple",
	RecordArraySinglePrimitive:           "ArraySinglePrimitive",
	RecordArraySingleObject:              "ArraySingleObject",
	RecordArraySingleString:              "ArraySingleString",
	RecordMethodCall:                     "MethodCall",
	RecordMethodReturn:                   "MethodReturn",
}

// String stringifies a RecordType the way file.go's ImageDirectoryEntry
// does, via a map lookup rather than a switch.
func (rt RecordType) String() string {
	if name, ok := recordTypeNames[rt]; ok {
		return name
	}
	return "Unknown"
}

// known reports whether rt is one of the tags the format defines, whether
// or not this decoder actually implements it.
func (rt RecordType) known() bool {
	_, ok := recordTypeNames[rt]
	return ok
}

// BinaryType describes how a class member or array element is encoded on
// the wire, per spec.md §3.
type BinaryType uint8

const (
	BinaryTypePrimitive      BinaryType = 0
	BinaryTypeString         BinaryType = 1
	BinaryTypeObject         BinaryType = 2
	BinaryTypeSystemClass    BinaryType = 3
	BinaryTypeClass          BinaryType = 4
	BinaryTypeObjectArray    BinaryType = 5
	BinaryTypeStringArray    BinaryType = 6
	BinaryTypePrimitiveArray BinaryType = 7
)

var binaryTypeNames = map[BinaryType]string{
	BinaryTypePrimitive:      "Primitive",
	BinaryTypeString:         "String",
	BinaryTypeObject:         "Object",
	BinaryTypeSystemClass:    "SystemClass",
	BinaryTypeClass:          "Class",
	BinaryTypeObjectArray:    "ObjectArray",
	BinaryTypeStringArray:    "StringArray",
	BinaryTypePrimitiveArray: "PrimitiveArray",
}

func (bt BinaryType) String() string {
	if name, ok := binaryTypeNames[bt]; ok {
		return name
	}
	return "Unknown"
}

// hasClassName reports whether this BinaryType carries a class name string
// as extra type information (spec.md §3).
func (bt BinaryType) hasClassName() bool {
	return bt == BinaryTypeSystemClass || bt == BinaryTypeClass
}

// hasPrimitiveType reports whether this BinaryType carries a PrimitiveType
// byte as extra type information.
func (bt BinaryType) hasPrimitiveType() bool {
	return bt == BinaryTypePrimitive || bt == BinaryTypePrimitiveArray
}

// PrimitiveType tags an NRBF scalar kind. Values 1..=18 with 4 unused,
// per spec.md §3.
type PrimitiveType uint8

const (
	PrimitiveBoolean  PrimitiveType = 1
	PrimitiveByte     PrimitiveType = 2
	PrimitiveChar     PrimitiveType = 3
	PrimitiveDecimal  PrimitiveType = 5
	PrimitiveDouble   PrimitiveType = 6
	PrimitiveInt16    PrimitiveType = 7
	PrimitiveInt32    PrimitiveType = 8
	PrimitiveInt64    PrimitiveType = 9
	PrimitiveSByte    PrimitiveType = 10
	PrimitiveSingle   PrimitiveType = 11
	PrimitiveTimeSpan PrimitiveType = 12
	PrimitiveDateTime PrimitiveType = 13
	PrimitiveUInt16   PrimitiveType = 14
	PrimitiveUInt32   PrimitiveType = 15
	PrimitiveUInt64   PrimitiveType = 16
	PrimitiveNull     PrimitiveType = 17
	PrimitiveString   PrimitiveType = 18
)

var primitiveTypeNames = map[PrimitiveType]string{
	PrimitiveBoolean:  "Boolean",
	PrimitiveByte:     "Byte",
	PrimitiveChar:     "Char",
	PrimitiveDecimal:  "Decimal",
	PrimitiveDouble:   "Double",
	PrimitiveInt16:    "Int16",
	PrimitiveInt32:    "Int32",
	PrimitiveInt64:    "Int64",
	PrimitiveSByte:    "SByte",
	PrimitiveSingle:   "Single",
	PrimitiveTimeSpan: "TimeSpan",
	PrimitiveDateTime: "DateTime",
	PrimitiveUInt16:   "UInt16",
	PrimitiveUInt32:   "UInt32",
	PrimitiveUInt64:   "UInt64",
	PrimitiveNull:     "Null",
	PrimitiveString:   "String",
}

func (pt PrimitiveType) String() string {
	if name, ok := primitiveTypeNames[pt]; ok {
		return name
	}
	return "Unknown"
}

// BinaryArrayType distinguishes the six BinaryArray shapes, per
// spec.md §4.6.
type BinaryArrayType uint8

const (
	BinaryArraySingle             BinaryArrayType = 0
	BinaryArrayJagged             BinaryArrayType = 1
	BinaryArrayRectangular        BinaryArrayType = 2
	BinaryArraySingleOffset       BinaryArrayType = 3
	BinaryArrayJaggedOffset       BinaryArrayType = 4
	BinaryArrayRectangularOffset  BinaryArrayType = 5
)

// hasLowerBounds reports whether this array shape carries a LowerBounds
// block (the three "*Offset" variants, per spec.md §4.6).
func (at BinaryArrayType) hasLowerBounds() bool {
	return at == BinaryArraySingleOffset || at == BinaryArrayJaggedOffset || at == BinaryArrayRectangularOffset
}

// MessageFlags is the bitmask carried by MethodCall/MethodReturn, per
// spec.md §4.6.
type MessageFlags uint32

const (
	FlagNoArgs                 MessageFlags = 0x00000001
	FlagArgsInline             MessageFlags = 0x00000002
	FlagArgsIsArray            MessageFlags = 0x00000004
	FlagArgsInArray            MessageFlags = 0x00000008
	FlagNoContext              MessageFlags = 0x00000010
	FlagContextInline          MessageFlags = 0x00000020
	FlagContextInArray         MessageFlags = 0x00000040
	FlagMethodSignatureInArray MessageFlags = 0x00000080
	FlagPropertiesInArray      MessageFlags = 0x00000100
	FlagNoReturnValue          MessageFlags = 0x00000200
	FlagReturnValueVoid        MessageFlags = 0x00000400
	FlagReturnValueInline      MessageFlags = 0x00000800
	FlagReturnValueInArray     MessageFlags = 0x00001000
	FlagExceptionInArray       MessageFlags = 0x00002000
	FlagGenericMethod          MessageFlags = 0x00008000
)

func (f MessageFlags) has(bit MessageFlags) bool {
	return f&bit != 0
}
