// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

// ClassLayout is the member layout recorded by a *WithMembersAndTypes
// record and later replayed by ClassWithId: a count, the member names in
// wire order, their BinaryType descriptors, and, for Primitive/
// PrimitiveArray members, the extra PrimitiveType byte. Once inserted a
// layout is immutable for the lifetime of the decode (spec.md §3).
type ClassLayout struct {
	ClassName     string
	Count         int32
	Names         []string
	BinaryTypes   []BinaryType
	PrimitiveTypes []PrimitiveType // PrimitiveUnset (0) where not applicable
}

// PrimitiveUnset marks a member slot that has no associated PrimitiveType,
// distinguishing "no extra byte on the wire" from any real PrimitiveType
// tag (which all start at 1).
const PrimitiveUnset PrimitiveType = 0

// MetadataCache maps ObjectId to the ClassLayout recorded for it, the way
// dotnet.go's CLRData keeps a map[int]*MetadataTable for its own (unrelated)
// per-table metadata. No eviction: layouts are small and bounded by the
// number of distinct classes in one message (spec.md §9).
type MetadataCache struct {
	layouts map[int32]*ClassLayout
}

// NewMetadataCache returns an empty cache.
func NewMetadataCache() *MetadataCache {
	return &MetadataCache{layouts: make(map[int32]*ClassLayout)}
}

// Put records layout under objectID. An implementation MAY overwrite
// silently on a repeat write, per spec.md §4.4 — the format never expects
// one, so this does not guard against it.
func (c *MetadataCache) Put(objectID int32, layout *ClassLayout) {
	c.layouts[objectID] = layout
}

// Get returns the layout recorded under objectID, or a CorruptError if none
// was ever recorded.
func (c *MetadataCache) Get(objectID int32) (*ClassLayout, error) {
	layout, ok := c.layouts[objectID]
	if !ok {
		return nil, Corrupt("bad reference to ObjectID %d", objectID)
	}
	return layout, nil
}

// Alias inserts a reference to the layout already recorded under
// existingID so that newID resolves to the same ClassLayout. Used by
// ClassWithId once it has decoded its members against the referenced
// metadata (spec.md §4.4).
func (c *MetadataCache) Alias(newID, existingID int32) error {
	layout, err := c.Get(existingID)
	if err != nil {
		return err
	}
	c.layouts[newID] = layout
	return nil
}
