// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import (
	"strings"
	"testing"
)

func TestLeafAsXML(t *testing.T) {
	tests := []struct {
		name string
		leaf *Leaf
		want string
	}{
		{"empty value", NewLeaf("Tag", ""), "<Tag/>\n"},
		{"value", NewLeaf("Tag", "Hello"), "<Tag>Hello</Tag>\n"},
		{"escapes", NewLeaf("Tag", "a<b>&c"), "<Tag>a&lt;b&gt;&amp;c</Tag>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.leaf.AsXML(0); got != tt.want {
				t.Errorf("AsXML(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLeafAsXMLIndent(t *testing.T) {
	leaf := NewLeaf("Tag", "v")
	got := leaf.AsXML(2)
	if !strings.HasPrefix(got, "        <Tag>") {
		t.Errorf("AsXML(2) = %q, want an 8-space indent prefix", got)
	}
}

func TestAggregateAsXMLEmpty(t *testing.T) {
	agg := NewAggregate("Root")
	want := "<Root/>\n"
	if got := agg.AsXML(0); got != want {
		t.Errorf("AsXML(0) on empty Aggregate = %q, want %q", got, want)
	}
}

func TestAggregateAsXMLWithChildren(t *testing.T) {
	agg := NewAggregate("Root")
	agg.Add(NewLeaf("A", "1"))
	agg.Add(NewLeaf("B", "2"))

	want := "<Root>\n    <A>1</A>\n    <B>2</B>\n</Root>\n"
	if got := agg.AsXML(0); got != want {
		t.Errorf("AsXML(0) = %q, want %q", got, want)
	}
}

func TestAggregateAddPreservesOrder(t *testing.T) {
	agg := NewAggregate("Root")
	agg.Add(NewLeaf("First", ""))
	agg.Add(NewLeaf("Second", ""))

	if len(agg.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(agg.Children))
	}
	if agg.Children[0].NodeName() != "First" || agg.Children[1].NodeName() != "Second" {
		t.Errorf("children out of wire order: %v", agg.Children)
	}
}
