// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import "strings"

// Node is the two-arm sum type backing the decoded tree: a Leaf (named
// scalar) or an Aggregate (named ordered list of children). original_source
// models this as a virtual Node base class with PrimitiveNode/ListNode/
// DictionaryNode subclasses (lib/nodes.h); per spec.md §9 that polymorphism
// collapses cleanly into two concrete Go types behind one interface, no
// dynamic dispatch required beyond the interface call itself.
type Node interface {
	// NodeName returns the node's field or element name. A node built with
	// an empty name returns the empty string.
	NodeName() string

	// AsXML renders the node as an indented XML fragment at the given
	// depth, per spec.md §4.3.
	AsXML(depth int) string
}

// Leaf is a terminal node: a named scalar value. Value is empty for
// null/placeholder leaves.
type Leaf struct {
	Name  string
	Value string
}

// NewLeaf builds a Leaf with the given name and stringified value.
func NewLeaf(name, value string) *Leaf {
	return &Leaf{Name: name, Value: value}
}

func (l *Leaf) NodeName() string { return l.Name }

func (l *Leaf) AsXML(depth int) string {
	tag := l.Name
	if tag == "" {
		tag = "Node"
	}
	pad := indent(depth)
	if l.Value == "" {
		return pad + "<" + tag + "/>\n"
	}
	return pad + "<" + tag + ">" + escapeXML(l.Value) + "</" + tag + ">\n"
}

// Aggregate is an interior node: a named ordered sequence of children.
// Children are exclusively owned by their parent; the root Aggregate
// (always named "Root") exclusively owns the entire tree.
type Aggregate struct {
	Name     string
	Children []Node
}

// NewAggregate builds an empty Aggregate with the given name.
func NewAggregate(name string) *Aggregate {
	return &Aggregate{Name: name}
}

// Add appends a child node, preserving wire order.
func (a *Aggregate) Add(child Node) {
	a.Children = append(a.Children, child)
}

func (a *Aggregate) NodeName() string { return a.Name }

func (a *Aggregate) AsXML(depth int) string {
	tag := a.Name
	if tag == "" {
		tag = "NodeList"
	}
	pad := indent(depth)
	if len(a.Children) == 0 {
		return pad + "<" + tag + "/>\n"
	}
	var b strings.Builder
	b.WriteString(pad)
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">\n")
	for _, child := range a.Children {
		b.WriteString(child.AsXML(depth + 1))
	}
	b.WriteString(pad)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">\n")
	return b.String()
}

func indent(depth int) string {
	return strings.Repeat("    ", depth)
}

// escapeXML escapes the five XML-significant characters in a leaf value.
// The core decoder's job stops at producing a faithful string value; this
// is the minimal amount of XML-awareness spec.md §4.3 requires of the Node
// model itself (the richer pretty-printer is the external collaborator
// described in spec.md §6).
func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
