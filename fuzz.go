// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

// Fuzz is a go-fuzz entry point, mirroring the teacher's own fuzz.go
// exactly. It exercises invariant 1 from spec.md §8 (bounds safety): for
// any random byte string, Deserialize must either return a tree or fail
// with a CorruptError/NotImplementedError, never panic or read out of
// bounds.
func Fuzz(data []byte) int {
	root, err := Deserialize(data, nil)
	if err != nil {
		return 0
	}
	if root == nil {
		return 0
	}
	return 1
}
