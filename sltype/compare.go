// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import "goki.dev/slvec/slbool"

// These are the component-wise comparisons that HLSL
// writes as operators on float vectors: Less4(a, b) is a < b.

func cmp(op int, a, b float32) slbool.Bool {
	switch op {
	case opLess:
		return slbool.FromBool(a < b)
	case opLessEqual:
		return slbool.FromBool(a <= b)
	case opGreater:
		return slbool.FromBool(a > b)
	case opGreaterEqual:
		return slbool.FromBool(a >= b)
	case opEqual:
		return slbool.FromBool(a == b)
	}
	return slbool.FromBool(a != b)
}

const (
	opLess = iota
	opLessEqual
	opGreater
	opGreaterEqual
	opEqual
	opNotEqual
)

func cmp2(op int, a, b Float2) Bool2 {
	return Bool2{cmp(op, a.X, b.X), cmp(op, a.Y, b.Y)}
}

func cmp3(op int, a, b Float3) Bool3 {
	return Bool3{cmp(op, a.X, b.X), cmp(op, a.Y, b.Y), cmp(op, a.Z, b.Z)}
}

func cmp4(op int, a, b Float4) Bool4 {
	return Bool4{cmp(op, a.X, b.X), cmp(op, a.Y, b.Y), cmp(op, a.Z, b.Z), cmp(op, a.W, b.W)}
}

// Less2 returns a < b
func Less2(a, b Float2) Bool2 { return cmp2(opLess, a, b) }

// LessEqual2 returns a <= b
func LessEqual2(a, b Float2) Bool2 { return cmp2(opLessEqual, a, b) }

// Greater2 returns a > b
func Greater2(a, b Float2) Bool2 { return cmp2(opGreater, a, b) }

// GreaterEqual2 returns a >= b
func GreaterEqual2(a, b Float2) Bool2 { return cmp2(opGreaterEqual, a, b) }

// Equal2 returns a == b
func Equal2(a, b Float2) Bool2 { return cmp2(opEqual, a, b) }

// NotEqual2 returns a != b
func NotEqual2(a, b Float2) Bool2 { return cmp2(opNotEqual, a, b) }

// Less3 returns a < b
func Less3(a, b Float3) Bool3 { return cmp3(opLess, a, b) }

// LessEqual3 returns a <= b
func LessEqual3(a, b Float3) Bool3 { return cmp3(opLessEqual, a, b) }

// Greater3 returns a > b
func Greater3(a, b Float3) Bool3 { return cmp3(opGreater, a, b) }

// GreaterEqual3 returns a >= b
func GreaterEqual3(a, b Float3) Bool3 { return cmp3(opGreaterEqual, a, b) }

// Equal3 returns a == b
func Equal3(a, b Float3) Bool3 { return cmp3(opEqual, a, b) }

// NotEqual3 returns a != b
func NotEqual3(a, b Float3) Bool3 { return cmp3(opNotEqual, a, b) }

// Less4 returns a < b
func Less4(a, b Float4) Bool4 { return cmp4(opLess, a, b) }

// LessEqual4 returns a <= b
func LessEqual4(a, b Float4) Bool4 { return cmp4(opLessEqual, a, b) }

// Greater4 returns a > b
func Greater4(a, b Float4) Bool4 { return cmp4(opGreater, a, b) }

// GreaterEqual4 returns a >= b
func GreaterEqual4(a, b Float4) Bool4 { return cmp4(opGreaterEqual, a, b) }

// Equal4 returns a == b
func Equal4(a, b Float4) Bool4 { return cmp4(opEqual, a, b) }

// NotEqual4 returns a != b
func NotEqual4(a, b Float4) Bool4 { return cmp4(opNotEqual, a, b) }

func sel(c slbool.Bool, a, b float32) float32 {
	if c.IsTrue() {
		return a
	}
	return b
}

// Select2 returns a where c is true and b elsewhere (HLSL select)
func Select2(c Bool2, a, b Float2) Float2 {
	return Float2{X: sel(c.X, a.X, b.X), Y: sel(c.Y, a.Y, b.Y)}
}

// Select3 returns a where c is true and b elsewhere (HLSL select)
func Select3(c Bool3, a, b Float3) Float3 {
	return Float3{X: sel(c.X, a.X, b.X), Y: sel(c.Y, a.Y, b.Y), Z: sel(c.Z, a.Z, b.Z)}
}

// Select4 returns a where c is true and b elsewhere (HLSL select)
func Select4(c Bool4, a, b Float4) Float4 {
	return Float4{X: sel(c.X, a.X, b.X), Y: sel(c.Y, a.Y, b.Y), Z: sel(c.Z, a.Z, b.Z), W: sel(c.W, a.W, b.W)}
}
