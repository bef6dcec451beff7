// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sltype provides Go versions of the HLSL vector types,
// with the same memory layout and with swizzle accessors, so that
// the same code runs on the CPU and, translated, on the GPU.
package sltype

//go:generate go run goki.dev/slvec/cmd/slswizzle

import (
	"strings"

	"goki.dev/slvec/slbool"
)

// Bool2 is a length 2 vector of [slbool.Bool], the HLSL bool2,
// which slvec stores as an int2.
//
//gosl:swizzle
type Bool2 struct {
	X, Y slbool.Bool
}

// Bool3 is a length 3 vector of [slbool.Bool], the HLSL bool3,
// which slvec stores as an int3.
//
//gosl:swizzle
type Bool3 struct {
	X, Y, Z slbool.Bool
}

// Bool4 is a length 4 vector of [slbool.Bool], the HLSL bool4.
// It is 16 bytes, with each component 4 byte aligned, and slvec
// stores it as an int4 so that it reads the same in buffers.
//
//gosl:swizzle
type Bool4 struct {
	X, Y, Z, W slbool.Bool
}

// NewBool2 returns a new [Bool2] from Go bools
func NewBool2(x, y bool) Bool2 {
	return Bool2{slbool.FromBool(x), slbool.FromBool(y)}
}

// NewBool3 returns a new [Bool3] from Go bools
func NewBool3(x, y, z bool) Bool3 {
	return Bool3{slbool.FromBool(x), slbool.FromBool(y), slbool.FromBool(z)}
}

// NewBool4 returns a new [Bool4] from Go bools
func NewBool4(x, y, z, w bool) Bool4 {
	return Bool4{slbool.FromBool(x), slbool.FromBool(y), slbool.FromBool(z), slbool.FromBool(w)}
}

// Bool4Scalar returns a [Bool4] with all components set to b
func Bool4Scalar(b bool) Bool4 {
	return NewBool4(b, b, b, b)
}

func formatBools(bs ...slbool.Bool) string {
	var sb strings.Builder
	sb.WriteByte('<')
	for i, b := range bs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.String())
	}
	sb.WriteByte('>')
	return sb.String()
}

////////////////////////////////////////////////////////////
//   Bool2

// Set sets the components from Go bools
func (v *Bool2) Set(x, y bool) {
	*v = NewBool2(x, y)
}

func (v Bool2) String() string { return formatBools(v.X, v.Y) }

// Not returns the component-wise negation of v
func (v Bool2) Not() Bool2 { return Bool2{v.X.Not(), v.Y.Not()} }

// And returns the component-wise v && o
func (v Bool2) And(o Bool2) Bool2 { return Bool2{v.X.And(o.X), v.Y.And(o.Y)} }

// Or returns the component-wise v || o
func (v Bool2) Or(o Bool2) Bool2 { return Bool2{v.X.Or(o.X), v.Y.Or(o.Y)} }

// Xor returns the component-wise exclusive or of v and o
func (v Bool2) Xor(o Bool2) Bool2 { return Bool2{v.X.Xor(o.X), v.Y.Xor(o.Y)} }

// Equal returns the component-wise v == o
func (v Bool2) Equal(o Bool2) Bool2 { return v.Xor(o).Not() }

// NotEqual returns the component-wise v != o
func (v Bool2) NotEqual(o Bool2) Bool2 { return v.Xor(o) }

// Any returns true if any component is true
func (v Bool2) Any() bool { return v.X.IsTrue() || v.Y.IsTrue() }

// All returns true if all components are true
func (v Bool2) All() bool { return v.X.IsTrue() && v.Y.IsTrue() }

////////////////////////////////////////////////////////////
//   Bool3

// Set sets the components from Go bools
func (v *Bool3) Set(x, y, z bool) {
	*v = NewBool3(x, y, z)
}

func (v Bool3) String() string { return formatBools(v.X, v.Y, v.Z) }

// Not returns the component-wise negation of v
func (v Bool3) Not() Bool3 { return Bool3{v.X.Not(), v.Y.Not(), v.Z.Not()} }

// And returns the component-wise v && o
func (v Bool3) And(o Bool3) Bool3 {
	return Bool3{v.X.And(o.X), v.Y.And(o.Y), v.Z.And(o.Z)}
}

// Or returns the component-wise v || o
func (v Bool3) Or(o Bool3) Bool3 {
	return Bool3{v.X.Or(o.X), v.Y.Or(o.Y), v.Z.Or(o.Z)}
}

// Xor returns the component-wise exclusive or of v and o
func (v Bool3) Xor(o Bool3) Bool3 {
	return Bool3{v.X.Xor(o.X), v.Y.Xor(o.Y), v.Z.Xor(o.Z)}
}

// Equal returns the component-wise v == o
func (v Bool3) Equal(o Bool3) Bool3 { return v.Xor(o).Not() }

// NotEqual returns the component-wise v != o
func (v Bool3) NotEqual(o Bool3) Bool3 { return v.Xor(o) }

// Any returns true if any component is true
func (v Bool3) Any() bool { return v.X.IsTrue() || v.Y.IsTrue() || v.Z.IsTrue() }

// All returns true if all components are true
func (v Bool3) All() bool { return v.X.IsTrue() && v.Y.IsTrue() && v.Z.IsTrue() }

////////////////////////////////////////////////////////////
//   Bool4

// Set sets the components from Go bools
func (v *Bool4) Set(x, y, z, w bool) {
	*v = NewBool4(x, y, z, w)
}

// Component returns component i, where X is 0 and W is 3.
func (v Bool4) Component(i int) slbool.Bool {
	return [4]slbool.Bool{v.X, v.Y, v.Z, v.W}[i]
}

// SetComponent sets component i, where X is 0 and W is 3.
func (v *Bool4) SetComponent(i int, b slbool.Bool) {
	switch i {
	case 0:
		v.X = b
	case 1:
		v.Y = b
	case 2:
		v.Z = b
	case 3:
		v.W = b
	default:
		panic("sltype.Bool4: component index out of range")
	}
}

// String returns the vector as <x, y, z, w>
func (v Bool4) String() string { return formatBools(v.X, v.Y, v.Z, v.W) }

// Not returns the component-wise negation of v (HLSL !v)
func (v Bool4) Not() Bool4 {
	return Bool4{v.X.Not(), v.Y.Not(), v.Z.Not(), v.W.Not()}
}

// And returns the component-wise v && o (HLSL and(v, o))
func (v Bool4) And(o Bool4) Bool4 {
	return Bool4{v.X.And(o.X), v.Y.And(o.Y), v.Z.And(o.Z), v.W.And(o.W)}
}

// Or returns the component-wise v || o (HLSL or(v, o))
func (v Bool4) Or(o Bool4) Bool4 {
	return Bool4{v.X.Or(o.X), v.Y.Or(o.Y), v.Z.Or(o.Z), v.W.Or(o.W)}
}

// Xor returns the component-wise exclusive or of v and o
func (v Bool4) Xor(o Bool4) Bool4 {
	return Bool4{v.X.Xor(o.X), v.Y.Xor(o.Y), v.Z.Xor(o.Z), v.W.Xor(o.W)}
}

// Equal returns the component-wise v == o.
// Use Go == on the whole struct for a single result.
func (v Bool4) Equal(o Bool4) Bool4 { return v.Xor(o).Not() }

// NotEqual returns the component-wise v != o
func (v Bool4) NotEqual(o Bool4) Bool4 { return v.Xor(o) }

// Any returns true if any component is true
func (v Bool4) Any() bool {
	return v.X.IsTrue() || v.Y.IsTrue() || v.Z.IsTrue() || v.W.IsTrue()
}

// All returns true if all components are true
func (v Bool4) All() bool {
	return v.X.IsTrue() && v.Y.IsTrue() && v.Z.IsTrue() && v.W.IsTrue()
}
