// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"goki.dev/slvec/slbool"
)

func TestLayout(t *testing.T) {
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Bool4{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(Bool3{}))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Bool2{}))
	var v Bool4
	assert.Equal(t, uintptr(12), unsafe.Offsetof(v.W))
}

func TestBool4Ops(t *testing.T) {
	a := NewBool4(true, true, false, false)
	b := NewBool4(true, false, true, false)

	assert.Equal(t, NewBool4(false, false, true, true), a.Not())
	assert.Equal(t, NewBool4(true, false, false, false), a.And(b))
	assert.Equal(t, NewBool4(true, true, true, false), a.Or(b))
	assert.Equal(t, NewBool4(false, true, true, false), a.Xor(b))
	assert.Equal(t, NewBool4(true, false, false, true), a.Equal(b))
	assert.Equal(t, a.Xor(b), a.NotEqual(b))

	assert.True(t, a.Any())
	assert.False(t, a.All())
	assert.True(t, Bool4Scalar(true).All())
	assert.False(t, Bool4Scalar(false).Any())
	assert.True(t, a == NewBool4(true, true, false, false))
}

func TestBool23Ops(t *testing.T) {
	a2 := NewBool2(true, false)
	assert.Equal(t, NewBool2(false, true), a2.Not())
	assert.Equal(t, NewBool2(true, true), a2.Or(a2.Not()))
	assert.Equal(t, NewBool2(false, false), a2.And(a2.Not()))
	assert.Equal(t, NewBool2(true, true), a2.Equal(a2))
	assert.True(t, a2.Any())
	assert.False(t, a2.All())

	a3 := NewBool3(true, false, true)
	b3 := NewBool3(true, true, false)
	assert.Equal(t, NewBool3(true, false, false), a3.And(b3))
	assert.Equal(t, NewBool3(true, true, true), a3.Or(b3))
	assert.Equal(t, NewBool3(false, true, true), a3.NotEqual(b3))
	assert.Equal(t, NewBool3(true, false, false), a3.Equal(b3))
	assert.False(t, a3.All())
	assert.True(t, a3.Or(b3).All())

	var v Bool3
	v.Set(false, true, false)
	assert.Equal(t, NewBool3(false, true, false), v)
}

func TestBool4String(t *testing.T) {
	assert.Equal(t, "<true, false, true, false>", NewBool4(true, false, true, false).String())
	assert.Equal(t, "<false, true>", NewBool2(false, true).String())
	assert.Equal(t, "<true, true, false>", NewBool3(true, true, false).String())
}

func TestComponent(t *testing.T) {
	var v Bool4
	v.Set(false, false, false, false)
	v.SetComponent(2, slbool.True)
	assert.Equal(t, slbool.True, v.Z)
	assert.Equal(t, slbool.True, v.Component(2))
	assert.Equal(t, slbool.False, v.Component(3))
	assert.Panics(t, func() { v.SetComponent(4, slbool.True) })
	assert.Panics(t, func() { v.Component(-1) })
}

func TestCompare(t *testing.T) {
	a := Float4{X: 1, Y: 2, Z: 3, W: 4}
	b := Float4{X: 4, Y: 2, Z: 1, W: 5}
	assert.Equal(t, NewBool4(true, false, false, true), Less4(a, b))
	assert.Equal(t, NewBool4(true, true, false, true), LessEqual4(a, b))
	assert.Equal(t, NewBool4(false, false, true, false), Greater4(a, b))
	assert.Equal(t, NewBool4(false, true, true, false), GreaterEqual4(a, b))
	assert.Equal(t, NewBool4(false, true, false, false), Equal4(a, b))
	assert.Equal(t, NewBool4(true, false, true, true), NotEqual4(a, b))

	assert.Equal(t, Float4{X: 1, Y: 2, Z: 1, W: 4}, Select4(Less4(a, b).Or(Equal4(a, b)), a, b))

	a2, b2 := Float2{X: 1, Y: 3}, Float2{X: 2, Y: 2}
	assert.Equal(t, NewBool2(true, false), Less2(a2, b2))
	assert.Equal(t, NewBool2(false, true), Greater2(a2, b2))
	assert.Equal(t, Float2{X: 2, Y: 3}, Select2(GreaterEqual2(a2, b2), a2, b2))
	assert.Equal(t, NewBool2(true, true), NotEqual2(a2, b2))
	assert.Equal(t, NewBool2(true, false), LessEqual2(a2, b2))
	assert.Equal(t, NewBool2(false, false), Equal2(a2, b2))

	a3, b3 := Float3{X: 1, Y: 2, Z: 3}, Float3{X: 3, Y: 2, Z: 1}
	assert.Equal(t, NewBool3(true, false, false), Less3(a3, b3))
	assert.Equal(t, NewBool3(true, true, false), LessEqual3(a3, b3))
	assert.Equal(t, NewBool3(false, false, true), Greater3(a3, b3))
	assert.Equal(t, NewBool3(false, true, true), GreaterEqual3(a3, b3))
	assert.Equal(t, NewBool3(false, true, false), Equal3(a3, b3))
	assert.Equal(t, NewBool3(true, false, true), NotEqual3(a3, b3))
	assert.Equal(t, Float3{X: 3, Y: 2, Z: 3}, Select3(Greater3(a3, b3).Or(Equal3(a3, b3)), a3, b3))
}
