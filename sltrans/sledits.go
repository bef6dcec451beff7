// Copyright 2022 The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltrans

import (
	"bytes"
)

// Replace is one literal Go to HLSL text replacement.
type Replace struct {
	From, To []byte
}

// Replaces are applied in order to every line by [Edits].
// Longer names come before their prefixes. Bool vectors are int
// vectors in HLSL, as slbool.Bool is an int, because bool has no
// portable layout in structured buffers.
var Replaces = []Replace{
	{[]byte("sltype.NewBool2("), []byte("int2(")},
	{[]byte("sltype.NewBool3("), []byte("int3(")},
	{[]byte("sltype.NewBool4("), []byte("int4(")},
	{[]byte("sltype.Bool4Scalar("), []byte("(int4)(")},
	{[]byte("sltype.Bool2"), []byte("int2")},
	{[]byte("sltype.Bool3"), []byte("int3")},
	{[]byte("sltype.Bool4"), []byte("int4")},
	{[]byte("sltype.Select2("), []byte("select(")},
	{[]byte("sltype.Select3("), []byte("select(")},
	{[]byte("sltype.Select4("), []byte("select(")},
	{[]byte("sltype.Float2"), []byte("float2")},
	{[]byte("sltype.Float3"), []byte("float3")},
	{[]byte("sltype.Float4"), []byte("float4")},
	{[]byte("sltype.Uint2"), []byte("uint2")},
	{[]byte(".IsTrue()"), []byte("==1")},
	{[]byte(".IsFalse()"), []byte("==0")},
	{[]byte(".SetBool(true)"), []byte("=1")},
	{[]byte(".SetBool(false)"), []byte("=0")},
	{[]byte(".SetBool("), []byte("=int(")},
	{[]byte("slbool.Bool"), []byte("int")},
	{[]byte("slbool.True"), []byte("1")},
	{[]byte("slbool.False"), []byte("0")},
	{[]byte("slbool.IsTrue("), []byte("(1 == ")},
	{[]byte("slbool.IsFalse("), []byte("(0 == ")},
	{[]byte("slbool.FromBool("), []byte("int(")},
	{[]byte("float32"), []byte("float")},
	{[]byte("float64"), []byte("double")},
	{[]byte("uint32"), []byte("uint")},
	{[]byte("int32"), []byte("int")},
	{[]byte("math.Exp("), []byte("exp(")},
	{[]byte("mat32.Exp("), []byte("exp(")},
	{[]byte("mat32.Log("), []byte("log(")},
	{[]byte("mat32.Pow("), []byte("pow(")},
	{[]byte("mat32.Cos("), []byte("cos(")},
	{[]byte("mat32.Sin("), []byte("sin(")},
	{[]byte("mat32.Abs("), []byte("abs(")},
	{[]byte("mat32.FastExp("), []byte("FastExp(")},
	{[]byte("math.Float32frombits("), []byte("asfloat(")},
	{[]byte("slrand."), []byte("")},
}

// Edits performs post-lowering edits for HLSL,
// replacing Go names with their HLSL equivalents.
func Edits(src []byte) []byte {
	lines := bytes.Split(src, newline)
	EditsReplace(lines)
	return bytes.Join(lines, newline)
}

// EditsReplace applies [Replaces] to each line, in place.
func EditsReplace(lines [][]byte) {
	for li, ln := range lines {
		for _, r := range Replaces {
			ln = bytes.ReplaceAll(ln, r.From, r.To)
		}
		lines[li] = ln
	}
}
