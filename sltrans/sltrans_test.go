// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltrans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLower(t *testing.T) {
	src := `package p

func f() {
	b := v.XY().Not()
	v.SetR(slbool.True)
	v.SetBGRA(w.XXYY())
	c := sltype.GreaterEqual2(a, b)
	d := v.Equal(w).All()
	e := v.Or(w).NotEqual(u)
	g := sltype.Select4(c, a, b)
	h := mat32.Abs(v.A())
	v.SetBool(true)
}

// Update is not lowered
func (v *Vec) Update() {
	v.X = 1
}
`
	out, err := Lower([]byte(src), map[string]bool{"Update": true})
	require.NoError(t, err)
	res := string(out)
	assert.Contains(t, res, "b := !v.xy\n")
	assert.Contains(t, res, "v.r = slbool.True\n")
	assert.Contains(t, res, "v.bgra = w.xxyy\n")
	assert.Contains(t, res, "c := (a >= b)\n")
	assert.Contains(t, res, "d := all((v == w))\n")
	assert.Contains(t, res, "e := (or(v, w) != u)\n")
	assert.Contains(t, res, "g := sltype.Select4(c, a, b)\n")
	assert.Contains(t, res, "h := mat32.Abs(v.a)\n")
	assert.Contains(t, res, "v.SetBool(true)\n")
	assert.NotContains(t, res, "Update")
}

func TestLowerError(t *testing.T) {
	_, err := Lower([]byte("package p\nfunc {"), nil)
	assert.Error(t, err)
}

func TestIsSwizzle(t *testing.T) {
	assert.True(t, IsSwizzle("XYZW"))
	assert.True(t, IsSwizzle("A"))
	assert.True(t, IsSwizzle("BGR"))
	assert.False(t, IsSwizzle("xy"))
	assert.False(t, IsSwizzle("XG"))
	assert.False(t, IsSwizzle("Abs"))
	assert.False(t, IsSwizzle("XYZWX"))
	assert.False(t, IsSwizzle("Exp"))
}

func TestEdits(t *testing.T) {
	src := "var m sltype.Bool4 = sltype.NewBool4(true, false, true, false)\nx := float32(slbool.FromBool(on.IsTrue()))"
	assert.Equal(t, "var m int4 = int4(true, false, true, false)\nx := float(int(on==1))", string(Edits([]byte(src))))
}

func TestExtractHLSL(t *testing.T) {
	src := `package main

import (
	"math"
)

func f() {}

//gosl: hlsl x
/*
// void main(uint3 idx : SV_DispatchThreadID) {
// }
*/
//gosl: end x
`
	out, hasMain := ExtractHLSL([]byte(src))
	assert.True(t, hasMain)
	assert.Equal(t, "\nfunc f() {}\n\nvoid main(uint3 idx : SV_DispatchThreadID) {\n}\n", string(out))

	_, hasMain = ExtractHLSL([]byte("package main\n\nfunc f() {}\n"))
	assert.False(t, hasMain)
}

func TestExtractRegions(t *testing.T) {
	regs, err := ExtractRegions([]string{"testdata/basic.go", "testdata/notgo.txt"})
	require.NoError(t, err)
	require.Len(t, regs, 1)
	basic := string(regs["basic"])
	assert.Contains(t, basic, "type MaskStruct struct")
	assert.Contains(t, basic, "//gosl: hlsl basic")
	assert.Contains(t, basic, "//gosl: end basic")
	assert.NotContains(t, basic, "Defaults")
	assert.NotContains(t, basic, "import")

	fn := filepath.Join(t.TempDir(), "open.go")
	require.NoError(t, os.WriteFile(fn, []byte("package x\n//gosl: start open\nvar a int\n"), 0644))
	_, err = ExtractRegions([]string{fn})
	assert.ErrorContains(t, err, `region "open" has no end`)

	_, err = ExtractRegions([]string{filepath.Join(t.TempDir(), "missing.go")})
	assert.Error(t, err)
}

func TestProcess(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Defaults())
	assert.Equal(t, "shaders", c.Out)
	assert.Equal(t, []string{"Update", "Defaults"}, c.Exclude)
	assert.Equal(t, map[string]bool{"Update": true, "Defaults": true}, c.ExcludeMap())

	c.Out = t.TempDir()
	c.Keep = true
	sls, err := Process(c, []string{"testdata/basic.go"})
	require.NoError(t, err)
	require.Contains(t, sls, "basic")

	hlsl := string(sls["basic"])
	disk, err := os.ReadFile(filepath.Join(c.Out, "basic.hlsl"))
	require.NoError(t, err)
	assert.Equal(t, hlsl, string(disk))
	gosrc, err := os.ReadFile(filepath.Join(c.Out, "basic.go"))
	require.NoError(t, err)
	assert.Contains(t, string(gosrc), "ms.Off.xy = on.zw")

	assert.NotContains(t, hlsl, "package main")
	assert.NotContains(t, hlsl, "import")
	assert.NotContains(t, hlsl, "//gosl:")
	assert.NotContains(t, hlsl, "Update")
	assert.NotContains(t, hlsl, "Bool4Scalar")
	assert.NotContains(t, hlsl, "func ")
	assert.NotContains(t, hlsl, ":=")
	assert.NotContains(t, hlsl, "bool4")

	assert.Contains(t, hlsl, "struct DataStruct {\n\tfloat Raw;\n\tfloat Integ;\n")
	assert.Contains(t, hlsl, "\tint Option; // note: standard bool doesn't work\n")
	assert.Contains(t, hlsl, "\tvoid IntegFmRaw(inout DataStruct ds) {\n")
	assert.Contains(t, hlsl, "\t\tfloat newVal = Dt * (ds.Raw - ds.Integ);\n")
	assert.Contains(t, hlsl, "\t\tif ((newVal < -10) || (1 == Option)) {\n\t\t\tnewVal = -10;\n\t\t}\n")
	assert.Contains(t, hlsl, "\t\tds.Integ += newVal;\n")
	assert.Contains(t, hlsl, "\t\tds.Exp = exp(-ds.Integ);\n")

	assert.Contains(t, hlsl, "struct MaskStruct {\n\tint4 On;\n\tint4 Off;\n")
	assert.Contains(t, hlsl, "\tint4 Masked(float4 a, float4 b) {\n")
	assert.Contains(t, hlsl, "\t\tint4 lt = (a < b);\n")
	assert.Contains(t, hlsl, "\t\tint4 on = and(On, !lt);\n")
	assert.Contains(t, hlsl, "\t\tOff.xy = on.zw;\n")
	assert.Contains(t, hlsl, "\t\tif (any((on != Off))) {\n\t\t\treturn on.wzyx;\n\t\t}\n")
	assert.Contains(t, hlsl, "\t\treturn (or(Off, On) == on);\n")
	assert.Contains(t, hlsl, "\n};\n")

	assert.Contains(t, hlsl, "[[vk::binding(0, 1)]] RWStructuredBuffer<DataStruct> Data;")
	assert.Contains(t, hlsl, "void main(uint3 idx : SV_DispatchThreadID) {")
	assert.Contains(t, hlsl, "    Params.IntegFmRaw(Data[idx.x]);")

	_, err = Process(c, []string{"testdata/notgo.txt"})
	assert.ErrorContains(t, err, "no gosl regions")
}

func TestLoadImports(t *testing.T) {
	imps, err := LoadImports([]string{"testdata/basic.go", "testdata/notgo.txt"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"goki.dev/mat32/v2":     "",
		"goki.dev/slvec/slbool": "",
		"goki.dev/slvec/sltype": "",
	}, imps.Names)
	require.Contains(t, imps.Pkgs, "goki.dev/slvec/sltype")
	assert.Equal(t, "sltype", imps.Pkgs["goki.dev/slvec/sltype"].Name())
	assert.Contains(t, imps.ImportDecl(), "\t\"goki.dev/slvec/slbool\"\n")

	_, err = imps.Import("fmt")
	assert.Error(t, err)
}

const stepRegion = `
// Counts has a float64 field
type Counts struct {
	N     int32
	Total float64
}

const nSteps = 3

const half float32 = 0.5

// Step advances c
func (c *Counts) Step(m sltype.Bool4, v sltype.Float4) float32 {
	s := float32(0)
	for i := int32(0); i < nSteps; i++ {
		switch {
		case m.X.IsTrue():
			s += v.X
		case i == 1:
			s -= half
		default:
			s = v.W
		}
	}
	var w sltype.Float4
	w = sltype.Float4{Y: s, X: 1}
	c.N++
	if on := m.XY(); on.Any() {
		s = w.Y
	} else if s > 1 {
		s = 1
	} else {
		s = 0
	}
	return s * float32(c.Total)
}

// Reset resets c
func (c *Counts) Reset() {
	Scale(c, 0)
}

// Scale scales c
func Scale(c *Counts, f float32) {
	c.Step(sltype.Bool4Scalar(true), sltype.Float4{})
	c.Total *= float64(f)
}
`

func TestTranslate(t *testing.T) {
	imps, err := LoadImports([]string{"testdata/basic.go"})
	require.NoError(t, err)

	tr, err := Translate([]byte(stepRegion), imps, nil)
	require.NoError(t, err)
	assert.False(t, tr.HasMain)
	hlsl := string(tr.HLSL)

	assert.Contains(t, hlsl, "// Counts has a float64 field\nstruct Counts {\n\tint N;\n\tdouble Total;\n")
	assert.Contains(t, hlsl, "static const int nSteps = 3;\n")
	assert.Contains(t, hlsl, "static const float half = 0.5;\n")
	assert.Contains(t, hlsl, "\t// Step advances c\n\tfloat Step(int4 m, float4 v) {\n")
	assert.Contains(t, hlsl, "\t\tfloat s = float(0);\n")
	assert.Contains(t, hlsl, "\t\tfor (int i = int(0); i < nSteps; i++) {\n")
	assert.Contains(t, hlsl, `			if (m.x==1) {
				s += v.x;
			} else if (i == 1) {
				s -= half;
			} else {
				s = v.w;
			}
`)
	assert.Contains(t, hlsl, "\t\tfloat4 w = (float4)0;\n")
	assert.Contains(t, hlsl, "\t\tw = float4(1, s, 0, 0);\n")
	assert.Contains(t, hlsl, "\t\tN++;\n")
	assert.Contains(t, hlsl, `		{
			int2 on = m.xy;
			if (any(on)) {
				s = w.y;
			} else if (s > 1) {
				s = 1;
			} else {
				s = 0;
			}
		}
`)
	assert.Contains(t, hlsl, "\t\treturn s * float(Total);\n")
	assert.Contains(t, hlsl, "\tvoid Reset() {\n\t\tScale(this, 0);\n\t}\n")
	assert.Contains(t, hlsl, "void Scale(inout Counts c, float f) {\n")
	assert.Contains(t, hlsl, "\tc.Step((int4)(true), float4(0, 0, 0, 0));\n")
	assert.Contains(t, hlsl, "\tc.Total *= double(f);\n")

	require.Error(t, tr.Layout)
	assert.Contains(t, tr.Layout.Error(), "Counts: Total: basic type != [U]Int32 or Float32: float64")
	assert.NotContains(t, tr.Layout.Error(), "multiple of 16")

	regs, err := ExtractRegions([]string{"testdata/basic.go"})
	require.NoError(t, err)
	tr, err = Translate(regs["basic"], imps, map[string]bool{"Update": true})
	require.NoError(t, err)
	assert.NoError(t, tr.Layout)
	assert.True(t, tr.HasMain)
}

func TestTranslateLayout(t *testing.T) {
	tr, err := Translate([]byte("type Odd struct {\n\tA, B float32\n\tOn bool\n}\n"), nil, nil)
	require.NoError(t, err)
	require.Error(t, tr.Layout)
	assert.Contains(t, tr.Layout.Error(), "Odd: On: basic type != [U]Int32 or Float32: bool")
	assert.Contains(t, tr.Layout.Error(), "Odd: total size: 9 not even multiple of 16")
	assert.Contains(t, string(tr.HLSL), "struct Odd {\n\tfloat A;\n\tfloat B;\n\tbool On;\n};\n")
}

func TestTranslateErrors(t *testing.T) {
	_, err := Translate([]byte("func Two() (float32, float32) {\n\treturn 1, 2\n}\n"), nil, nil)
	assert.ErrorContains(t, err, "multiple results")

	_, err = Translate([]byte("func Bad() {\n\tundefinedFunc()\n}\n"), nil, nil)
	assert.ErrorContains(t, err, "undefined: undefinedFunc")

	_, err = Translate([]byte("type Other int32\n\nfunc (o Other) F() {}\n"), nil, nil)
	assert.ErrorContains(t, err, "receiver struct Other is not declared")

	_, err = Translate([]byte("func Loop(a [4]float32) {\n\tfor i := range a {\n\t\ta[i] = 0\n\t}\n}\n"), nil, nil)
	assert.ErrorContains(t, err, "RangeStmt is not supported")

	_, err = Translate([]byte("func Bad() {\n\tx := sltype.Bool4{}\n}\n"), nil, nil)
	assert.ErrorContains(t, err, "sltype")
}
