// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goki.dev/slvec/swizzle"
)

func testConfig(t *testing.T, dir string) *Config {
	c := &Config{}
	require.NoError(t, c.Defaults())
	c.Dir = dir
	c.Output = filepath.Join(t.TempDir(), "swizzlegen.go")
	return c
}

func generate(t *testing.T, c *Config) string {
	require.NoError(t, Generate(c))
	b, err := os.ReadFile(c.Output)
	require.NoError(t, err)
	return string(b)
}

func TestDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Defaults())
	assert.Equal(t, ".", c.Dir)
	assert.Equal(t, "swizzlegen.go", c.Output)
	assert.Equal(t, []string{"XYZW", "RGBA"}, c.Alphabets)
	as, err := c.AlphabetList()
	require.NoError(t, err)
	assert.Equal(t, []swizzle.Alphabet{swizzle.XYZW, swizzle.RGBA}, as)
	assert.Empty(t, c.TypeNames())
	assert.Equal(t, 1, c.MinArity)
	assert.Equal(t, 4, c.MaxArity)
	assert.True(t, c.Setters)
}

func TestDirectiveTypes(t *testing.T) {
	out := generate(t, testConfig(t, "testdata/vec"))

	assert.True(t, strings.HasPrefix(out, `// Code generated by "slswizzle"; DO NOT EDIT.`))
	assert.Contains(t, out, "package vec\n")
	assert.NotContains(t, out, "import")
	assert.NotContains(t, out, "func (v Flag3)")
	assert.NotContains(t, out, "NotVec")

	assert.Contains(t, out, "func (v Flag4) WZYX() Flag4 { return Flag4{v.W, v.Z, v.Y, v.X} }")
	assert.Contains(t, out, "func (v *Flag4) SetBGRA(s Flag4) { v.Z, v.Y, v.X, v.W = s.X, s.Y, s.Z, s.W }")
	assert.Contains(t, out, "func (v Flag4) XYZ() Flag3 { return Flag3{v.X, v.Y, v.Z} }")
	assert.Contains(t, out, "func (v Flag2) G() Flag { return v.Y }")
	assert.Contains(t, out, "func (v *Flag2) SetG(s Flag) { v.Y = s }")
	assert.Contains(t, out, "func (v Flag4) XX() Flag2 { return Flag2{v.X, v.X} }")
	assert.NotContains(t, out, "SetXX(")
	assert.NotContains(t, out, "func (v Flag4) X()")
	assert.NotContains(t, out, "func (v Flag4) R()")
	assert.NotContains(t, out, "SetR(")

	assert.Equal(t, 675, strings.Count(out, "func (v Flag4) "))
	assert.Equal(t, 123, strings.Count(out, "func (v *Flag4) "))
	assert.Equal(t, 58, strings.Count(out, "func (v Flag2) "))
	assert.Equal(t, 6, strings.Count(out, "func (v *Flag2) "))
}

func TestExplicitTypes(t *testing.T) {
	c := testConfig(t, "testdata/vec")
	c.Types = []string{"Flag4"}
	c.Alphabets = []string{"RGBA"}
	c.MinArity = 2
	c.MaxArity = 2
	c.Setters = false
	out := generate(t, c)
	assert.Equal(t, 16, strings.Count(out, "\nfunc "))
	assert.Contains(t, out, "func (v Flag4) AR() Flag2 { return Flag2{v.W, v.X} }")
	assert.NotContains(t, out, "Flag2)")
}

func TestImports(t *testing.T) {
	c := testConfig(t, "testdata/slvec")
	c.Types = []string{"B2,B3", "B4"}
	out := generate(t, c)
	assert.Contains(t, out, `"goki.dev/slvec/slbool"`)
	assert.Contains(t, out, "func (v B4) A() slbool.Bool { return v.W }")
	assert.Contains(t, out, "func (v *B3) SetB(s slbool.Bool) { v.Z = s }")
	assert.Contains(t, out, "func (v B2) YXXY() B4 { return B4{v.Y, v.X, v.X, v.Y} }")
}

func TestErrors(t *testing.T) {
	c := testConfig(t, "testdata/vec")
	c.Types = []string{"Missing"}
	assert.ErrorContains(t, Generate(c), `type "Missing" not found`)

	c.Types = []string{"NotVec"}
	assert.ErrorContains(t, Generate(c), "not a vector type")

	c.Types = nil
	c.Alphabets = []string{"xyzw"}
	assert.ErrorContains(t, Generate(c), "unexported")

	c.Alphabets = []string{" , "}
	assert.ErrorContains(t, Generate(c), "no alphabets")

	c = testConfig(t, "testdata/lone")
	assert.ErrorContains(t, Generate(c), "Lone4 needs type Lone2")
}

// TestSltypeUpToDate checks that the committed sltype accessors are
// exactly what the generator produces.
func TestSltypeUpToDate(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Defaults())
	c.Dir = "../sltype"
	g := NewGenerator(c)
	require.NoError(t, g.ParsePackage())
	g.Pkg = g.Pkgs[0]
	has, err := g.Find()
	require.NoError(t, err)
	require.True(t, has)
	g.PrintHeader()
	for _, typ := range g.Types {
		g.ExecTmpl(MethodsTmpl, typ)
	}
	got, err := g.Format()
	require.NoError(t, err)

	want, err := os.ReadFile(g.OutputFile())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "run go generate in sltype")
}
