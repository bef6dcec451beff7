// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alignsl

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const src = `package vecs

type Bool int32

type Bool2 struct {
	X, Y Bool
}

type Bool4 struct {
	X, Y, Z, W Bool
}

type Params struct {
	Tau    float32
	Dt     float32
	Option bool
	Rate   float64
}
`

func checkSource(t *testing.T) (*types.Package, types.Sizes) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "vecs.go", src, 0)
	require.NoError(t, err)
	sizes := types.SizesFor("gc", "amd64")
	conf := types.Config{Importer: importer.Default(), Sizes: sizes}
	pkg, err := conf.Check("vecs", fset, []*ast.File{f}, nil)
	require.NoError(t, err)
	return pkg, sizes
}

func structOf(t *testing.T, pkg *types.Package, name string) *types.Struct {
	st, ok := pkg.Scope().Lookup(name).Type().Underlying().(*types.Struct)
	require.True(t, ok, name)
	return st
}

func TestCheckStruct(t *testing.T) {
	pkg, sizes := checkSource(t)

	assert.Empty(t, CheckStruct(sizes, structOf(t, pkg, "Bool4")))

	b2 := structOf(t, pkg, "Bool2")
	assert.Empty(t, CheckFields(b2))
	assert.ErrorContains(t, CheckSize(sizes, b2), "total size: 8")

	errs := CheckStruct(sizes, structOf(t, pkg, "Params"))
	require.Len(t, errs, 3)
	assert.ErrorContains(t, errs[0], "Option")
	assert.ErrorContains(t, errs[1], "Rate")
	assert.ErrorContains(t, errs[2], "not even multiple of 16")
}

func TestCheckScope(t *testing.T) {
	pkg, sizes := checkSource(t)
	err := CheckScope(sizes, pkg.Scope())
	require.Error(t, err)
	assert.ErrorContains(t, err, "Bool2: total size: 8")
	assert.ErrorContains(t, err, "Params: Option")
	assert.NotContains(t, err.Error(), "Bool4")
}
