// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, fn := range []string{"a.go", "sub/b.go", "sub/.hidden.go", "sub/c.txt"} {
		p := filepath.Join(dir, fn)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("package x\n"), 0644))
	}
	a := filepath.Join(dir, "a.go")
	files, err := collectFiles([]string{a, dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a, filepath.Join(dir, "sub", "b.go")}, files)

	_, err = collectFiles([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestSlvecMain(t *testing.T) {
	require.NoError(t, config.Defaults())
	config.Out = t.TempDir()
	assert.Error(t, slvecMain(nil))

	require.NoError(t, slvecMain([]string{"examples/mask"}))
	hlsl, err := os.ReadFile(filepath.Join(config.Out, "mask.hlsl"))
	require.NoError(t, err)
	assert.Contains(t, string(hlsl), "void main(")
	assert.Contains(t, string(hlsl), "\tint4 On;\n")
	assert.Contains(t, string(hlsl), "\tvoid UpdateChannel(int4 flip, inout Channel ch) {\n")
	assert.Contains(t, string(hlsl), "\t\tint4 on = (ch.Value >= Thr);\n")
	assert.Contains(t, string(hlsl), "\t\tif (Latched==1) {\n")
	assert.Contains(t, string(hlsl), "\t\t\tch.On.xy = !ch.On.zw;\n")
	assert.NotContains(t, string(hlsl), "func ")
}
