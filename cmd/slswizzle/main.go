// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command slswizzle generates shading-language swizzle accessors
// (XY, BGRA, SetZW, ...) for Go vector types. It is typically run
// through a go:generate directive in the package of the types:
//
//	//go:generate go run goki.dev/slvec/cmd/slswizzle
//
// Vector types are structs with fields X, Y[, Z[, W]] of one type,
// selected with -types or marked with a //gosl:swizzle directive.
package main

import (
	"goki.dev/grease"
	"goki.dev/slvec/swizzlegen"
)

func main() {
	opts := grease.DefaultOptions("slswizzle", "Slswizzle", "Slswizzle generates shading-language swizzle accessors for Go vector types.")
	opts.DefaultFiles = []string{"slswizzle.toml"}
	grease.Run(opts, &swizzlegen.Config{}, swizzlegen.Generate)
}
