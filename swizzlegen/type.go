// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"go/types"
	"strings"
)

// ComponentFields are the field names of vector components, in order.
var ComponentFields = []string{"X", "Y", "Z", "W"}

// Type is a vector type found in the package.
type Type struct {
	// Name of the type
	Name string

	// Named is the type checked type
	Named *types.Named

	// Size is the number of components
	Size int

	// Elem is the component type
	Elem types.Type

	// Methods are the generated accessors, filled in by [Generator.Find]
	Methods []*Method
}

// Method is one generated swizzle accessor, with its setter if Settable.
type Method struct {
	// Name is the swizzle name, e.g. XYZ
	Name string

	// Result is the type returned by the getter and taken by the setter
	Result string

	// Get is the expression returned by the getter
	Get string

	// Set is the assignment statement of the setter
	Set string

	// Settable is whether a setter is generated
	Settable bool

	// Doc is the noun the doc comments use, "swizzle" or "component"
	Doc string
}

// VectorType returns the component count and element type of t
// if it is a struct whose fields are a prefix of [ComponentFields],
// all of the same type, with at least 2 of them.
func VectorType(t types.Type) (int, types.Type, bool) {
	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return 0, nil, false
	}
	n := st.NumFields()
	if n < 2 || n > len(ComponentFields) {
		return 0, nil, false
	}
	elem := st.Field(0).Type()
	for i := 0; i < n; i++ {
		f := st.Field(i)
		if f.Name() != ComponentFields[i] || !types.Identical(f.Type(), elem) {
			return 0, nil, false
		}
	}
	return n, elem, true
}

// BaseName returns the type name without its trailing size digits,
// e.g. Bool for Bool4.
func BaseName(name string) string {
	return strings.TrimRight(name, "0123456789")
}
