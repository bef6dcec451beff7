// Copyright (c) 2022, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alignsl checks that struct types have a layout that
// HLSL will read the same way Go writes it: only 32 bit basic
// fields, and a total size that is a multiple of 16 bytes
// (4 float32's) so that arrays of them stay aligned.
package alignsl

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// CheckFields returns an error for each field of st that is not
// a [U]Int32 or Float32 basic type, or a struct.
func CheckFields(st *types.Struct) []error {
	var errs []error
	for i := 0; i < st.NumFields(); i++ {
		fl := st.Field(i)
		ft := fl.Type()
		switch ut := ft.Underlying().(type) {
		case *types.Basic:
			kind := ut.Kind()
			if !(kind == types.Uint32 || kind == types.Int32 || kind == types.Float32) {
				errs = append(errs, fmt.Errorf("%s: basic type != [U]Int32 or Float32: %s", fl.Name(), ut.String()))
			}
		case *types.Struct:
		default:
			errs = append(errs, fmt.Errorf("%s: unsupported type: %s", fl.Name(), ft.String()))
		}
	}
	return errs
}

// CheckSize returns an error if the size of st under the given
// sizes is not an even multiple of 16 bytes.
func CheckSize(sizes types.Sizes, st *types.Struct) error {
	nf := st.NumFields()
	if nf == 0 {
		return nil
	}
	flds := make([]*types.Var, nf)
	for i := range flds {
		flds[i] = st.Field(i)
	}
	offs := sizes.Offsetsof(flds)
	last := sizes.Sizeof(flds[nf-1].Type())
	totsz := offs[nf-1] + last
	if totsz%16 != 0 {
		return fmt.Errorf("total size: %d not even multiple of 16", totsz)
	}
	return nil
}

// CheckStruct returns all field and size problems of st.
func CheckStruct(sizes types.Sizes, st *types.Struct) []error {
	errs := CheckFields(st)
	if err := CheckSize(sizes, st); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// CheckPackage checks all the named struct types in the package,
// returning the joined problems, each prefixed by its type name.
func CheckPackage(pkg *packages.Package) error {
	return CheckScope(pkg.TypesSizes, pkg.Types.Scope())
}

// CheckScope checks the named struct types in sc. If sc has none,
// its child scopes are checked instead.
func CheckScope(sizes types.Sizes, sc *types.Scope) error {
	var errs []error
	ntyp := 0
	for _, nm := range sc.Names() {
		tn, ok := sc.Lookup(nm).(*types.TypeName)
		if !ok {
			continue
		}
		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}
		ntyp++
		for _, err := range CheckStruct(sizes, st) {
			errs = append(errs, fmt.Errorf("%s: %w", nm, err))
		}
	}
	if ntyp == 0 {
		for i := 0; i < sc.NumChildren(); i++ {
			if err := CheckScope(sizes, sc.Child(i)); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
