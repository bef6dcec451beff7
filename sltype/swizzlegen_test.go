// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goki.dev/slvec/slbool"
	"goki.dev/slvec/swizzle"
)

// components returns the components of a vector or scalar value.
func components(v reflect.Value) []slbool.Bool {
	if v.Kind() != reflect.Struct {
		return []slbool.Bool{v.Interface().(slbool.Bool)}
	}
	cs := make([]slbool.Bool, v.NumField())
	for i := range cs {
		cs[i] = v.Field(i).Interface().(slbool.Bool)
	}
	return cs
}

// checkSwizzles calls every swizzle getter and setter of the vector
// pointed to by ptr, which must have size components.
func checkSwizzles(t *testing.T, ptr any, size int) {
	pv := reflect.ValueOf(ptr)
	vv := pv.Elem()
	typ := vv.Type()
	// distinct component values so that reorderings are visible
	for i := 0; i < size; i++ {
		vv.Field(i).SetInt(int64(i + 1))
	}
	orig := vv.Interface()

	getters, setters := 0, 0
	for _, a := range []swizzle.Alphabet{swizzle.XYZW, swizzle.RGBA} {
		for _, sw := range swizzle.Enumerate(a, size, 1, 4) {
			name := sw.Upper()
			if _, isField := typ.FieldByName(name); isField {
				continue
			}
			get := vv.MethodByName(name)
			require.True(t, get.IsValid(), "%s.%s missing", typ.Name(), name)
			getters++
			got := components(get.Call(nil)[0])
			require.Len(t, got, sw.Len(), name)
			for i, ci := range sw.Indexes {
				assert.Equal(t, slbool.Bool(ci+1), got[i], "%s.%s[%d]", typ.Name(), name, i)
			}

			set := pv.MethodByName("Set" + name)
			if sw.ReadOnly() {
				assert.False(t, set.IsValid(), "%s.Set%s should not exist", typ.Name(), name)
				continue
			}
			require.True(t, set.IsValid(), "%s.Set%s missing", typ.Name(), name)
			setters++
			arg := reflect.New(set.Type().In(0)).Elem()
			if arg.Kind() == reflect.Struct {
				for i := 0; i < arg.NumField(); i++ {
					arg.Field(i).SetInt(int64(10 * (i + 1)))
				}
			} else {
				arg.SetInt(10)
			}
			set.Call([]reflect.Value{arg})
			for i, ci := range sw.Indexes {
				assert.Equal(t, slbool.Bool(10*(i+1)), slbool.Bool(vv.Field(ci).Int()), "%s.Set%s[%d]", typ.Name(), name, i)
			}
			vv.Set(reflect.ValueOf(orig))
		}
	}
	// each alphabet except XYZW contributes its single component accessors
	nmeth := 0
	for n := 1; n <= 4; n++ {
		total, _ := swizzle.Count(size, n)
		nmeth += 2 * total
	}
	assert.Equal(t, nmeth-size, getters)
	t.Logf("%s: %d getters, %d setters", typ.Name(), getters, setters)
}

func TestSwizzles(t *testing.T) {
	checkSwizzles(t, &Bool2{}, 2)
	checkSwizzles(t, &Bool3{}, 3)
	checkSwizzles(t, &Bool4{}, 4)
}

func TestBool4Swizzles(t *testing.T) {
	v := NewBool4(true, false, true, false)
	assert.Equal(t, NewBool2(true, false), v.XY())
	assert.Equal(t, NewBool3(false, true, false), v.YZW())
	assert.Equal(t, NewBool4(false, true, false, true), v.WZYX())
	assert.Equal(t, NewBool4(true, true, true, true), v.XXZZ())
	assert.Equal(t, v.ZYXW(), v.BGRA())
	assert.Equal(t, slbool.False, v.A())

	v.SetZW(NewBool2(false, true))
	assert.Equal(t, NewBool4(true, false, false, true), v)
	v.SetBGR(NewBool3(true, true, false))
	assert.Equal(t, NewBool4(false, true, true, true), v)
	v.SetR(slbool.True)
	assert.Equal(t, slbool.True, v.X)

	_, hasSetXX := reflect.TypeOf(&v).MethodByName("SetXX")
	assert.False(t, hasSetXX)
}
