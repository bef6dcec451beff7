// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/slvec/slbool"
	"goki.dev/slvec/sltype"
)

func TestCounterIncr(t *testing.T) {
	c := sltype.Uint2{X: 0xfffffffe}
	CounterIncr(&c)
	assert.Equal(t, sltype.Uint2{X: 0xffffffff}, c)
	CounterIncr(&c)
	assert.Equal(t, sltype.Uint2{X: 0, Y: 1}, c)
}

func TestMulHiLo64(t *testing.T) {
	lo, hi := MulHiLo64(0xffffffff, 2)
	assert.Equal(t, uint32(0xfffffffe), lo)
	assert.Equal(t, uint32(1), hi)
}

func TestRand(t *testing.T) {
	var counter sltype.Uint2
	for i := 0; i < 100; i++ {
		f := RandFloat(counter, 0)
		assert.GreaterOrEqual(t, f, float32(0))
		assert.Less(t, f, float32(1))
		f11 := RandFloat11(counter, 1)
		assert.GreaterOrEqual(t, f11, float32(-1))
		assert.LessOrEqual(t, f11, float32(1))
		assert.Equal(t, f, RandFloat(counter, 0), "same counter and key")
		assert.Equal(t, RandFloat2(counter, 0).X, f)
		assert.False(t, RandBoolP(counter, 0, 0))
		assert.True(t, RandBoolP(counter, 0, 1))
		CounterIncr(&counter)
	}
	assert.NotEqual(t, RandUint32(counter, 0), RandUint32(counter, 1))
}

func TestRandNorm(t *testing.T) {
	var counter sltype.Uint2
	n := 2000
	var sum, ss float32
	for i := 0; i < n; i++ {
		f := RandNormFloat(counter, 3)
		sum += f
		ss += f * f
		CounterIncr(&counter)
	}
	mean := sum / float32(n)
	assert.InDelta(t, 0, mean, 0.15)
	assert.InDelta(t, 1, ss/float32(n)-mean*mean, 0.2)
}

func TestRandBool(t *testing.T) {
	var counter sltype.Uint2
	assert.Equal(t, slbool.False, RandBool(counter, 0, 0))
	assert.Equal(t, slbool.True, RandBool(counter, 0, 1))
	assert.Equal(t, sltype.Bool4Scalar(false), RandBool4(counter, 0, 0))
	assert.Equal(t, sltype.Bool4Scalar(true), RandBool4(counter, 0, 1))

	n := 1000
	trues := [4]int{}
	for i := 0; i < n; i++ {
		b := RandBool4(counter, 7, 0.25)
		for c := 0; c < 4; c++ {
			if b.Component(c).IsTrue() {
				trues[c]++
			}
		}
		assert.Equal(t, RandBool(counter, 7, 0.25), b.X)
		CounterIncr(&counter)
	}
	for c := 0; c < 4; c++ {
		assert.InDelta(t, 250, trues[c], 60, "component %d", c)
	}
}
