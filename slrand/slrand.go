// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slrand is a stateless, counter-based Philox2x32 random number
// generator that gives the same results in Go on the CPU as in the
// matching HLSL code on the GPU.
//
// Each call is a pure function of a counter and a key: the key is
// normally the index of the element being updated, and the counter is
// advanced with [CounterIncr] once all elements have drawn their values.
package slrand

import (
	"goki.dev/mat32/v2"
	"goki.dev/slvec/slbool"
	"goki.dev/slvec/sltype"
)

const (
	philoxMul  = 0xD256D193
	philoxBump = 0x9E3779B9

	// philoxRounds is the number of rounds of [Philox2x32]
	philoxRounds = 10
)

// MulHiLo64 returns the low and high 32 bits of the 64 bit product a*b.
func MulHiLo64(a, b uint32) (lo, hi uint32) {
	prod := uint64(a) * uint64(b)
	return uint32(prod), uint32(prod >> 32)
}

// Philox2x32round does one round of updating of the counter.
func Philox2x32round(counter *sltype.Uint2, key uint32) {
	lo, hi := MulHiLo64(philoxMul, counter.X)
	counter.X, counter.Y = hi^key^counter.Y, lo
}

// Philox2x32bumpkey does one round of updating of the key.
func Philox2x32bumpkey(key *uint32) {
	*key += philoxBump
}

// Philox2x32 returns two random uint32 values
// determined by the counter and key.
func Philox2x32(counter sltype.Uint2, key uint32) sltype.Uint2 {
	for i := 1; i < philoxRounds; i++ {
		Philox2x32round(&counter, key)
		Philox2x32bumpkey(&key)
	}
	Philox2x32round(&counter, key)
	return counter
}

// Uint32ToFloat maps val onto a float32 in [0..1), exclusive of 1.
func Uint32ToFloat(val uint32) float32 {
	const factor = float32(1.) / (float32(0xffffffff) + float32(1.))
	const halffactor = float32(0.5) * factor
	return float32(val)*factor + halffactor
}

// Uint32ToFloat11 maps val onto a float32 in [-1..1].
func Uint32ToFloat11(val uint32) float32 {
	const factor = float32(1.) / (float32(0xffffffff) + float32(1.))
	const halffactor = float32(0.5) * factor
	return 2.0 * (float32(int32(val))*factor + halffactor)
}

// Uint2ToFloat maps both values onto [0..1), see [Uint32ToFloat].
func Uint2ToFloat(val sltype.Uint2) sltype.Float2 {
	return sltype.Float2{X: Uint32ToFloat(val.X), Y: Uint32ToFloat(val.Y)}
}

// CounterIncr increments the counter as one 64 bit integer,
// with X as the low word.
func CounterIncr(counter *sltype.Uint2) {
	if counter.X == 0xffffffff {
		counter.Y++
		counter.X = 0
		return
	}
	counter.X++
}

// RandUint2 returns two uniformly distributed uint32 values.
func RandUint2(counter sltype.Uint2, key uint32) sltype.Uint2 {
	return Philox2x32(counter, key)
}

// RandUint32 returns a uniformly distributed uint32.
func RandUint32(counter sltype.Uint2, key uint32) uint32 {
	return Philox2x32(counter, key).X
}

// RandFloat2 returns two uniformly distributed floats in [0..1).
func RandFloat2(counter sltype.Uint2, key uint32) sltype.Float2 {
	return Uint2ToFloat(RandUint2(counter, key))
}

// RandFloat returns a uniformly distributed float in [0..1).
func RandFloat(counter sltype.Uint2, key uint32) float32 {
	return Uint32ToFloat(RandUint32(counter, key))
}

// RandFloat11 returns a uniformly distributed float in [-1..1).
func RandFloat11(counter sltype.Uint2, key uint32) float32 {
	return Uint32ToFloat11(RandUint32(counter, key))
}

// RandBoolP returns true with probability p.
func RandBoolP(counter sltype.Uint2, key uint32, p float32) bool {
	return RandFloat(counter, key) < p
}

// RandBool returns [slbool.True] with probability p.
func RandBool(counter sltype.Uint2, key uint32, p float32) slbool.Bool {
	return slbool.FromBool(RandBoolP(counter, key, p))
}

// RandBool4 returns a vector whose components are each true
// with probability p. X and Y come from the counter, and Z and W
// from the counter with its high word complemented, so all four
// are independent draws for the same counter and key.
func RandBool4(counter sltype.Uint2, key uint32, p float32) sltype.Bool4 {
	xy := RandFloat2(counter, key)
	counter.Y = ^counter.Y
	zw := RandFloat2(counter, key)
	return sltype.Bool4{
		X: slbool.FromBool(xy.X < p),
		Y: slbool.FromBool(xy.Y < p),
		Z: slbool.FromBool(zw.X < p),
		W: slbool.FromBool(zw.Y < p),
	}
}

func sincospi(x float32) (s, c float32) {
	return mat32.Sincos(mat32.Pi * x)
}

// RandNormFloat2 returns two normally distributed floats with zero mean
// and unit variance, using the Box-Muller transform of one [RandUint2].
func RandNormFloat2(counter sltype.Uint2, key uint32) sltype.Float2 {
	ur := RandUint2(counter, key)
	var f sltype.Float2
	f.X, f.Y = sincospi(Uint32ToFloat11(ur.X))
	// Uint32ToFloat never returns 0
	r := mat32.Sqrt(-2. * mat32.Log(Uint32ToFloat(ur.Y)))
	return f.MulScalar(r)
}

// RandNormFloat returns a normally distributed float
// with zero mean and unit variance.
func RandNormFloat(counter sltype.Uint2, key uint32) float32 {
	return RandNormFloat2(counter, key).X
}
