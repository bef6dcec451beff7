// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzle defines which component letter sequences are valid
// shading-language swizzles of a vector, and which of them can be
// written to.
//
// A swizzle selects and reorders up to 4 vector components by letter,
// as in v.xyz or v.bgra. Letters come from one alphabet per swizzle.
// A swizzle that names the same component twice is read-only.
package swizzle

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLen is the longest swizzle, and the largest vector size.
const MaxLen = 4

// Alphabet is an ordered set of component letters, where the
// letter at index i names component i.
type Alphabet string

const (
	XYZW      Alphabet = "XYZW"
	RGBA      Alphabet = "RGBA"
	LowerXYZW Alphabet = "xyzw"
	LowerRGBA Alphabet = "rgba"
)

// Alphabets are all the known alphabets, in lookup order.
var Alphabets = []Alphabet{XYZW, RGBA, LowerXYZW, LowerRGBA}

// Errors returned by [Parse], wrapped with the offending name.
var (
	ErrEmpty            = errors.New("empty swizzle")
	ErrTooLong          = errors.New("swizzle longer than 4 components")
	ErrUnknownComponent = errors.New("unknown swizzle component")
	ErrMixedAlphabets   = errors.New("swizzle mixes component alphabets")
	ErrOutOfRange       = errors.New("swizzle component out of range")
)

// Index returns the component index of letter c, or -1.
func (a Alphabet) Index(c byte) int {
	return strings.IndexByte(string(a), c)
}

// Name returns the letters for the given component indexes.
func (a Alphabet) Name(idxs []int) string {
	var sb strings.Builder
	for _, i := range idxs {
		sb.WriteByte(a[i])
	}
	return sb.String()
}

// Swizzle is one component selection.
type Swizzle struct {
	// Name is the letter sequence, e.g. "XYZ"
	Name string

	// Alphabet the Name is spelled in
	Alphabet Alphabet

	// Indexes are the selected component indexes, in order
	Indexes []int
}

// New returns the swizzle selecting idxs, spelled in alphabet a.
func New(a Alphabet, idxs ...int) Swizzle {
	return Swizzle{Name: a.Name(idxs), Alphabet: a, Indexes: idxs}
}

// Len returns the number of selected components, which is the
// size of the resulting vector.
func (s Swizzle) Len() int {
	return len(s.Indexes)
}

// ReadOnly returns true if a component is selected more than once,
// in which case the swizzle cannot be assigned to.
// Indexes out of range of any vector are compared like the others.
func (s Swizzle) ReadOnly() bool {
	for i, ci := range s.Indexes {
		for _, cj := range s.Indexes[i+1:] {
			if ci == cj {
				return true
			}
		}
	}
	return false
}

// Lower returns the shading-language spelling, e.g. "xyz" or "bgra".
func (s Swizzle) Lower() string {
	return strings.ToLower(s.Name)
}

// Upper returns the Go method spelling, e.g. "XYZ" or "BGRA".
func (s Swizzle) Upper() string {
	return strings.ToUpper(s.Name)
}

func (s Swizzle) String() string {
	return s.Name
}

// Parse validates name as a swizzle of a vector with size components.
func Parse(name string, size int) (Swizzle, error) {
	switch {
	case name == "":
		return Swizzle{}, ErrEmpty
	case len(name) > MaxLen:
		return Swizzle{}, fmt.Errorf("%q: %w", name, ErrTooLong)
	}
	var alpha Alphabet
	for _, a := range Alphabets {
		if a.Index(name[0]) >= 0 {
			alpha = a
			break
		}
	}
	if alpha == "" {
		return Swizzle{}, fmt.Errorf("%q: %w %q", name, ErrUnknownComponent, name[0])
	}
	idxs := make([]int, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		ci := alpha.Index(c)
		if ci < 0 {
			if Lookup(c) {
				return Swizzle{}, fmt.Errorf("%q: %w", name, ErrMixedAlphabets)
			}
			return Swizzle{}, fmt.Errorf("%q: %w %q", name, ErrUnknownComponent, c)
		}
		if ci >= size {
			return Swizzle{}, fmt.Errorf("%q: %w: %q on a %d component vector", name, ErrOutOfRange, c, size)
		}
		idxs[i] = ci
	}
	return Swizzle{Name: name, Alphabet: alpha, Indexes: idxs}, nil
}

// Lookup returns true if c is a component letter in any alphabet.
func Lookup(c byte) bool {
	for _, a := range Alphabets {
		if a.Index(c) >= 0 {
			return true
		}
	}
	return false
}

// Enumerate returns every swizzle of a vector with size components,
// spelled in alphabet a, for arities minArity through maxArity.
// Swizzles are ordered by arity, then lexicographically by
// component index.
func Enumerate(a Alphabet, size, minArity, maxArity int) []Swizzle {
	size = min(size, len(a))
	minArity = max(minArity, 1)
	maxArity = min(maxArity, MaxLen)
	if size < 1 {
		return nil
	}
	var sws []Swizzle
	for n := minArity; n <= maxArity; n++ {
		idxs := make([]int, n)
		for {
			sws = append(sws, New(a, append([]int(nil), idxs...)...))
			// odometer increment, last index fastest
			d := n - 1
			for d >= 0 {
				idxs[d]++
				if idxs[d] < size {
					break
				}
				idxs[d] = 0
				d--
			}
			if d < 0 {
				break
			}
		}
	}
	return sws
}

// Count returns the number of swizzles of the given arity on a
// vector with size components, and how many of them are writable.
func Count(size, arity int) (total, writable int) {
	if arity < 1 || arity > MaxLen || size < 1 {
		return 0, 0
	}
	total, writable = 1, 1
	for i := 0; i < arity; i++ {
		total *= size
		writable *= max(size-i, 0)
	}
	return
}
