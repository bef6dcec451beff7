// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateCounts(t *testing.T) {
	for size := 1; size <= 4; size++ {
		for arity := 1; arity <= 4; arity++ {
			sws := Enumerate(XYZW, size, arity, arity)
			total, writable := Count(size, arity)
			assert.Len(t, sws, total, "size %d arity %d", size, arity)
			nw := 0
			for _, s := range sws {
				if !s.ReadOnly() {
					nw++
				}
			}
			assert.Equal(t, writable, nw, "size %d arity %d", size, arity)
		}
	}

	getters, setters := 0, 0
	for _, s := range Enumerate(RGBA, 4, 2, 4) {
		getters++
		if !s.ReadOnly() {
			setters++
		}
	}
	assert.Equal(t, 336, getters)
	assert.Equal(t, 60, setters)
}

func TestEnumerateOrder(t *testing.T) {
	sws := Enumerate(XYZW, 3, 1, 2)
	var names []string
	for _, s := range sws {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"X", "Y", "Z",
		"XX", "XY", "XZ", "YX", "YY", "YZ", "ZX", "ZY", "ZZ",
	}, names)

	assert.Empty(t, Enumerate(XYZW, 0, 1, 4))
	assert.Len(t, Enumerate(XYZW, 4, 0, 9), 4+16+64+256)
}

func TestReadOnly(t *testing.T) {
	assert.False(t, New(XYZW, 0, 1, 2, 3).ReadOnly())
	assert.False(t, New(RGBA, 2, 1, 0).ReadOnly())
	assert.True(t, New(XYZW, 0, 0).ReadOnly())
	assert.True(t, New(XYZW, 3, 1, 3).ReadOnly())

	hand := Swizzle{Name: "?", Alphabet: XYZW, Indexes: []int{7, -1, 2}}
	assert.NotPanics(t, func() { hand.ReadOnly() })
	assert.False(t, hand.ReadOnly())
	hand.Indexes = []int{7, 1, 7}
	assert.True(t, hand.ReadOnly())
	assert.False(t, Swizzle{}.ReadOnly())
}

func TestParse(t *testing.T) {
	s, err := Parse("bgra", 4)
	require.NoError(t, err)
	assert.Equal(t, LowerRGBA, s.Alphabet)
	assert.Equal(t, []int{2, 1, 0, 3}, s.Indexes)
	assert.Equal(t, "BGRA", s.Upper())

	s, err = Parse("XY", 2)
	require.NoError(t, err)
	assert.Equal(t, "xy", s.Lower())
	assert.Equal(t, 2, s.Len())

	tests := []struct {
		name string
		size int
		err  error
	}{
		{"", 4, ErrEmpty},
		{"xyzwx", 4, ErrTooLong},
		{"xq", 4, ErrUnknownComponent},
		{"q", 4, ErrUnknownComponent},
		{"xg", 4, ErrMixedAlphabets},
		{"xY", 4, ErrMixedAlphabets},
		{"xyz", 2, ErrOutOfRange},
		{"A", 3, ErrOutOfRange},
	}
	for _, tt := range tests {
		_, err := Parse(tt.name, tt.size)
		assert.ErrorIs(t, err, tt.err, tt.name)
	}
}

func TestCount(t *testing.T) {
	total, writable := Count(4, 4)
	assert.Equal(t, 256, total)
	assert.Equal(t, 24, writable)

	total, writable = Count(2, 3)
	assert.Equal(t, 8, total)
	assert.Equal(t, 0, writable)

	total, writable = Count(4, 5)
	assert.Zero(t, total)
	assert.Zero(t, writable)
}
