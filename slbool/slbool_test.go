// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slbool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogic(t *testing.T) {
	vals := []Bool{False, True}
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, FromBool(a.Bool() && b.Bool()), a.And(b))
			assert.Equal(t, FromBool(a.Bool() || b.Bool()), a.Or(b))
			assert.Equal(t, FromBool(a.Bool() != b.Bool()), a.Xor(b))
		}
		assert.Equal(t, FromBool(!a.Bool()), a.Not())
	}
	// non-canonical true values still behave as true
	assert.True(t, Bool(7).IsTrue())
	assert.Equal(t, False, Bool(7).Not())
	assert.Equal(t, True, Bool(-1).And(True))
}

func TestString(t *testing.T) {
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())

	var b Bool
	b.FromString("True")
	assert.Equal(t, True, b)
	b.FromString("nope")
	assert.Equal(t, False, b)
}

func TestText(t *testing.T) {
	type rec struct {
		On  Bool
		Off Bool
	}
	data, err := json.Marshal(rec{On: True})
	require.NoError(t, err)
	assert.JSONEq(t, `{"On":"true","Off":"false"}`, string(data))

	var r rec
	require.NoError(t, json.Unmarshal([]byte(`{"On":"false","Off":"true"}`), &r))
	assert.Equal(t, rec{On: False, Off: True}, r)
}

func TestSetAny(t *testing.T) {
	var b Bool
	require.NoError(t, b.SetAny(true))
	assert.Equal(t, True, b)
	require.NoError(t, b.SetAny("false"))
	assert.Equal(t, False, b)
	require.NoError(t, b.SetAny(1))
	assert.Equal(t, True, b)
	assert.Error(t, b.SetAny(struct{}{}))
}
