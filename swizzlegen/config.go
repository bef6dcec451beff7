// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"fmt"
	"strings"

	"goki.dev/laser"
	"goki.dev/slvec/swizzle"
)

// Config contains the configuration information
// used by swizzlegen
type Config struct {

	// the source directory to run swizzlegen on
	Dir string `def:"." posarg:"0" required:"-"`

	// the output file location relative to the package on which swizzlegen is being called
	Output string `def:"swizzlegen.go"`

	// if specified, the vector type names to generate swizzles for;
	// otherwise types with a gosl:swizzle comment directive are used
	Types []string

	// the component alphabets to spell swizzles in; they must be
	// upper case so that the methods are exported
	Alphabets []string `def:"['XYZW','RGBA']"`

	// the smallest number of components in a generated swizzle
	MinArity int `def:"1"`

	// the largest number of components in a generated swizzle
	MaxArity int `def:"4"`

	// whether to generate Set methods for swizzles without repeated components
	Setters bool `def:"true"`
}

// Defaults sets the config fields from their default tags.
func (c *Config) Defaults() error {
	return laser.SetFromDefaultTags(c)
}

// TypeNames returns the explicitly requested type names, if any.
// Entries may themselves be comma-separated lists.
func (c *Config) TypeNames() []string {
	return splitList(c.Types)
}

// AlphabetList returns the configured alphabets, checking that
// each is a known upper case alphabet.
func (c *Config) AlphabetList() ([]swizzle.Alphabet, error) {
	var as []swizzle.Alphabet
	for _, s := range splitList(c.Alphabets) {
		a := swizzle.Alphabet(s)
		switch a {
		case swizzle.XYZW, swizzle.RGBA:
			as = append(as, a)
		case swizzle.LowerXYZW, swizzle.LowerRGBA:
			return nil, fmt.Errorf("alphabet %q would produce unexported methods", s)
		default:
			return nil, fmt.Errorf("unknown alphabet %q", s)
		}
	}
	if len(as) == 0 {
		return nil, fmt.Errorf("no alphabets in %v", c.Alphabets)
	}
	return as, nil
}

// splitList flattens comma-separated entries, dropping empty ones.
func splitList(list []string) []string {
	var res []string
	for _, s := range list {
		for _, f := range strings.Split(s, ",") {
			if f = strings.TrimSpace(f); f != "" {
				res = append(res, f)
			}
		}
	}
	return res
}
