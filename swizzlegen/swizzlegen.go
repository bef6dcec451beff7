// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzlegen generates shading-language swizzle accessor
// methods for Go vector types: one getter for every valid component
// sequence, and a Set method for each sequence that does not
// repeat a component.
package swizzlegen

import (
	"fmt"
	"log/slog"
)

// Generate generates swizzle methods for the vector types in the
// package in the config directory, writing them to the config
// output file.
func Generate(c *Config) error {
	g := NewGenerator(c)
	err := g.ParsePackage()
	if err != nil {
		return fmt.Errorf("swizzlegen: error parsing package: %w", err)
	}
	for _, pkg := range g.Pkgs {
		g.Pkg = pkg
		g.Buf.Reset()
		has, err := g.Find()
		if err != nil {
			return fmt.Errorf("swizzlegen: error finding vector types for package %q: %w", pkg.Name, err)
		}
		if !has {
			slog.Info("swizzlegen: no vector types found", "package", pkg.Name)
			continue
		}
		g.PrintHeader()
		for _, typ := range g.Types {
			g.ExecTmpl(MethodsTmpl, typ)
		}
		err = g.Write()
		if err != nil {
			return fmt.Errorf("swizzlegen: error writing code: %w", err)
		}
	}
	return nil
}
