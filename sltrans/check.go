// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltrans

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"goki.dev/slvec/alignsl"
	"golang.org/x/tools/go/packages"
)

// Importer provides the packages imported by the files that
// gosl regions are extracted from, so that the regions can be
// type checked on their own.
type Importer struct {

	// Names are the local names of the imports, keyed by path
	Names map[string]string

	// Pkgs are the loaded packages, keyed by path
	Pkgs map[string]*types.Package

	// Sizes are the sizes used for layout checks
	Sizes types.Sizes
}

// LoadImports collects the imports of the given .go files and
// loads their type information, resolving them from the directory
// of the first file.
func LoadImports(files []string) (*Importer, error) {
	im := &Importer{
		Names: map[string]string{},
		Pkgs:  map[string]*types.Package{},
		Sizes: types.SizesFor("gc", runtime.GOARCH),
	}
	fset := token.NewFileSet()
	dir := ""
	for _, fn := range files {
		if !strings.HasSuffix(fn, ".go") {
			continue
		}
		f, err := parser.ParseFile(fset, fn, nil, parser.ImportsOnly)
		if err != nil {
			return nil, err
		}
		if dir == "" {
			dir = filepath.Dir(fn)
		}
		for _, is := range f.Imports {
			path, err := strconv.Unquote(is.Path.Value)
			if err != nil || path == "C" {
				continue
			}
			name := ""
			if is.Name != nil {
				name = is.Name.Name
			}
			if name == "_" || name == "." {
				continue
			}
			if _, has := im.Names[path]; !has || name != "" {
				im.Names[path] = name
			}
		}
	}
	if len(im.Names) == 0 {
		return im, nil
	}
	paths := sortedKeys(im.Names)
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesSizes,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, paths...)
	if err != nil {
		return nil, err
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("loading %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		im.Pkgs[pkg.PkgPath] = pkg.Types
		if pkg.TypesSizes != nil {
			im.Sizes = pkg.TypesSizes
		}
	}
	return im, nil
}

// Import implements [types.Importer].
func (im *Importer) Import(path string) (*types.Package, error) {
	if pkg, ok := im.Pkgs[path]; ok {
		return pkg, nil
	}
	return nil, fmt.Errorf("package %q is not imported by any of the processed files", path)
}

// ImportDecl returns the import declaration for a region source file.
func (im *Importer) ImportDecl() string {
	if len(im.Names) == 0 {
		return ""
	}
	paths := sortedKeys(im.Names)
	var b strings.Builder
	b.WriteString("import (\n")
	for _, path := range paths {
		b.WriteString("\t")
		if nm := im.Names[path]; nm != "" {
			b.WriteString(nm + " ")
		}
		b.WriteString(strconv.Quote(path) + "\n")
	}
	b.WriteString(")\n\n")
	return b.String()
}

// Check type checks the region file f. Unused variables and imports
// are allowed, because a region only uses part of the imports of
// the files it comes from.
func (im *Importer) Check(fset *token.FileSet, f *ast.File) (*types.Package, *types.Info, error) {
	info := &types.Info{
		Types:      map[ast.Expr]types.TypeAndValue{},
		Defs:       map[*ast.Ident]types.Object{},
		Uses:       map[*ast.Ident]types.Object{},
		Selections: map[*ast.SelectorExpr]*types.Selection{},
	}
	var errs []error
	conf := types.Config{
		Importer: im,
		Sizes:    im.Sizes,
		Error: func(err error) {
			if terr, ok := err.(types.Error); ok && terr.Soft {
				return
			}
			errs = append(errs, err)
		},
	}
	pkg, _ := conf.Check("main", fset, []*ast.File{f}, info)
	return pkg, info, errors.Join(errs...)
}

// CheckLayout checks the struct types of a type checked region
// with alignsl.
func (im *Importer) CheckLayout(pkg *types.Package) error {
	return alignsl.CheckPackage(&packages.Package{Name: pkg.Name(), Types: pkg, TypesSizes: im.Sizes})
}
