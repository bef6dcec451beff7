// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltrans

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"

	"goki.dev/slvec/swizzle"
	"golang.org/x/tools/go/ast/astutil"
)

// compareOps are the sltype comparison functions that HLSL
// writes as binary operators on vectors.
var compareOps = map[string]token.Token{
	"Less":         token.LSS,
	"LessEqual":    token.LEQ,
	"Greater":      token.GTR,
	"GreaterEqual": token.GEQ,
	"Equal":        token.EQL,
	"NotEqual":     token.NEQ,
}

// Lower parses the given Go source file and rewrites the vector
// accessor and operator method calls into their shading-language
// forms, returning the formatted result:
//
//	v.XYZ()       ->  v.xyz
//	v.SetXY(s)    ->  v.xy = s
//	v.Not()       ->  !v
//	v.And(o)      ->  and(v, o)
//	v.Or(o)       ->  or(v, o)
//	v.Xor(o)      ->  (v != o)
//	v.Equal(o)    ->  (v == o)
//	v.NotEqual(o) ->  (v != o)
//	v.Any()       ->  any(v)
//	v.All()       ->  all(v)
//	sltype.Less4(a, b) -> (a < b), and likewise for the other comparisons
//
// Functions and methods named in exclude are removed.
// The rewrite is syntactic: any method with these names is lowered.
func Lower(src []byte, exclude map[string]bool) ([]byte, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	excludeFuncs(f, exclude)
	return lowerFile(fset, f)
}

// lowerFile lowers f in place, returning its formatted Go code.
func lowerFile(fset *token.FileSet, f *ast.File) ([]byte, error) {
	astutil.Apply(f, nil, lowerNode)
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// excludeFuncs removes the named functions and their comments.
func excludeFuncs(f *ast.File, exclude map[string]bool) {
	if len(exclude) == 0 {
		return
	}
	var dropped []*ast.FuncDecl
	decls := f.Decls[:0]
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && exclude[fd.Name.Name] {
			dropped = append(dropped, fd)
			continue
		}
		decls = append(decls, d)
	}
	f.Decls = decls
	if len(dropped) == 0 {
		return
	}
	cmts := f.Comments[:0]
	for _, cg := range f.Comments {
		inside := false
		for _, fd := range dropped {
			if cg == fd.Doc || (cg.Pos() >= fd.Pos() && cg.End() <= fd.End()) {
				inside = true
				break
			}
		}
		if !inside {
			cmts = append(cmts, cg)
		}
	}
	f.Comments = cmts
}

// IsSwizzle returns true if name is the Go method spelling of a
// swizzle: 1 to 4 upper case letters from XYZW or RGBA.
func IsSwizzle(name string) bool {
	sw, err := swizzle.Parse(name, swizzle.MaxLen)
	if err != nil {
		return false
	}
	return sw.Alphabet == swizzle.XYZW || sw.Alphabet == swizzle.RGBA
}

func lowerNode(c *astutil.Cursor) bool {
	switch n := c.Node().(type) {
	case *ast.ExprStmt:
		call, ok := n.X.(*ast.CallExpr)
		if !ok || len(call.Args) != 1 {
			break
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || len(sel.Sel.Name) < 4 || sel.Sel.Name[:3] != "Set" {
			break
		}
		name := sel.Sel.Name[3:]
		if !IsSwizzle(name) {
			break
		}
		c.Replace(&ast.AssignStmt{
			Lhs: []ast.Expr{swizzleExpr(sel.X, name)},
			Tok: token.ASSIGN,
			Rhs: call.Args,
		})
	case *ast.CallExpr:
		if e := lowerCall(n); e != nil {
			c.Replace(e)
		}
	}
	return true
}

// lowerCall returns the lowered form of call, or nil.
func lowerCall(call *ast.CallExpr) ast.Expr {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil
	}
	name := sel.Sel.Name
	args := call.Args
	if pkg, ok := sel.X.(*ast.Ident); ok && pkg.Name == "sltype" {
		if len(args) != 2 || len(name) < 2 {
			return nil
		}
		size := name[len(name)-1]
		if size < '2' || size > '4' {
			return nil
		}
		if op, ok := compareOps[name[:len(name)-1]]; ok {
			return binary(args[0], op, args[1])
		}
		return nil
	}
	switch {
	case len(args) == 0 && IsSwizzle(name):
		return swizzleExpr(sel.X, name)
	case len(args) == 0 && name == "Not":
		return &ast.UnaryExpr{Op: token.NOT, X: sel.X}
	case len(args) == 0 && (name == "Any" || name == "All"):
		return intrinsic(name, sel.X)
	case len(args) == 1 && (name == "And" || name == "Or"):
		return intrinsic(name, sel.X, args[0])
	case len(args) == 1 && (name == "Xor" || name == "NotEqual"):
		return binary(sel.X, token.NEQ, args[0])
	case len(args) == 1 && name == "Equal":
		return binary(sel.X, token.EQL, args[0])
	}
	return nil
}

func swizzleExpr(x ast.Expr, name string) ast.Expr {
	sw, _ := swizzle.Parse(name, swizzle.MaxLen)
	return &ast.SelectorExpr{X: x, Sel: ast.NewIdent(sw.Lower())}
}

// intrinsic returns a call of the lower case HLSL intrinsic
// with the given Go method name.
func intrinsic(name string, args ...ast.Expr) ast.Expr {
	fn := string(name[0]-'A'+'a') + name[1:]
	return &ast.CallExpr{Fun: ast.NewIdent(fn), Args: args}
}

func binary(x ast.Expr, op token.Token, y ast.Expr) ast.Expr {
	return &ast.ParenExpr{X: &ast.BinaryExpr{X: x, Op: op, Y: y}}
}
