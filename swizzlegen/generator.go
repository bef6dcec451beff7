// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"goki.dev/slvec/alignsl"
	"goki.dev/slvec/swizzle"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

// Directive marks a vector type for swizzle generation
// when no explicit type list is configured.
const Directive = "//gosl:swizzle"

// Generator holds the state of the generator.
// It is primarily used to buffer the output.
type Generator struct {
	Config  *Config             // The configuration information
	Buf     bytes.Buffer        // The accumulated output
	Pkgs    []*packages.Package // The packages we are scanning
	Pkg     *packages.Package   // The package we are currently on
	Types   []*Type             // The vector types of the current package
	Imports map[string]string   // The import paths and names the output needs
	alphas  []swizzle.Alphabet  // parsed [Config.Alphabets]
	outFile string              // absolute path of the output file
}

// NewGenerator returns a new generator with the
// given configuration information.
func NewGenerator(c *Config) *Generator {
	return &Generator{Config: c}
}

// ParsePackage parses the single package located in the configuration directory.
func (g *Generator) ParsePackage() error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedTypesSizes,
		Dir:   g.Config.Dir,
		Tests: false,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return err
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("expected 1 package, but found %d packages", len(pkgs))
	}
	g.Pkgs = pkgs
	return nil
}

// Find finds the vector types of the current package and computes
// their accessors. It returns whether there were any.
func (g *Generator) Find() (bool, error) {
	var err error
	g.alphas, err = g.Config.AlphabetList()
	if err != nil {
		return false, err
	}
	if len(g.Pkg.GoFiles) == 0 {
		return false, fmt.Errorf("no Go files found in package %q", g.Pkg.Name)
	}
	for _, perr := range g.Pkg.Errors {
		// a stale output file is replaced below
		slog.Warn("swizzlegen: package error", "err", perr.Error())
	}
	out := g.Config.Output
	if !filepath.IsAbs(out) {
		out = filepath.Join(filepath.Dir(g.Pkg.GoFiles[0]), out)
	}
	g.outFile, err = filepath.Abs(out)
	if err != nil {
		return false, err
	}
	g.Types = nil
	g.Imports = map[string]string{}

	names := g.Config.TypeNames()
	if len(names) == 0 {
		names = g.DirectiveTypes()
	}
	for _, nm := range names {
		typ, err := g.VectorType(nm)
		if err != nil {
			return false, err
		}
		err = g.AddMethods(typ)
		if err != nil {
			return false, err
		}
		g.Types = append(g.Types, typ)
	}
	return len(g.Types) > 0, nil
}

// DirectiveTypes returns the names of the types in the current
// package with a [Directive] in their doc comment, in source order.
func (g *Generator) DirectiveTypes() []string {
	var names []string
	for _, file := range g.Pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				if hasDirective(doc) {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}
	return names
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}
	return false
}

// VectorType looks up the named vector type in the current package.
func (g *Generator) VectorType(name string) (*Type, error) {
	tn, ok := g.Pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("type %q not found in package %q", name, g.Pkg.Name)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%q is not a named type", name)
	}
	n, elem, ok := VectorType(named)
	if !ok {
		return nil, fmt.Errorf("%q is not a vector type: it must be a struct with fields %s of one type", name, strings.Join(ComponentFields, ", "))
	}
	for _, err := range alignsl.CheckFields(named.Underlying().(*types.Struct)) {
		slog.Warn("swizzlegen: layout", "type", name, "err", err)
	}
	return &Type{Name: name, Named: named, Size: n, Elem: elem}, nil
}

// Declared returns the field and method names of t, except those
// declared in the output file.
func (g *Generator) Declared(t *Type) map[string]bool {
	decl := map[string]bool{}
	st := t.Named.Underlying().(*types.Struct)
	for i := 0; i < st.NumFields(); i++ {
		decl[st.Field(i).Name()] = true
	}
	ms := types.NewMethodSet(types.NewPointer(t.Named))
	for i := 0; i < ms.Len(); i++ {
		obj := ms.At(i).Obj()
		if g.inOutput(obj.Pos()) {
			continue
		}
		decl[obj.Name()] = true
	}
	return decl
}

func (g *Generator) inOutput(pos token.Pos) bool {
	fn := g.Pkg.Fset.Position(pos).Filename
	if fn == "" {
		return false
	}
	afn, err := filepath.Abs(fn)
	return err == nil && afn == g.outFile
}

// qualifier names types from other packages by package name,
// recording the imports the output needs.
func (g *Generator) qualifier(p *types.Package) string {
	if p == g.Pkg.Types {
		return ""
	}
	g.Imports[p.Path()] = p.Name()
	return p.Name()
}

// Result returns the type a swizzle of n components of t evaluates to:
// the element type for 1, and otherwise the sibling vector type of
// that size, e.g. Bool2 for a 2 component swizzle of Bool4.
func (g *Generator) Result(t *Type, n int) (string, []string, error) {
	if n == 1 {
		return types.TypeString(t.Elem, g.qualifier), nil, nil
	}
	name := t.Name
	if n != t.Size {
		name = BaseName(t.Name) + strconv.Itoa(n)
	}
	tn, ok := g.Pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return "", nil, fmt.Errorf("%s needs type %s for %d component swizzles", t.Name, name, n)
	}
	rn, elem, ok := VectorType(tn.Type())
	if !ok || rn != n || !types.Identical(elem, t.Elem) {
		return "", nil, fmt.Errorf("%s: %s is not a %d component vector of %s", t.Name, name, n, t.Elem)
	}
	return name, ComponentFields[:n], nil
}

// AddMethods computes the accessors of t.
func (g *Generator) AddMethods(t *Type) error {
	decl := g.Declared(t)
	results := map[int]string{}
	fields := map[int][]string{}
	for n := max(g.Config.MinArity, 1); n <= min(g.Config.MaxArity, swizzle.MaxLen); n++ {
		res, rfields, err := g.Result(t, n)
		if err != nil {
			return err
		}
		results[n], fields[n] = res, rfields
	}
	for _, a := range g.alphas {
		for _, sw := range swizzle.Enumerate(a, t.Size, g.Config.MinArity, g.Config.MaxArity) {
			name := sw.Upper()
			if decl[name] {
				continue
			}
			res, rfields := results[sw.Len()], fields[sw.Len()]
			m := &Method{Name: name, Result: res, Doc: "swizzle"}
			srcs := make([]string, sw.Len())
			for i, ci := range sw.Indexes {
				srcs[i] = "v." + ComponentFields[ci]
			}
			if rfields == nil {
				m.Doc = "component"
				m.Get = srcs[0]
				m.Set = srcs[0] + " = s"
			} else {
				m.Get = res + "{" + strings.Join(srcs, ", ") + "}"
				dsts := make([]string, len(rfields))
				for i, f := range rfields {
					dsts[i] = "s." + f
				}
				m.Set = strings.Join(srcs, ", ") + " = " + strings.Join(dsts, ", ")
			}
			m.Settable = g.Config.Setters && !sw.ReadOnly() && !decl["Set"+name]
			t.Methods = append(t.Methods, m)
		}
	}
	return nil
}

// PrintHeader prints the header and package clause
// to the accumulated output
func (g *Generator) PrintHeader() {
	g.ExecTmpl(HeaderTmpl, g)
}

// Format returns the formatted contents of the accumulated output buffer.
func (g *Generator) Format() ([]byte, error) {
	b, err := imports.Process(g.outFile, g.Buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("internal/programmer error: could not format Go code: %w", err)
	}
	return b, nil
}

// Write formats the data in the accumulated output buffer
// and writes it to the output file.
func (g *Generator) Write() error {
	b, err := g.Format()
	if err != nil {
		return err
	}
	return os.WriteFile(g.outFile, b, 0666)
}

// OutputFile returns the absolute path of the output file
// of the current package, set by [Generator.Find].
func (g *Generator) OutputFile() string {
	return g.outFile
}
