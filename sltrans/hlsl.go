// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltrans

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strconv"
	"strings"
)

// vectorTypes are the HLSL names of the Go vector and shader scalar types.
var vectorTypes = map[string]string{
	"goki.dev/slvec/slbool.Bool":  "int",
	"goki.dev/slvec/sltype.Bool2": "int2",
	"goki.dev/slvec/sltype.Bool3": "int3",
	"goki.dev/slvec/sltype.Bool4": "int4",
	"goki.dev/slvec/sltype.Uint2": "uint2",
	"goki.dev/mat32/v2.Vec2":      "float2",
	"goki.dev/mat32/v2.Vec3":      "float3",
	"goki.dev/mat32/v2.Vec4":      "float4",
}

// hlslPrinter prints a lowered, type checked region file as HLSL.
type hlslPrinter struct {
	buf    bytes.Buffer
	fset   *token.FileSet
	info   *types.Info
	pkg    *types.Package
	indent int

	// free comments not attached to a declaration, in source order
	free []*ast.CommentGroup

	// methods by receiver type name, printed inside their struct
	methods map[string][]*ast.FuncDecl

	// receiver name of the method being printed
	recv string

	err error
}

// PrintHLSL prints the type checked region file f as HLSL code.
// info must come from type checking f before it was lowered, and
// pkg is the checked region package.
//
// Methods are printed as member functions of their struct, with
// the receiver fields accessed directly. Pointer parameters become
// inout parameters. Short variable declarations get the type that
// was inferred for them. Free comments, such as the commented HLSL
// code of hlsl regions, are kept in place.
func PrintHLSL(fset *token.FileSet, f *ast.File, info *types.Info, pkg *types.Package) ([]byte, error) {
	p := &hlslPrinter{fset: fset, info: info, pkg: pkg, methods: map[string][]*ast.FuncDecl{}}
	structs := map[string]bool{}
	for _, d := range f.Decls {
		if gd, ok := d.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
			for _, s := range gd.Specs {
				ts := s.(*ast.TypeSpec)
				if _, ok := ts.Type.(*ast.StructType); ok {
					structs[ts.Name.Name] = true
				}
			}
		}
	}
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Recv == nil {
			continue
		}
		rt := recvTypeName(fd)
		if !structs[rt] {
			return nil, fmt.Errorf("method %s.%s: receiver struct %s is not declared in the region", rt, fd.Name.Name, rt)
		}
		p.methods[rt] = append(p.methods[rt], fd)
	}
	p.free = freeComments(f)

	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && fd.Recv != nil {
			continue
		}
		p.flushComments(declStart(d))
		p.decl(d)
	}
	p.flushComments(token.NoPos)
	if p.err != nil {
		return nil, p.err
	}
	return p.buf.Bytes(), nil
}

func recvTypeName(fd *ast.FuncDecl) string {
	rt := fd.Recv.List[0].Type
	if st, ok := rt.(*ast.StarExpr); ok {
		rt = st.X
	}
	if id, ok := rt.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func declStart(d ast.Decl) token.Pos {
	switch d := d.(type) {
	case *ast.FuncDecl:
		if d.Doc != nil {
			return d.Doc.Pos()
		}
	case *ast.GenDecl:
		if d.Doc != nil {
			return d.Doc.Pos()
		}
	}
	return d.Pos()
}

// freeComments returns the comment groups of f that are not
// doc comments or inside of a declaration.
func freeComments(f *ast.File) []*ast.CommentGroup {
	var free []*ast.CommentGroup
	for _, cg := range f.Comments {
		inside := false
		for _, d := range f.Decls {
			if cg.Pos() >= declStart(d) && cg.End() <= d.End() {
				inside = true
				break
			}
		}
		if !inside {
			free = append(free, cg)
		}
	}
	return free
}

// flushComments prints the free comments that end before pos,
// or all remaining ones for [token.NoPos].
func (p *hlslPrinter) flushComments(pos token.Pos) {
	for len(p.free) > 0 && (pos == token.NoPos || p.free[0].End() < pos) {
		p.nl()
		p.comments(p.free[0])
		p.free = p.free[1:]
	}
}

func (p *hlslPrinter) errorf(pos token.Pos, format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%s: %s", p.fset.Position(pos), fmt.Sprintf(format, args...))
	}
}

func (p *hlslPrinter) nl() {
	p.buf.WriteByte('\n')
}

// line prints one indented line.
func (p *hlslPrinter) line(s string) {
	p.buf.WriteString(strings.Repeat("\t", p.indent))
	p.buf.WriteString(s)
	p.nl()
}

func (p *hlslPrinter) comments(cg *ast.CommentGroup) {
	if cg == nil {
		return
	}
	for _, c := range cg.List {
		for _, ln := range strings.Split(c.Text, "\n") {
			p.line(ln)
		}
	}
}

////////////////////////////////////////////////////////////
//   Declarations

func (p *hlslPrinter) decl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.FuncDecl:
		p.nl()
		p.comments(d.Doc)
		p.funcDecl(d)
	case *ast.GenDecl:
		switch d.Tok {
		case token.IMPORT:
		case token.TYPE:
			for _, s := range d.Specs {
				ts := s.(*ast.TypeSpec)
				p.nl()
				if ts.Doc != nil {
					p.comments(ts.Doc)
				} else if len(d.Specs) == 1 {
					p.comments(d.Doc)
				}
				p.typeSpec(ts)
			}
		case token.CONST, token.VAR:
			p.nl()
			p.comments(d.Doc)
			p.valueDecl(d, "static ")
		}
	}
}

func (p *hlslPrinter) typeSpec(ts *ast.TypeSpec) {
	obj := p.info.Defs[ts.Name]
	if obj == nil {
		p.errorf(ts.Pos(), "type %s was not type checked", ts.Name.Name)
		return
	}
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		p.line(fmt.Sprintf("typedef %s %s;", p.typeName(ts.Pos(), obj.Type().Underlying()), ts.Name.Name))
		return
	}
	p.line("struct " + ts.Name.Name + " {")
	p.indent++
	for _, fl := range st.Fields.List {
		if len(fl.Names) == 0 {
			p.errorf(fl.Pos(), "embedded field %s is not supported", types.ExprString(fl.Type))
			continue
		}
		p.comments(fl.Doc)
		ft := p.info.TypeOf(fl.Type)
		for i, nm := range fl.Names {
			s := p.declare(fl.Pos(), ft, nm.Name) + ";"
			if fl.Comment != nil && i == len(fl.Names)-1 {
				s += " " + strings.TrimSpace(fl.Comment.List[0].Text)
			}
			p.line(s)
		}
	}
	for _, md := range p.methods[ts.Name.Name] {
		p.nl()
		p.comments(md.Doc)
		p.funcDecl(md)
	}
	p.indent--
	p.line("};")
}

func (p *hlslPrinter) valueDecl(d *ast.GenDecl, prefix string) {
	for _, s := range d.Specs {
		vs := s.(*ast.ValueSpec)
		for i, nm := range vs.Names {
			obj := p.info.Defs[nm]
			if obj == nil || nm.Name == "_" {
				continue
			}
			decl := p.declare(nm.Pos(), obj.Type(), nm.Name)
			switch {
			case d.Tok == token.CONST:
				p.line(fmt.Sprintf("%sconst %s = %s;", prefix, decl, constString(obj.(*types.Const).Val())))
			case i < len(vs.Values):
				p.line(fmt.Sprintf("%s%s = %s;", prefix, decl, p.expr(vs.Values[i])))
			default:
				p.line(fmt.Sprintf("%s%s = (%s)0;", prefix, decl, p.typeName(nm.Pos(), obj.Type())))
			}
		}
	}
}

func (p *hlslPrinter) funcDecl(fd *ast.FuncDecl) {
	res := "void"
	if rs := fd.Type.Results; rs != nil && rs.NumFields() > 0 {
		if rs.NumFields() > 1 {
			p.errorf(fd.Pos(), "%s: multiple results are not supported", fd.Name.Name)
			return
		}
		res = p.typeName(rs.Pos(), p.info.TypeOf(rs.List[0].Type))
	}
	var params []string
	for _, fl := range fd.Type.Params.List {
		ft := p.info.TypeOf(fl.Type)
		mod := ""
		if pt, ok := ft.(*types.Pointer); ok {
			mod = "inout "
			ft = pt.Elem()
		}
		for _, nm := range fl.Names {
			params = append(params, mod+p.declare(fl.Pos(), ft, nm.Name))
		}
	}
	p.recv = ""
	if fd.Recv != nil && len(fd.Recv.List[0].Names) > 0 {
		p.recv = fd.Recv.List[0].Names[0].Name
	}
	p.line(fmt.Sprintf("%s %s(%s) {", res, fd.Name.Name, strings.Join(params, ", ")))
	p.stmts(fd.Body.List)
	p.line("}")
	p.recv = ""
}

// declare returns the declaration of name with type t.
func (p *hlslPrinter) declare(pos token.Pos, t types.Type, name string) string {
	if at, ok := t.(*types.Array); ok {
		return fmt.Sprintf("%s[%d]", p.declare(pos, at.Elem(), name), at.Len())
	}
	return p.typeName(pos, t) + " " + name
}

// typeName returns the HLSL name of t.
func (p *hlslPrinter) typeName(pos token.Pos, t types.Type) string {
	switch t := t.(type) {
	case *types.Basic:
		switch t.Kind() {
		case types.Float32, types.UntypedFloat:
			return "float"
		case types.Float64:
			return "double"
		case types.Int32, types.Int, types.UntypedInt, types.UntypedRune:
			return "int"
		case types.Uint32, types.Uint:
			return "uint"
		case types.Bool, types.UntypedBool:
			return "bool"
		}
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() == nil {
			break
		}
		if nm, ok := vectorTypes[obj.Pkg().Path()+"."+obj.Name()]; ok {
			return nm
		}
		if obj.Pkg() == p.pkg {
			return obj.Name()
		}
		if _, ok := t.Underlying().(*types.Struct); ok {
			return obj.Name()
		}
		return p.typeName(pos, t.Underlying())
	}
	p.errorf(pos, "type %s has no HLSL equivalent", t)
	return "?"
}

// isVector returns whether t is one of the HLSL vector types,
// whose fields are spelled in lower case.
func isVector(t types.Type) bool {
	if pt, ok := t.(*types.Pointer); ok {
		t = pt.Elem()
	}
	nt, ok := t.(*types.Named)
	if !ok || nt.Obj().Pkg() == nil {
		return false
	}
	nm := vectorTypes[nt.Obj().Pkg().Path()+"."+nt.Obj().Name()]
	return nm != "" && nm != "int"
}

////////////////////////////////////////////////////////////
//   Statements

func (p *hlslPrinter) stmts(list []ast.Stmt) {
	p.indent++
	for _, s := range list {
		p.stmt(s)
	}
	p.indent--
}

func (p *hlslPrinter) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.EmptyStmt:
	case *ast.BlockStmt:
		p.line("{")
		p.stmts(s.List)
		p.line("}")
	case *ast.AssignStmt:
		if s.Tok == token.DEFINE && len(s.Lhs) > 1 && len(s.Lhs) == len(s.Rhs) {
			for i := range s.Lhs {
				p.line(p.assign(s.Pos(), s.Tok, s.Lhs[i:i+1], s.Rhs[i:i+1]) + ";")
			}
			return
		}
		p.line(p.simple(s) + ";")
	case *ast.ExprStmt, *ast.IncDecStmt:
		p.line(p.simple(s) + ";")
	case *ast.DeclStmt:
		gd, ok := s.Decl.(*ast.GenDecl)
		if !ok || gd.Tok == token.TYPE {
			p.errorf(s.Pos(), "local type declarations are not supported")
			return
		}
		p.valueDecl(gd, "")
	case *ast.ReturnStmt:
		switch len(s.Results) {
		case 0:
			p.line("return;")
		case 1:
			p.line("return " + p.expr(s.Results[0]) + ";")
		default:
			p.errorf(s.Pos(), "multiple return values are not supported")
		}
	case *ast.BranchStmt:
		if s.Label != nil || (s.Tok != token.BREAK && s.Tok != token.CONTINUE) {
			p.errorf(s.Pos(), "%s is not supported", s.Tok)
			return
		}
		p.line(s.Tok.String() + ";")
	case *ast.IfStmt:
		if s.Init != nil {
			p.line("{")
			p.indent++
			p.stmt(s.Init)
			p.ifStmt(s, "")
			p.indent--
			p.line("}")
			return
		}
		p.ifStmt(s, "")
	case *ast.ForStmt:
		var init, cond, post string
		if s.Init != nil {
			init = p.simple(s.Init)
		}
		if s.Cond != nil {
			cond = p.expr(s.Cond)
		}
		if s.Post != nil {
			post = p.simple(s.Post)
		}
		p.line(fmt.Sprintf("for (%s; %s; %s) {", init, cond, post))
		p.stmts(s.Body.List)
		p.line("}")
	case *ast.SwitchStmt:
		p.switchStmt(s)
	default:
		p.errorf(s.Pos(), "statement %T is not supported", s)
	}
}

// ifStmt prints s, starting with the given prefix for else chains.
func (p *hlslPrinter) ifStmt(s *ast.IfStmt, prefix string) {
	p.line(prefix + "if (" + p.expr(s.Cond) + ") {")
	p.stmts(s.Body.List)
	switch el := s.Else.(type) {
	case nil:
		p.line("}")
	case *ast.IfStmt:
		if el.Init != nil {
			p.line("} else {")
			p.stmts([]ast.Stmt{el})
			p.line("}")
			return
		}
		p.ifStmt(el, "} else ")
	case *ast.BlockStmt:
		p.line("} else {")
		p.stmts(el.List)
		p.line("}")
	}
}

// switchStmt prints s as an if else chain.
func (p *hlslPrinter) switchStmt(s *ast.SwitchStmt) {
	if s.Init != nil {
		p.line("{")
		p.indent++
		p.stmt(s.Init)
	}
	tag := ""
	if s.Tag != nil {
		tag = p.expr(s.Tag)
	}
	var dflt *ast.CaseClause
	prefix := ""
	for _, cs := range s.Body.List {
		cc := cs.(*ast.CaseClause)
		for _, st := range cc.Body {
			if br, ok := st.(*ast.BranchStmt); ok && (br.Tok == token.BREAK || br.Tok == token.FALLTHROUGH) {
				p.errorf(br.Pos(), "%s in switch is not supported", br.Tok)
			}
		}
		if cc.List == nil {
			dflt = cc
			continue
		}
		conds := make([]string, len(cc.List))
		for i, e := range cc.List {
			if tag != "" {
				conds[i] = "(" + tag + " == " + p.expr(e) + ")"
			} else {
				conds[i] = p.expr(e)
			}
		}
		p.line(prefix + "if (" + strings.Join(conds, " || ") + ") {")
		p.stmts(cc.Body)
		prefix = "} else "
	}
	switch {
	case dflt != nil && prefix == "":
		p.line("{")
		p.stmts(dflt.Body)
		p.line("}")
	case dflt != nil:
		p.line("} else {")
		p.stmts(dflt.Body)
		p.line("}")
	case prefix != "":
		p.line("}")
	}
	if s.Init != nil {
		p.indent--
		p.line("}")
	}
}

// simple returns a simple statement without its semicolon.
func (p *hlslPrinter) simple(s ast.Stmt) string {
	switch s := s.(type) {
	case *ast.ExprStmt:
		return p.expr(s.X)
	case *ast.IncDecStmt:
		return p.expr(s.X) + s.Tok.String()
	case *ast.AssignStmt:
		if len(s.Lhs) != 1 || len(s.Rhs) != 1 {
			p.errorf(s.Pos(), "assignment of %d values is not supported", len(s.Lhs))
			return ""
		}
		return p.assign(s.Pos(), s.Tok, s.Lhs, s.Rhs)
	}
	p.errorf(s.Pos(), "statement %T is not supported here", s)
	return ""
}

func (p *hlslPrinter) assign(pos token.Pos, tok token.Token, lhs, rhs []ast.Expr) string {
	x, y := lhs[0], p.expr(rhs[0])
	switch tok {
	case token.DEFINE:
		id := x.(*ast.Ident)
		if id.Name == "_" {
			return y
		}
		if obj := p.info.Defs[id]; obj != nil {
			return p.declare(pos, obj.Type(), id.Name) + " = " + y
		}
		return id.Name + " = " + y
	case token.AND_NOT_ASSIGN:
		p.errorf(pos, "&^= is not supported")
	}
	return p.expr(x) + " " + tok.String() + " " + y
}

////////////////////////////////////////////////////////////
//   Expressions

func (p *hlslPrinter) expr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Ident:
		if p.recv != "" && e.Name == p.recv {
			return "this"
		}
		return e.Name
	case *ast.BasicLit:
		if e.Kind == token.STRING || e.Kind == token.CHAR || e.Kind == token.IMAG {
			p.errorf(e.Pos(), "literal %s is not supported", e.Value)
		}
		return e.Value
	case *ast.ParenExpr:
		return "(" + p.expr(e.X) + ")"
	case *ast.StarExpr:
		return p.expr(e.X)
	case *ast.UnaryExpr:
		switch e.Op {
		case token.AND:
			return p.expr(e.X)
		case token.XOR:
			return "~" + p.expr(e.X)
		}
		return e.Op.String() + p.expr(e.X)
	case *ast.BinaryExpr:
		if e.Op == token.AND_NOT {
			p.errorf(e.Pos(), "&^ is not supported")
		}
		prec := e.Op.Precedence()
		return p.operand(e.X, prec) + " " + e.Op.String() + " " + p.operand(e.Y, prec)
	case *ast.SelectorExpr:
		return p.selector(e)
	case *ast.CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = p.expr(a)
		}
		return p.expr(e.Fun) + "(" + strings.Join(args, ", ") + ")"
	case *ast.IndexExpr:
		return p.expr(e.X) + "[" + p.expr(e.Index) + "]"
	case *ast.CompositeLit:
		return p.composite(e)
	}
	p.errorf(e.Pos(), "expression %T is not supported", e)
	return ""
}

// operand wraps binary operands of another precedence in parens,
// because HLSL orders some operators differently from Go.
func (p *hlslPrinter) operand(e ast.Expr, prec int) string {
	if be, ok := e.(*ast.BinaryExpr); ok && be.Op.Precedence() != prec {
		return "(" + p.expr(e) + ")"
	}
	return p.expr(e)
}

func (p *hlslPrinter) selector(e *ast.SelectorExpr) string {
	if id, ok := e.X.(*ast.Ident); ok {
		if _, ok := p.info.Uses[id].(*types.PkgName); ok {
			return id.Name + "." + e.Sel.Name
		}
		if p.recv != "" && id.Name == p.recv {
			return e.Sel.Name
		}
	}
	name := e.Sel.Name
	if sel, ok := p.info.Selections[e]; ok && sel.Kind() == types.FieldVal && isVector(sel.Recv()) {
		name = strings.ToLower(name)
	}
	return p.expr(e.X) + "." + name
}

// composite prints a vector literal as a constructor call,
// with the components in field order.
func (p *hlslPrinter) composite(e *ast.CompositeLit) string {
	t := p.info.TypeOf(e)
	if t == nil || !isVector(t) {
		p.errorf(e.Pos(), "composite literal of %s is not supported", t)
		return ""
	}
	st := t.Underlying().(*types.Struct)
	comps := make([]string, st.NumFields())
	for i := range comps {
		comps[i] = "0"
	}
	for i, el := range e.Elts {
		if kv, ok := el.(*ast.KeyValueExpr); ok {
			key := kv.Key.(*ast.Ident).Name
			for fi := 0; fi < st.NumFields(); fi++ {
				if st.Field(fi).Name() == key {
					comps[fi] = p.expr(kv.Value)
				}
			}
			continue
		}
		if i < len(comps) {
			comps[i] = p.expr(el)
		}
	}
	return p.typeName(e.Pos(), t) + "(" + strings.Join(comps, ", ") + ")"
}

// constString returns val as an HLSL literal.
func constString(val constant.Value) string {
	if val.Kind() == constant.Float {
		f, _ := constant.Float64Val(val)
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return val.ExactString()
}

// sortedKeys returns the keys of m in order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
