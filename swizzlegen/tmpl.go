// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"log"
	"text/template"
)

// HeaderTmpl is the start of the generated file.
// It takes the [Generator] as its data.
var HeaderTmpl = template.Must(template.New("Header").Parse(
	`// Code generated by "slswizzle"; DO NOT EDIT.

package {{.Pkg.Name}}
{{if .Imports}}
import (
{{- range $path, $name := .Imports}}
	"{{$path}}"
{{- end}}
)
{{end}}`))

// MethodsTmpl produces the accessors of one vector type.
var MethodsTmpl = template.Must(template.New("Methods").Parse(
	`{{range .Methods}}
// {{.Name}} returns the {{.Name}} {{.Doc}} of v.
func (v {{$.Name}}) {{.Name}}() {{.Result}} { return {{.Get}} }
{{if .Settable}}
// Set{{.Name}} sets the {{.Name}} {{.Doc}} of v.
func (v *{{$.Name}}) Set{{.Name}}(s {{.Result}}) { {{.Set}} }
{{end}}{{end}}`))

// ExecTmpl executes the given template with the given data and
// writes the result to [Generator.Buf]. It fatally logs any error.
func (g *Generator) ExecTmpl(t *template.Template, data any) {
	err := t.Execute(&g.Buf, data)
	if err != nil {
		log.Fatalf("programmer error: internal error: error executing template: %v", err)
	}
}
