// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sltrans translates the gosl regions of Go source files
// into HLSL shader files. Each region is type checked, its vector
// swizzles and boolean vector operators are lowered to their HLSL
// forms, and it is printed as HLSL, with Go names replaced by their
// HLSL equivalents.
package sltrans

import (
	"fmt"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"goki.dev/laser"
)

// Config contains the configuration information used by [Process]
type Config struct {

	// [def: shaders] output directory for shader code, relative to where slvec is invoked
	Out string `def:"shaders" desc:"output directory for shader code, relative to where slvec is invoked"`

	// [def: ['Update','Defaults']] names of functions to exclude from exporting to HLSL
	Exclude []string `def:"['Update','Defaults']" desc:"names of functions to exclude from exporting to HLSL"`

	// keep the intermediate lowered Go versions of the regions, for debugging
	Keep bool `desc:"keep the intermediate lowered Go versions of the regions, for debugging"`

	// compile HLSL files that have a main entry point to SPIR-V using glslc
	Compile bool `desc:"compile HLSL files that have a main entry point to SPIR-V using glslc"`
}

// Defaults sets the config fields from their default tags.
func (c *Config) Defaults() error {
	return laser.SetFromDefaultTags(c)
}

// ExcludeMap returns [Config.Exclude] as a set. Entries may
// themselves be comma-separated lists.
func (c *Config) ExcludeMap() map[string]bool {
	ex := map[string]bool{}
	for _, s := range c.Exclude {
		for _, fn := range strings.Split(s, ",") {
			if fn = strings.TrimSpace(fn); fn != "" {
				ex[fn] = true
			}
		}
	}
	return ex
}

// Translation is the result of translating one region.
type Translation struct {

	// the lowered Go code of the region
	Go []byte

	// the HLSL code of the region
	HLSL []byte

	// whether the HLSL has a main entry point
	HasMain bool

	// struct layout problems found by alignsl, if any
	Layout error
}

// Translate type checks one extracted region against the imports
// of its files, lowers it, and prints it as HLSL.
// A nil imps allows no imports.
func Translate(region []byte, imps *Importer, exclude map[string]bool) (*Translation, error) {
	if imps == nil {
		imps, _ = LoadImports(nil)
	}
	src := "package main\n\n" + imps.ImportDecl() + string(region)
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "region.go", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	excludeFuncs(f, exclude)
	pkg, info, err := imps.Check(fset, f)
	if err != nil {
		return nil, err
	}
	tr := &Translation{Layout: imps.CheckLayout(pkg)}
	tr.Go, err = lowerFile(fset, f)
	if err != nil {
		return nil, err
	}
	hlsl, err := PrintHLSL(fset, f, info, pkg)
	if err != nil {
		return nil, err
	}
	tr.HLSL, tr.HasMain = ExtractHLSL(Edits(hlsl))
	return tr, nil
}

// Process extracts the gosl regions from the given files and writes
// one <name>.hlsl file per region to [Config.Out], returning the
// HLSL code by region name. Struct layout problems are logged
// as warnings.
func Process(c *Config, files []string) (map[string][]byte, error) {
	regions, err := ExtractRegions(files)
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("no gosl regions found in %d files", len(files))
	}
	imps, err := LoadImports(files)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(c.Out, 0755); err != nil {
		return nil, err
	}
	exclude := c.ExcludeMap()

	sls := make(map[string][]byte, len(regions))
	for _, nm := range sortedKeys(regions) {
		tr, err := Translate(regions[nm], imps, exclude)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", nm, err)
		}
		if tr.Layout != nil {
			slog.Warn("sltrans: struct layout", "region", nm, "err", tr.Layout)
		}
		if c.Keep {
			if err := os.WriteFile(filepath.Join(c.Out, nm+".go"), tr.Go, 0644); err != nil {
				return nil, err
			}
		}
		sls[nm] = tr.HLSL
		slfn := nm + ".hlsl"
		if err := os.WriteFile(filepath.Join(c.Out, slfn), tr.HLSL, 0644); err != nil {
			return nil, err
		}
		if c.Compile && tr.HasMain {
			if err := CompileFile(c.Out, slfn); err != nil {
				return nil, err
			}
		}
	}
	return sls, nil
}

// CompileFile compiles the given HLSL file in dir into
// a SPIR-V .spv file using glslc.
func CompileFile(dir, fn string) error {
	ext := filepath.Ext(fn)
	ofn := fn[:len(fn)-len(ext)] + ".spv"
	cmd := exec.Command("glslc", "-fshader-stage=compute", "-o", ofn, fn)
	cmd.Dir, _ = filepath.Abs(dir)
	out, err := cmd.CombinedOutput()
	fmt.Printf("\n-----------------------------\nglslc output for: %s\n%s\n", fn, out)
	if err != nil {
		return fmt.Errorf("glslc %s: %w", fn, err)
	}
	return nil
}
