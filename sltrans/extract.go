// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltrans

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	keyDirective = []byte("//gosl: ")
	keyStart     = []byte("start")
	keyHLSL      = []byte("hlsl")
	keyEnd       = []byte("end")
	newline      = []byte("\n")
)

// ReadFileLines returns the lines of the given file.
func ReadFileLines(fn string) ([][]byte, error) {
	buf, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return bytes.Split(buf, newline), nil
}

// ExtractRegions extracts the comment-directive tagged regions
// of the given .go files, keyed by region name:
//
//	//gosl: start <name>
//	... Go code ...
//	//gosl: end <name>
//
// A //gosl: hlsl <name> region holds commented HLSL code,
// and keeps its directive lines for [ExtractHLSL].
// Regions with the same name accumulate across files.
func ExtractRegions(files []string) (map[string][]byte, error) {
	sls := map[string][][]byte{}
	for _, fn := range files {
		if !strings.HasSuffix(fn, ".go") {
			continue
		}
		lines, err := ReadFileLines(fn)
		if err != nil {
			return nil, err
		}

		inReg := false
		inHlsl := false
		var outLns [][]byte
		slFn := ""
		for _, ln := range lines {
			tln := bytes.TrimSpace(ln)
			isKey := bytes.HasPrefix(tln, keyDirective)
			var keyStr []byte
			if isKey {
				keyStr = tln[len(keyDirective):]
			}
			switch {
			case inReg && isKey && bytes.HasPrefix(keyStr, keyEnd):
				if inHlsl {
					outLns = append(outLns, ln)
				}
				sls[slFn] = outLns
				inReg = false
				inHlsl = false
			case inReg:
				outLns = append(outLns, ln)
			case isKey && bytes.HasPrefix(keyStr, keyStart):
				inReg = true
				slFn = regionName(keyStr[len(keyStart):])
				outLns = sls[slFn]
			case isKey && bytes.HasPrefix(keyStr, keyHLSL):
				inReg = true
				inHlsl = true
				slFn = regionName(keyStr[len(keyHLSL):])
				outLns = sls[slFn]
				outLns = append(outLns, ln)
			}
		}
		if inReg {
			return nil, fmt.Errorf("%s: gosl region %q has no end", fn, slFn)
		}
	}

	rsls := make(map[string][]byte, len(sls))
	for fn, lns := range sls {
		rsls[fn] = bytes.Join(lns, newline)
	}
	return rsls, nil
}

func regionName(b []byte) string {
	return string(bytes.TrimSpace(b))
}

// ExtractHLSL removes the package and import lines from the given
// source, and uncomments the HLSL code in //gosl: hlsl regions.
// Returns true if the HLSL contains a void main( function.
func ExtractHLSL(buf []byte) ([]byte, bool) {
	stComment := []byte("/*")
	edComment := []byte("*/")
	comment := []byte("// ")
	pack := []byte("package")
	imp := []byte("import")
	main := []byte("void main(")
	lparen := []byte("(")
	rparen := []byte(")")

	lines := bytes.Split(buf, newline)

	mx := min(10, len(lines))
	stln := 0
	gotImp := false
	for li := 0; li < mx; li++ {
		ln := lines[li]
		switch {
		case bytes.HasPrefix(ln, pack):
			stln = li + 1
		case bytes.HasPrefix(ln, imp):
			if bytes.HasSuffix(ln, lparen) {
				gotImp = true
			} else {
				stln = li + 1
			}
		case gotImp && bytes.HasPrefix(ln, rparen):
			stln = li + 1
			gotImp = false
		}
	}

	lines = lines[stln:] // get rid of package, import

	hasMain := false
	inHlsl := false
	for li := 0; li < len(lines); li++ {
		ln := lines[li]
		isKey := bytes.HasPrefix(ln, keyDirective)
		var keyStr []byte
		if isKey {
			keyStr = ln[len(keyDirective):]
		}
		switch {
		case inHlsl && isKey && bytes.HasPrefix(keyStr, keyEnd):
			lines = slices.Delete(lines, li, li+1)
			li--
			inHlsl = false
		case inHlsl:
			switch {
			case bytes.HasPrefix(ln, stComment) || bytes.HasPrefix(ln, edComment):
				lines = slices.Delete(lines, li, li+1)
				li--
				continue
			case bytes.HasPrefix(ln, comment):
				lines[li] = ln[len(comment):]
			}
			if bytes.HasPrefix(lines[li], main) {
				hasMain = true
			}
		case isKey && bytes.HasPrefix(keyStr, keyHLSL):
			inHlsl = true
			lines = slices.Delete(lines, li, li+1)
			li--
		}
	}
	return bytes.Join(lines, newline), hasMain
}
