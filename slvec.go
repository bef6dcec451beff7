// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// copied and heavily edited from go src/cmd/gofmt/gofmt.go:

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"goki.dev/grr"
	"goki.dev/slvec/sltrans"
)

// config is set from flags, with defaults from its def tags
var config = &sltrans.Config{}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: slvec [flags] [path ...]\n")
	flag.PrintDefaults()
}

func isGoFile(f fs.DirEntry) bool {
	// ignore non-Go files
	name := f.Name()
	return !strings.HasPrefix(name, ".") && strings.HasSuffix(name, ".go") && !f.IsDir()
}

func main() {
	grr.Log(config.Defaults())
	flag.StringVar(&config.Out, "out", config.Out, "output directory for shader code, relative to where slvec is invoked")
	exclude := strings.Join(config.Exclude, ",")
	flag.StringVar(&exclude, "exclude", exclude, "comma-separated names of functions to exclude from exporting to HLSL")
	flag.BoolVar(&config.Keep, "keep", config.Keep, "keep the intermediate lowered Go versions of the regions, for debugging")
	flag.BoolVar(&config.Compile, "compile", config.Compile, "compile HLSL files with a main entry point to SPIR-V using glslc")
	flag.Usage = usage
	flag.Parse()
	config.Exclude = []string{exclude}

	if err := slvecMain(flag.Args()); err != nil {
		grr.Log(err)
		os.Exit(1)
	}
}

// collectFiles returns the Go files named by the given paths:
// files as given, and directories walked recursively,
// each file only once.
func collectFiles(args []string) ([]string, error) {
	var files []string
	procd := map[string]bool{}
	addFile := func(fn string) {
		if procd[fn] {
			return
		}
		procd[fn] = true
		files = append(files, fn)
	}
	for _, arg := range args {
		switch info, err := os.Stat(arg); {
		case err != nil:
			return nil, err
		case !info.IsDir():
			// Non-directory arguments are always processed.
			addFile(arg)
		default:
			// Directories are walked, ignoring non-Go files.
			err := filepath.WalkDir(arg, func(path string, f fs.DirEntry, err error) error {
				if err != nil || !isGoFile(f) {
					return err
				}
				addFile(path)
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}
	return files, nil
}

func slvecMain(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one file name must be passed")
	}
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	sls, err := sltrans.Process(config, files)
	if err != nil {
		return err
	}
	for fn := range sls {
		slog.Info("wrote shader", "file", filepath.Join(config.Out, fn+".hlsl"))
	}
	return nil
}
