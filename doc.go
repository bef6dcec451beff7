// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
slvec translates Go compute code into HLSL shader code.

Code written against the sltype vector types (Bool4 and its swizzles,
the float vectors) and slbool runs as ordinary Go on the CPU. The
regions of that code marked with comment directives are extracted
and lowered to HLSL, so the same code also runs on the GPU:

	//gosl: start <name>
	... Go code ...
	//gosl: end <name>

	//gosl: hlsl <name>
	// ... commented HLSL code, e.g. the main entry point ...
	//gosl: end <name>

Each region name produces one <name>.hlsl file in the output
directory. Regions are type checked against the imports of the files
they come from. Swizzle accessors are lowered to HLSL swizzles
(v.XYZ() to v.xyz, v.SetXY(s) to v.xy = s), and boolean vector
methods to HLSL operators and intrinsics (v.Not() to !v, v.And(o)
to and(v, o), v.Any() to any(v)).

The lowered code is printed as HLSL: methods become member functions
of their struct, pointer parameters become inout parameters, and
short variable declarations are given their inferred types. Boolean
vectors are int2, int3 and int4 in HLSL, like slbool.Bool is int.
Structs that HLSL would lay out differently from Go (fields other
than 32 bit numbers, sizes that are not a multiple of 16 bytes) are
reported as warnings.

Usage:

	slvec [flags] [path ...]

Given a file, it operates on that file; given a directory, it operates
on all .go files in that directory, recursively. (Files starting with
a period are ignored.)

The flags are:

	-out dir
		Output directory for the shader files (default "shaders").
	-exclude names
		Comma-separated names of functions to leave out of the HLSL
		(default "Update,Defaults").
	-keep
		Also write the intermediate lowered Go code of each region.
	-compile
		Compile each HLSL file that has a main entry point to SPIR-V
		with glslc.

The swizzle accessors themselves are generated by slswizzle,
in goki.dev/slvec/cmd/slswizzle.
*/
package main
