package slvec

import "goki.dev/slvec/slbool"

type B2 struct {
	X, Y slbool.Bool
}

type B3 struct {
	X, Y, Z slbool.Bool
}

type B4 struct {
	X, Y, Z, W slbool.Bool
}
