package vec

// Flag is a 32 bit flag
type Flag int32

// Flag2 is a 2 component flag vector
//
//gosl:swizzle
type Flag2 struct {
	X, Y Flag
}

// Flag3 has no directive but is the result of 3 component swizzles
type Flag3 struct {
	X, Y, Z Flag
}

// Flag4 is a 4 component flag vector
//
//gosl:swizzle
type Flag4 struct {
	X, Y, Z, W Flag
}

// R is hand written, so it is not generated
func (v Flag4) R() Flag { return v.X }

// NotVec is not a vector type
type NotVec struct {
	A, B Flag
}
