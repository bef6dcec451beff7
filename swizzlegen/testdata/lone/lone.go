package lone

//gosl:swizzle
type Lone4 struct {
	X, Y, Z, W float32
}
