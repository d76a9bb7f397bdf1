// Package distance provides distance calculations over 3-component float32
// coordinate tuples.
//
// All kernels are scalar: the tuples are short and fixed-arity, so the
// compiler fully unrolls the arithmetic and wide-vector dispatch would cost
// more than it saves.
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	n := distance.L2(a, b)
package distance
