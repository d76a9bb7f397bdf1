package distance

import "math"

// Dot calculates the dot product of two coordinate tuples.
func Dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// coordinate tuples.
func SquaredL2(a, b [3]float32) float32 {
	var d float32
	for i := range a {
		d += (a[i] - b[i]) * (a[i] - b[i])
	}
	return d
}

// L2 calculates the L2 (Euclidean) distance between two coordinate tuples.
func L2(a, b [3]float32) float32 {
	return Sqrt(SquaredL2(a, b))
}

// Sqrt returns the square root of x as a float32.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
