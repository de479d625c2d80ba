// Package hilbert maps a 1-D index to a 2-D position on an n-by-n grid
// (n a power of two) along a Hilbert space-filling curve.
//
// The codec uses this to linearize a square sub-band of wavelet
// coefficients before bit-plane coding (container §4.8): Hilbert order
// keeps spatially-clustered nonzero coefficients adjacent in the 1-D
// stream, which is what makes the run-length-of-zeros encoding in
// internal/bitplane effective. No package in the example pack implements a
// space-filling curve; this is grounded directly on the textbook
// rotate-and-flip d2xy recursion rather than on any reference source file.
package hilbert

// Point is a 2-D grid position.
type Point struct {
	X, Y int
}

// At returns the position of index i on the order-log2(n) Hilbert curve
// covering an n-by-n grid, where n is a power of two. The mapping
// i -> At(n, i) is a bijection onto [0,n) x [0,n), and consecutive indices
// map to 4-neighbor positions.
func At(n, i int) Point {
	var x, y int
	for s := 1; s < n; s *= 2 {
		rx := 1 & (i / 2)
		ry := 1 & (i ^ rx)
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		i /= 4
	}
	return Point{X: x, Y: y}
}

// rotate applies the Hilbert curve's quadrant rotation/reflection so that
// the recursive construction produces a continuous curve.
func rotate(s, x, y, rx, ry int) (int, int) {
	if ry != 0 {
		return x, y
	}
	if rx == 1 {
		x = s - 1 - x
		y = s - 1 - y
	}
	return y, x
}
