package dwt

// Transform2D performs the multi-level separable forward DWT over the
// top-left L-by-L square of a planeWidth-wide row-major plane, recursing
// down to side lmin. At each active size s (starting at L, halving down to
// lmin) it transforms every row then every column of the top-left s-by-s
// block, leaving the approximation in the new top-left (s/2)-by-(s/2)
// quadrant for the next iteration — the standard DWT pyramid layout.
func Transform2D(wv Wavelet, data []float64, planeWidth, L, lmin int) {
	for s := L; s >= lmin; s /= 2 {
		for y := 0; y < s; y++ {
			Forward1D(wv, data, y*planeWidth, 1, s)
		}
		for x := 0; x < s; x++ {
			Forward1D(wv, data, x, planeWidth, s)
		}
	}
}

// Inverse2D exactly reverses Transform2D: it walks the recursion
// bottom-up, from side lmin up to L, applying the inverse column then
// inverse row transform at each level.
func Inverse2D(wv Wavelet, data []float64, planeWidth, L, lmin int) {
	for s := lmin; s <= L; s *= 2 {
		for x := 0; x < s; x++ {
			Inverse1D(wv, data, x, planeWidth, s)
		}
		for y := 0; y < s; y++ {
			Inverse1D(wv, data, y*planeWidth, 1, s)
		}
	}
}
