package dwt

import (
	"math"
	"math/rand"
	"testing"
)

func maxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}

func TestRoundTrip1D(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, wv := range []Wavelet{Haar, CDF97} {
		for _, length := range []int{4, 8, 16, 32, 64, 128} {
			orig := make([]float64, length)
			for i := range orig {
				orig[i] = rng.Float64()*2 - 1
			}
			data := append([]float64(nil), orig...)
			Forward1D(wv, data, 0, 1, length)
			Inverse1D(wv, data, 0, 1, length)
			if d := maxAbsDiff(orig, data); d > 1e-9 {
				t.Fatalf("wavelet=%v length=%d: max diff %g", wv, length, d)
			}
		}
	}
}

func TestRoundTrip2D(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const lmin = 4
	for _, wv := range []Wavelet{Haar, CDF97} {
		for _, L := range []int{4, 8, 16, 32, 64, 128} {
			orig := make([]float64, L*L)
			for i := range orig {
				orig[i] = rng.Float64()*2 - 1
			}
			data := append([]float64(nil), orig...)
			Transform2D(wv, data, L, L, lmin)
			Inverse2D(wv, data, L, L, lmin)
			if d := maxAbsDiff(orig, data); d > 1e-4 {
				t.Fatalf("wavelet=%v L=%d: max diff %g", wv, L, d)
			}
		}
	}
}

func TestHaarConstantSignalConcentratesEnergyInApproximation(t *testing.T) {
	const L = 8
	data := make([]float64, L*L)
	for i := range data {
		data[i] = 1
	}
	Transform2D(Haar, data, L, L, 4)
	// All detail coefficients (everywhere outside the lmin/2 x lmin/2
	// top-left corner) should be ~0 for a constant input.
	for y := 0; y < L; y++ {
		for x := 0; x < L; x++ {
			if x < 2 && y < 2 {
				continue
			}
			if math.Abs(data[y*L+x]) > 1e-9 {
				t.Fatalf("expected near-zero detail at (%d,%d), got %g", x, y, data[y*L+x])
			}
		}
	}
}
