package quant

import "testing"

func TestEncodeDetailTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		v    float64
		q    int
		want int32
	}{
		{1.9, 0, 1},
		{-1.9, 0, -1},
		{0.49, 2, 1},  // 0.49*4 = 1.96 -> trunc 1
		{-0.49, 2, -1},
		{0, 3, 0},
	}
	for _, c := range cases {
		if got := EncodeDetail(c.v, c.q); got != c.want {
			t.Errorf("EncodeDetail(%v,%d)=%d, want %d", c.v, c.q, got, c.want)
		}
	}
}

func TestEncodeRootRoundsToNearestEven(t *testing.T) {
	cases := []struct {
		v    float64
		q    int
		want int32
	}{
		{1.5, 0, 2},
		{2.5, 0, 2},
		{-1.5, 0, -2},
		{0.4, 2, 2}, // 0.4*4=1.6 -> round 2
	}
	for _, c := range cases {
		if got := EncodeRoot(c.v, c.q); got != c.want {
			t.Errorf("EncodeRoot(%v,%d)=%d, want %d", c.v, c.q, got, c.want)
		}
	}
}

func TestDecodeDetailZeroStaysZero(t *testing.T) {
	if got := DecodeDetail(0, 4); got != 0 {
		t.Fatalf("DecodeDetail(0,4)=%v, want 0", got)
	}
}

func TestDecodeDetailBiasMovesAwayFromZero(t *testing.T) {
	pos := DecodeDetail(4, 2)
	neg := DecodeDetail(-4, 2)
	if pos <= 4.0/4.0 {
		t.Fatalf("DecodeDetail(4,2)=%v, want > 1 (bias should increase magnitude)", pos)
	}
	if neg != -pos {
		t.Fatalf("DecodeDetail should be odd-symmetric: got %v and %v", pos, neg)
	}
}

func TestDecodeRootHasNoBias(t *testing.T) {
	if got, want := DecodeRoot(4, 2), 1.0; got != want {
		t.Fatalf("DecodeRoot(4,2)=%v, want %v", got, want)
	}
}

func TestRoundTripKnownCoefficients(t *testing.T) {
	const q = 6
	for _, v := range []float64{0, 0.01, -0.01, 1.0, -1.0, 12.375, -12.375} {
		enc := EncodeDetail(v, q)
		dec := DecodeDetail(enc, q)
		// Dead-zone quantization is lossy; just check it stays in the
		// same quantization bin's neighborhood.
		tol := 2.0 / (1 << q)
		if diff := dec - v; diff > tol || diff < -tol {
			t.Errorf("v=%v: encode/decode diff %v exceeds tolerance %v", v, diff, tol)
		}
	}
}
