// Package bitplane implements the sign-magnitude bit-plane entropy coder
// (§4.9/§4.10): each plane of a coefficient group is scanned once, and
// runs of zero bits between set bits are coded as VLI deltas. The
// top-most plane doubles as a sign indicator.
//
// Grounded on original_source/encode.c and decode.c's per-layer encode/
// decode pair (which, in the variant retained in this pack, applies the
// same scan-and-delta idea at the whole-coefficient granularity); this
// package generalizes it to the per-bit-plane granularity §4.9 spells
// out explicitly.
package bitplane

import (
	"github.com/xdsopl/godwt/internal/bio"
	"github.com/xdsopl/godwt/internal/vli"
)

// Planes returns the number of bit planes needed to encode v: 0 if every
// value is zero, otherwise one more than the magnitude bit-width (the
// extra, highest plane carries the sign).
func Planes(v []int32) int {
	var maxAbs int32
	for _, x := range v {
		a := x
		if a < 0 {
			a = -a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return 0
	}
	m := 0
	for int32(1)<<uint(m) <= maxAbs {
		m++
	}
	return m + 1
}

// bit returns sign-magnitude plane `plane` (of p total planes) of v:
// plane p-1 is the sign bit (1 if negative), planes 0..p-2 are magnitude
// bits.
func bit(v int32, plane, p int) int {
	if plane == p-1 {
		if v < 0 {
			return 1
		}
		return 0
	}
	mag := v
	if mag < 0 {
		mag = -mag
	}
	return int((mag >> uint(plane)) & 1)
}

// Encode writes v as a plane count followed by P run-length-coded scans,
// highest plane (sign) first.
func Encode(w *bio.Writer, v []int32) {
	p := Planes(v)
	vli.Encode(w, uint32(p))
	n := len(v)
	for plane := p - 1; plane >= 0; plane-- {
		last := 0
		for i := 0; i < n; i++ {
			if bit(v[i], plane, p) != 0 {
				vli.Encode(w, uint32(i-last))
				last = i + 1
			}
		}
		vli.Encode(w, uint32(n-last))
	}
}

// Decode reads a bit-plane-coded vector of length n. A stream that ends
// mid-plane is tolerated: positions not reached before the stream ran
// out are left at zero, per §4.10's truncation rule.
func Decode(r *bio.Reader, n int) []int32 {
	v := make([]int32, n)
	p := int(vli.Decode(r))
	if p == 0 {
		return v
	}
	mag := make([]int32, n)
	sign := make([]bool, n)
	for plane := p - 1; plane >= 0; plane-- {
		// Encode always emits one delta per set bit followed by a final
		// terminator delta (the zero-run out to n), even when the last
		// set bit lands at index n-1 and the terminator's run is empty.
		// Mirror that here: keep reading deltas until one lands at or
		// past n, which is the terminator, instead of stopping the
		// instant a delta reaches n — that would leave the terminator
		// unread and misalign every token in the next plane/group.
		last := 0
		for last <= n {
			pos := last + int(vli.Decode(r))
			if pos >= n {
				break
			}
			if plane == p-1 {
				sign[pos] = true
			} else {
				mag[pos] |= int32(1) << uint(plane)
			}
			last = pos + 1
		}
	}
	for i := range v {
		if sign[i] {
			v[i] = -mag[i]
		} else {
			v[i] = mag[i]
		}
	}
	return v
}
