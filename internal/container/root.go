package container

import (
	"github.com/xdsopl/godwt/internal/bio"
	"github.com/xdsopl/godwt/internal/vli"
)

// EncodeRoot writes v (a root sub-band's coefficients, row-major, not
// Hilbert-ordered) as a fixed-width field: a VLI bit count, then each
// value's magnitude in that many bits, followed by a sign bit when the
// magnitude is nonzero. See §6's encode_root.
func EncodeRoot(w *bio.Writer, v []int32) {
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
	cnt := bitWidth(maxAbs)
	vli.Encode(w, uint32(cnt))
	for _, x := range v {
		mag := x
		if mag < 0 {
			mag = -mag
		}
		if cnt > 0 {
			w.WriteBits(uint32(mag), uint(cnt))
		}
		if mag != 0 {
			if x < 0 {
				w.PutBit(1)
			} else {
				w.PutBit(0)
			}
		}
	}
}

// DecodeRoot reads n coefficients written by EncodeRoot.
func DecodeRoot(r *bio.Reader, n int) []int32 {
	cnt := int(vli.Decode(r))
	v := make([]int32, n)
	for i := 0; i < n; i++ {
		var mag int32
		if cnt > 0 {
			mag = int32(r.ReadBits(uint(cnt)))
		}
		if mag != 0 {
			if r.ReadBit() == 1 {
				v[i] = -mag
			} else {
				v[i] = mag
			}
		}
	}
	return v
}

// bitWidth returns 1+floor(log2(m)) for m > 0, and 0 for m == 0 — the
// number of bits needed to hold magnitude m.
func bitWidth(m int32) int {
	n := 0
	for m > 0 {
		m >>= 1
		n++
	}
	return n
}
