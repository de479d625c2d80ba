// Package vli implements the variable-length non-negative integer coding
// used throughout the DWT bit stream: the container header fields and the
// bit-plane run-length deltas are all VLI-coded.
//
// Encoding of n >= 0: emit floor(log2(n+1)) one-bits followed by a
// terminating zero-bit (a unary prefix giving the number k of data bits
// that follow), then emit n - (2^k - 1) as k raw bits, most-significant
// first. n = 0 encodes as a single zero-bit. The code is prefix-free, so
// concatenated encodings are unambiguously decodable.
//
// This generalizes the byte-level 7-bit continuation coding used by
// go-jpeg2000's internal/bio.VariableLengthReader/Writer to a bit-level
// unary-prefix scheme, which is what lets bit-plane run lengths be spliced
// into the stream without forcing byte alignment between them.
package vli

import "github.com/xdsopl/godwt/internal/bio"

// maxBits bounds the unary prefix so a corrupt/fuzzed stream cannot spin
// the decoder forever.
const maxBits = 32

// Encode writes n (n >= 0) to w.
func Encode(w *bio.Writer, n uint32) {
	k := bitsFor(n)
	for i := uint(0); i < k; i++ {
		w.PutBit(1)
	}
	w.PutBit(0)
	if k > 0 {
		w.WriteBits(n-(1<<k-1), k)
	}
}

// Decode reads one VLI-coded value from r.
func Decode(r *bio.Reader) uint32 {
	var k uint
	for k < maxBits && r.ReadBit() == 1 {
		k++
	}
	if k == 0 {
		return 0
	}
	return r.ReadBits(k) + (1<<k - 1)
}

// bitsFor returns the number of raw data bits k such that
// 2^k - 1 <= n < 2^(k+1) - 1, i.e. floor(log2(n+1)).
func bitsFor(n uint32) uint {
	var k uint
	for (uint32(1)<<(k+1) - 1) <= n {
		k++
	}
	return k
}
