// Package container assembles and parses the codec's bit-stream: the
// geometry/quantization header, the three root sub-bands, and the
// capacity-driven sequence of detail layers (§4.11, §6).
//
// Grounded on FreakyLittleDawg-go-openexr's header.go (sequential,
// order-dependent field writers/readers over a single stream) for the
// overall shape, and on original_source's main()/decode() loop for the
// flush+continue-bit+capacity-check layer scheduling discipline.
package container

import (
	"errors"
	"fmt"

	"github.com/xdsopl/godwt/internal/bio"
	"github.com/xdsopl/godwt/internal/dwt"
	"github.com/xdsopl/godwt/internal/vli"
)

// ErrBadHeader is returned when a header's VLI fields describe an
// impossible geometry.
var ErrBadHeader = errors.New("container: malformed header")

// Header holds the codec's per-image parameters, written as the first
// fields of the bit stream.
type Header struct {
	Wavelet    dwt.Wavelet
	W, H       int
	Depth      int // tile side L = 2^Depth
	Dmin       int // smallest sub-band unit lmin = 2^Dmin
	Cols, Rows int
	Quant      [3]int
}

// L returns the tile side.
func (h Header) L() int { return 1 << uint(h.Depth) }

// Lmin returns the smallest sub-band side unit.
func (h Header) Lmin() int { return 1 << uint(h.Dmin) }

// WriteHeader writes the geometry/quantization fields and flushes to a
// byte boundary, per §6's field table.
func WriteHeader(w *bio.Writer, h Header) error {
	wavelet := 0
	if h.Wavelet == dwt.CDF97 {
		wavelet = 1
	}
	w.PutBit(wavelet)
	vli.Encode(w, uint32(h.W))
	vli.Encode(w, uint32(h.H))
	vli.Encode(w, uint32(h.Depth))
	vli.Encode(w, uint32(h.Dmin))
	vli.Encode(w, uint32(h.Cols))
	vli.Encode(w, uint32(h.Rows))
	for _, q := range h.Quant {
		vli.Encode(w, uint32(q))
	}
	return w.Flush()
}

// ReadHeader is the exact inverse of WriteHeader.
func ReadHeader(r *bio.Reader) (Header, error) {
	var h Header
	if r.ReadBit() == 1 {
		h.Wavelet = dwt.CDF97
	} else {
		h.Wavelet = dwt.Haar
	}
	h.W = int(vli.Decode(r))
	h.H = int(vli.Decode(r))
	h.Depth = int(vli.Decode(r))
	h.Dmin = int(vli.Decode(r))
	h.Cols = int(vli.Decode(r))
	h.Rows = int(vli.Decode(r))
	for i := range h.Quant {
		h.Quant[i] = int(vli.Decode(r))
	}
	r.Align()

	if h.W <= 0 || h.H <= 0 {
		return h, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrBadHeader, h.W, h.H)
	}
	if h.Dmin < 1 || h.Depth < h.Dmin {
		return h, fmt.Errorf("%w: depth=%d dmin=%d", ErrBadHeader, h.Depth, h.Dmin)
	}
	if h.Cols < 1 || h.Cols > 3 || h.Rows < 1 || h.Rows > 3 {
		return h, fmt.Errorf("%w: cols=%d rows=%d", ErrBadHeader, h.Cols, h.Rows)
	}
	return h, nil
}
