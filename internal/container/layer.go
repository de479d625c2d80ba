package container

import (
	"github.com/xdsopl/godwt/internal/bio"
	"github.com/xdsopl/godwt/internal/bitplane"
	"github.com/xdsopl/godwt/internal/subband"
)

// EncodeLayers writes the codec's detail layers in ascending order
// (coarsest first), per §4.11. Within each layer it flushes and writes a
// continue bit, encodes the luminance planegroup, checks capacity,
// flushes and writes a second continue bit, encodes the two chrominance
// planegroups together, and checks capacity again. Once the budget is
// exceeded it discards the overrunning planegroup, writes a terminating
// 0 bit, and stops; otherwise it writes the terminator after the last
// layer.
func EncodeLayers(w *bio.Writer, layout subband.Layout, arena []int32) error {
	for _, length := range layout.LayerLens() {
		base := layout.LayerBase(length)

		if err := w.Flush(); err != nil {
			return err
		}
		w.PutBit(1)
		off, size := layout.LayerGroupOffset(0, length)
		bitplane.Encode(w, arena[base+off:base+off+size])
		if w.OverCapacity() {
			w.Discard()
			w.PutBit(0)
			return w.Flush()
		}

		if err := w.Flush(); err != nil {
			return err
		}
		w.PutBit(1)
		for ch := 1; ch <= 2; ch++ {
			off, size := layout.LayerGroupOffset(ch, length)
			bitplane.Encode(w, arena[base+off:base+off+size])
		}
		if w.OverCapacity() {
			w.Discard()
			w.PutBit(0)
			return w.Flush()
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	w.PutBit(0)
	return nil
}

// DecodeLayers reads the layer sequence EncodeLayers wrote, filling
// arena (zero-initialized by the caller) with whatever coefficients the
// stream actually carries. It tolerates truncation at either checkpoint
// within a layer, or between layers, leaving the rest of arena at zero.
func DecodeLayers(r *bio.Reader, layout subband.Layout, arena []int32) {
	for _, length := range layout.LayerLens() {
		base := layout.LayerBase(length)

		r.Align()
		if r.ReadBit() == 0 {
			return
		}
		off, size := layout.LayerGroupOffset(0, length)
		copy(arena[base+off:base+off+size], bitplane.Decode(r, size))

		r.Align()
		if r.ReadBit() == 0 {
			return
		}
		for ch := 1; ch <= 2; ch++ {
			off, size := layout.LayerGroupOffset(ch, length)
			copy(arena[base+off:base+off+size], bitplane.Decode(r, size))
		}
	}
}
