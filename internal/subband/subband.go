// Package subband maps (channel, tile, layer, orientation, coefficient)
// coordinates to offsets, both within the codec's linear bit-stream
// coefficient arena (§4.8) and within a single tile's
// row-major wavelet-coefficient plane (the layout internal/dwt.Transform2D
// produces).
//
// This centralizes the stride/offset arithmetic the reference pervasively
// inlines as `length*(yoff+y)+xoff+x`-style pointer arithmetic (see
// original_source/decode.c's decode/decode_root/quantization functions) in
// one well-tested mapping, per the codec's "arena + index math" design
// note.
package subband

import "github.com/xdsopl/godwt/internal/hilbert"

// Orientation identifies one of the three oriented detail sub-bands that
// make up a non-root layer.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	Diagonal
)

// Orientations lists all three in the order the reference decoder visits
// them (yoff=0,xoff=len then yoff=len,xoff=0 then yoff=len,xoff=len).
var Orientations = [3]Orientation{Horizontal, Vertical, Diagonal}

// QuadrantOffset returns the (xoff,yoff) position of orientation o's
// len-by-len quadrant within a 2*len-by-2*len block.
func QuadrantOffset(o Orientation, length int) (xoff, yoff int) {
	switch o {
	case Horizontal:
		return length, 0
	case Vertical:
		return 0, length
	default: // Diagonal
		return length, length
	}
}

// PlaneIndex returns the row-major offset, within a plane of the given
// stride (the tile's full side L), of local position (x,y) inside the
// quadrant at (xoff,yoff).
func PlaneIndex(stride, xoff, yoff, x, y int) int {
	return stride*(yoff+y) + xoff + x
}

// ForEachHilbert calls fn(i, x, y) for i in [0, length*length) with (x,y)
// the Hilbert-curve position of index i on the length-by-length grid.
func ForEachHilbert(length int, fn func(i, x, y int)) {
	n := length * length
	for i := 0; i < n; i++ {
		p := hilbert.At(length, i)
		fn(i, p.X, p.Y)
	}
}

// Layout describes the static tiling/resolution parameters needed to
// compute offsets within the bit-stream coefficient arena.
type Layout struct {
	Cols, Rows int // tile grid
	L          int // tile side, a power of two
	Lmin       int // smallest sub-band side unit (lmin = 2^dmin)
}

// Tiles returns the number of tiles.
func (g Layout) Tiles() int { return g.Cols * g.Rows }

// RootLen returns the root sub-band's side, lmin/2.
func (g Layout) RootLen() int { return g.Lmin / 2 }

// LayerLens returns the ascending sequence of detail-layer sides,
// {lmin/2, lmin, 2*lmin, ..., L/2}, the order the capacity driver
// schedules layers in (coarsest first).
func (g Layout) LayerLens() []int {
	var lens []int
	for l := g.Lmin / 2; l <= g.L/2; l *= 2 {
		lens = append(lens, l)
	}
	return lens
}

// RootChannelSize is the number of coefficients in one channel's root
// sub-band across all tiles: (lmin/2)^2 * cols * rows.
func (g Layout) RootChannelSize() int {
	rl := g.RootLen()
	return rl * rl * g.Tiles()
}

// RootOffset returns the offset and length, within the arena's root
// segment (the first 3*RootChannelSize() entries), of channel c's
// (row-major) tile t block. Tiles are numbered row-major: t = row*Cols+col.
func (g Layout) RootOffset(channel, tile int) (offset, length int) {
	rl := g.RootLen()
	length = rl * rl
	offset = (channel*g.Tiles()+tile)*length
	return
}

// RootTotalSize is the size of the whole root segment (all channels).
func (g Layout) RootTotalSize() int { return 3 * g.RootChannelSize() }

// LayerChannelSize is the number of coefficients in one channel's
// planegroup (all tiles, all 3 orientations) at a given layer length.
func (g Layout) LayerChannelSize(length int) int {
	return g.Tiles() * 3 * length * length
}

// LayerGroupOffset returns the offset and length of channel c's whole
// planegroup at layer length — the exact vector the bit-plane coder
// encodes/decodes as one unit per §4.9-§4.11 — measured from the start of
// that layer's segment (i.e. relative, not including the root segment or
// earlier layers; callers add Layout.LayerBase).
func (g Layout) LayerGroupOffset(channel, length int) (offset, size int) {
	size = g.LayerChannelSize(length)
	offset = channel * size
	return
}

// SubbandOffset returns the offset and length, within channel c's
// planegroup at the given layer length, of tile t's orientation o
// sub-band (len*len coefficients, Hilbert order). Tiles are row-major.
func (g Layout) SubbandOffset(length int, tile int, o Orientation) (offset, size int) {
	size = length * length
	offset = (tile*3 + int(o)) * size
	return
}

// LayerBase returns the offset, within the whole arena, of the start of
// the detail-layer segment with the given side length (after the root
// segment and all coarser layers).
func (g Layout) LayerBase(length int) int {
	base := g.RootTotalSize()
	for l := g.Lmin / 2; l < length; l *= 2 {
		base += 3 * g.LayerChannelSize(l)
	}
	return base
}

// TotalSize is the full arena length: root plus every detail layer, all
// channels.
func (g Layout) TotalSize() int {
	total := g.RootTotalSize()
	for _, l := range g.LayerLens() {
		total += 3 * g.LayerChannelSize(l)
	}
	return total
}
