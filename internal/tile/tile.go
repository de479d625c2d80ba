// Package tile partitions a W-by-H image into overlapping square tiles
// of side L, mirror-extending each tile's interior on encode (§4.6) and
// recomposing the decoded tiles back into a full raster with a bilinear
// feather blend across the overlap seams.
//
// Grounded on original_source's tiled encode/decode loops (row-major
// col/row iteration, centered tile placement over a nominal grid cell)
// and, for the blend itself, on the windowed-copy idiom in
// FreakyLittleDawg-go-openexr's tiled-image compositing helpers — no
// pack repo implements mirror extension or seam feathering directly, so
// the blend weight formula follows §4.6's prose literally.
package tile

// Geometry describes how a W-by-H image is split into a Cols-by-Rows
// grid of L-by-L tiles whose interiors overlap by half the smallest
// sub-band on each shared edge.
type Geometry struct {
	W, H       int
	L          int
	Cols, Rows int
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// Choose selects the tile side L (a power of two, L >= lmin) and grid
// Cols x Rows (each in {1,2,3}) minimizing the padding waste
// L*L*Cols*Rows - W*H, subject to each dimension being fully covered:
// a lone tile on an axis (Cols or Rows == 1) only needs L >= that
// dimension, since it has no neighbor to share an overlap margin with;
// an axis split into more than one tile needs (L-lmin/2)*count >= that
// dimension, since every interior edge gives up lmin/2 to the overlap.
// When W=H is already a power of two this always selects Cols=Rows=1,
// L=W exactly.
func Choose(w, h, lmin int) Geometry {
	bound := nextPow2(w)
	if hb := nextPow2(h); hb > bound {
		bound = hb
	}
	if bound < lmin {
		bound = lmin
	}
	var best Geometry
	bestWaste := -1
	for l := lmin; l <= 2*bound; l *= 2 {
		inset := l - lmin/2
		if inset <= 0 {
			continue
		}
		for cols := 1; cols <= 3; cols++ {
			// A single tile needs no overlap margin; only tiles sharing
			// an interior edge with a neighbor give up lmin/2 to it.
			colBound := inset * cols
			if cols == 1 {
				colBound = l
			}
			if colBound < w {
				continue
			}
			for rows := 1; rows <= 3; rows++ {
				rowBound := inset * rows
				if rows == 1 {
					rowBound = l
				}
				if rowBound < h {
					continue
				}
				waste := l*l*cols*rows - w*h
				if bestWaste < 0 || waste < bestWaste {
					bestWaste = waste
					best = Geometry{W: w, H: h, L: l, Cols: cols, Rows: rows}
				}
			}
		}
	}
	return best
}

// origin returns the inward centering offset (offX,offY) and the tile's
// top-left corner (startX,startY) in image coordinates — which may lie
// outside [0,W)x[0,H) — for tile (col,row).
func (g Geometry) origin(col, row int) (offX, offY, startX, startY int) {
	nominalX0 := g.W * col / g.Cols
	nominalY0 := g.H * row / g.Rows
	nominalW := (g.W + g.Cols - 1) / g.Cols
	nominalH := (g.H + g.Rows - 1) / g.Rows
	offX = (g.L - nominalW) / 2
	offY = (g.L - nominalH) / 2
	startX = nominalX0 - offX
	startY = nominalY0 - offY
	return
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// mirrorIndex reflects v into [0,limit] by whole-sample symmetric
// (non-repeating-endpoint) extension with period 2*limit.
func mirrorIndex(v, limit int) int {
	if limit == 0 {
		return 0
	}
	period := 2 * limit
	m := v % period
	if m < 0 {
		m += period
	}
	return limit - abs(limit-m)
}

// Extract builds tile (col,row)'s L-by-L plane from a W-by-H row-major
// source plane, mirror-extending past the image border.
func (g Geometry) Extract(src []float64, col, row int) []float64 {
	_, _, startX, startY := g.origin(col, row)
	w1, h1 := g.W-1, g.H-1
	out := make([]float64, g.L*g.L)
	for j := 0; j < g.L; j++ {
		sy := mirrorIndex(startY+j, h1)
		for i := 0; i < g.L; i++ {
			sx := mirrorIndex(startX+i, w1)
			out[j*g.L+i] = src[sy*g.W+sx]
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Recompose pastes tile (col,row)'s reconstructed L-by-L plane into the
// W-by-H destination raster, feather-blending its top and left overlap
// margins (width/height 2*offX, 2*offY) against whatever is already
// there; tiles at the grid's first column/row have no earlier neighbor
// on that axis and so always overwrite along it. Tiles are expected to
// be pasted in row-major (row, then col) order so every tile's blend
// target has already been painted by its top/left neighbors.
func (g Geometry) Recompose(dst []float64, tilePlane []float64, col, row int) {
	offX, offY, startX, startY := g.origin(col, row)
	for j := 0; j < g.L; j++ {
		y := startY + j
		if y < 0 || y >= g.H {
			continue
		}
		wy := 1.0
		if row > 0 {
			wy = clamp01(float64(j) / float64(2*offY))
		}
		for i := 0; i < g.L; i++ {
			x := startX + i
			if x < 0 || x >= g.W {
				continue
			}
			wx := 1.0
			if col > 0 {
				wx = clamp01(float64(i) / float64(2*offX))
			}
			weight := wx * wy
			v := tilePlane[j*g.L+i]
			idx := y*g.W + x
			if weight >= 1 {
				dst[idx] = v
			} else {
				dst[idx] = weight*v + (1-weight)*dst[idx]
			}
		}
	}
}
