// Package godwt implements a lossy image codec built on a multi-level,
// separable, lifting-based 2-D discrete wavelet transform. It accepts a
// planar YCbCr raster in [0,1] and produces a capacity-limited bit
// stream; color-space conversion and file I/O are left to callers (see
// the colorspace and ppm packages).
//
// Grounded on FreakyLittleDawg-go-openexr's top-level package (the
// Encode/Decode entry points gluing header, compression, and tiling
// together) for overall shape, and on original_source's main()/decode()
// for the encode/decode pipeline order itself.
package godwt

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/xdsopl/godwt/internal/bio"
	"github.com/xdsopl/godwt/internal/container"
	"github.com/xdsopl/godwt/internal/dwt"
	"github.com/xdsopl/godwt/internal/quant"
	"github.com/xdsopl/godwt/internal/subband"
	"github.com/xdsopl/godwt/internal/tile"
)

// Wavelet selects the 1-D kernel used by the transform.
type Wavelet = dwt.Wavelet

const (
	Haar  = dwt.Haar
	CDF97 = dwt.CDF97
)

// Raster is a planar YCbCr image, each channel a row-major plane of
// samples in [0,1].
type Raster struct {
	Width, Height int
	Y, Cb, Cr     []float64
}

// ErrDimensions is returned when a Raster's channel lengths don't match
// its declared Width*Height.
var ErrDimensions = errors.New("godwt: channel length does not match width*height")

func (img *Raster) validate() error {
	n := img.Width * img.Height
	if len(img.Y) != n || len(img.Cb) != n || len(img.Cr) != n {
		return ErrDimensions
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("godwt: invalid dimensions %dx%d", img.Width, img.Height)
	}
	return nil
}

// Options configures an encode. The zero value is not valid; use
// DefaultOptions and override individual fields.
type Options struct {
	Wavelet  Wavelet
	Quant    [3]int // per-channel quantization exponent
	Capacity int    // byte budget; 0 means unbounded
	Dmin     int    // lmin = 2^Dmin, the smallest sub-band side unit

	// Parallel opts into running each tile's transform and quantization
	// step on a bounded worker pool (sized by runtime.NumCPU). It never
	// affects the encoded bytes: every tile writes a disjoint region of
	// the coefficient arena, and the bit stream itself is still produced
	// by a single sequential pass over that arena, so determinism (§8)
	// is unaffected by goroutine scheduling order.
	Parallel bool
}

// DefaultOptions mirrors the reference CLI's defaults: CDF 9/7 wavelet,
// Q=(7,5,5), an 8 MiB capacity, and lmin=4.
func DefaultOptions() *Options {
	return &Options{
		Wavelet:  CDF97,
		Quant:    [3]int{7, 5, 5},
		Capacity: 1 << 23,
		Dmin:     2,
	}
}

// Metadata describes an encoded stream's geometry without decoding its
// pixel data.
type Metadata struct {
	Width, Height int
	Wavelet       Wavelet
	Cols, Rows    int
	TileSide      int
	Quant         [3]int
}

// Encode writes img to w as a capacity-limited bit stream.
func Encode(w io.Writer, img *Raster, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := img.validate(); err != nil {
		return err
	}

	lmin := 1 << uint(opts.Dmin)
	geom := tile.Choose(img.Width, img.Height, lmin)
	layout := subband.Layout{Cols: geom.Cols, Rows: geom.Rows, L: geom.L, Lmin: lmin}
	arena := make([]int32, layout.TotalSize())

	biasedY := make([]float64, len(img.Y))
	for i, v := range img.Y {
		biasedY[i] = v - 0.5
	}
	planes := [3][]float64{biasedY, img.Cb, img.Cr}

	type job struct{ ch, tileIdx, col, row int }
	var jobs []job
	for ch := 0; ch < 3; ch++ {
		for row := 0; row < geom.Rows; row++ {
			for col := 0; col < geom.Cols; col++ {
				jobs = append(jobs, job{ch, row*geom.Cols + col, col, row})
			}
		}
	}
	run := func(j job) {
		plane := geom.Extract(planes[j.ch], j.col, j.row)
		dwt.Transform2D(opts.Wavelet, plane, geom.L, geom.L, lmin)
		encodeTileIntoArena(arena, layout, j.ch, j.tileIdx, plane, opts.Quant[j.ch])
	}
	if opts.Parallel {
		workers := runtime.NumCPU()
		queue := make(chan job)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := range queue {
					run(j)
				}
			}()
		}
		for _, j := range jobs {
			queue <- j
		}
		close(queue)
		wg.Wait()
	} else {
		for _, j := range jobs {
			run(j)
		}
	}

	bw := bio.NewWriter(w, int64(opts.Capacity))
	hdr := container.Header{
		Wavelet: opts.Wavelet,
		W:       img.Width,
		H:       img.Height,
		Depth:   log2(geom.L),
		Dmin:    opts.Dmin,
		Cols:    geom.Cols,
		Rows:    geom.Rows,
		Quant:   opts.Quant,
	}
	if err := container.WriteHeader(bw, hdr); err != nil {
		return fmt.Errorf("godwt: writing header: %w", err)
	}

	rootSize := layout.RootChannelSize()
	for ch := 0; ch < 3; ch++ {
		container.EncodeRoot(bw, arena[ch*rootSize:(ch+1)*rootSize])
	}

	if err := container.EncodeLayers(bw, layout, arena); err != nil {
		return fmt.Errorf("godwt: writing layers: %w", err)
	}
	return bw.Close()
}

// Decode reads a stream written by Encode and reconstructs an
// approximation of the original image. It accepts any prefix of a
// well-formed stream that ends at a layer checkpoint, per the format's
// truncation tolerance.
func Decode(r io.Reader) (*Raster, error) {
	br := bio.NewReader(r)
	hdr, err := container.ReadHeader(br)
	if err != nil {
		return nil, fmt.Errorf("godwt: %w", err)
	}

	layout := subband.Layout{Cols: hdr.Cols, Rows: hdr.Rows, L: hdr.L(), Lmin: hdr.Lmin()}
	arena := make([]int32, layout.TotalSize())

	rootSize := layout.RootChannelSize()
	for ch := 0; ch < 3; ch++ {
		copy(arena[ch*rootSize:(ch+1)*rootSize], container.DecodeRoot(br, rootSize))
	}
	container.DecodeLayers(br, layout, arena)

	planes := [3][]float64{
		make([]float64, hdr.W*hdr.H),
		make([]float64, hdr.W*hdr.H),
		make([]float64, hdr.W*hdr.H),
	}
	for ch := 0; ch < 3; ch++ {
		for row := 0; row < hdr.Rows; row++ {
			for col := 0; col < hdr.Cols; col++ {
				tileIdx := row*hdr.Cols + col
				plane := make([]float64, hdr.L()*hdr.L())
				decodeArenaIntoTile(arena, layout, ch, tileIdx, plane, hdr.Quant[ch])
				dwt.Inverse2D(hdr.Wavelet, plane, hdr.L(), hdr.L(), hdr.Lmin())
				geomForTile(hdr).Recompose(planes[ch], plane, col, row)
			}
		}
	}
	for i := range planes[0] {
		planes[0][i] += 0.5
	}

	return &Raster{Width: hdr.W, Height: hdr.H, Y: planes[0], Cb: planes[1], Cr: planes[2]}, nil
}

// DecodeMetadata reads only the header of a stream, without decoding
// pixel data.
func DecodeMetadata(r io.Reader) (*Metadata, error) {
	hdr, err := container.ReadHeader(bio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("godwt: %w", err)
	}
	return &Metadata{
		Width:    hdr.W,
		Height:   hdr.H,
		Wavelet:  hdr.Wavelet,
		Cols:     hdr.Cols,
		Rows:     hdr.Rows,
		TileSide: hdr.L(),
		Quant:    hdr.Quant,
	}, nil
}

func geomForTile(hdr container.Header) tile.Geometry {
	return tile.Geometry{W: hdr.W, H: hdr.H, L: hdr.L(), Cols: hdr.Cols, Rows: hdr.Rows}
}

func log2(n int) int {
	d := 0
	for n > 1 {
		n >>= 1
		d++
	}
	return d
}

// encodeTileIntoArena quantizes tile (channel,tileIdx)'s transformed
// plane and writes it into arena at the positions subband.Layout
// computes: the root quadrant row-major, and each detail layer's
// orientation quadrants in Hilbert order.
func encodeTileIntoArena(arena []int32, layout subband.Layout, channel, tileIdx int, plane []float64, q int) {
	rootLen := layout.RootLen()
	rootOff, _ := layout.RootOffset(channel, tileIdx)
	for y := 0; y < rootLen; y++ {
		for x := 0; x < rootLen; x++ {
			arena[rootOff+y*rootLen+x] = quant.EncodeRoot(plane[y*layout.L+x], q)
		}
	}
	for _, length := range layout.LayerLens() {
		base := layout.LayerBase(length)
		groupOff, _ := layout.LayerGroupOffset(channel, length)
		for _, o := range subband.Orientations {
			subOff, _ := layout.SubbandOffset(length, tileIdx, o)
			xoff, yoff := subband.QuadrantOffset(o, length)
			subband.ForEachHilbert(length, func(i, x, y int) {
				planeIdx := subband.PlaneIndex(layout.L, xoff, yoff, x, y)
				arena[base+groupOff+subOff+i] = quant.EncodeDetail(plane[planeIdx], q)
			})
		}
	}
}

// decodeArenaIntoTile is the exact inverse of encodeTileIntoArena.
func decodeArenaIntoTile(arena []int32, layout subband.Layout, channel, tileIdx int, plane []float64, q int) {
	rootLen := layout.RootLen()
	rootOff, _ := layout.RootOffset(channel, tileIdx)
	for y := 0; y < rootLen; y++ {
		for x := 0; x < rootLen; x++ {
			plane[y*layout.L+x] = quant.DecodeRoot(arena[rootOff+y*rootLen+x], q)
		}
	}
	for _, length := range layout.LayerLens() {
		base := layout.LayerBase(length)
		groupOff, _ := layout.LayerGroupOffset(channel, length)
		for _, o := range subband.Orientations {
			subOff, _ := layout.SubbandOffset(length, tileIdx, o)
			xoff, yoff := subband.QuadrantOffset(o, length)
			subband.ForEachHilbert(length, func(i, x, y int) {
				planeIdx := subband.PlaneIndex(layout.L, xoff, yoff, x, y)
				plane[planeIdx] = quant.DecodeDetail(arena[base+groupOff+subOff+i], q)
			})
		}
	}
}
