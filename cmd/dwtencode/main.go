// dwtencode compresses a binary PPM image into a capacity-limited DWT
// bit stream.
//
// Usage:
//
//	dwtencode [options] input.ppm output.dwt
//
// Options:
//
//	-q0, -q1, -q2  per-channel quantization exponent (default 7,5,5)
//	-wavelet       0=Haar, 1=CDF 9/7 (default 1)
//	-capacity      byte budget, 0 = unbounded (default 8388608)
//	-version       show version information
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xdsopl/godwt"
	"github.com/xdsopl/godwt/colorspace"
	"github.com/xdsopl/godwt/ppm"
)

const version = "1.0.0"

func main() {
	q0 := flag.Int("q0", 7, "luminance quantization exponent")
	q1 := flag.Int("q1", 5, "Cb quantization exponent")
	q2 := flag.Int("q2", 5, "Cr quantization exponent")
	wavelet := flag.Int("wavelet", 1, "wavelet kernel: 0=Haar, 1=CDF 9/7")
	capacity := flag.Int("capacity", 1<<23, "byte budget, 0 = unbounded")
	showVersion := flag.Bool("version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dwtencode [options] input.ppm output.dwt\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("dwtencode version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := encode(args[0], args[1], [3]int{*q0, *q1, *q2}, *wavelet, *capacity); err != nil {
		fmt.Fprintf(os.Stderr, "dwtencode: %v\n", err)
		os.Exit(1)
	}
}

func encode(inFile, outFile string, quant [3]int, wavelet, capacity int) error {
	in, err := os.Open(inFile)
	if err != nil {
		return fmt.Errorf("cannot open input file: %w", err)
	}
	defer in.Close()

	src, err := ppm.Read(in)
	if err != nil {
		return fmt.Errorf("cannot read PPM: %w", err)
	}

	n := src.Width * src.Height
	y := make([]float64, n)
	cb := make([]float64, n)
	cr := make([]float64, n)
	colorspace.PlanesRGBToYCbCr(src.R, src.G, src.B, y, cb, cr)

	img := &godwt.Raster{Width: src.Width, Height: src.Height, Y: y, Cb: cb, Cr: cr}

	wv := godwt.Haar
	if wavelet != 0 {
		wv = godwt.CDF97
	}
	opts := &godwt.Options{Wavelet: wv, Quant: quant, Capacity: capacity, Dmin: 2}

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer out.Close()

	if err := godwt.Encode(out, img, opts); err != nil {
		return fmt.Errorf("cannot encode image: %w", err)
	}
	return nil
}
