// dwtdecode reconstructs a binary PPM image from a DWT bit stream.
//
// Usage:
//
//	dwtdecode [options] input.dwt output.ppm
//
// Options:
//
//	-version  show version information
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
	showVersion := flag.Bool("version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dwtdecode [options] input.dwt output.ppm\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("dwtdecode version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := decode(args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "dwtdecode: %v\n", err)
		os.Exit(1)
	}
}

func decode(inFile, outFile string) error {
	in, err := os.Open(inFile)
	if err != nil {
		return fmt.Errorf("cannot open input file: %w", err)
	}
	defer in.Close()

	img, err := godwt.Decode(in)
	if err != nil {
		return fmt.Errorf("cannot decode stream: %w", err)
	}

	n := img.Width * img.Height
	r := make([]float64, n)
	g := make([]float64, n)
	b := make([]float64, n)
	colorspace.PlanesYCbCrToRGB(img.Y, img.Cb, img.Cr, r, g, b)

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer out.Close()

	dst := &ppm.Image{Width: img.Width, Height: img.Height, R: r, G: g, B: b}
	if err := ppm.Write(out, dst); err != nil {
		return fmt.Errorf("cannot write PPM: %w", err)
	}
	return nil
}
