// Package ppm reads and writes binary (P6) Portable Pixmap files as
// planar floating-point RGB images in [0,1]. It is an external
// collaborator of the codec core, not part of it.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrBadMagic is returned when a file does not start with the P6 magic
// number.
var ErrBadMagic = errors.New("ppm: not a binary (P6) pixmap")

// ErrChannelRange is returned when a maxval other than the supported
// 8-bit range (1..255) is declared.
var ErrChannelRange = errors.New("ppm: unsupported maxval, want 1..255")

// Image is a planar 8-bit-per-channel RGB raster, each sample scaled to
// [0,1].
type Image struct {
	Width, Height int
	R, G, B       []float64
}

// Read parses a binary PPM stream.
func Read(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading magic: %w", err)
	}
	if magic != "P6" {
		return nil, ErrBadMagic
	}

	w, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading width: %w", err)
	}
	h, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading height: %w", err)
	}
	maxval, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("ppm: reading maxval: %w", err)
	}
	if maxval < 1 || maxval > 255 {
		return nil, ErrChannelRange
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ppm: invalid dimensions %dx%d", w, h)
	}

	n := w * h
	raw := make([]byte, n*3)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("ppm: reading pixel data: %w", err)
	}

	img := &Image{
		Width:  w,
		Height: h,
		R:      make([]float64, n),
		G:      make([]float64, n),
		B:      make([]float64, n),
	}
	scale := 1.0 / float64(maxval)
	for i := 0; i < n; i++ {
		img.R[i] = float64(raw[i*3+0]) * scale
		img.G[i] = float64(raw[i*3+1]) * scale
		img.B[i] = float64(raw[i*3+2]) * scale
	}
	return img, nil
}

// Write emits img as a binary (P6, maxval 255) PPM stream.
func Write(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("ppm: writing header: %w", err)
	}
	n := img.Width * img.Height
	raw := make([]byte, n*3)
	for i := 0; i < n; i++ {
		raw[i*3+0] = clampByte(img.R[i])
		raw[i*3+1] = clampByte(img.G[i])
		raw[i*3+2] = clampByte(img.B[i])
	}
	if _, err := bw.Write(raw); err != nil {
		return fmt.Errorf("ppm: writing pixel data: %w", err)
	}
	return bw.Flush()
}

func clampByte(v float64) byte {
	x := v*255 + 0.5
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return byte(x)
}

// readToken reads one whitespace-delimited token, skipping '#' comments,
// as required by the PPM header grammar.
func readToken(r *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		b, err := r.ReadByte()
		if err != nil {
			if len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		if inComment {
			if b == '\n' {
				inComment = false
			}
			continue
		}
		switch {
		case b == '#':
			inComment = true
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func readIntToken(r *bufio.Reader) (int, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, err
	}
	var n int
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("ppm: malformed integer %q", tok)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
