package ppm

import (
	"bytes"
	"math"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	img := &Image{
		Width: 2, Height: 2,
		R: []float64{1, 0, 0.5, 0.25},
		G: []float64{0, 1, 0.5, 0.5},
		B: []float64{0, 0, 0.5, 0.75},
	}
	var buf bytes.Buffer
	if err := Write(&buf, img); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Width != img.Width || got.Height != img.Height {
		t.Fatalf("dims = %dx%d, want %dx%d", got.Width, got.Height, img.Width, img.Height)
	}
	const tol = 1.0 / 255
	for i := range img.R {
		if math.Abs(got.R[i]-img.R[i]) > tol || math.Abs(got.G[i]-img.G[i]) > tol || math.Abs(got.B[i]-img.B[i]) > tol {
			t.Errorf("pixel %d: got (%v,%v,%v), want (%v,%v,%v)", i, got.R[i], got.G[i], got.B[i], img.R[i], img.G[i], img.B[i])
		}
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("P5\n1 1\n255\n\x00\x00\x00")))
	if err != ErrBadMagic {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestReadRejectsOutOfRangeMaxval(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("P6\n1 1\n65535\n\x00\x00\x00")))
	if err != ErrChannelRange {
		t.Fatalf("err = %v, want ErrChannelRange", err)
	}
}

func TestReadSkipsComments(t *testing.T) {
	data := "P6\n# a comment\n2 2\n255\n" + string(make([]byte, 12))
	img, err := Read(bytes.NewReader([]byte(data)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", img.Width, img.Height)
	}
}
