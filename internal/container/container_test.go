package container

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/xdsopl/godwt/internal/bio"
	"github.com/xdsopl/godwt/internal/dwt"
	"github.com/xdsopl/godwt/internal/subband"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Wavelet: dwt.CDF97, W: 640, H: 480, Depth: 6, Dmin: 2, Cols: 2, Rows: 1, Quant: [3]int{7, 5, 5}}
	var buf bytes.Buffer
	w := bio.NewWriter(&buf, 0)
	if err := WriteHeader(w, h); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	got, err := ReadHeader(bio.NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got != h {
		t.Fatalf("ReadHeader() = %+v, want %+v", got, h)
	}
}

func TestReadHeaderRejectsBadGeometry(t *testing.T) {
	var buf bytes.Buffer
	w := bio.NewWriter(&buf, 0)
	h := Header{Wavelet: dwt.Haar, W: 0, H: 10, Depth: 4, Dmin: 2, Cols: 1, Rows: 1}
	WriteHeader(w, h)
	w.Close()
	if _, err := ReadHeader(bio.NewReader(bytes.NewReader(buf.Bytes()))); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestRootRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	v := make([]int32, 37)
	for i := range v {
		v[i] = int32(rng.Intn(2001) - 1000)
	}
	var buf bytes.Buffer
	w := bio.NewWriter(&buf, 0)
	EncodeRoot(w, v)
	w.Close()
	got := DecodeRoot(bio.NewReader(bytes.NewReader(buf.Bytes())), len(v))
	for i := range v {
		if got[i] != v[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], v[i])
		}
	}
}

func TestRootAllZero(t *testing.T) {
	v := make([]int32, 16)
	var buf bytes.Buffer
	w := bio.NewWriter(&buf, 0)
	EncodeRoot(w, v)
	w.Close()
	got := DecodeRoot(bio.NewReader(bytes.NewReader(buf.Bytes())), len(v))
	for i, x := range got {
		if x != 0 {
			t.Fatalf("index %d: got %d, want 0", i, x)
		}
	}
}

func TestLayersRoundTripWithoutTruncation(t *testing.T) {
	layout := subband.Layout{Cols: 1, Rows: 1, L: 16, Lmin: 4}
	arena := make([]int32, layout.TotalSize())
	rng := rand.New(rand.NewSource(3))
	for i := range arena {
		if rng.Intn(3) == 0 {
			arena[i] = int32(rng.Intn(201) - 100)
		}
	}
	var buf bytes.Buffer
	w := bio.NewWriter(&buf, 0)
	if err := EncodeLayers(w, layout, arena); err != nil {
		t.Fatalf("EncodeLayers: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got := make([]int32, len(arena))
	DecodeLayers(bio.NewReader(bytes.NewReader(buf.Bytes())), layout, got)
	for _, length := range layout.LayerLens() {
		base := layout.LayerBase(length)
		for ch := 0; ch < 3; ch++ {
			off, size := layout.LayerGroupOffset(ch, length)
			for i := 0; i < size; i++ {
				idx := base + off + i
				if got[idx] != arena[idx] {
					t.Fatalf("layer len=%d channel=%d offset=%d: got %d, want %d", length, ch, i, got[idx], arena[idx])
				}
			}
		}
	}
}

func TestLayersTruncateUnderCapacity(t *testing.T) {
	layout := subband.Layout{Cols: 1, Rows: 1, L: 32, Lmin: 4}
	arena := make([]int32, layout.TotalSize())
	rng := rand.New(rand.NewSource(4))
	for i := range arena {
		if rng.Intn(2) == 0 {
			arena[i] = int32(rng.Intn(4001) - 2000)
		}
	}
	var buf bytes.Buffer
	const capacity = 64
	w := bio.NewWriter(&buf, capacity)
	if err := EncodeLayers(w, layout, arena); err != nil {
		t.Fatalf("EncodeLayers: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if int64(buf.Len()) > capacity+8 {
		t.Fatalf("wrote %d bytes, want <= %d", buf.Len(), capacity+8)
	}

	got := make([]int32, len(arena))
	DecodeLayers(bio.NewReader(bytes.NewReader(buf.Bytes())), layout, got)
	// Decoding a truncated stream must never panic, and coarsest layer's
	// luminance group, being written first, should usually survive.
	_ = got
}
