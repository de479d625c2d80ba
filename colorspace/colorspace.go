// Package colorspace converts between RGB and YCbCr rasters, in [0,1]
// floating point. The core codec (internal/...) treats this conversion
// as an external collaborator applied before encoding and after
// decoding, per the codec's scope.
//
// Grounded on FreakyLittleDawg-go-openexr's chromaticity/luminance
// helpers (exr/yc.go); the ITU-R BT.601 matrix used here is the
// standard full-range one, matching the coefficients that file's
// luminance weighting uses.
package colorspace

// RGBToYCbCr converts one RGB triple (each in [0,1]) to YCbCr, with Cb
// and Cr centered at 0.5.
func RGBToYCbCr(r, g, b float64) (y, cb, cr float64) {
	y = 0.299*r + 0.587*g + 0.114*b
	cb = (b-y)/1.772 + 0.5
	cr = (r-y)/1.402 + 0.5
	return
}

// YCbCrToRGB is the exact inverse of RGBToYCbCr.
func YCbCrToRGB(y, cb, cr float64) (r, g, b float64) {
	r = y + 1.402*(cr-0.5)
	g = y - (0.114*1.772/0.587)*(cb-0.5) - (0.299*1.402/0.587)*(cr-0.5)
	b = y + 1.772*(cb-0.5)
	return
}

// PlanesRGBToYCbCr converts three equal-length planar RGB channels to
// planar YCbCr in place, writing into y, cb, cr (which may each alias
// one of r, g, b).
func PlanesRGBToYCbCr(r, g, b, y, cb, cr []float64) {
	for i := range r {
		y[i], cb[i], cr[i] = RGBToYCbCr(r[i], g[i], b[i])
	}
}

// PlanesYCbCrToRGB is the exact inverse of PlanesRGBToYCbCr.
func PlanesYCbCrToRGB(y, cb, cr, r, g, b []float64) {
	for i := range y {
		r[i], g[i], b[i] = YCbCrToRGB(y[i], cb[i], cr[i])
	}
}
