// Package kernels wraps the external numeric kernels consumed by the
// augmenters: separable Gaussian blur (github.com/disintegration/imaging)
// and inverse-mapped affine resampling (golang.org/x/image/draw).
//
// The kernels operate on single channel planes, (height, width) uint8
// arrays; the augmenters loop them over the channels of each image. Their
// internal algorithms are not part of this library's contract, only the
// (input plane, parameters) -> output plane signatures matter; outputs are
// not guaranteed to be bit-identical across kernel library versions.
package kernels

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/gomlx/augment"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"k8s.io/klog/v2"
)

// Interpolation selects the resampling filter used by WarpAffinePlane.
type Interpolation uint8

const (
	// Bilinear interpolation, the default.
	Bilinear Interpolation = iota
	// Nearest neighbor interpolation, keeps the original value set (useful
	// for annotation masks).
	Nearest
)

func (i Interpolation) String() string {
	switch i {
	case Bilinear:
		return "Bilinear"
	case Nearest:
		return "Nearest"
	}
	return "Unknown"
}

func (i Interpolation) interpolator() draw.Interpolator {
	switch i {
	case Bilinear:
		return draw.ApproxBiLinear
	case Nearest:
		return draw.NearestNeighbor
	default:
		klog.Errorf("kernels: invalid Interpolation %d, falling back to bilinear", i)
		return draw.ApproxBiLinear
	}
}

func grayFromPlane(plane []uint8, width, height int) *image.Gray {
	if len(plane) != width*height {
		augment.ThrowInputf("kernels: plane has %d values, expected %d (%dx%d)", len(plane), width*height, width, height)
	}
	return &image.Gray{Pix: plane, Stride: width, Rect: image.Rect(0, 0, width, height)}
}

// GaussianBlurPlane applies a separable Gaussian blur with the given sigma to
// one (height, width) channel plane and returns the blurred plane. Sigma
// must be > 0.
func GaussianBlurPlane(plane []uint8, width, height int, sigma float64) []uint8 {
	if sigma <= 0 {
		augment.ThrowInputf("kernels.GaussianBlurPlane: sigma must be > 0, got %g", sigma)
	}
	src := grayFromPlane(plane, width, height)
	blurred := imaging.Blur(src, sigma) // Grayscale in, so R==G==B out.
	out := make([]uint8, width*height)
	for ii := range out {
		out[ii] = blurred.Pix[ii*4]
	}
	return out
}

// WarpAffinePlane resamples one (height, width) channel plane under the
// affine matrix m, which maps source coordinates to destination coordinates
// (the kernel performs the inverse coordinate mapping internally, the usual
// convention of forward-warp kernels). Destination pixels that map outside
// the source are set to fill.
func WarpAffinePlane(plane []uint8, width, height int, m f64.Aff3, interp Interpolation, fill uint8) []uint8 {
	src := grayFromPlane(plane, width, height)
	dst := image.NewGray(image.Rect(0, 0, width, height))
	for ii := range dst.Pix {
		dst.Pix[ii] = fill
	}
	interp.interpolator().Transform(dst, m, src, src.Bounds(), draw.Src, nil)
	return dst.Pix
}
