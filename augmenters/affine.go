package augmenters

import (
	"math"

	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/kernels"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
	"golang.org/x/image/math/f64"
)

// Affine applies a per-image affine warp combining scale, translation,
// rotation and shear. All four arguments are sampled per image; scale and
// translation can be made anisotropic with an XY pair.
//
// The composite transform pivots around the image center: the image center
// is moved to the coordinate origin, then scale, rotation, shear and
// translation are applied, then the center is moved back. Images whose
// sampled values reduce to the identity skip the resampling kernel
// entirely.
type Affine struct {
	base
	scaleX, scaleY         params.Parameter
	translateX, translateY params.Parameter
	rotate, shear          params.Parameter
	isoScale, isoTranslate bool
	interpolation          kernels.Interpolation
	fill                   uint8
}

var _ Augmenter = (*Affine)(nil)

// NewAffine creates an Affine from its four stochastic arguments:
//
//   - scale: multiplier of the image size, constrained positive (1.0 is
//     identity). A float, [2]float64 range, params.Parameter, or an XY pair
//     of those for anisotropic scaling.
//   - translate: continuous values (float, [2]float64, continuous parameter)
//     are fractions of the image width/height; integer values (int, [2]int,
//     discrete parameter) are literal pixel offsets. May be an XY pair.
//   - rotate: rotation angle in degrees; float, [2]float64 range or
//     params.Parameter.
//   - shear: shear angle in degrees; same forms as rotate.
func NewAffine(scale, translate, rotate, shear any) *Affine {
	a := &Affine{
		base:          newBase("Affine"),
		rotate:        toParam("rotate", rotate, anyValue),
		shear:         toParam("shear", shear, anyValue),
		interpolation: kernels.Bilinear,
	}
	a.scaleX, a.scaleY, a.isoScale = toXYPair("scale", scale, func(name string, arg any) params.Parameter {
		return toParam(name, arg, positive)
	})
	a.translateX, a.translateY, a.isoTranslate = toXYPair("translate", translate, toTranslation)
	return a
}

// WithInterpolation selects the resampling filter, kernels.Bilinear by
// default. Use kernels.Nearest for annotation masks, whose value set must
// not change. It returns the augmenter, so calls can be cascaded.
func (a *Affine) WithInterpolation(interp kernels.Interpolation) *Affine {
	a.interpolation = interp
	return a
}

// WithFill sets the value of destination pixels that map outside the source
// image, 0 by default. It returns the augmenter, so calls can be cascaded.
func (a *Affine) WithFill(fill uint8) *Affine {
	a.fill = fill
	return a
}

// Augment implements Augmenter.
func (a *Affine) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.applyBatch)
}

// affineSamples holds the per-image values of one sampling pass.
type affineSamples struct {
	scaleX, scaleY         []float64
	translateX, translateY []float64 // Pixel offsets, already normalized.
	rotate, shear          []float64 // Radians.
}

func (a *Affine) drawSamples(count, width, height int, stream *random.Stream) affineSamples {
	var s affineSamples
	shape := []int{count}

	s.scaleX = a.scaleX.Draw(shape, stream)
	if a.isoScale {
		s.scaleY = s.scaleX // One draw drives both axes.
	} else {
		s.scaleY = a.scaleY.Draw(shape, stream)
	}

	s.translateX = a.translateX.Draw(shape, stream)
	if a.isoTranslate {
		s.translateY = append([]float64(nil), s.translateX...)
	} else {
		s.translateY = a.translateY.Draw(shape, stream)
	}
	// Normalize to pixel offsets: continuous samples are fractions of the
	// image dimension, discrete samples are pixels already.
	if !a.translateX.Discrete() {
		for ii := range s.translateX {
			s.translateX[ii] *= float64(width)
		}
	}
	if !a.translateY.Discrete() {
		for ii := range s.translateY {
			s.translateY[ii] *= float64(height)
		}
	}

	s.rotate = a.rotate.Draw(shape, stream)
	s.shear = a.shear.Draw(shape, stream)
	for ii := 0; ii < count; ii++ {
		s.rotate[ii] *= math.Pi / 180
		s.shear[ii] *= math.Pi / 180
	}
	return s
}

func (a *Affine) applyBatch(batch *batches.Batch, stream *random.Stream) *batches.Batch {
	result := batch.Clone()
	samples := a.drawSamples(batch.Count, batch.Width, batch.Height, stream)
	applyPerImage(batch.Count, func(ii int) {
		sx, sy := samples.scaleX[ii], samples.scaleY[ii]
		tx, ty := samples.translateX[ii], samples.translateY[ii]
		rot, shear := samples.rotate[ii], samples.shear[ii]
		if sx == 1 && sy == 1 && tx == 0 && ty == 0 && rot == 0 && shear == 0 {
			return // Identity, skip the kernel.
		}
		matrix := affineMatrix(batch.Width, batch.Height, sx, sy, tx, ty, rot, shear)
		im := result.Image(ii)
		for c := 0; c < im.Channels; c++ {
			im.SetPlane(c, kernels.WarpAffinePlane(im.Plane(c), im.Width, im.Height, matrix, a.interpolation, a.fill))
		}
	})
	return result
}

// affineMatrix builds the forward transform mapping source to destination
// coordinates: translate the image center to the origin, apply scale,
// rotation, shear and translation, translate back. The ordering makes
// rotation and scale pivot around the image center rather than its corner.
func affineMatrix(width, height int, sx, sy, tx, ty, rot, shear float64) f64.Aff3 {
	cx, cy := float64(width)/2, float64(height)/2
	toOrigin := f64.Aff3{1, 0, -cx, 0, 1, -cy}
	transform := f64.Aff3{
		sx * math.Cos(rot), -sy * math.Sin(rot+shear), tx,
		sx * math.Sin(rot), sy * math.Cos(rot+shear), ty,
	}
	toCenter := f64.Aff3{1, 0, cx, 0, 1, cy}
	return mulAff3(toCenter, mulAff3(transform, toOrigin))
}

// mulAff3 composes two affine matrices (implicit third row [0 0 1]):
// applying the result equals applying b first, then a.
func mulAff3(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Deterministic implements Augmenter.
func (a *Affine) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *Affine) Parameters() []params.Parameter {
	return []params.Parameter{a.scaleX, a.scaleY, a.translateX, a.translateY, a.rotate, a.shear}
}

func (a *Affine) String() string { return describe(&a.base, a.Parameters()) }
