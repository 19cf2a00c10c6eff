package augmenters

import (
	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/kernels"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
)

// GaussianBlur blurs each image with a per-image radius ("sigma"): every
// channel plane is independently passed through the external separable blur
// kernel. A sigma of 0 leaves the image untouched.
type GaussianBlur struct {
	base
	sigma params.Parameter
}

var _ Augmenter = (*GaussianBlur)(nil)

// NewGaussianBlur creates a GaussianBlur with the given per-image sigma: a
// non-negative float, a [2]float64 uniform range or a params.Parameter.
func NewGaussianBlur(sigma any) *GaussianBlur {
	return &GaussianBlur{base: newBase("GaussianBlur"), sigma: toParam("sigma", sigma, nonNegative)}
}

// Augment implements Augmenter.
func (a *GaussianBlur) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.applyBatch)
}

func (a *GaussianBlur) applyBatch(batch *batches.Batch, stream *random.Stream) *batches.Batch {
	result := batch.Clone()
	samples := a.sigma.Draw([]int{batch.Count}, stream)
	applyPerImage(batch.Count, func(ii int) {
		sigma := samples[ii]
		if sigma <= 0 {
			return
		}
		im := result.Image(ii)
		for c := 0; c < im.Channels; c++ {
			im.SetPlane(c, kernels.GaussianBlurPlane(im.Plane(c), im.Width, im.Height, sigma))
		}
	})
	return result
}

// Deterministic implements Augmenter.
func (a *GaussianBlur) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *GaussianBlur) Parameters() []params.Parameter { return []params.Parameter{a.sigma} }

func (a *GaussianBlur) String() string { return describe(&a.base, a.Parameters()) }
