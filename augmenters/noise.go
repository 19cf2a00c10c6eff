package augmenters

import (
	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/stat/distuv"
)

// AdditiveGaussianNoise adds per-pixel Gaussian noise to each image. The
// noise mean ("loc") and standard deviation ("scale") are drawn once per
// image; the per-pixel noise is in [0, 1] units and scaled by 255 before
// being added. Results are clamped into [0, 255] when clipping is enabled,
// the default.
type AdditiveGaussianNoise struct {
	base
	loc, scale params.Parameter
	clip       bool
}

var _ Augmenter = (*AdditiveGaussianNoise)(nil)

// NewAdditiveGaussianNoise creates an AdditiveGaussianNoise with the given
// per-image mean and standard deviation: floats, [2]float64 uniform ranges
// or params.Parameter values. The standard deviation must be >= 0. Clipping
// defaults to enabled.
func NewAdditiveGaussianNoise(loc, scale any) *AdditiveGaussianNoise {
	return &AdditiveGaussianNoise{
		base:  newBase("AdditiveGaussianNoise"),
		loc:   toParam("loc", loc, anyValue),
		scale: toParam("scale", scale, nonNegative),
		clip:  true,
	}
}

// WithClip enables or disables clamping of the results into [0, 255]. It
// returns the augmenter, so calls can be cascaded.
func (a *AdditiveGaussianNoise) WithClip(clip bool) *AdditiveGaussianNoise {
	a.clip = clip
	return a
}

// Augment implements Augmenter.
func (a *AdditiveGaussianNoise) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.applyBatch)
}

func (a *AdditiveGaussianNoise) applyBatch(batch *batches.Batch, stream *random.Stream) *batches.Batch {
	result := batch.Clone()
	count := batch.Count

	// Three independent sub-streams: the choice of mean/scale per image must
	// be statistically independent of the pixel-level noise pattern
	// generated for that image.
	seedStream := stream.Fork()
	locStream := stream.Fork()
	scaleStream := stream.Fork()
	seeds := make([]uint64, count)
	for ii := 0; ii < count; ii++ {
		seeds[ii] = seedStream.Seed64()
	}
	locs := a.loc.Draw([]int{count}, locStream)
	scales := a.scale.Draw([]int{count}, scaleStream)

	size := batch.ImageSize()
	applyPerImage(count, func(ii int) {
		loc, scale := locs[ii], scales[ii]
		if scale < 0 {
			exceptions.Panicf("AdditiveGaussianNoise: scale parameter %s sampled a negative value %g", a.scale, scale)
		}
		if loc == 0 && scale == 0 {
			return // Zero-variance noise is a no-op.
		}
		noiseStream := random.New(seeds[ii])
		dist := distuv.Normal{Mu: loc, Sigma: scale, Src: noiseStream.Source()}
		pixels := result.Pixels[ii*size : (ii+1)*size]
		for jj := range pixels {
			pixels[jj] = toUint8(float64(pixels[jj])+255*dist.Rand(), a.clip)
		}
	})

	// Advance the stream past the fork point, so siblings in a Sequence
	// don't observe the pre-fork state.
	stream.Uint64()
	return result
}

// Deterministic implements Augmenter.
func (a *AdditiveGaussianNoise) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *AdditiveGaussianNoise) Parameters() []params.Parameter {
	return []params.Parameter{a.loc, a.scale}
}

func (a *AdditiveGaussianNoise) String() string { return describe(&a.base, a.Parameters()) }
