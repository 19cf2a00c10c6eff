package augmenters

import (
	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
)

// Multiply scales the intensity of each image by a per-image multiplier:
// every pixel value is multiplied (broadcast over the whole image) and the
// result is clamped back into [0, 255] when clipping is enabled, the
// default. Without clipping, overflowing values wrap modulo 256.
type Multiply struct {
	base
	mul  params.Parameter
	clip bool
}

var _ Augmenter = (*Multiply)(nil)

// NewMultiply creates a Multiply with the given per-image multiplier: a
// non-negative float, a [2]float64 uniform range or a params.Parameter.
// Clipping defaults to enabled.
func NewMultiply(mul any) *Multiply {
	return &Multiply{
		base: newBase("Multiply"),
		mul:  toParam("mul", mul, nonNegative),
		clip: true,
	}
}

// WithClip enables or disables clamping of the results into [0, 255]. It
// returns the augmenter, so calls can be cascaded.
func (a *Multiply) WithClip(clip bool) *Multiply {
	a.clip = clip
	return a
}

// Augment implements Augmenter.
func (a *Multiply) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.applyBatch)
}

func (a *Multiply) applyBatch(batch *batches.Batch, stream *random.Stream) *batches.Batch {
	result := batch.Clone()
	samples := a.mul.Draw([]int{batch.Count}, stream)
	size := batch.ImageSize()
	for ii := 0; ii < batch.Count; ii++ {
		factor := samples[ii]
		pixels := result.Pixels[ii*size : (ii+1)*size]
		for jj := range pixels {
			pixels[jj] = toUint8(float64(pixels[jj])*factor, a.clip)
		}
	}
	return result
}

// Deterministic implements Augmenter.
func (a *Multiply) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *Multiply) Parameters() []params.Parameter { return []params.Parameter{a.mul} }

func (a *Multiply) String() string { return describe(&a.base, a.Parameters()) }

// toUint8 converts an intensity value back to the 8-bit unsigned range:
// clamped into [0, 255] when clip is set, wrapped modulo 256 otherwise.
func toUint8(v float64, clip bool) uint8 {
	if clip {
		if v <= 0 {
			return 0
		}
		if v >= 255 {
			return 255
		}
		return uint8(v)
	}
	return uint8(int64(v))
}
