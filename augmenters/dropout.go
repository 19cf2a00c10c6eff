package augmenters

import (
	"github.com/gomlx/augment"
	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
)

// Dropout zeroes individual pixel values: for each image an (height, width,
// channels) Bernoulli mask is drawn from a per-image sub-stream and
// multiplied element-wise, so every value is dropped independently with the
// configured probability.
type Dropout struct {
	base
	mask params.Parameter
}

var _ Augmenter = (*Dropout)(nil)

// NewDropout creates a Dropout with the given drop probability: a float p in
// [0, 1] means every pixel value is zeroed with probability p (the mask
// keeps with probability 1-p). A params.Parameter is used as the mask
// parameter directly: its samples are multiplied into the image.
func NewDropout(p any) *Dropout {
	a := &Dropout{base: newBase("Dropout")}
	switch v := p.(type) {
	case float64:
		checkScalar("p", v, probability)
		a.mask = params.NewBinomial(1 - v)
	case int:
		checkScalar("p", float64(v), probability)
		a.mask = params.NewBinomial(1 - float64(v))
	case params.Parameter:
		a.mask = v
	default:
		augment.ThrowConfigf("argument %q: expected float in [0, 1] or params.Parameter, got %T", "p", p)
	}
	return a
}

// Augment implements Augmenter.
func (a *Dropout) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.applyBatch)
}

func (a *Dropout) applyBatch(batch *batches.Batch, stream *random.Stream) *batches.Batch {
	result := batch.Clone()
	count := batch.Count

	// One per-image seed array drawn up-front for the whole batch; each image
	// then draws its mask from its own seeded sub-stream.
	seeds := make([]uint64, count)
	for ii := 0; ii < count; ii++ {
		seeds[ii] = stream.Seed64()
	}

	size := batch.ImageSize()
	maskShape := []int{batch.Height, batch.Width, batch.Channels}
	applyPerImage(count, func(ii int) {
		maskStream := random.New(seeds[ii])
		mask := a.mask.Draw(maskShape, maskStream)
		pixels := result.Pixels[ii*size : (ii+1)*size]
		for jj := range pixels {
			pixels[jj] = toUint8(float64(pixels[jj])*mask[jj], true)
		}
	})
	return result
}

// Deterministic implements Augmenter.
func (a *Dropout) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *Dropout) Parameters() []params.Parameter { return []params.Parameter{a.mask} }

func (a *Dropout) String() string { return describe(&a.base, a.Parameters()) }
