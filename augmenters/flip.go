package augmenters

import (
	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
)

// HorizontalFlip mirrors each image along the vertical axis (left-right)
// with a per-image probability. The mirror is a pure index reversal of the
// width axis, no kernel involved.
type HorizontalFlip struct {
	base
	p params.Parameter
}

var _ Augmenter = (*HorizontalFlip)(nil)

// NewHorizontalFlip creates a HorizontalFlip with the given per-image flip
// probability (a float in [0, 1] or a params.Parameter).
func NewHorizontalFlip(p any) *HorizontalFlip {
	return &HorizontalFlip{base: newBase("HorizontalFlip"), p: toProbability("p", p)}
}

// Augment implements Augmenter.
func (a *HorizontalFlip) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.applyBatch)
}

func (a *HorizontalFlip) applyBatch(batch *batches.Batch, stream *random.Stream) *batches.Batch {
	result := batch.Clone()
	samples := a.p.Draw([]int{batch.Count}, stream)
	for ii := 0; ii < batch.Count; ii++ {
		if samples[ii] == 1 {
			result.SetImage(ii, batch.Image(ii).FlipHorizontal())
		}
	}
	return result
}

// Deterministic implements Augmenter.
func (a *HorizontalFlip) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *HorizontalFlip) Parameters() []params.Parameter { return []params.Parameter{a.p} }

func (a *HorizontalFlip) String() string { return describe(&a.base, a.Parameters()) }

// VerticalFlip mirrors each image along the horizontal axis (top-bottom)
// with a per-image probability.
type VerticalFlip struct {
	base
	p params.Parameter
}

var _ Augmenter = (*VerticalFlip)(nil)

// NewVerticalFlip creates a VerticalFlip with the given per-image flip
// probability (a float in [0, 1] or a params.Parameter).
func NewVerticalFlip(p any) *VerticalFlip {
	return &VerticalFlip{base: newBase("VerticalFlip"), p: toProbability("p", p)}
}

// Augment implements Augmenter.
func (a *VerticalFlip) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.applyBatch)
}

func (a *VerticalFlip) applyBatch(batch *batches.Batch, stream *random.Stream) *batches.Batch {
	result := batch.Clone()
	samples := a.p.Draw([]int{batch.Count}, stream)
	for ii := 0; ii < batch.Count; ii++ {
		if samples[ii] == 1 {
			result.SetImage(ii, batch.Image(ii).FlipVertical())
		}
	}
	return result
}

// Deterministic implements Augmenter.
func (a *VerticalFlip) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *VerticalFlip) Parameters() []params.Parameter { return []params.Parameter{a.p} }

func (a *VerticalFlip) String() string { return describe(&a.base, a.Parameters()) }
