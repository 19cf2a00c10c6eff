package augmenters

import (
	"testing"

	"github.com/gomlx/augment"
	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/random"
	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBatch builds a batch with distinct, asymmetric images, so flips and
// warps always change the pixels.
func testBatch(count, height, width, channels int) *batches.Batch {
	b := batches.New(count, height, width, channels)
	for ii := range b.Pixels {
		b.Pixels[ii] = uint8((ii*7 + 13) % 251)
	}
	return b
}

// allVariants returns one augmenter of every kind, with non-degenerate
// randomness where the kind has any.
func allVariants() []Augmenter {
	return []Augmenter{
		NewHorizontalFlip(0.5),
		NewVerticalFlip(0.5),
		NewMultiply([2]float64{0.5, 1.5}),
		NewAdditiveGaussianNoise(0.0, [2]float64{0, 0.1}),
		NewDropout(0.25),
		NewGaussianBlur([2]float64{0, 2}),
		NewAffine([2]float64{0.8, 1.2}, [2]float64{-0.2, 0.2}, [2]float64{-30, 30}, [2]float64{-10, 10}),
		NewSometimes(0.5, NewHorizontalFlip(1.0), NewVerticalFlip(1.0)),
		NewSequence(NewHorizontalFlip(0.5), NewVerticalFlip(0.5)),
		NewNoop(),
		NewLambda(func(b *batches.Batch, s *random.Stream) *batches.Batch {
			out := b.Clone()
			for ii := range out.Pixels {
				if s.Float64() < 0.5 {
					out.Pixels[ii] /= 2
				}
			}
			return out
		}),
		NewAssertShape(nil, nil, nil, nil),
		NewAssertFunc(func(*batches.Batch) bool { return true }),
	}
}

func TestInvalidInputThrowsForEveryVariant(t *testing.T) {
	badBatches := []*batches.Batch{
		nil,
		{Count: 0, Height: 4, Width: 4, Channels: 3},
		{Count: 2, Height: 4, Width: 4, Channels: 3, Pixels: make([]uint8, 7)},
	}
	for _, a := range allVariants() {
		for ii, bad := range badBatches {
			err := exceptions.TryCatch[error](func() { a.Augment(bad) })
			require.Errorf(t, err, "%s, bad batch %d", a.Name(), ii)
			require.IsTypef(t, augment.InputError{}, err, "%s, bad batch %d", a.Name(), ii)
		}
	}
}

func TestDeterministicClonesReplay(t *testing.T) {
	// For a deterministic clone C and any batch X, C.Augment(X) called twice
	// yields bit-identical results, for every augmenter variant.
	x := testBatch(4, 8, 8, 3)
	for _, a := range allVariants() {
		det := a.Deterministic()
		first := det.Augment(x)
		second := det.Augment(x)
		require.Truef(t, first.Equal(second), "%s: deterministic clone did not replay", a.Name())
	}
}

func TestDeterministicClonesDiverge(t *testing.T) {
	x := testBatch(32, 4, 4, 1)
	clones := DeterministicN(NewHorizontalFlip(0.5), 2)
	require.Len(t, clones, 2)
	// 32 independent fair coin flips per clone: identical outputs have
	// probability 2^-32.
	assert.False(t, clones[0].Augment(x).Equal(clones[1].Augment(x)))
}

func TestAugmentDoesNotModifyInput(t *testing.T) {
	x := testBatch(4, 8, 8, 3)
	for _, a := range allVariants() {
		snapshot := x.Clone()
		_ = a.Augment(x)
		require.Truef(t, x.Equal(snapshot), "%s modified its input batch", a.Name())
	}
}

func TestReseedReproduces(t *testing.T) {
	x := testBatch(8, 4, 4, 1)
	a1 := NewHorizontalFlip(0.5)
	a2 := NewHorizontalFlip(0.5)
	a1.Reseed(1234)
	a2.Reseed(1234)
	require.True(t, a1.Augment(x).Equal(a2.Augment(x)))
}

func TestAugmentImage(t *testing.T) {
	im := testBatch(1, 4, 4, 1).Image(0).Clone()
	out := AugmentImage(NewHorizontalFlip(1.0), im)
	require.True(t, out.Equal(im.FlipHorizontal()))
}

func TestAugmentImages(t *testing.T) {
	x := testBatch(3, 4, 4, 1)
	out := AugmentImages(NewVerticalFlip(1.0), x.Images())
	require.Len(t, out, 3)
	for ii, im := range out {
		require.True(t, im.Equal(x.Image(ii).FlipVertical()))
	}
}

func TestNamesAndStrings(t *testing.T) {
	for _, a := range allVariants() {
		require.NotEmpty(t, a.Name())
		require.Contains(t, a.String(), a.Name())
	}
	a := NewNoop()
	a.SetName("my-noop")
	assert.Equal(t, "my-noop", a.Name())
	assert.False(t, a.IsDeterministic())
	assert.True(t, a.Deterministic().(*Noop).IsDeterministic())
}

func TestParametersAreOwnOnly(t *testing.T) {
	flip := NewHorizontalFlip(0.5)
	seq := NewSequence(flip)
	assert.Empty(t, seq.Parameters())
	require.Len(t, flip.Parameters(), 1)

	sometimes := NewSometimes(0.3, flip, nil)
	require.Len(t, sometimes.Parameters(), 1)

	affine := NewAffine(1.0, 0, 0.0, 0.0)
	require.Len(t, affine.Parameters(), 6)
}

func TestConfigErrorsAreEager(t *testing.T) {
	cases := []func(){
		func() { NewHorizontalFlip(1.5) },
		func() { NewHorizontalFlip("half") },
		func() { NewMultiply(-1.0) },
		func() { NewAdditiveGaussianNoise(0.0, -0.5) },
		func() { NewDropout(2.0) },
		func() { NewGaussianBlur(-1.0) },
		func() { NewAffine(0.0, 0, 0.0, 0.0) },                 // Scale must be > 0.
		func() { NewAffine([2]float64{-1, 1}, 0, 0.0, 0.0) },   // Range bound must be > 0.
		func() { NewAffine(XY{}, 0, 0.0, 0.0) },                // Empty XY pair.
		func() { NewAffine(1.0, "nope", 0.0, 0.0) },            // Bad translate type.
		func() { NewSometimes(-0.1, nil, nil) },
		func() { NewLambda(nil) },
		func() { NewAssertFunc(nil) },
		func() { DimBetween(3, 3) },
		func() { DimOneOf() },
	}
	for ii, fn := range cases {
		err := exceptions.TryCatch[error](fn)
		require.Errorf(t, err, "case %d", ii)
		require.IsTypef(t, augment.ConfigError{}, err, "case %d", ii)
	}
}
