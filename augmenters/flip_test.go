package augmenters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizontalFlipAtPOne(t *testing.T) {
	x := testBatch(4, 3, 5, 2)
	out := NewHorizontalFlip(1.0).Augment(x)
	for ii := 0; ii < x.Count; ii++ {
		require.True(t, out.Image(ii).Equal(x.Image(ii).FlipHorizontal()))
	}
	// Flipping twice restores the original.
	require.True(t, NewHorizontalFlip(1.0).Augment(out).Equal(x))
}

func TestHorizontalFlipAtPZero(t *testing.T) {
	x := testBatch(4, 3, 5, 2)
	require.True(t, NewHorizontalFlip(0.0).Augment(x).Equal(x))
}

func TestVerticalFlipAtPOne(t *testing.T) {
	x := testBatch(4, 5, 3, 2)
	out := NewVerticalFlip(1.0).Augment(x)
	for ii := 0; ii < x.Count; ii++ {
		require.True(t, out.Image(ii).Equal(x.Image(ii).FlipVertical()))
	}
	require.True(t, NewVerticalFlip(1.0).Augment(out).Equal(x))
}

func TestVerticalFlipAtPZero(t *testing.T) {
	x := testBatch(4, 5, 3, 2)
	require.True(t, NewVerticalFlip(0.0).Augment(x).Equal(x))
}

func TestFlipIsPerImage(t *testing.T) {
	// With p=0.5 on many images, every image is either untouched or exactly
	// mirrored, and both cases occur with overwhelming probability.
	x := testBatch(64, 4, 4, 1)
	out := NewHorizontalFlip(0.5).Augment(x)
	var flipped, kept int
	for ii := 0; ii < x.Count; ii++ {
		in, got := x.Image(ii), out.Image(ii)
		switch {
		case got.Equal(in):
			kept++
		case got.Equal(in.FlipHorizontal()):
			flipped++
		default:
			t.Fatalf("image %d is neither the original nor its mirror", ii)
		}
	}
	assert.Greater(t, kept, 0)
	assert.Greater(t, flipped, 0)
}
