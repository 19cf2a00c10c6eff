package augmenters

import (
	"testing"

	"github.com/gomlx/augment/batches"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropoutAtPZeroIsIdentity(t *testing.T) {
	x := testBatch(2, 4, 4, 3)
	require.True(t, NewDropout(0.0).Augment(x).Equal(x))
}

func TestDropoutAtPOneZeroesEverything(t *testing.T) {
	x := testBatch(2, 4, 4, 3)
	out := NewDropout(1.0).Augment(x)
	for _, v := range out.Pixels {
		require.Zero(t, v)
	}
}

func TestDropoutDropsIndividualValues(t *testing.T) {
	// With p=0.5 on a constant image, some values are zeroed and some kept,
	// with overwhelming probability.
	x := batches.New(1, 16, 16, 1)
	x.Fill(200)
	out := NewDropout(0.5).Augment(x)
	var dropped, kept int
	for _, v := range out.Pixels {
		switch v {
		case 0:
			dropped++
		case 200:
			kept++
		default:
			t.Fatalf("dropout produced value %d, want 0 or 200", v)
		}
	}
	assert.Greater(t, dropped, 0)
	assert.Greater(t, kept, 0)
}

func TestDropoutMaskDiffersAcrossImages(t *testing.T) {
	x := batches.New(2, 8, 8, 1)
	x.Fill(200)
	out := NewDropout(0.5).Augment(x)
	assert.False(t, out.Image(0).Equal(out.Image(1)))
}
