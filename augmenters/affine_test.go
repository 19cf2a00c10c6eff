package augmenters

import (
	"testing"

	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/kernels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffineIdentity(t *testing.T) {
	// All-identity arguments skip the kernel, so the output is bit-identical.
	x := testBatch(4, 8, 8, 3)
	out := NewAffine(1.0, 0, 0.0, 0.0).Augment(x)
	require.True(t, out.Equal(x))
}

func TestAffinePixelTranslation(t *testing.T) {
	// Integer translation arguments are literal pixel offsets.
	x := batches.New(1, 8, 8, 1)
	x.Image(0).Set(3, 2, 0, 200)
	affine := NewAffine(1.0, XY{X: 1, Y: 0}, 0.0, 0.0).
		WithInterpolation(kernels.Nearest)
	out := affine.Augment(x)
	im := out.Image(0)
	assert.Equal(t, uint8(200), im.At(3, 3, 0))
	assert.Equal(t, uint8(0), im.At(3, 2, 0))
}

func TestAffineFractionTranslation(t *testing.T) {
	// Continuous translation arguments are fractions of the image dimension:
	// 0.25 of width 8 is 2 pixels.
	x := batches.New(1, 8, 8, 1)
	x.Image(0).Set(3, 2, 0, 200)
	affine := NewAffine(1.0, XY{X: 0.25, Y: 0.0}, 0.0, 0.0).
		WithInterpolation(kernels.Nearest)
	out := affine.Augment(x)
	assert.Equal(t, uint8(200), out.Image(0).At(3, 4, 0))
}

func TestAffineVerticalTranslation(t *testing.T) {
	x := batches.New(1, 8, 8, 1)
	x.Image(0).Set(3, 2, 0, 200)
	affine := NewAffine(1.0, XY{X: 0, Y: 2}, 0.0, 0.0).
		WithInterpolation(kernels.Nearest)
	out := affine.Augment(x)
	assert.Equal(t, uint8(200), out.Image(0).At(5, 2, 0))
}

func TestAffineFill(t *testing.T) {
	// Destination pixels with no source land on the fill value.
	x := batches.New(1, 8, 8, 1)
	x.Fill(100)
	affine := NewAffine(1.0, XY{X: 4, Y: 0}, 0.0, 0.0).
		WithInterpolation(kernels.Nearest).
		WithFill(7)
	out := affine.Augment(x)
	im := out.Image(0)
	assert.Equal(t, uint8(7), im.At(0, 0, 0))
	assert.Equal(t, uint8(7), im.At(4, 3, 0))
	assert.Equal(t, uint8(100), im.At(4, 4, 0))
}

func TestAffineNearestPreservesValueSet(t *testing.T) {
	// With nearest-neighbor interpolation the output only contains values
	// present in the input (plus the fill), which is what annotation masks
	// need.
	x := batches.New(1, 16, 16, 1)
	im := x.Image(0)
	for row := 4; row < 12; row++ {
		for col := 4; col < 12; col++ {
			im.Set(row, col, 0, 200)
		}
	}
	affine := NewAffine(1.0, 0, 30.0, 0.0).WithInterpolation(kernels.Nearest)
	out := affine.Augment(x)
	for _, v := range out.Pixels {
		require.Contains(t, []uint8{0, 200}, v)
	}
}

func TestAffineRotationMovesPixels(t *testing.T) {
	x := testBatch(1, 16, 16, 1)
	out := NewAffine(1.0, 0, 90.0, 0.0).Augment(x)
	assert.False(t, out.Equal(x))
}

func TestAffineIsotropicScalePair(t *testing.T) {
	// A scalar scale is isotropic: one draw drives both axes, so a centered
	// square stays square. Checked indirectly via the sampled parameters.
	affine := NewAffine([2]float64{0.5, 2.0}, 0, 0.0, 0.0)
	ps := affine.Parameters()
	require.Len(t, ps, 6)
	assert.Equal(t, ps[0], ps[1]) // scaleX and scaleY share the parameter.
}

func TestAffineAnisotropicScalePair(t *testing.T) {
	affine := NewAffine(XY{X: 0.5, Y: 2.0}, 0, 0.0, 0.0)
	ps := affine.Parameters()
	assert.NotEqual(t, ps[0].String(), ps[1].String())
}
