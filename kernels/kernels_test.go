package kernels

import (
	"testing"

	"github.com/gomlx/augment"
	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantPlane(width, height int, value uint8) []uint8 {
	plane := make([]uint8, width*height)
	for ii := range plane {
		plane[ii] = value
	}
	return plane
}

func TestGaussianBlurPreservesConstantPlane(t *testing.T) {
	plane := constantPlane(8, 8, 100)
	blurred := GaussianBlurPlane(plane, 8, 8, 2.0)
	require.Equal(t, plane, blurred)
}

func TestGaussianBlurSpreadsMass(t *testing.T) {
	width, height := 9, 9
	plane := constantPlane(width, height, 0)
	plane[4*width+4] = 255 // Single spike in the center.
	blurred := GaussianBlurPlane(plane, width, height, 1.0)
	center := blurred[4*width+4]
	neighbor := blurred[4*width+5]
	assert.Less(t, center, uint8(255))
	assert.Greater(t, neighbor, uint8(0))
	assert.GreaterOrEqual(t, center, neighbor)
}

func TestGaussianBlurValidation(t *testing.T) {
	err := exceptions.TryCatch[error](func() { GaussianBlurPlane(constantPlane(4, 4, 0), 4, 4, 0) })
	require.IsType(t, augment.InputError{}, err)
	err = exceptions.TryCatch[error](func() { GaussianBlurPlane(make([]uint8, 3), 4, 4, 1) })
	require.IsType(t, augment.InputError{}, err)
}

func TestWarpAffineIdentity(t *testing.T) {
	width, height := 5, 4
	plane := make([]uint8, width*height)
	for ii := range plane {
		plane[ii] = uint8(ii * 3)
	}
	identity := [6]float64{1, 0, 0, 0, 1, 0}
	warped := WarpAffinePlane(plane, width, height, identity, Nearest, 0)
	require.Equal(t, plane, warped)
}

func TestWarpAffineTranslation(t *testing.T) {
	width, height := 4, 1
	plane := []uint8{10, 20, 30, 40}
	// Shift one pixel to the right; the vacated column takes the fill value.
	shift := [6]float64{1, 0, 1, 0, 1, 0}
	warped := WarpAffinePlane(plane, width, height, shift, Nearest, 99)
	require.Equal(t, []uint8{99, 10, 20, 30}, warped)
}

func TestInterpolationString(t *testing.T) {
	assert.Equal(t, "Bilinear", Bilinear.String())
	assert.Equal(t, "Nearest", Nearest.String())
	assert.Equal(t, "Unknown", Interpolation(7).String())
}
