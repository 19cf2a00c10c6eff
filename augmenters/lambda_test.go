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

func TestNoopIsIdentity(t *testing.T) {
	x := testBatch(2, 4, 4, 3)
	require.True(t, NewNoop().Augment(x).Equal(x))
}

func TestLambdaAppliesFunction(t *testing.T) {
	x := testBatch(2, 4, 4, 1)
	invert := NewLambda(func(b *batches.Batch, _ *random.Stream) *batches.Batch {
		out := b.Clone()
		for ii := range out.Pixels {
			out.Pixels[ii] = 255 - out.Pixels[ii]
		}
		return out
	})
	out := invert.Augment(x)
	for ii := range x.Pixels {
		require.Equal(t, 255-x.Pixels[ii], out.Pixels[ii])
	}
}

func TestAssertFuncPassesThrough(t *testing.T) {
	x := testBatch(2, 4, 4, 1)
	a := NewAssertFunc(func(b *batches.Batch) bool { return b.Count == 2 })
	require.True(t, a.Augment(x).Equal(x))
}

func TestAssertFuncThrowsOnRejection(t *testing.T) {
	x := testBatch(2, 4, 4, 1)
	a := NewAssertFunc(func(*batches.Batch) bool { return false })
	err := exceptions.TryCatch[error](func() { a.Augment(x) })
	require.Error(t, err)
	require.IsType(t, augment.AssertionError{}, err)
	assert.Equal(t, -1, err.(augment.AssertionError).Axis)
}

func TestAssertShapePassesThrough(t *testing.T) {
	x := testBatch(2, 4, 6, 3)
	a := NewAssertShape(DimExactly(2), DimBetween(1, 10), DimOneOf(6, 8), nil)
	require.True(t, a.Augment(x).Equal(x))
}

func TestAssertShapeReportsFailedAxis(t *testing.T) {
	x := testBatch(2, 4, 6, 3)
	cases := []struct {
		augmenter *AssertShape
		axis      int
	}{
		{NewAssertShape(DimExactly(3), nil, nil, nil), 0},
		{NewAssertShape(nil, DimBetween(5, 10), nil, nil), 1},
		{NewAssertShape(nil, nil, DimOneOf(1, 3), nil), 2},
		{NewAssertShape(nil, nil, nil, DimExactly(1)), 3},
	}
	for _, c := range cases {
		err := exceptions.TryCatch[error](func() { c.augmenter.Augment(x) })
		require.Error(t, err)
		require.IsType(t, augment.AssertionError{}, err)
		assert.Equal(t, c.axis, err.(augment.AssertionError).Axis)
	}
}

func TestDimChecks(t *testing.T) {
	assert.True(t, DimAny().(dimAny).check(42))
	assert.True(t, DimExactly(3).(dimExactly).check(3))
	assert.False(t, DimExactly(3).(dimExactly).check(4))
	assert.True(t, DimBetween(1, 5).(dimBetween).check(4))
	assert.False(t, DimBetween(1, 5).(dimBetween).check(5)) // Upper bound is exclusive.
	assert.True(t, DimOneOf(1, 3).(dimOneOf).check(3))
	assert.False(t, DimOneOf(1, 3).(dimOneOf).check(2))
}

func TestAssertShapeString(t *testing.T) {
	a := NewAssertShape(DimExactly(2), nil, DimBetween(1, 5), DimOneOf(1, 3))
	s := a.String()
	assert.Contains(t, s, "2")
	assert.Contains(t, s, "any")
	assert.Contains(t, s, "in [1, 5)")
	assert.Contains(t, s, "one of {1, 3}")
}
