package augmenters

import (
	"fmt"
	"strings"

	"github.com/gomlx/augment"
	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
)

// Noop passes batches through unchanged. Useful as a placeholder branch.
type Noop struct {
	base
}

var _ Augmenter = (*Noop)(nil)

// NewNoop creates a Noop.
func NewNoop() *Noop {
	return &Noop{base: newBase("Noop")}
}

// Augment implements Augmenter.
func (a *Noop) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, func(b *batches.Batch, _ *random.Stream) *batches.Batch { return b })
}

// Deterministic implements Augmenter.
func (a *Noop) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *Noop) Parameters() []params.Parameter { return nil }

func (a *Noop) String() string { return describe(&a.base, nil) }

// Lambda wraps a user-supplied batch transformation into an Augmenter, so it
// composes with the rest of the library (including deterministic cloning,
// when the function draws all of its randomness from the given stream).
type Lambda struct {
	base
	fn func(batch *batches.Batch, stream *random.Stream) *batches.Batch
}

var _ Augmenter = (*Lambda)(nil)

// NewLambda creates a Lambda from the given function. The function must not
// modify the input batch.
func NewLambda(fn func(batch *batches.Batch, stream *random.Stream) *batches.Batch) *Lambda {
	if fn == nil {
		augment.ThrowConfigf("NewLambda: function must not be nil")
	}
	return &Lambda{base: newBase("Lambda"), fn: fn}
}

// Augment implements Augmenter.
func (a *Lambda) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.fn)
}

// Deterministic implements Augmenter.
func (a *Lambda) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *Lambda) Parameters() []params.Parameter { return nil }

func (a *Lambda) String() string { return describe(&a.base, nil) }

// AssertFunc passes batches through unchanged, throwing an
// augment.AssertionError when the user-supplied predicate rejects a batch.
// It consumes no randomness.
type AssertFunc struct {
	base
	pred func(batch *batches.Batch) bool
}

var _ Augmenter = (*AssertFunc)(nil)

// NewAssertFunc creates an AssertFunc from the given predicate.
func NewAssertFunc(pred func(batch *batches.Batch) bool) *AssertFunc {
	if pred == nil {
		augment.ThrowConfigf("NewAssertFunc: predicate must not be nil")
	}
	return &AssertFunc{base: newBase("AssertFunc"), pred: pred}
}

// Augment implements Augmenter.
func (a *AssertFunc) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, func(b *batches.Batch, _ *random.Stream) *batches.Batch {
		if !a.pred(b) {
			augment.ThrowAssertionf(-1, "%s: predicate rejected batch %s", a.name, b)
		}
		return b
	})
}

// Deterministic implements Augmenter.
func (a *AssertFunc) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *AssertFunc) Parameters() []params.Parameter { return nil }

func (a *AssertFunc) String() string { return describe(&a.base, nil) }

// Dim is one per-axis check of an AssertShape. Build values with DimAny,
// DimExactly, DimBetween and DimOneOf.
type Dim interface {
	check(observed int) bool
	String() string
}

type dimAny struct{}

func (dimAny) check(int) bool { return true }
func (dimAny) String() string { return "any" }

type dimExactly int

func (d dimExactly) check(observed int) bool { return observed == int(d) }
func (d dimExactly) String() string { return fmt.Sprintf("%d", int(d)) }

type dimBetween struct{ low, high int }

func (d dimBetween) check(observed int) bool { return observed >= d.low && observed < d.high }
func (d dimBetween) String() string { return fmt.Sprintf("in [%d, %d)", d.low, d.high) }

type dimOneOf []int

func (d dimOneOf) check(observed int) bool {
	for _, v := range d {
		if observed == v {
			return true
		}
	}
	return false
}
func (d dimOneOf) String() string {
	strs := make([]string, len(d))
	for ii, v := range d {
		strs[ii] = fmt.Sprintf("%d", v)
	}
	return "one of {" + strings.Join(strs, ", ") + "}"
}

// DimAny accepts any dimension.
func DimAny() Dim { return dimAny{} }

// DimExactly accepts exactly the given dimension.
func DimExactly(v int) Dim { return dimExactly(v) }

// DimBetween accepts dimensions in [low, high).
func DimBetween(low, high int) Dim {
	if low >= high {
		augment.ThrowConfigf("DimBetween: expected low < high, got [%d, %d)", low, high)
	}
	return dimBetween{low: low, high: high}
}

// DimOneOf accepts any of the given dimensions.
func DimOneOf(values ...int) Dim {
	if len(values) == 0 {
		augment.ThrowConfigf("DimOneOf: at least one value required")
	}
	return dimOneOf(values)
}

// AssertShape passes batches through unchanged, throwing an
// augment.AssertionError naming the offending axis when the batch shape
// violates one of the four per-axis checks. It consumes no randomness.
type AssertShape struct {
	base
	dims [4]Dim
}

var _ Augmenter = (*AssertShape)(nil)

// NewAssertShape creates an AssertShape checking the four batch axes
// (count, height, width, channels) in order. A nil check means the axis is
// unconstrained, same as DimAny.
func NewAssertShape(count, height, width, channels Dim) *AssertShape {
	a := &AssertShape{base: newBase("AssertShape"), dims: [4]Dim{count, height, width, channels}}
	for ii := range a.dims {
		if a.dims[ii] == nil {
			a.dims[ii] = DimAny()
		}
	}
	return a
}

var axisNames = [4]string{"count", "height", "width", "channels"}

// Augment implements Augmenter.
func (a *AssertShape) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, func(b *batches.Batch, _ *random.Stream) *batches.Batch {
		observed := [4]int{b.Count, b.Height, b.Width, b.Channels}
		for axis := 0; axis < 4; axis++ {
			if !a.dims[axis].check(observed[axis]) {
				augment.ThrowAssertionf(axis, "%s: expected axis %d (%s) to be %s, got %d",
					a.name, axis, axisNames[axis], a.dims[axis], observed[axis])
			}
		}
		return b
	})
}

// Deterministic implements Augmenter.
func (a *AssertShape) Deterministic() Augmenter {
	clone := *a
	clone.base = a.deterministicBase()
	return &clone
}

// Parameters implements Augmenter.
func (a *AssertShape) Parameters() []params.Parameter { return nil }

func (a *AssertShape) String() string {
	strs := make([]string, 4)
	for ii := range a.dims {
		strs[ii] = a.dims[ii].String()
	}
	return fmt.Sprintf("%s(dims=[%s], deterministic=%v)", a.name, strings.Join(strs, ", "), a.deterministic)
}
