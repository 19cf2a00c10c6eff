/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package params implements stochastic parameters: reproducible sampling
// functions from (shape, random stream) to arrays of values.
//
// Calling Draw twice with streams in the same state yields identical arrays
// (referential transparency given state). The concrete forms are a small
// closed set of variants -- Constant, Uniform, DiscreteUniform, Binomial,
// Normal -- plus Custom for user-supplied samplers. The continuous
// distributions are drawn through gonum's distuv.
//
// Discrete reports whether a parameter produces integer-valued samples; the
// Affine augmenter uses it to distinguish pixel offsets from
// fraction-of-dimension translations.
package params

import (
	"fmt"
	"math"

	"github.com/gomlx/augment"
	"github.com/gomlx/augment/random"
	"gonum.org/v1/gonum/stat/distuv"
)

// Parameter is a pure sampling function of (requested shape, random stream).
// Implementations must be deterministic given the stream state and must not
// touch any stream other than the one they are handed.
type Parameter interface {
	// Draw samples an array with the given shape (row-major, length equal to
	// the product of the dimensions) from the stream.
	Draw(shape []int, s *random.Stream) []float64

	// Discrete reports whether samples are integer-valued.
	Discrete() bool

	// String returns a short description, e.g. "Uniform(0.0, 2.5)".
	String() string
}

// Size returns the number of samples described by shape. The empty shape is
// a scalar, with size 1.
func Size(shape []int) int {
	size := 1
	for _, dim := range shape {
		if dim < 0 {
			augment.ThrowConfigf("params.Size: invalid sample shape %v, dimensions must be >= 0", shape)
		}
		size *= dim
	}
	return size
}

// Constant always samples the same value.
type Constant struct {
	Value    float64
	integral bool
}

// NewConstant creates a Constant parameter holding a continuous value.
func NewConstant(value float64) *Constant {
	return &Constant{Value: value}
}

// NewConstantInt creates a Constant parameter holding an integer value.
// Its Discrete method returns true.
func NewConstantInt(value int) *Constant {
	return &Constant{Value: float64(value), integral: true}
}

// Draw implements Parameter.
func (p *Constant) Draw(shape []int, _ *random.Stream) []float64 {
	out := make([]float64, Size(shape))
	for ii := range out {
		out[ii] = p.Value
	}
	return out
}

// Discrete implements Parameter.
func (p *Constant) Discrete() bool { return p.integral }

func (p *Constant) String() string {
	if p.integral {
		return fmt.Sprintf("Constant(%d)", int(p.Value))
	}
	return fmt.Sprintf("Constant(%.4f)", p.Value)
}

// Uniform samples continuous values uniformly from [Low, High).
type Uniform struct {
	Low, High float64
}

// NewUniform creates a Uniform parameter over [low, high). It requires
// low <= high.
func NewUniform(low, high float64) *Uniform {
	if low > high {
		augment.ThrowConfigf("params.NewUniform: expected low <= high, got [%g, %g)", low, high)
	}
	return &Uniform{Low: low, High: high}
}

// Draw implements Parameter.
func (p *Uniform) Draw(shape []int, s *random.Stream) []float64 {
	out := make([]float64, Size(shape))
	if p.Low == p.High {
		for ii := range out {
			out[ii] = p.Low
		}
		return out
	}
	dist := distuv.Uniform{Min: p.Low, Max: p.High, Src: s.Source()}
	for ii := range out {
		out[ii] = dist.Rand()
	}
	return out
}

// Discrete implements Parameter.
func (p *Uniform) Discrete() bool { return false }

func (p *Uniform) String() string {
	return fmt.Sprintf("Uniform(%.4f, %.4f)", p.Low, p.High)
}

// DiscreteUniform samples integers uniformly from [Low, High], both ends
// inclusive.
type DiscreteUniform struct {
	Low, High int
}

// NewDiscreteUniform creates a DiscreteUniform parameter over [low, high].
// It requires low <= high.
func NewDiscreteUniform(low, high int) *DiscreteUniform {
	if low > high {
		augment.ThrowConfigf("params.NewDiscreteUniform: expected low <= high, got [%d, %d]", low, high)
	}
	return &DiscreteUniform{Low: low, High: high}
}

// Draw implements Parameter.
func (p *DiscreteUniform) Draw(shape []int, s *random.Stream) []float64 {
	out := make([]float64, Size(shape))
	span := p.High - p.Low + 1
	for ii := range out {
		out[ii] = float64(p.Low + s.Intn(span))
	}
	return out
}

// Discrete implements Parameter.
func (p *DiscreteUniform) Discrete() bool { return true }

func (p *DiscreteUniform) String() string {
	return fmt.Sprintf("DiscreteUniform(%d, %d)", p.Low, p.High)
}

// Binomial samples 1 with probability P and 0 otherwise (a Bernoulli trial
// per requested sample).
type Binomial struct {
	P float64
}

// NewBinomial creates a Binomial parameter with success probability p in
// [0, 1].
func NewBinomial(p float64) *Binomial {
	if p < 0 || p > 1 || math.IsNaN(p) {
		augment.ThrowConfigf("params.NewBinomial: probability must be in [0, 1], got %g", p)
	}
	return &Binomial{P: p}
}

// Draw implements Parameter. Samples are exactly 0 or 1.
func (p *Binomial) Draw(shape []int, s *random.Stream) []float64 {
	out := make([]float64, Size(shape))
	dist := distuv.Bernoulli{P: p.P, Src: s.Source()}
	for ii := range out {
		out[ii] = dist.Rand()
	}
	return out
}

// Discrete implements Parameter.
func (p *Binomial) Discrete() bool { return true }

func (p *Binomial) String() string {
	return fmt.Sprintf("Binomial(%.4f)", p.P)
}

// Normal samples from a normal distribution with the given mean and standard
// deviation.
type Normal struct {
	Mean, StdDev float64
}

// NewNormal creates a Normal parameter. It requires stdDev >= 0; a zero
// stdDev always samples the mean.
func NewNormal(mean, stdDev float64) *Normal {
	if stdDev < 0 || math.IsNaN(stdDev) {
		augment.ThrowConfigf("params.NewNormal: standard deviation must be >= 0, got %g", stdDev)
	}
	return &Normal{Mean: mean, StdDev: stdDev}
}

// Draw implements Parameter.
func (p *Normal) Draw(shape []int, s *random.Stream) []float64 {
	out := make([]float64, Size(shape))
	if p.StdDev == 0 {
		for ii := range out {
			out[ii] = p.Mean
		}
		return out
	}
	dist := distuv.Normal{Mu: p.Mean, Sigma: p.StdDev, Src: s.Source()}
	for ii := range out {
		out[ii] = dist.Rand()
	}
	return out
}

// Discrete implements Parameter.
func (p *Normal) Discrete() bool { return false }

func (p *Normal) String() string {
	return fmt.Sprintf("Normal(%.4f, %.4f)", p.Mean, p.StdDev)
}

// Custom wraps a user-supplied sampling function. The function must be
// deterministic given the stream state, and must return exactly
// Size(shape) values.
type Custom struct {
	name     string
	fn       func(shape []int, s *random.Stream) []float64
	integral bool
}

// NewCustom creates a Custom parameter with a name used for printing.
func NewCustom(name string, fn func(shape []int, s *random.Stream) []float64) *Custom {
	if fn == nil {
		augment.ThrowConfigf("params.NewCustom(%q): sampling function must not be nil", name)
	}
	return &Custom{name: name, fn: fn}
}

// WithDiscrete marks the parameter as producing integer-valued samples.
// It returns the updated parameter, so calls can be cascaded.
func (p *Custom) WithDiscrete() *Custom {
	p.integral = true
	return p
}

// Draw implements Parameter.
func (p *Custom) Draw(shape []int, s *random.Stream) []float64 {
	out := p.fn(shape, s)
	if len(out) != Size(shape) {
		augment.ThrowConfigf("params.Custom(%q): sampler returned %d values for shape %v, expected %d",
			p.name, len(out), shape, Size(shape))
	}
	return out
}

// Discrete implements Parameter.
func (p *Custom) Discrete() bool { return p.integral }

func (p *Custom) String() string {
	return fmt.Sprintf("Custom(%q)", p.name)
}
