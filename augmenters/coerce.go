package augmenters

import (
	"math"

	"github.com/gomlx/augment"
	"github.com/gomlx/augment/params"
)

// Stochastic arguments of the augmenter constructors accept a small closed
// set of Go values, converted here -- once, at construction time -- into
// params.Parameter variants:
//
//   - float64 / int: a constant value.
//   - [2]float64: a continuous uniform range [low, high).
//   - [2]int: a discrete uniform range [low, high], both ends inclusive.
//   - params.Parameter: used as is.
//
// Anything else, or a value violating the argument's constraint, throws an
// augment.ConfigError.

// constraint restricts the values accepted for a scalar argument.
type constraint uint8

const (
	anyValue constraint = iota
	nonNegative
	positive
	probability
)

func checkScalar(argName string, v float64, c constraint) {
	if math.IsNaN(v) {
		augment.ThrowConfigf("argument %q must not be NaN", argName)
	}
	switch c {
	case nonNegative:
		if v < 0 {
			augment.ThrowConfigf("argument %q must be >= 0, got %g", argName, v)
		}
	case positive:
		if v <= 0 {
			augment.ThrowConfigf("argument %q must be > 0, got %g", argName, v)
		}
	case probability:
		if v < 0 || v > 1 {
			augment.ThrowConfigf("argument %q must be a probability in [0, 1], got %g", argName, v)
		}
	}
}

// toProbability converts a per-image probability argument: a float (or int
// 0/1) becomes a Bernoulli parameter, a params.Parameter is used as is.
func toProbability(argName string, arg any) params.Parameter {
	switch v := arg.(type) {
	case float64:
		checkScalar(argName, v, probability)
		return params.NewBinomial(v)
	case int:
		checkScalar(argName, float64(v), probability)
		return params.NewBinomial(float64(v))
	case params.Parameter:
		return v
	default:
		augment.ThrowConfigf("argument %q: expected float in [0, 1] or params.Parameter, got %T", argName, arg)
	}
	return nil
}

// toParam converts a scalar-or-range argument.
func toParam(argName string, arg any, c constraint) params.Parameter {
	switch v := arg.(type) {
	case float64:
		checkScalar(argName, v, c)
		return params.NewConstant(v)
	case int:
		checkScalar(argName, float64(v), c)
		return params.NewConstant(float64(v))
	case [2]float64:
		checkScalar(argName, v[0], c)
		checkScalar(argName, v[1], c)
		return params.NewUniform(v[0], v[1])
	case [2]int:
		checkScalar(argName, float64(v[0]), c)
		checkScalar(argName, float64(v[1]), c)
		return params.NewUniform(float64(v[0]), float64(v[1]))
	case params.Parameter:
		return v
	default:
		augment.ThrowConfigf("argument %q: expected float, [2]float64 range or params.Parameter, got %T", argName, arg)
	}
	return nil
}

// toTranslation converts a translation argument. Continuous values are
// fractions of the image dimension; integer values (int, [2]int or a
// discrete parameter) are literal pixel offsets.
func toTranslation(argName string, arg any) params.Parameter {
	switch v := arg.(type) {
	case float64:
		checkScalar(argName, v, anyValue)
		return params.NewConstant(v)
	case int:
		return params.NewConstantInt(v)
	case [2]float64:
		checkScalar(argName, v[0], anyValue)
		checkScalar(argName, v[1], anyValue)
		return params.NewUniform(v[0], v[1])
	case [2]int:
		return params.NewDiscreteUniform(v[0], v[1])
	case params.Parameter:
		return v
	default:
		augment.ThrowConfigf("argument %q: expected float fraction, int pixels, a [2]float64/[2]int range or params.Parameter, got %T",
			argName, arg)
	}
	return nil
}

// XY specifies an affine argument independently for the x and y axes. A nil
// axis takes the other axis' value.
type XY struct {
	X, Y any
}

// toXYPair converts an argument that may be an XY pair. It returns the
// parameters for the x and y axes and whether the argument was isotropic
// (a single specification shared by both axes, sampled once per image).
func toXYPair(argName string, arg any, conv func(string, any) params.Parameter) (x, y params.Parameter, isotropic bool) {
	pair, ok := arg.(XY)
	if !ok {
		p := conv(argName, arg)
		return p, p, true
	}
	if pair.X == nil && pair.Y == nil {
		augment.ThrowConfigf("argument %q: XY pair must set at least one of X and Y", argName)
	}
	if pair.X == nil {
		pair.X = pair.Y
	}
	if pair.Y == nil {
		pair.Y = pair.X
	}
	return conv(argName+".x", pair.X), conv(argName+".y", pair.Y), false
}
