// Package augmenters implements the transformation engine: the Augmenter
// interface, the composite augmenters (Sequence, Sometimes), the
// parameter-driven leaf augmenters (HorizontalFlip, VerticalFlip, Multiply,
// AdditiveGaussianNoise, Dropout, GaussianBlur, Affine) and the escape-hatch
// wrappers (Noop, Lambda, AssertFunc, AssertShape).
//
// Every augmenter owns a private random stream that only its own Augment
// logic touches -- streams are never shared between siblings, so augmenters
// in a Sequence cannot perturb each other's random decisions. Leaf augmenters
// sample all per-image parameter values in one call against their stream and
// only then loop over images applying the fixed values, which is what allows
// the kernel-heavy leaves to process the images of a batch in parallel (see
// SetParallelism) without changing the output.
//
// Deterministic clones, created with Deterministic or DeterministicN,
// snapshot their stream before and restore it after every call: applying the
// same clone to an image batch and then to the batch of paired annotations
// replays identical random decisions on both.
//
// Errors follow the convention described in the parent augment package:
// constructors throw augment.ConfigError eagerly, Augment throws
// augment.InputError on malformed batches before any child executes, and the
// assertion wrappers throw augment.AssertionError.
package augmenters

import (
	"fmt"
	"strings"

	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
)

// Augmenter is the unit of work: it transforms a batch of images into a new
// batch of the same shape, drawing any random decisions from its own private
// stream.
type Augmenter interface {
	// Augment applies the transformation to the batch and returns the result.
	// The input batch is never modified. It throws augment.InputError if the
	// batch is malformed.
	Augment(batch *batches.Batch) *batches.Batch

	// Deterministic returns an independently seeded copy whose stream state
	// is snapshotted before and restored after every Augment call, so
	// repeated calls replay the same random decisions. Composites clone
	// their children recursively.
	Deterministic() Augmenter

	// Parameters returns the augmenter's own stochastic parameters (not its
	// children's), for introspection and printing.
	Parameters() []params.Parameter

	// Name returns the augmenter's name, e.g. "HorizontalFlip".
	Name() string

	// String returns a human-readable description.
	String() string
}

// DeterministicN returns n deterministic clones of a, each carrying a
// distinct fresh seed, so the clones diverge from one another with the same
// statistical guarantees as n separate Deterministic calls.
func DeterministicN(a Augmenter, n int) []Augmenter {
	out := make([]Augmenter, n)
	for ii := 0; ii < n; ii++ {
		out[ii] = a.Deterministic()
	}
	return out
}

// AugmentImage applies a to a single image by wrapping it into a singleton
// batch.
func AugmentImage(a Augmenter, im *batches.Image) *batches.Image {
	return a.Augment(batches.Stack(im)).Image(0)
}

// AugmentImages applies a to a list of single images, normalizing them into
// one batch (they must all share dimensions) and unstacking the result.
func AugmentImages(a Augmenter, images []*batches.Image) []*batches.Image {
	return a.Augment(batches.Stack(images...)).Images()
}

// base carries the state shared by every augmenter: the name, the
// determinism flag and the owned random stream. Concrete augmenters embed it
// and route their Augment implementation through run.
type base struct {
	name          string
	deterministic bool
	stream        *random.Stream
}

func newBase(name string) base {
	return base{name: name, stream: random.NewRandomized()}
}

// Name implements Augmenter.
func (b *base) Name() string { return b.name }

// SetName renames the augmenter, for nicer printing of pipelines.
func (b *base) SetName(name string) { b.name = name }

// IsDeterministic reports whether this is a deterministic clone.
func (b *base) IsDeterministic() bool { return b.deterministic }

// Reseed replaces the augmenter's stream with one seeded by seed. Two
// augmenters configured identically and reseeded identically produce the
// same outputs.
func (b *base) Reseed(seed uint64) { b.stream = random.New(seed) }

// run applies the uniform per-call contract around the kind-specific apply
// function: the batch is validated before anything executes, and for
// deterministic clones the stream state is snapshotted before and restored
// after the apply, so every call begins its draws from the same state no
// matter how often the clone was used before.
func (b *base) run(batch *batches.Batch, apply func(*batches.Batch, *random.Stream) *batches.Batch) *batches.Batch {
	batch.AssertValid()
	if b.deterministic {
		state := b.stream.Snapshot()
		defer b.stream.Restore(state)
	}
	return apply(batch, b.stream)
}

// deterministicBase returns a copy of the base with the determinism flag set
// and a freshly, independently seeded stream.
func (b *base) deterministicBase() base {
	return base{name: b.name, deterministic: true, stream: random.NewRandomized()}
}

// describe formats an augmenter the same way for every kind.
func describe(b *base, ps []params.Parameter) string {
	strs := make([]string, len(ps))
	for ii, p := range ps {
		strs[ii] = p.String()
	}
	return fmt.Sprintf("%s(parameters=[%s], deterministic=%v)", b.name, strings.Join(strs, ", "), b.deterministic)
}
