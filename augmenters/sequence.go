package augmenters

import (
	"fmt"
	"strings"

	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
)

// Sequence chains child augmenters in order: the output of child i is the
// input of child i+1. It adds no randomness of its own.
type Sequence struct {
	base
	children []Augmenter
}

// Compile-time check.
var _ Augmenter = (*Sequence)(nil)

// NewSequence creates a Sequence over the given children. More children can
// be added with Append and Extend before first use; mutating a Sequence
// after cloning it has no effect on already-created clones.
func NewSequence(children ...Augmenter) *Sequence {
	return &Sequence{
		base:     newBase("Sequence"),
		children: append([]Augmenter(nil), children...),
	}
}

// Append adds one child at the end of the sequence. It returns the Sequence,
// so calls can be cascaded.
func (a *Sequence) Append(child Augmenter) *Sequence {
	a.children = append(a.children, child)
	return a
}

// Extend adds children at the end of the sequence. It returns the Sequence,
// so calls can be cascaded.
func (a *Sequence) Extend(children ...Augmenter) *Sequence {
	a.children = append(a.children, children...)
	return a
}

// Children returns a copy of the child list, in application order.
func (a *Sequence) Children() []Augmenter {
	return append([]Augmenter(nil), a.children...)
}

// Augment implements Augmenter.
func (a *Sequence) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.applyBatch)
}

func (a *Sequence) applyBatch(batch *batches.Batch, _ *random.Stream) *batches.Batch {
	result := batch
	for _, child := range a.children {
		result = child.Augment(result)
	}
	return result
}

// Deterministic implements Augmenter: every child becomes its own
// deterministic clone, order preserved.
func (a *Sequence) Deterministic() Augmenter {
	clone := &Sequence{
		base:     a.deterministicBase(),
		children: make([]Augmenter, len(a.children)),
	}
	for ii, child := range a.children {
		clone.children[ii] = child.Deterministic()
	}
	return clone
}

// Parameters implements Augmenter. A Sequence has no parameters of its own.
func (a *Sequence) Parameters() []params.Parameter { return nil }

func (a *Sequence) String() string {
	strs := make([]string, len(a.children))
	for ii, child := range a.children {
		strs[ii] = child.String()
	}
	return fmt.Sprintf("%s(children=[%s], deterministic=%v)", a.name, strings.Join(strs, ", "), a.deterministic)
}
