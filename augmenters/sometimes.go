package augmenters

import (
	"fmt"

	"github.com/gomlx/augment/batches"
	"github.com/gomlx/augment/params"
	"github.com/gomlx/augment/random"
)

// Sometimes routes each image of a batch through one of two sub-pipelines: a
// Bernoulli sample per image decides between the "then" branch (sample 1)
// and the "else" branch (sample 0). A nil branch is the identity.
type Sometimes struct {
	base
	p         params.Parameter
	then      Augmenter
	otherwise Augmenter
}

var _ Augmenter = (*Sometimes)(nil)

// NewSometimes creates a Sometimes with the given per-image branch
// probability (a float in [0, 1] or a params.Parameter interpreted as
// Bernoulli success probability). Either branch may be nil, in which case it
// passes images through unchanged. Wrap multiple augmenters per branch in a
// Sequence.
func NewSometimes(p any, then, otherwise Augmenter) *Sometimes {
	return &Sometimes{
		base:      newBase("Sometimes"),
		p:         toProbability("p", p),
		then:      then,
		otherwise: otherwise,
	}
}

// Augment implements Augmenter.
func (a *Sometimes) Augment(batch *batches.Batch) *batches.Batch {
	return a.run(batch, a.applyBatch)
}

func (a *Sometimes) applyBatch(batch *batches.Batch, stream *random.Stream) *batches.Batch {
	result := batch.Clone()
	samples := a.p.Draw([]int{batch.Count}, stream)
	for ii := 0; ii < batch.Count; ii++ {
		branch := a.otherwise
		if samples[ii] == 1 {
			branch = a.then
		}
		if branch == nil {
			continue // Identity branch, image already copied.
		}
		single := batches.Stack(batch.Image(ii))
		result.SetImage(ii, branch.Augment(single).Image(0))
	}
	return result
}

// Deterministic implements Augmenter: both sub-pipelines are recursively
// cloned, so the same clone instance used twice yields the same branch
// assignment and the same branch behavior both times.
func (a *Sometimes) Deterministic() Augmenter {
	clone := &Sometimes{base: a.deterministicBase(), p: a.p}
	if a.then != nil {
		clone.then = a.then.Deterministic()
	}
	if a.otherwise != nil {
		clone.otherwise = a.otherwise.Deterministic()
	}
	return clone
}

// Parameters implements Augmenter.
func (a *Sometimes) Parameters() []params.Parameter { return []params.Parameter{a.p} }

func (a *Sometimes) String() string {
	thenStr, elseStr := "identity", "identity"
	if a.then != nil {
		thenStr = a.then.String()
	}
	if a.otherwise != nil {
		elseStr = a.otherwise.String()
	}
	return fmt.Sprintf("%s(p=%s, then=%s, else=%s, deterministic=%v)", a.name, a.p, thenStr, elseStr, a.deterministic)
}
