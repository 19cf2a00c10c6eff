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

// Package random implements the pseudo-random streams owned by augmenters.
//
// A Stream is an opaque, copyable, forkable generator of pseudo-random values
// with mutable internal state, backed by the PCG generator of
// golang.org/x/exp/rand. Three operations define its contract:
//
//   - Fork: produce an independent stream whose future draws do not affect,
//     and are not affected by, the original. Forking derives the child seed
//     from a hash of the parent's current state and a per-stream fork
//     counter, so the parent's draw state is left untouched.
//   - Snapshot/Restore: save and later reinstate the exact internal state,
//     fork counter included, so a restored stream replays both its draws and
//     its forks.
//   - Draws: integers, floats and normal variates, plus a Source view that
//     plugs directly into the gonum.org/v1/gonum/stat/distuv distributions.
//
// No other component reads or writes the state directly.
package random

import (
	"encoding/binary"
	"hash/fnv"
	"sync/atomic"
	"time"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/rand"
)

// State is an opaque snapshot of a Stream, produced by Stream.Snapshot and
// consumed by Stream.Restore.
type State struct {
	pcg   []byte
	forks uint64
}

// Stream is a forkable, snapshot-able pseudo-random stream. Create one with
// New or NewRandomized. A Stream must not be shared between goroutines
// without external synchronization.
type Stream struct {
	src   rand.PCGSource
	rng   *rand.Rand
	forks uint64
}

// New creates a Stream seeded with the given seed. Two streams created with
// the same seed produce identical draws.
func New(seed uint64) *Stream {
	s := &Stream{}
	s.src.Seed(seed)
	s.rng = rand.New(&s.src)
	return s
}

var seedSequence uint64

// NewRandomized creates a Stream with a fresh seed, distinct from the seed of
// any other stream created by NewRandomized in this process.
func NewRandomized() *Stream {
	seed := uint64(time.Now().UnixNano())
	// Golden-ratio increments keep seeds distinct even when the clock doesn't move.
	seed += atomic.AddUint64(&seedSequence, 0x9E3779B97F4A7C15)
	return New(seed)
}

// Snapshot returns the current internal state. Use Restore to reinstate it.
func (s *Stream) Snapshot() State {
	data, err := s.src.MarshalBinary()
	if err != nil {
		exceptions.Panicf("random.Stream.Snapshot: failed to marshal PCG state: %v", err)
	}
	return State{pcg: data, forks: s.forks}
}

// Restore reinstates a state previously returned by Snapshot. After Restore
// the stream replays the same draws and forks it produced after the
// Snapshot call.
func (s *Stream) Restore(state State) {
	if err := s.src.UnmarshalBinary(state.pcg); err != nil {
		exceptions.Panicf("random.Stream.Restore: invalid state: %v", err)
	}
	s.forks = state.forks
}

// Clone returns an exact copy of the stream: it will produce the same future
// draws as the original, without affecting it.
func (s *Stream) Clone() *Stream {
	c := New(0)
	c.Restore(s.Snapshot())
	return c
}

// Fork returns an independent stream. The child's seed is derived from the
// parent's current state and a fork counter, so successive forks from the
// same state differ from each other, while the parent's draw state is not
// consumed.
func (s *Stream) Fork() *Stream {
	h := fnv.New64a()
	state := s.Snapshot()
	_, _ = h.Write(state.pcg)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], s.forks)
	_, _ = h.Write(buf[:])
	s.forks++
	return New(h.Sum64())
}

// Uint64 draws a uniformly distributed 64-bit integer.
func (s *Stream) Uint64() uint64 { return s.rng.Uint64() }

// Seed64 draws a value suitable to seed a derived generator, e.g. the
// per-image noise generators of the noise augmenters.
func (s *Stream) Seed64() uint64 { return s.rng.Uint64() }

// Intn draws a uniformly distributed integer in [0, n).
func (s *Stream) Intn(n int) int { return s.rng.Intn(n) }

// Float64 draws a uniformly distributed float in [0, 1).
func (s *Stream) Float64() float64 { return s.rng.Float64() }

// NormFloat64 draws a standard normal variate.
func (s *Stream) NormFloat64() float64 { return s.rng.NormFloat64() }

// Source exposes the stream as a rand.Source, to plug into the distuv
// distributions of gonum. Draws through the returned source advance this
// stream's state.
func (s *Stream) Source() rand.Source { return &s.src }
