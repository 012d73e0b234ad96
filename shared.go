package mersenne

import (
	"math/bits"
	"sync/atomic"
)

// Shared64 keeps the accumulator in an atomic word so it can be absorbed into
// and sampled from several goroutines without tearing. Absorb is a plain
// load-compute-store, not a compare-and-swap loop: two concurrent absorbs may
// overlap and one of them wins, but the published state is always a
// well-formed accumulator value and never a torn mix of two. That trade keeps
// the hot path at a handful of instructions.
//
// Use Shared64 for shared, loosely-ordered accumulation (sampling, stats
// keys). When every absorbed word must count exactly once, give each
// goroutine its own Hasher64 instead.
type Shared64 struct {
	state atomic.Uint64
	m     uint64
}

// NewShared64 returns a shared hasher with the given seed and multiplier.
// Fails with ErrInvalidConstant if m is not Mersenne-form.
func NewShared64(seed, m uint64) (*Shared64, error) {
	if !validM64(m) {
		return nil, newConstantError(64, m)
	}
	h := &Shared64{m: m}
	h.state.Store(seed)
	return h, nil
}

// Absorb mixes one word into the shared accumulator and returns the value it
// published.
func (h *Shared64) Absorb(word uint64) uint64 {
	hi, _ := bits.Mul64(h.state.Load()^word, h.m)
	h.state.Store(hi)
	return hi
}

// Sum64 returns the most recently published accumulator.
func (h *Shared64) Sum64() uint64 { return h.state.Load() }

// Reset publishes seed as the new accumulator.
func (h *Shared64) Reset(seed uint64) { h.state.Store(seed) }

// Multiplier returns the Mersenne constant this hasher was built with.
func (h *Shared64) Multiplier() uint64 { return h.m }
