package mersenne

import "math/bits"

// Hasher64 accumulates 64-bit words into a single 64-bit state. Each absorbed
// word is XORed into the accumulator, the result is multiplied by the
// Mersenne constant, and the overflow (high) half of the product becomes the
// new accumulator; the low half is discarded. The accumulator is the hash —
// there is no separate finalization pass.
//
// A Hasher64 belongs to one logical caller at a time; there is no internal
// locking. Give each goroutine its own instance, or use Shared64.
type Hasher64 struct {
	state uint64
	m     uint64
}

// New64 returns a stateful 64-bit hasher with the given seed and multiplier.
// m must be of the form 2^p-1 with p in [2, 63]; anything else fails with
// ErrInvalidConstant. Different Mersenne constants produce independent hash
// families, which is what double hashing wants.
func New64(seed, m uint64) (*Hasher64, error) {
	if !validM64(m) {
		return nil, newConstantError(64, m)
	}
	return &Hasher64{state: seed, m: m}, nil
}

// NewDefault64 returns a hasher seeded with DefaultSeed64 using M61.
func NewDefault64() *Hasher64 {
	return &Hasher64{state: DefaultSeed64, m: M61}
}

// Absorb mixes one word into the accumulator.
func (h *Hasher64) Absorb(word uint64) {
	hi, _ := bits.Mul64(h.state^word, h.m)
	h.state = hi
}

// AbsorbAll absorbs words in order. Order matters: absorbing [a, b] and
// [b, a] generally leaves different accumulators, so multi-field keys don't
// collide under field permutation.
func (h *Hasher64) AbsorbAll(words []uint64) {
	for _, w := range words {
		h.Absorb(w)
	}
}

// Sum64 returns the current accumulator. It is a snapshot: state is not
// mutated, and further Absorb calls may follow. Before any Absorb it equals
// the seed.
func (h *Hasher64) Sum64() uint64 { return h.state }

// Reset sets the accumulator back to seed, keeping the multiplier, so the
// hasher can be reused without reconstruction.
func (h *Hasher64) Reset(seed uint64) { h.state = seed }

// Multiplier returns the Mersenne constant this hasher was built with.
func (h *Hasher64) Multiplier() uint64 { return h.m }
