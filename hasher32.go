package mersenne

// Hasher32 is the 32-bit instantiation of Hasher64 for smaller platforms and
// 32-bit table layouts. Same update rule: accumulator = high half of
// (accumulator XOR word) * m.
type Hasher32 struct {
	state uint32
	m     uint32
}

// New32 returns a stateful 32-bit hasher with the given seed and multiplier.
// m must be of the form 2^p-1 with p in [2, 31]; anything else fails with
// ErrInvalidConstant.
func New32(seed, m uint32) (*Hasher32, error) {
	if !validM32(m) {
		return nil, newConstantError(32, uint64(m))
	}
	return &Hasher32{state: seed, m: m}, nil
}

// NewDefault32 returns a hasher seeded with DefaultSeed32 using M31.
func NewDefault32() *Hasher32 {
	return &Hasher32{state: DefaultSeed32, m: M31}
}

// Absorb mixes one word into the accumulator.
func (h *Hasher32) Absorb(word uint32) {
	hi, _ := WideningMul32(h.state^word, h.m)
	h.state = hi
}

// AbsorbAll absorbs words in order; see Hasher64.AbsorbAll.
func (h *Hasher32) AbsorbAll(words []uint32) {
	for _, w := range words {
		h.Absorb(w)
	}
}

// Sum32 returns the current accumulator without mutating it.
func (h *Hasher32) Sum32() uint32 { return h.state }

// Reset sets the accumulator back to seed, keeping the multiplier.
func (h *Hasher32) Reset(seed uint32) { h.state = seed }

// Multiplier returns the Mersenne constant this hasher was built with.
func (h *Hasher32) Multiplier() uint32 { return h.m }
