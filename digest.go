package mersenne

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

// Compile-time interface assertions.
var (
	_ hash.Hash   = (*Digest64)(nil)
	_ hash.Hash64 = (*Digest64)(nil)
	_ hash.Hash   = (*Digest32)(nil)
	_ hash.Hash32 = (*Digest32)(nil)
)

// Digest64 hashes a byte stream through the stateful Mersenne word hasher.
//
// Bytes are consumed as little-endian 8-byte words. A trailing partial word
// is zero-padded, and the total byte length is always mixed in as one final
// word, so inputs that differ only in trailing NUL bytes still hash
// differently. The length mix uses the stateless XOR fold rather than the
// stateful high-half step: the last product has no forward state to carry,
// and the high half alone loses the low bits that distinguish nearby
// lengths. Sum64 is a snapshot: it folds the pending tail and the length
// into a copy of the accumulator, and writing may continue afterwards.
type Digest64 struct {
	state uint64  // accumulator over the complete words written so far
	seed  uint64  // construction seed, restored by Reset
	m     uint64  // Mersenne multiplier
	n     uint64  // total bytes written
	tail  [8]byte // pending partial word, n%8 bytes valid
}

// NewDigest64 returns a streaming digest with DefaultSeed64 and M61.
func NewDigest64() *Digest64 {
	return &Digest64{state: DefaultSeed64, seed: DefaultSeed64, m: M61}
}

// NewDigest64Seeded returns a streaming digest with the given seed and
// multiplier. Fails with ErrInvalidConstant if m is not Mersenne-form.
func NewDigest64Seeded(seed, m uint64) (*Digest64, error) {
	if !validM64(m) {
		return nil, newConstantError(64, m)
	}
	return &Digest64{state: seed, seed: seed, m: m}, nil
}

// absorb folds one word into the running accumulator.
func (d *Digest64) absorb(word uint64) {
	hi, _ := bits.Mul64(d.state^word, d.m)
	d.state = hi
}

// Write consumes p. It always succeeds.
func (d *Digest64) Write(p []byte) (int, error) {
	written := len(p)
	r := int(d.n % 8)
	d.n += uint64(written)

	// top up a pending partial word first
	if r > 0 {
		c := copy(d.tail[r:], p)
		if r+c < 8 {
			return written, nil
		}
		d.absorb(binary.LittleEndian.Uint64(d.tail[:]))
		p = p[c:]
	}

	for len(p) >= 8 {
		d.absorb(binary.LittleEndian.Uint64(p))
		p = p[8:]
	}

	copy(d.tail[:], p)
	return written, nil
}

// Sum64 returns the hash of everything written so far: the running
// accumulator with the zero-padded tail (if any) and the byte length folded
// in. State is not mutated; the stream may keep going.
func (d *Digest64) Sum64() uint64 {
	acc, m := d.state, d.m
	if r := d.n % 8; r > 0 {
		var w [8]byte
		copy(w[:], d.tail[:r])
		hi, _ := bits.Mul64(acc^binary.LittleEndian.Uint64(w[:]), m)
		acc = hi
	}
	hi, lo := bits.Mul64(acc^d.n, m)
	return hi ^ lo
}

// Sum appends the current 64-bit hash to b.
func (d *Digest64) Sum(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], d.Sum64())
	return append(b, out[:]...)
}

// Reset restores the accumulator to the construction seed and discards any
// buffered bytes. The multiplier is kept.
func (d *Digest64) Reset() {
	d.state = d.seed
	d.n = 0
}

// Size returns the hash size in bytes.
func (d *Digest64) Size() int { return 8 }

// BlockSize returns the word size the digest consumes input in.
func (d *Digest64) BlockSize() int { return 8 }

// Sum64Bytes returns the Mersenne digest of b with DefaultSeed64 and M61.
// Equivalent to writing b into a fresh NewDigest64 and calling Sum64, without
// the allocation.
func Sum64Bytes(b []byte) uint64 {
	acc := DefaultSeed64
	n := uint64(len(b))
	for len(b) >= 8 {
		hi, _ := bits.Mul64(acc^binary.LittleEndian.Uint64(b), M61)
		acc = hi
		b = b[8:]
	}
	if len(b) > 0 {
		var w [8]byte
		copy(w[:], b)
		hi, _ := bits.Mul64(acc^binary.LittleEndian.Uint64(w[:]), M61)
		acc = hi
	}
	hi, lo := bits.Mul64(acc^n, M61)
	return hi ^ lo
}

// Sum64String returns the Mersenne digest of s with DefaultSeed64 and M61.
func Sum64String(s string) uint64 {
	return Sum64Bytes([]byte(s))
}

// Digest32 is the 32-bit instantiation of Digest64: little-endian 4-byte
// words, zero-padded tail, truncated byte length XOR-folded in at the end.
type Digest32 struct {
	state uint32
	seed  uint32
	m     uint32
	n     uint64
	tail  [4]byte
}

// NewDigest32 returns a streaming digest with DefaultSeed32 and M31.
func NewDigest32() *Digest32 {
	return &Digest32{state: DefaultSeed32, seed: DefaultSeed32, m: M31}
}

// NewDigest32Seeded returns a streaming digest with the given seed and
// multiplier. Fails with ErrInvalidConstant if m is not Mersenne-form.
func NewDigest32Seeded(seed, m uint32) (*Digest32, error) {
	if !validM32(m) {
		return nil, newConstantError(32, uint64(m))
	}
	return &Digest32{state: seed, seed: seed, m: m}, nil
}

func (d *Digest32) absorb(word uint32) {
	hi, _ := WideningMul32(d.state^word, d.m)
	d.state = hi
}

// Write consumes p. It always succeeds.
func (d *Digest32) Write(p []byte) (int, error) {
	written := len(p)
	r := int(d.n % 4)
	d.n += uint64(written)

	if r > 0 {
		c := copy(d.tail[r:], p)
		if r+c < 4 {
			return written, nil
		}
		d.absorb(binary.LittleEndian.Uint32(d.tail[:]))
		p = p[c:]
	}

	for len(p) >= 4 {
		d.absorb(binary.LittleEndian.Uint32(p))
		p = p[4:]
	}

	copy(d.tail[:], p)
	return written, nil
}

// Sum32 returns the hash of everything written so far without mutating state.
func (d *Digest32) Sum32() uint32 {
	acc, m := d.state, d.m
	if r := d.n % 4; r > 0 {
		var w [4]byte
		copy(w[:], d.tail[:r])
		hi, _ := WideningMul32(acc^binary.LittleEndian.Uint32(w[:]), m)
		acc = hi
	}
	hi, lo := WideningMul32(acc^uint32(d.n), m)
	return hi ^ lo
}

// Sum appends the current 32-bit hash to b.
func (d *Digest32) Sum(b []byte) []byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], d.Sum32())
	return append(b, out[:]...)
}

// Reset restores the accumulator to the construction seed and discards any
// buffered bytes.
func (d *Digest32) Reset() {
	d.state = d.seed
	d.n = 0
}

// Size returns the hash size in bytes.
func (d *Digest32) Size() int { return 4 }

// BlockSize returns the word size the digest consumes input in.
func (d *Digest32) BlockSize() int { return 4 }

// Sum32Bytes returns the Mersenne digest of b with DefaultSeed32 and M31.
func Sum32Bytes(b []byte) uint32 {
	acc := DefaultSeed32
	n := uint64(len(b))
	for len(b) >= 4 {
		hi, _ := WideningMul32(acc^binary.LittleEndian.Uint32(b), M31)
		acc = hi
		b = b[4:]
	}
	if len(b) > 0 {
		var w [4]byte
		copy(w[:], b)
		hi, _ := WideningMul32(acc^binary.LittleEndian.Uint32(w[:]), M31)
		acc = hi
	}
	hi, lo := WideningMul32(acc^uint32(n), M31)
	return hi ^ lo
}

// Sum32String returns the Mersenne digest of s with DefaultSeed32 and M31.
func Sum32String(s string) uint32 {
	return Sum32Bytes([]byte(s))
}
