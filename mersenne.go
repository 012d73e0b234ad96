// Package mersenne implements fast, non-cryptographic word hashing built on
// a widening multiply by a Mersenne-prime constant. It is meant for sharding
// keys across partitions and for hash-table bucketing: throughput and good
// statistical distribution, not collision resistance against adversarial
// input.
//
// The core comes in two modes. The stateful mode (Hasher64, Hasher32,
// Digest64, Digest32) carries the high half of each widening multiply forward
// as an accumulator across input words. The stateless mode (Hash64, Sum64 and
// friends) hashes a single word with no carried state by XOR-folding the high
// and low halves of one product together.
package mersenne

import "math/bits"

// Mersenne-form multiplier constants 2^p-1. M61 and M31 are the largest
// Mersenne primes that leave headroom for a widening multiply at their word
// width; the smaller ones give independent hash families for multi-probe
// schemes such as double hashing.
const (
	M61 = 1<<61 - 1 // default 64-bit multiplier
	M31 = 1<<31 - 1 // default 32-bit multiplier
	M19 = 1<<19 - 1
	M17 = 1<<17 - 1
	M13 = 1<<13 - 1
)

// Default accumulator seeds. The alternating bit pattern keeps the high half
// of the first product populated even for small input words; a zero seed is
// legal but mixes noticeably worse until larger words arrive.
const (
	DefaultSeed64 uint64 = 0xAAAAAAAAAAAAAAAA
	DefaultSeed32 uint32 = 0xAAAAAAAA
)

// Valid multiplier exponents: 2^p-1 with p in [minExponent, W-1]. The upper
// bound keeps the multiplier strictly inside one word so the product's high
// half is unambiguous.
const (
	minExponent   = 2
	maxExponent64 = 63
	maxExponent32 = 31
)

// validM64 reports whether m is of the form 2^p-1 with p in [2, 63]. Only the
// form is checked; choosing a p whose 2^p-1 is actually prime (61, 31, 19,
// 17, 13, ...) is up to the caller.
func validM64(m uint64) bool {
	if m&(m+1) != 0 { // not all-ones
		return false
	}
	p := bits.Len64(m)
	return p >= minExponent && p <= maxExponent64
}

// validM32 is the 32-bit counterpart of validM64: p in [2, 31].
func validM32(m uint32) bool {
	if m&(m+1) != 0 {
		return false
	}
	p := bits.Len32(m)
	return p >= minExponent && p <= maxExponent32
}

// WideningMul64 returns the full 128-bit product of a and b split into its
// high and low 64-bit halves. Unsigned, exact, no error conditions. The high
// half is the overflow an ordinary same-width multiply would discard, and it
// is exactly what the stateful hasher carries forward.
func WideningMul64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// WideningMul32 returns the full 64-bit product of a and b split into its
// high and low 32-bit halves.
func WideningMul32(a, b uint32) (hi, lo uint32) {
	p := uint64(a) * uint64(b)
	return uint32(p >> 32), uint32(p)
}

// Hash64 hashes a single 64-bit word with multiplier m. The high and low
// halves of word*m are XOR-folded together so none of the product's entropy
// is thrown away; there is no carried state. Returns ErrInvalidConstant if m
// is not Mersenne-form.
func Hash64(word, m uint64) (uint64, error) {
	if !validM64(m) {
		return 0, newConstantError(64, m)
	}
	hi, lo := bits.Mul64(word, m)
	return hi ^ lo, nil
}

// Hash32 hashes a single 32-bit word with multiplier m. See Hash64.
func Hash32(word, m uint32) (uint32, error) {
	if !validM32(m) {
		return 0, newConstantError(32, uint64(m))
	}
	hi, lo := WideningMul32(word, m)
	return hi ^ lo, nil
}

// Sum64 is the unchecked fast path of Hash64 with the default M61 multiplier.
func Sum64(word uint64) uint64 {
	hi, lo := bits.Mul64(word, M61)
	return hi ^ lo
}

// Sum32 is the unchecked fast path of Hash32 with the default M31 multiplier.
func Sum32(word uint32) uint32 {
	hi, lo := WideningMul32(word, M31)
	return hi ^ lo
}

// CombineAll64 XORs the independent stateless hashes of each word into one
// value. No accumulator is carried between words, so unlike
// Hasher64.AbsorbAll this is order-insensitive: CombineAll64 of [a, b] and
// [b, a] are equal. Use the stateful hasher when field order must matter.
func CombineAll64(words []uint64, m uint64) (uint64, error) {
	if !validM64(m) {
		return 0, newConstantError(64, m)
	}
	var acc uint64
	for _, w := range words {
		hi, lo := bits.Mul64(w, m)
		acc ^= hi ^ lo
	}
	return acc, nil
}
