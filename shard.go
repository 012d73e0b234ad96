package mersenne

import "math/bits"

// nextPowerOf2 returns the next power of 2 greater than or equal to n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// FastRange maps a 64-bit hash onto [0, n) with one widening multiply instead
// of a modulo. n need not be a power of two; the mapping is bias-free as long
// as the hash is well distributed across the full 64-bit range.
func FastRange(hash uint64, n int) int {
	hi, _ := bits.Mul64(hash, uint64(n))
	return int(hi)
}

// Sharder assigns typed keys to one of a fixed number of shards. The shard
// count is rounded up to a power of two so selection is a single mask of the
// key hash's low bits.
type Sharder[K comparable] struct {
	hasher KeyHasher[K]
	mask   uint64
	shards int
}

// NewSharder returns a sharder over n shards, rounded up to the next power of
// two. n <= 0 is treated as 1.
func NewSharder[K comparable](n int) *Sharder[K] {
	n = nextPowerOf2(n)
	return &Sharder[K]{
		hasher: NewKeyHasher[K](),
		mask:   uint64(n - 1),
		shards: n,
	}
}

// NumShards returns the effective (power-of-two) shard count.
func (s *Sharder[K]) NumShards() int { return s.shards }

// Index returns the shard index for key, in [0, NumShards()).
func (s *Sharder[K]) Index(key K) int {
	return int(s.hasher.Hash(key) & s.mask)
}
