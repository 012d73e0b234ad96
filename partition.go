package mersenne

import (
	"math/bits"
	"sort"

	xxhash "github.com/cespare/xxhash/v2"
)

// Partitioner picks owning partitions for 64-bit key hashes using rendezvous
// (highest-random-weight) hashing: every partition scores every key and the
// highest score wins, so adding or removing one partition only moves the keys
// that partition scored highest. The per-partition salt is the pre-hashed
// partition name; the score is the stateless Mersenne fold of keyHash XOR
// salt, which keeps partitions independent of each other.
//
// A Partitioner is immutable after construction and safe for concurrent use.
type Partitioner struct {
	names []string
	salts []uint64
	m     uint64
}

// NewPartitioner builds a partitioner over the named partitions with
// multiplier m. Fails with ErrInvalidConstant for a non-Mersenne m and with
// ErrNoPartitions for an empty name list.
func NewPartitioner(names []string, m uint64) (*Partitioner, error) {
	if !validM64(m) {
		return nil, newConstantError(64, m)
	}
	if len(names) == 0 {
		return nil, ErrNoPartitions
	}
	p := &Partitioner{
		names: append([]string(nil), names...),
		salts: make([]uint64, len(names)),
		m:     m,
	}
	for i, name := range p.names {
		p.salts[i] = xxhash.Sum64String(name)
	}
	return p, nil
}

// score ranks partition i for keyHash. Ties are possible in principle;
// callers break them by name order.
func (p *Partitioner) score(keyHash uint64, i int) uint64 {
	hi, lo := bits.Mul64(keyHash^p.salts[i], p.m)
	return hi ^ lo
}

// Pick returns the partition owning keyHash.
func (p *Partitioner) Pick(keyHash uint64) string {
	best := 0
	bestScore := p.score(keyHash, 0)
	for i := 1; i < len(p.names); i++ {
		s := p.score(keyHash, i)
		if s > bestScore || (s == bestScore && p.names[i] < p.names[best]) {
			best, bestScore = i, s
		}
	}
	return p.names[best]
}

// PickN returns the n highest-scoring partitions for keyHash in rank order,
// e.g. a primary owner and its replicas. n is clamped to the partition count.
func (p *Partitioner) PickN(keyHash uint64, n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(p.names) {
		n = len(p.names)
	}

	type ranked struct {
		score uint64
		name  string
	}
	arr := make([]ranked, len(p.names))
	for i, name := range p.names {
		arr[i] = ranked{score: p.score(keyHash, i), name: name}
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].score != arr[j].score {
			return arr[i].score > arr[j].score
		}
		return arr[i].name < arr[j].name
	})

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = arr[i].name
	}
	return out
}

// Partitions returns the configured partition names in construction order.
func (p *Partitioner) Partitions() []string {
	return append([]string(nil), p.names...)
}
