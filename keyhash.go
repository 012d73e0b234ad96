package mersenne

import "fmt"

// KeyHasher maps typed keys to 64-bit hashes for shard and bucket selection.
// String keys go through the byte digest, integer keys through the stateless
// word hash, and other types fall back to their fmt representation.
type KeyHasher[K comparable] struct{}

// NewKeyHasher creates a key hasher for the given key type.
func NewKeyHasher[K comparable]() KeyHasher[K] {
	return KeyHasher[K]{}
}

// Hash returns a 64-bit hash of key based on its type.
func (kh KeyHasher[K]) Hash(key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return Sum64String(k)
	case int:
		return Sum64(uint64(k))
	case int32:
		return Sum64(uint64(k))
	case int64:
		return Sum64(uint64(k))
	case uint:
		return Sum64(uint64(k))
	case uint32:
		return Sum64(uint64(k))
	case uint64:
		return Sum64(k)
	default:
		return Sum64String(fmt.Sprintf("%v", k))
	}
}
