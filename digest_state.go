package mersenne

import (
	"encoding"

	cbor "github.com/fxamacker/cbor/v2"
)

var (
	_ encoding.BinaryMarshaler   = (*Digest64)(nil)
	_ encoding.BinaryUnmarshaler = (*Digest64)(nil)
)

// digestState is the wire form of an in-flight Digest64. Field names are
// part of the snapshot format; keep them stable.
type digestState struct {
	M     uint64 `cbor:"m"`
	Seed  uint64 `cbor:"seed"`
	State uint64 `cbor:"state"`
	N     uint64 `cbor:"n"`
	Tail  []byte `cbor:"tail,omitempty"`
}

// MarshalBinary snapshots the digest so hashing can resume later, possibly in
// another process. The encoding is CBOR and carries the multiplier, seed,
// accumulator, buffered tail and byte count.
func (d *Digest64) MarshalBinary() ([]byte, error) {
	st := digestState{M: d.m, Seed: d.seed, State: d.state, N: d.n}
	if r := int(d.n % 8); r > 0 {
		st.Tail = append([]byte(nil), d.tail[:r]...)
	}
	return cbor.Marshal(st)
}

// UnmarshalBinary restores a snapshot produced by MarshalBinary. The
// multiplier is re-validated, so a snapshot carrying a non-Mersenne constant
// fails with ErrInvalidConstant; a tail that disagrees with the byte count
// fails with ErrCorruptSnapshot.
func (d *Digest64) UnmarshalBinary(data []byte) error {
	var st digestState
	if err := cbor.Unmarshal(data, &st); err != nil {
		return err
	}
	if !validM64(st.M) {
		return newConstantError(64, st.M)
	}
	if len(st.Tail) != int(st.N%8) {
		return ErrCorruptSnapshot
	}
	d.m, d.seed, d.state, d.n = st.M, st.Seed, st.State, st.N
	d.tail = [8]byte{}
	copy(d.tail[:], st.Tail)
	return nil
}
