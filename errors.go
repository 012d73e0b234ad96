package mersenne

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConstant reports a multiplier that is not of the form 2^p-1
	// within the valid exponent range for the word width.
	ErrInvalidConstant = errors.New("multiplier is not a Mersenne-form constant")

	// ErrCorruptSnapshot reports a digest snapshot whose fields are
	// inconsistent with each other.
	ErrCorruptSnapshot = errors.New("digest snapshot is inconsistent")

	// ErrNoPartitions reports a partitioner constructed without partitions.
	ErrNoPartitions = errors.New("no partitions configured")
)

// ConstantError carries the rejected multiplier and the word width that
// rejected it. It unwraps to ErrInvalidConstant.
type ConstantError struct {
	Width int    // word width in bits (32 or 64)
	M     uint64 // rejected multiplier
}

func (e *ConstantError) Error() string {
	return fmt.Sprintf("mersenne: %d-bit multiplier %#x: %v", e.Width, e.M, ErrInvalidConstant)
}

func (e *ConstantError) Unwrap() error {
	return ErrInvalidConstant
}

func newConstantError(width int, m uint64) *ConstantError {
	return &ConstantError{Width: width, M: m}
}
