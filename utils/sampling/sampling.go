// Package sampling implements the sampling of bytes and bounded integers from a PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

// ReadUint64 reads a uniform uint64 from r.
func ReadUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("cannot ReadUint64: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadUint64N reads a uniform uint64 in [0, n) from r using rejection
// sampling. n must be non-zero.
func ReadUint64N(r io.Reader, n uint64) (uint64, error) {

	if n == 0 {
		return 0, fmt.Errorf("cannot ReadUint64N: n is zero")
	}

	// smallest all-ones mask covering n-1
	mask := uint64(1)<<bits.Len64(n-1) - 1

	for {
		v, err := ReadUint64(r)
		if err != nil {
			return 0, err
		}

		if v &= mask; v < n {
			return v, nil
		}
	}
}

// ReadInt64Range reads a uniform int64 in [-bound, bound] from r.
// bound must be non-negative.
func ReadInt64Range(r io.Reader, bound int64) (int64, error) {

	if bound < 0 {
		return 0, fmt.Errorf("cannot ReadInt64Range: negative bound %d", bound)
	}

	v, err := ReadUint64N(r, 2*uint64(bound)+1)
	if err != nil {
		return 0, err
	}

	return int64(v) - bound, nil
}
