package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadUint64 reads a uint64 from r and stores the result into c.
func ReadUint64(r io.Reader, c *uint64) (n int64, err error) {

	var b [8]byte

	inc, err := io.ReadFull(r, b[:])
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return int64(inc), fmt.Errorf("cannot ReadUint64: %w", err)
	}

	*c = binary.LittleEndian.Uint64(b[:])

	return int64(inc), nil
}

// ReadAsUint64Slice reads size words from r and appends them to c as T.
// c grows chunkWords at a time as the words are read, so a size larger
// than what r holds fails with io.ErrUnexpectedEOF after at most one
// chunk past the end of r.
func ReadAsUint64Slice[T Word](r io.Reader, c []T, size uint64) (out []T, n int64, err error) {

	var scratch [chunkWords << 3]byte

	for size > 0 {

		N := chunkWords
		if size < chunkWords {
			N = int(size)
		}

		var inc int
		inc, err = io.ReadFull(r, scratch[:N<<3])
		n += int64(inc)

		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return c, n, fmt.Errorf("cannot ReadAsUint64Slice: %w", err)
		}

		for i := 0; i < N; i++ {
			c = append(c, T(binary.LittleEndian.Uint64(scratch[i<<3:])))
		}

		size -= uint64(N)
	}

	return c, n, nil
}
