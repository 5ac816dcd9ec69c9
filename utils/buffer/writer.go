package buffer

import (
	"encoding/binary"
	"io"

	"github.com/tuneinsight/intpoly/utils"
)

// Word is the set of types that are written and read as a single
// little-endian 64-bit word.
type Word interface {
	~uint64 | ~int64 | ~int
}

// chunkWords is the number of words encoded per call to Write or Read.
const chunkWords = 512

// WriteUint64 writes a uint64 c to w.
func WriteUint64(w io.Writer, c uint64) (n int64, err error) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], c)
	inc, err := w.Write(b[:])
	return int64(inc), err
}

// WriteAsUint64 writes c to w as a uint64.
func WriteAsUint64[T Word](w io.Writer, c T) (n int64, err error) {
	return WriteUint64(w, uint64(c))
}

// WriteAsUint64Slice writes the words of c to w, chunkWords at a time.
func WriteAsUint64Slice[T Word](w io.Writer, c []T) (n int64, err error) {

	var scratch [chunkWords << 3]byte

	for len(c) > 0 {

		N := utils.Min(len(c), chunkWords)

		for i := 0; i < N; i++ {
			binary.LittleEndian.PutUint64(scratch[i<<3:], uint64(c[i]))
		}

		var inc int
		inc, err = w.Write(scratch[:N<<3])
		n += int64(inc)

		if err != nil {
			return
		}

		c = c[N:]
	}

	return
}
