// Package structs implements generic containers of 64-bit words and pools, as well as their serialization.
package structs

import (
	"io"

	"github.com/tuneinsight/intpoly/utils/buffer"
)

// BinarySizer is implemented by objects that know the size of their binary encoding.
type BinarySizer interface {
	BinarySize() int
}

// Equatable is implemented by objects that can be deep-compared.
type Equatable[T any] interface {
	Equal(*T) bool
}

// MarshalBinary encodes obj on a newly allocated slice of obj.BinarySize() bytes.
// It returns an error if obj writes more than it announces.
func MarshalBinary(obj interface {
	BinarySizer
	io.WriterTo
}) ([]byte, error) {
	buf := buffer.NewBufferSize(obj.BinarySize())
	_, err := obj.WriteTo(buf)
	return buf.Bytes(), err
}
