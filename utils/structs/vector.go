package structs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tuneinsight/intpoly/utils/buffer"
)

// Vector is a slice of 64-bit words with a binary serialization.
// The encoding is the length as a little-endian uint64 followed by
// one little-endian word per component.
type Vector[T buffer.Word] []T

var (
	_ BinarySizer               = Vector[uint64]{}
	_ Equatable[Vector[uint64]] = Vector[uint64]{}
)

// CopyNew returns a deep copy of the object.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {
	vcpy = make(Vector[T], len(v))
	copy(vcpy, v)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)<<3
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	var inc int64
	if inc, err = buffer.WriteAsUint64(w, len(v)); err != nil {
		return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
	}

	n += inc

	if inc, err = buffer.WriteAsUint64Slice(w, []T(v)); err != nil {
		var t T
		return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[%T]: %w", t, err)
	}

	return n + inc, nil
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// The length prefix is checked against the unread bytes of r when r
// reports them (see buffer.Remaining). Otherwise the vector grows as its
// words are read, and a length prefix past the end of r fails with
// io.ErrUnexpectedEOF.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	var size uint64
	if n, err = buffer.ReadUint64(r, &size); err != nil {
		return n, fmt.Errorf("buffer.ReadUint64: %w", err)
	}

	if remaining, ok := buffer.Remaining(r); ok && size > uint64(remaining>>3) {
		return n, fmt.Errorf("invalid vector size: %d words for %d remaining bytes: %w", size, remaining, io.ErrUnexpectedEOF)
	}

	words, inc, err := buffer.ReadAsUint64Slice(r, []T((*v)[:0]), size)
	if err != nil {
		var t T
		return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[%T]: %w", t, err)
	}

	*v = Vector[T](words)

	return n + inc, nil
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	return MarshalBinary(v)
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(bytes.NewReader(p))
	return
}

// Equal performs a deep equal.
func (v Vector[T]) Equal(other *Vector[T]) bool {

	if other == nil || len(v) != len(*other) {
		return false
	}

	for i := range v {
		if v[i] != (*other)[i] {
			return false
		}
	}

	return true
}
