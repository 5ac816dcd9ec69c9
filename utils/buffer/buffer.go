// Package buffer implements the little-endian encoding of 64-bit words
// on io.Writer and io.Reader.
package buffer

import (
	"fmt"
	"io"
)

// Buffer is a fixed-capacity write buffer. Writes past its capacity fail
// instead of growing it, so an encoding sized by BinarySize that does not
// fit is reported as an error.
type Buffer struct {
	buf []byte
}

// NewBufferSize creates a new Buffer with size capacity.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// Write appends p to b. It returns an error if p does not fit in the
// remaining capacity of b.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > b.Available() {
		return 0, fmt.Errorf("buffer too small: %d bytes for %d available", len(p), b.Available())
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return cap(b.buf) - len(b.buf)
}

// Bytes returns the bytes written so far.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Remaining returns the number of unread bytes of r when r reports it,
// as bytes.Reader, bytes.Buffer and strings.Reader do.
func Remaining(r io.Reader) (n int, ok bool) {
	if l, ok := r.(interface{ Len() int }); ok {
		return l.Len(), true
	}
	return 0, false
}
