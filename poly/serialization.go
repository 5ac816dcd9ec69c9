package poly

import (
	"bytes"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/tuneinsight/intpoly/utils/structs"
)

var (
	_ structs.BinarySizer           = (*Polynomial)(nil)
	_ structs.Equatable[Polynomial] = (*Polynomial)(nil)
)

// BinarySize returns the serialized size of the object in bytes.
func (p *Polynomial) BinarySize() int {
	// two structs.Vector of Len() words
	return 2 * (8 + p.Len()<<3)
}

// split returns the powers and coefficients of p as two vectors.
func (p *Polynomial) split() (powers structs.Vector[uint64], coeffs structs.Vector[int64]) {
	terms := p.view()
	powers = make(structs.Vector[uint64], len(terms))
	coeffs = make(structs.Vector[int64], len(terms))
	for i, t := range terms {
		powers[i], coeffs[i] = t.Power, t.Coeff
	}
	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// The powers are written first, followed by the coefficients, each as a
// structs.Vector.
func (p *Polynomial) WriteTo(w io.Writer) (n int64, err error) {

	powers, coeffs := p.split()

	var inc int64
	if inc, err = powers.WriteTo(w); err != nil {
		return inc, fmt.Errorf("powers.WriteTo: %w", err)
	}

	n += inc

	if inc, err = coeffs.WriteTo(w); err != nil {
		return n + inc, fmt.Errorf("coeffs.WriteTo: %w", err)
	}

	return n + inc, nil
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The decoded terms must satisfy the invariants
// of a normalized Polynomial, otherwise an error is returned and p is
// left unchanged.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {

	var powers structs.Vector[uint64]
	var coeffs structs.Vector[int64]

	var inc int64
	if inc, err = powers.ReadFrom(r); err != nil {
		return inc, fmt.Errorf("powers.ReadFrom: %w", err)
	}

	n += inc

	if inc, err = coeffs.ReadFrom(r); err != nil {
		return n + inc, fmt.Errorf("coeffs.ReadFrom: %w", err)
	}

	n += inc

	var terms []Term
	if terms, err = join(powers, coeffs); err != nil {
		return n, err
	}

	p.terms = terms

	return n, nil
}

// join checks that powers and coeffs describe a normalized polynomial and
// returns its terms.
func join(powers structs.Vector[uint64], coeffs structs.Vector[int64]) ([]Term, error) {

	if len(powers) != len(coeffs) {
		return nil, fmt.Errorf("invalid polynomial encoding: %d powers for %d coefficients", len(powers), len(coeffs))
	}

	if len(powers) == 0 {
		return nil, fmt.Errorf("invalid polynomial encoding: no terms")
	}

	terms := make([]Term, len(powers))
	for i := range terms {

		if i > 0 && powers[i] >= powers[i-1] {
			return nil, fmt.Errorf("invalid polynomial encoding: powers are not strictly decreasing at index %d", i)
		}

		if coeffs[i] == 0 && (len(terms) != 1 || powers[i] != 0) {
			return nil, fmt.Errorf("invalid polynomial encoding: zero coefficient for power %d", powers[i])
		}

		terms[i] = Term{Power: powers[i], Coeff: coeffs[i]}
	}

	return terms, nil
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Polynomial) MarshalBinary() (data []byte, err error) {
	return structs.MarshalBinary(p)
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(bytes.NewReader(data))
	return
}

// Hash returns the 32-byte blake3 digest of the binary encoding of p.
// Equal polynomials have the same digest.
func (p *Polynomial) Hash() []byte {

	data, err := p.MarshalBinary()

	// the buffer is sized by BinarySize
	if err != nil {
		panic(err)
	}

	hasher := blake3.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}
