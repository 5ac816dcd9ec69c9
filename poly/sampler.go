package poly

import (
	"fmt"

	"github.com/tuneinsight/intpoly/utils/sampling"
)

// Sampler samples random sparse polynomials from a PRNG.
// Given the same PRNG stream, a Sampler returns the same polynomials.
type Sampler struct {
	prng     sampling.PRNG
	maxTerms int
	maxPower uint64
	bound    int64
}

// NewSampler creates a new Sampler drawing polynomials with between 1 and
// maxTerms terms, powers in [0, maxPower] and coefficients in [-bound, bound].
// Sampled terms sharing a power are summed, so the result can have fewer terms.
func NewSampler(prng sampling.PRNG, maxTerms int, maxPower uint64, bound int64) (*Sampler, error) {

	if maxTerms < 1 {
		return nil, fmt.Errorf("invalid sampler: maxTerms=%d must be positive", maxTerms)
	}

	if bound < 0 {
		return nil, fmt.Errorf("invalid sampler: bound=%d must be non-negative", bound)
	}

	return &Sampler{
		prng:     prng,
		maxTerms: maxTerms,
		maxPower: maxPower,
		bound:    bound,
	}, nil
}

// ReadNew samples a new polynomial.
// It panics if the PRNG fails.
func (s *Sampler) ReadNew() *Polynomial {

	n := s.uint64N(uint64(s.maxTerms)) + 1

	terms := make([]Term, n)
	for i := range terms {
		terms[i] = Term{Power: s.power(), Coeff: s.coeff()}
	}

	return NewPolynomial(terms...)
}

// power samples a power in [0, maxPower].
func (s *Sampler) power() uint64 {
	if s.maxPower == ^uint64(0) {
		v, err := sampling.ReadUint64(s.prng)
		if err != nil {
			panic(err)
		}
		return v
	}
	return s.uint64N(s.maxPower + 1)
}

// coeff samples a coefficient in [-bound, bound].
func (s *Sampler) coeff() int64 {
	v, err := sampling.ReadInt64Range(s.prng, s.bound)
	if err != nil {
		panic(err)
	}
	return v
}

func (s *Sampler) uint64N(n uint64) uint64 {
	v, err := sampling.ReadUint64N(s.prng, n)
	if err != nil {
		panic(err)
	}
	return v
}
