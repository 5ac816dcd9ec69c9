package poly

import (
	"github.com/tuneinsight/intpoly/utils"
)

// accumulator sums coefficients by power. It is the working representation
// of every operation before normalization.
type accumulator map[uint64]int64

func newAccumulator(size int) accumulator {
	return make(accumulator, size)
}

// accumulatorFrom returns an accumulator holding the terms of p.
func accumulatorFrom(p *Polynomial) accumulator {
	terms := p.view()
	acc := newAccumulator(len(terms))
	for _, t := range terms {
		acc[t.Power] = t.Coeff
	}
	return acc
}

func (acc accumulator) add(power uint64, coeff int64) {
	acc[power] += coeff
}

// merge adds the terms of other into acc.
func (acc accumulator) merge(other accumulator) {
	for power, coeff := range other {
		acc[power] += coeff
	}
}

// polynomial returns the normalized polynomial of the terms of acc.
func (acc accumulator) polynomial() *Polynomial {
	return &Polynomial{terms: normalize(acc)}
}

// normalize returns the terms of acc with a non-zero coefficient sorted by
// decreasing power, or the canonical zero term list if there are none.
func normalize(acc accumulator) []Term {

	powers := utils.GetSortedKeys(acc)

	terms := make([]Term, 0, len(powers))
	for i := len(powers) - 1; i >= 0; i-- {
		if coeff := acc[powers[i]]; coeff != 0 {
			terms = append(terms, Term{Power: powers[i], Coeff: coeff})
		}
	}

	if len(terms) == 0 {
		return zeroTerms()
	}

	return terms
}
