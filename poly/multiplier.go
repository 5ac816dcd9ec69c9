package poly

import (
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tuneinsight/intpoly/utils"
	"github.com/tuneinsight/intpoly/utils/structs"
)

// ErrDivisionByZero is returned when the divisor of a modular reduction
// is the zero polynomial.
var ErrDivisionByZero = errors.New("division by the zero polynomial")

// Multiplier computes products and remainders of polynomials.
// The product of two polynomials is split across at most Parameters.Workers()
// goroutines. A Multiplier is safe for concurrent use.
type Multiplier struct {
	params Parameters
	log    *zerolog.Logger
	pool   structs.Pool[accumulator]
}

var defaultMultiplier = NewMultiplier(DefaultParameters, nil)

// NewMultiplier creates a new Multiplier. A nil logger disables logging.
func NewMultiplier(params Parameters, log *zerolog.Logger) *Multiplier {

	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	return &Multiplier{
		params: params,
		log:    log,
		pool: structs.NewSyncPool(func() accumulator {
			return newAccumulator(0)
		}),
	}
}

// Parameters returns the parameters of the Multiplier.
func (m *Multiplier) Parameters() Parameters {
	return m.params
}

// distribute accumulates every product of a term of lhs with a term of rhs into acc.
func distribute(lhs, rhs []Term, acc accumulator) {
	for _, a := range lhs {
		for _, b := range rhs {
			acc.add(a.Power+b.Power, a.Coeff*b.Coeff)
		}
	}
}

// Mul returns p0 * p1.
//
// The terms of p0 are split into contiguous ranges, one per worker, and each
// worker multiplies its range by all the terms of p1 into a private
// accumulator. The accumulators are summed once all workers are done.
// The result does not depend on the number of workers.
func (m *Multiplier) Mul(p0, p1 *Polynomial) *Polynomial {

	lhs, rhs := p0.view(), p1.view()

	if len(lhs) == 0 || len(rhs) == 0 || p0.IsZero() || p1.IsZero() {
		return new(Polynomial)
	}

	workers := utils.Min(m.params.Workers(), len(lhs))

	if workers <= 1 {
		acc := newAccumulator(len(lhs) + len(rhs))
		distribute(lhs, rhs, acc)
		return acc.polynomial()
	}

	accs := make([]accumulator, 0, workers)

	var g errgroup.Group
	for i, r := range utils.SplitIndexRange(len(lhs), workers) {

		if r[0] == r[1] {
			m.log.Debug().Int("worker", i).Msg("skipping empty range")
			continue
		}

		acc := m.pool.Get()
		accs = append(accs, acc)

		terms := lhs[r[0]:r[1]]
		g.Go(func() error {
			distribute(terms, rhs, acc)
			return nil
		})
	}

	m.log.Debug().
		Int("workers", len(accs)).
		Int("lhs_terms", len(lhs)).
		Int("rhs_terms", len(rhs)).
		Msg("parallel product")

	// workers cannot fail, Wait is the barrier before the merge
	_ = g.Wait()

	result := newAccumulator(len(accs[0]))
	for _, acc := range accs {
		result.merge(acc)
		clear(acc)
		m.pool.Put(acc)
	}

	return result.polynomial()
}

// Mod returns the remainder of the long division of p by d.
// It returns ErrDivisionByZero if d is the zero polynomial.
//
// The quotient coefficients are computed with truncated integer division of
// the leading coefficients. When the leading coefficient of the remainder is
// smaller in absolute value than the one of d, it cannot be reduced and the
// remainder is returned as is, possibly with a degree larger than or equal to
// the degree of d.
func (m *Multiplier) Mod(p, d *Polynomial) (*Polynomial, error) {

	if d.IsZero() {
		return nil, ErrDivisionByZero
	}

	remainder := p.CopyNew()
	divisor := d.CopyNew()

	lead := divisor.LeadingTerm()

	for !remainder.IsZero() && remainder.Degree() >= lead.Power {

		top := remainder.LeadingTerm()

		coeff := top.Coeff / lead.Coeff

		if coeff == 0 {
			break
		}

		factor := NewMonomial(top.Power-lead.Power, coeff)

		remainder = remainder.Sub(m.Mul(factor, divisor))
	}

	return remainder, nil
}
