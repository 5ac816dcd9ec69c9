// Package poly implements sparse univariate polynomials with int64 coefficients.
//
// A Polynomial is a value: every operation returns a new, normalized
// Polynomial and never modifies its operands. The terms of a normalized
// Polynomial are ordered by strictly decreasing power and never have a zero
// coefficient, with the exception of the zero polynomial, which is
// represented by the single term 0x^0.
//
// Coefficient arithmetic follows the wrapping semantics of int64.
//
// Mod divides leading coefficients with truncated integer division and
// stops as soon as a quotient coefficient truncates to zero. The remainder
// r of p by d then satisfies p = q*d + r for the accumulated quotient q, but
// deg(r) < deg(d) is only guaranteed when every step divides exactly, for
// instance when the leading coefficient of d is 1 or -1. For example, the
// remainder of x by 2x is x.
package poly

import (
	"fmt"
	"strings"
)

// Term is a monomial Coeff * x^Power.
type Term struct {
	Power uint64
	Coeff int64
}

// Polynomial is a sparse univariate polynomial with int64 coefficients.
// The zero value is the zero polynomial.
type Polynomial struct {
	terms []Term // strictly decreasing powers, see normalize
}

// zeroTerms is the term list of the canonical zero polynomial.
func zeroTerms() []Term {
	return []Term{{Power: 0, Coeff: 0}}
}

// NewPolynomial creates a new Polynomial from a list of terms.
// The terms can be given in any order, the coefficients of terms
// sharing the same power are summed and terms cancelling to zero are
// dropped. Without terms, the zero polynomial is returned.
func NewPolynomial(terms ...Term) *Polynomial {
	acc := newAccumulator(len(terms))
	for _, t := range terms {
		acc.add(t.Power, t.Coeff)
	}
	return acc.polynomial()
}

// NewMonomial creates the polynomial coeff * x^power.
func NewMonomial(power uint64, coeff int64) *Polynomial {
	if coeff == 0 {
		return new(Polynomial)
	}
	return &Polynomial{terms: []Term{{Power: power, Coeff: coeff}}}
}

// view returns the normalized terms of p, mapping the zero value to the
// canonical zero term list. The returned slice must not be modified.
func (p *Polynomial) view() []Term {
	if p == nil || len(p.terms) == 0 {
		return zeroTerms()
	}
	return p.terms
}

// CopyNew creates a deep copy of p.
func (p *Polynomial) CopyNew() *Polynomial {
	return &Polynomial{terms: p.Terms()}
}

// Copy copies the terms of other on p.
// The two polynomials do not share memory afterward.
// p must be non-nil.
func (p *Polynomial) Copy(other *Polynomial) {
	if p != other {
		p.terms = other.Terms()
	}
}

// Terms returns the canonical form of p: a new slice holding the non-zero
// terms of p by decreasing power, or the single term {0, 0} if p is zero.
func (p *Polynomial) Terms() []Term {
	src := p.view()
	terms := make([]Term, len(src))
	copy(terms, src)
	return terms
}

// Len returns the number of terms of p. The zero polynomial has one term.
func (p *Polynomial) Len() int {
	return len(p.view())
}

// Degree returns the highest power of p. The zero polynomial has degree 0.
func (p *Polynomial) Degree() uint64 {
	return p.view()[0].Power
}

// LeadingTerm returns the term of highest power of p.
func (p *Polynomial) LeadingTerm() Term {
	return p.view()[0]
}

// IsZero returns true if p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	terms := p.view()
	return len(terms) == 1 && terms[0].Coeff == 0
}

// Coeff returns the coefficient of x^power in p.
func (p *Polynomial) Coeff(power uint64) int64 {
	for _, t := range p.view() {
		if t.Power == power {
			return t.Coeff
		}
		if t.Power < power {
			break
		}
	}
	return 0
}

// Equal returns true if p and other have the same terms.
func (p *Polynomial) Equal(other *Polynomial) bool {

	a, b := p.view(), other.view()

	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// String returns a debug rendering of p such as "3x^2 -1x^0".
// This format is not meant to be parsed.
func (p *Polynomial) String() string {
	var sb strings.Builder
	for i, t := range p.view() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%dx^%d", t.Coeff, t.Power)
	}
	return sb.String()
}
