package poly

import (
	"math/big"
)

// powInt64 returns x^e with wrapping int64 arithmetic.
func powInt64(x int64, e uint64) (r int64) {
	r = 1
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r *= x
		}
		x *= x
	}
	return
}

// Evaluate returns p(x) with wrapping int64 arithmetic.
// The terms are evaluated with a sparse Horner scheme, raising x to the
// power gap between two consecutive terms.
func (p *Polynomial) Evaluate(x int64) (y int64) {

	terms := p.view()

	for i, t := range terms {
		if i > 0 {
			y *= powInt64(x, terms[i-1].Power-t.Power)
		}
		y += t.Coeff
	}

	return y * powInt64(x, terms[len(terms)-1].Power)
}

// EvaluateBig returns p(x) computed exactly.
func (p *Polynomial) EvaluateBig(x *big.Int) (y *big.Int) {

	terms := p.view()

	y = new(big.Int)
	xe := new(big.Int)
	gap := new(big.Int)

	for i, t := range terms {
		if i > 0 {
			gap.SetUint64(terms[i-1].Power - t.Power)
			y.Mul(y, xe.Exp(x, gap, nil))
		}
		y.Add(y, big.NewInt(t.Coeff))
	}

	gap.SetUint64(terms[len(terms)-1].Power)

	return y.Mul(y, xe.Exp(x, gap, nil))
}
