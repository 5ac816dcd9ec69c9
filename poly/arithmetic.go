package poly

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	acc := accumulatorFrom(p)
	for _, t := range q.view() {
		acc.add(t.Power, t.Coeff)
	}
	return acc.polynomial()
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	acc := accumulatorFrom(p)
	for _, t := range q.view() {
		acc.add(t.Power, -t.Coeff)
	}
	return acc.polynomial()
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	return p.MulScalar(-1)
}

// AddScalar returns p + x.
func (p *Polynomial) AddScalar(x int64) *Polynomial {
	acc := accumulatorFrom(p)
	acc.add(0, x)
	return acc.polynomial()
}

// ScalarAdd returns x + p.
func ScalarAdd(x int64, p *Polynomial) *Polynomial {
	return p.AddScalar(x)
}

// MulScalar returns p * x.
func (p *Polynomial) MulScalar(x int64) *Polynomial {
	acc := accumulatorFrom(p)
	for power := range acc {
		acc[power] *= x
	}
	return acc.polynomial()
}

// ScalarMul returns x * p.
func ScalarMul(x int64, p *Polynomial) *Polynomial {
	return p.MulScalar(x)
}

// Mul returns p * q using the default Multiplier.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	return defaultMultiplier.Mul(p, q)
}

// Mod returns the remainder of the long division of p by d using the
// default Multiplier. See Multiplier.Mod.
func (p *Polynomial) Mod(d *Polynomial) (*Polynomial, error) {
	return defaultMultiplier.Mod(p, d)
}
