package ring

import "math/big"

// IntPoly is a variable-length integer polynomial over Z, produced by
// rounding or by lifting a ring Element. Leading (high-order) zero
// coefficients are stripped by Normalize.
type IntPoly struct {
	Coeffs []*big.Int
}

// NewIntPoly allocates a zero IntPoly of the given length.
func NewIntPoly(n int) IntPoly {
	coeffs := make([]*big.Int, n)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	return IntPoly{Coeffs: coeffs}
}

// Normalize strips trailing (high-order) zero coefficients in place,
// leaving at least one coefficient.
func (p *IntPoly) Normalize() {
	last := len(p.Coeffs) - 1
	for last > 0 && p.Coeffs[last].Sign() == 0 {
		last--
	}
	p.Coeffs = p.Coeffs[:last+1]
}

// Deg returns the degree (len-1) after normalization semantics, without mutating p.
func (p IntPoly) Deg() int {
	last := len(p.Coeffs) - 1
	for last > 0 && p.Coeffs[last].Sign() == 0 {
		last--
	}
	return last
}

// Coeff returns coefficient i, or zero if i is out of range.
func (p IntPoly) Coeff(i int) *big.Int {
	if i < 0 || i >= len(p.Coeffs) {
		return new(big.Int)
	}
	return p.Coeffs[i]
}

// Clone returns a deep copy of p.
func (p IntPoly) Clone() IntPoly {
	out := NewIntPoly(len(p.Coeffs))
	for i, c := range p.Coeffs {
		out.Coeffs[i].Set(c)
	}
	return out
}

// ModSmall reduces every coefficient modulo m (m small, e.g. the
// plaintext modulus p=2), returning a new IntPoly with coefficients in [0,m).
func (p IntPoly) ModSmall(m int64) IntPoly {
	mod := big.NewInt(m)
	out := NewIntPoly(len(p.Coeffs))
	for i, c := range p.Coeffs {
		out.Coeffs[i].Mod(c, mod)
	}
	return out
}

// EqualMod reports whether p and q are coefficient-wise congruent modulo m,
// comparing up to the longer polynomial's length (missing coefficients
// treated as zero).
func (p IntPoly) EqualMod(q IntPoly, m int64) bool {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	mod := big.NewInt(m)
	for i := 0; i < n; i++ {
		a := new(big.Int).Mod(p.Coeff(i), mod)
		b := new(big.Int).Mod(q.Coeff(i), mod)
		if a.Cmp(b) != 0 {
			return false
		}
	}
	return true
}

// FromIntPoly embeds an IntPoly into the ring, padding with zero
// coefficients or truncating high-order terms beyond N-1 (the latter
// should not occur for well-formed secrets, whose degree is bounded well
// below N in practice).
func FromIntPoly(ctx *Ctx, p IntPoly) Element {
	e := NewElement(ctx)
	for i := 0; i < len(e.Coeffs) && i < len(p.Coeffs); i++ {
		e.Coeffs[i].Mod(p.Coeffs[i], ctx.q)
	}
	return e
}
